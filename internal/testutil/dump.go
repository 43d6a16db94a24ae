// Package testutil builds synthetic IFRExtractor verbose dumps for tests.
package testutil

import (
	"fmt"
	"strings"
)

// Dump assembles a verbose-mode dump line by line. Addresses advance
// monotonically so tokenization sees realistic record headers.
//
// Example:
//
//	d := testutil.NewDump()
//	d.VarStore(1, 0x30C, "Setup")
//	d.OneOf("Above 4G Decoding", 1, 0x10, 8)
//	d.Option("Disabled", 0, false)
//	d.Option("Enabled", 1, true)
//	settings, errs := ifr.ParseBytes(d.Bytes(), types.ParseOptions{})
type Dump struct {
	lines []string
	addr  int
}

// NewDump starts a dump with the IFRExtractor UEFI header line.
func NewDump() *Dump {
	return &Dump{
		lines: []string{"Program version: 1.6.0, Extraction mode: UEFI"},
		addr:  0x40000,
	}
}

// Raw appends a line verbatim, without an address prefix or opcode bytes.
func (d *Dump) Raw(line string) *Dump {
	d.lines = append(d.lines, line)
	return d
}

// Record appends an address-prefixed record with a trailing opcode group.
func (d *Dump) Record(text string) *Dump {
	d.lines = append(d.lines, fmt.Sprintf("0x%X: %s { 05 91 00 00 }", d.addr, text))
	d.addr += 0x20
	return d
}

// VarStore appends a varstore table entry.
func (d *Dump) VarStore(id uint16, size uint32, name string) *Dump {
	return d.Record(fmt.Sprintf(
		`VarStore Guid: EC87D643-EBA4-4BB5-A1E5-3F3E36B20DA9, VarStoreId: 0x%X, Size: 0x%X, Name: "%s"`,
		id, size, name))
}

// OneOf appends an enumerated setting record. bits is the declared value
// width in bits, as IFRExtractor reports it.
func (d *Dump) OneOf(name string, store uint16, offset uint32, bits int) *Dump {
	return d.Record(fmt.Sprintf(
		`OneOf Prompt: "%s", Help: "", QuestionFlags: 0x0, QuestionId: 0x%X, VarStoreId: 0x%X, VarOffset: 0x%X, Flags: 0x10, Size: %d`,
		name, d.addr&0xFFFF, store, offset, bits))
}

// Option appends an option line for the preceding OneOf.
func (d *Dump) Option(label string, code uint64, def bool) *Dump {
	suffix := ""
	if def {
		suffix = ", Default"
	}
	return d.Record(fmt.Sprintf(`OneOfOption Option: "%s" Value: %d%s`, label, code, suffix))
}

// Numeric appends a bounded numeric setting record.
func (d *Dump) Numeric(name string, store uint16, offset uint32, bits int, min, max uint64) *Dump {
	return d.Record(fmt.Sprintf(
		`Numeric Prompt: "%s", Help: "", QuestionFlags: 0x0, QuestionId: 0x%X, VarStoreId: 0x%X, VarOffset: 0x%X, Flags: 0x10, Size: %d, Min: 0x%X, Max: 0x%X, Step: 0x1`,
		name, d.addr&0xFFFF, store, offset, bits, min, max))
}

// CheckBox appends a boolean setting record.
func (d *Dump) CheckBox(name string, store uint16, offset uint32, enabled bool) *Dump {
	def := "Disabled"
	if enabled {
		def = "Enabled"
	}
	return d.Record(fmt.Sprintf(
		`CheckBox Prompt: "%s", Help: "", QuestionFlags: 0x0, QuestionId: 0x%X, VarStoreId: 0x%X, VarOffset: 0x%X, Flags: 0x0, Default: %s`,
		name, d.addr&0xFFFF, store, offset, def))
}

// Default appends a standard-store default record for the preceding question.
func (d *Dump) Default(v uint64) *Dump {
	return d.Record(fmt.Sprintf(`Default DefaultId: 0x0 Value: %d`, v))
}

// Form appends a structural record that parses to nothing.
func (d *Dump) Form(title string) *Dump {
	return d.Record(fmt.Sprintf(`Form FormId: 0x%X, Title: "%s"`, d.addr&0xFF, title))
}

func (d *Dump) String() string {
	return strings.Join(d.lines, "\n") + "\n"
}

func (d *Dump) Bytes() []byte {
	return []byte(d.String())
}
