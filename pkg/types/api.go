package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat  ErrKind = iota // input is not a usable IFR dump at all
	ErrKindRecord                 // one record could not be parsed
	ErrKindOption                 // one option line inside a record is bad
	ErrKindRange                  // edit value does not fit the setting's width/bounds
	ErrKindChoice                 // edit value is not among the setting's option codes
	ErrKindNotFound               // no setting matches a lookup
	ErrKindState                  // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrNotIFRDump indicates the input lacks the IFRExtractor UEFI header line.
	ErrNotIFRDump = &Error{Kind: ErrKindFormat, Msg: "not an IFR dump (missing UEFI extraction header)"}
	// ErrNotVerbose indicates the dump was produced without IFRExtractor's
	// verbose option, so opcode payloads (and thus offsets) are missing.
	ErrNotVerbose = &Error{Kind: ErrKindFormat, Msg: "dump lacks opcode payloads (re-run IFRExtractor with verbose)"}
	// ErrEmptyDocument indicates the dump contained no record blocks.
	ErrEmptyDocument = &Error{Kind: ErrKindFormat, Msg: "dump contains no records"}
	// ErrMalformedRecord indicates a setting record with a missing or
	// unparseable header field.
	ErrMalformedRecord = &Error{Kind: ErrKindRecord, Msg: "malformed setting record"}
	// ErrMalformedOption indicates an option line with a label but no
	// parseable numeric code.
	ErrMalformedOption = &Error{Kind: ErrKindOption, Msg: "malformed option line"}
	// ErrUnsupportedWidth indicates a declared value width setup_var cannot write.
	ErrUnsupportedWidth = &Error{Kind: ErrKindRecord, Msg: "unsupported value width"}
	// ErrValueOutOfRange indicates an edit value that cannot be represented
	// in the setting's width or violates its declared bounds.
	ErrValueOutOfRange = &Error{Kind: ErrKindRange, Msg: "value out of range for setting"}
	// ErrInvalidOption indicates an edit value that is not one of the
	// setting's enumerated option codes.
	ErrInvalidOption = &Error{Kind: ErrKindChoice, Msg: "value is not a listed option code"}
	// ErrNotFound indicates a missing setting/option.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrAmbiguousName indicates an exact-name lookup that matched more than
	// one setting.
	ErrAmbiguousName = &Error{Kind: ErrKindState, Msg: "setting name matches more than one setting"}
)

// RecordError describes one defective record or option line. Parsing never
// aborts on these; they are collected and surfaced beside the settings that
// did parse.
type RecordError struct {
	Line    int     // 1-based line of the record's address header
	Kind    ErrKind // ErrKindRecord or ErrKindOption
	Snippet string  // leading fragment of the offending block
	Err     error   // sentinel (possibly wrapped) describing the defect
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// NewRecordError builds a RecordError, truncating the snippet to something
// readable in a terminal.
func NewRecordError(line int, kind ErrKind, block string, err error) *RecordError {
	snippet := block
	if i := strings.IndexByte(snippet, '\n'); i >= 0 {
		snippet = snippet[:i]
	}
	if len(snippet) > MaxSnippetLen {
		snippet = snippet[:MaxSnippetLen]
	}
	return &RecordError{Line: line, Kind: kind, Snippet: snippet, Err: err}
}

// -----------------------------------------------------------------------------
// Core Data Model
// -----------------------------------------------------------------------------

// SettingType enumerates the question kinds IFRExtractor emits that map to a
// writable NVRAM value.
type SettingType uint8

const (
	OneOf    SettingType = iota // enumerated choice
	Numeric                     // free-form number with declared bounds
	Checkbox                    // boolean, one byte
)

// String implements the Stringer interface for SettingType
func (t SettingType) String() string {
	switch t {
	case OneOf:
		return "oneof"
	case Numeric:
		return "numeric"
	case Checkbox:
		return "checkbox"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint8(t))
	}
}

// Option is one (label, code) pair of an enumerated setting.
type Option struct {
	Label   string // human label from the dump ("Enabled", "Auto", ...)
	Code    uint64 // numeric value written to NVRAM
	Default bool   // marked as the default in the dump
}

// Setting is one addressable NVRAM value recovered from the dump.
//
// Identity is (VarStore, VarOffset); Name is display-only and not unique.
// Value holds what the firmware declared as current/default and is never
// overwritten by edits — pending values live in an EditSet.
type Setting struct {
	Type       SettingType
	Name       string   // prompt text (display label, not unique)
	VarStore   string   // name of the backing NVRAM variable
	VarStoreID uint16   // raw VarStoreId the record referenced
	VarOffset  uint32   // byte offset inside the variable blob
	Size       int      // value width in bytes (1, 2, or 4)
	Value      uint64   // parsed current/default value
	HasValue   bool     // false when the dump carried no default record
	Min, Max   uint64   // numeric bounds (Numeric only)
	Options    []Option // enumerated codes (OneOf/Checkbox); nil for Numeric
}

// Option returns the option with the given code, or nil.
func (s *Setting) Option(code uint64) *Option {
	for i := range s.Options {
		if s.Options[i].Code == code {
			return &s.Options[i]
		}
	}
	return nil
}

// OptionByLabel returns the option with the given label, or nil.
func (s *Setting) OptionByLabel(label string) *Option {
	for i := range s.Options {
		if s.Options[i].Label == label {
			return &s.Options[i]
		}
	}
	return nil
}

// Fits reports whether v is representable in the setting's width.
func (s *Setting) Fits(v uint64) bool {
	if s.Size <= 0 || s.Size >= 8 {
		return false
	}
	return v <= (uint64(1)<<(8*uint(s.Size)))-1
}

// Edit pairs a setting with its staged replacement value. The setting is
// referenced by identity; Value is what the emitted script will write.
type Edit struct {
	Setting *Setting
	Value   uint64
}

// Label resolves the staged value to an option label when the setting is
// enumerated, falling back to the decimal rendering.
func (e Edit) Label() string {
	if opt := e.Setting.Option(e.Value); opt != nil {
		return opt.Label
	}
	return fmt.Sprintf("%d", e.Value)
}

// -----------------------------------------------------------------------------
// Parse / Export Options
// -----------------------------------------------------------------------------

// ParseOptions controls dump ingestion behavior.
type ParseOptions struct {
	// InputEncoding declares the dump text encoding (e.g., "UTF-16LE").
	// Empty means UTF-8; a BOM always wins over the declared value.
	InputEncoding string

	// Strict promotes per-record defects to a hard parse failure. The
	// default (tolerant) collects them and keeps going, which is the only
	// workable mode on real vendor dumps.
	Strict bool
}

// ExportOptions controls script emission characteristics.
type ExportOptions struct {
	// Command overrides the runtime tool name on each emitted line.
	// Empty selects the default ("setup_var.efi"). Pinned to the 0.3
	// grammar of that tool; other versions need their own emitter.
	Command string

	// OmitComments suppresses the "# Name: value" line above each command.
	OmitComments bool

	// OutputEncoding for the emitted script (e.g., "UTF-16LE" with BOM for
	// UEFI shell .nsh files). Empty means UTF-8.
	OutputEncoding string
	WithBOM        bool
}
