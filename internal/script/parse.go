package script

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joshuapare/ifrkit/internal/ifrtext"
	"github.com/joshuapare/ifrkit/pkg/types"
)

// Command is one write recovered from an emitted script.
type Command struct {
	Tool     string // the invoked binary ("setup_var.efi")
	Offset   uint32
	Value    uint64
	Size     int
	VarStore string
	Comment  string // the "Name: value" comment preceding the line, if any
}

// commandLine matches one setup_var write. Anchored: a line either is a
// complete well-formed command or it is a defect.
var commandLine = regexp.MustCompile(
	`^(\S+)\s+0x([0-9A-Fa-f]+)\s+0x([0-9A-Fa-f]+)\s+-s\s+0x([0-9A-Fa-f]+)\s+-n\s+(\S+)$`)

// ParseScript re-parses an emitted script, recovering the offset/size/value
// triples. Used by the round-trip tests and the verify command. Defective
// lines are reported per line; well-formed lines still come back.
func ParseScript(data []byte) ([]Command, []*types.RecordError) {
	text, err := ifrtext.DecodeInput(data, "")
	if err != nil {
		return nil, []*types.RecordError{types.NewRecordError(0, types.ErrKindFormat, "", err)}
	}

	var (
		cmds    []Command
		errs    []*types.RecordError
		comment string
		line    int
	)

	scanner := bufio.NewScanner(strings.NewReader(string(text)))
	for scanner.Scan() {
		line++
		trim := strings.TrimSpace(scanner.Text())
		if trim == "" {
			comment = ""
			continue
		}
		if strings.HasPrefix(trim, strings.TrimSpace(CommentPrefix)) {
			comment = strings.TrimSpace(strings.TrimPrefix(trim, strings.TrimSpace(CommentPrefix)))
			continue
		}

		m := commandLine.FindStringSubmatch(trim)
		if m == nil {
			errs = append(errs, types.NewRecordError(line, types.ErrKindRecord,
				trim, fmt.Errorf("%w: not a setup_var command", types.ErrMalformedRecord)))
			comment = ""
			continue
		}

		cmd, err := buildCommand(m, comment)
		if err != nil {
			errs = append(errs, types.NewRecordError(line, types.ErrKindRecord, trim, err))
			comment = ""
			continue
		}
		cmds = append(cmds, cmd)
		comment = ""
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, types.NewRecordError(line, types.ErrKindFormat, "", err))
	}
	return cmds, errs
}

func buildCommand(m []string, comment string) (Command, error) {
	offset, err := strconv.ParseUint(m[2], 16, 32)
	if err != nil {
		return Command{}, fmt.Errorf("%w: bad offset %q", types.ErrMalformedRecord, m[2])
	}
	value, err := strconv.ParseUint(m[3], 16, 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: bad value %q", types.ErrMalformedRecord, m[3])
	}
	size, err := strconv.ParseUint(m[4], 16, 8)
	if err != nil || !types.SupportedWidth(int(size)) {
		return Command{}, fmt.Errorf("%w: %s bytes", types.ErrUnsupportedWidth, m[4])
	}
	if max := (uint64(1) << (8 * size)) - 1; value > max {
		return Command{}, fmt.Errorf("%w: value 0x%X exceeds %d-byte width", types.ErrValueOutOfRange, value, size)
	}
	return Command{
		Tool:     m[1],
		Offset:   uint32(offset),
		Value:    value,
		Size:     int(size),
		VarStore: m[5],
		Comment:  comment,
	}, nil
}
