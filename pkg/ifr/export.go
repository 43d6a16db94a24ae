package ifr

import (
	"github.com/joshuapare/ifrkit/internal/script"
)

// ExportScript serializes every pending edit into a setup_var script, in
// catalog order. Zero pending edits yield a valid empty document. The
// original parsed values never appear in the output — an unchanged setting
// is simply absent.
func ExportScript(edits *EditSet, opts ExportOptions) ([]byte, error) {
	return script.Emit(edits.Pending(), opts)
}

// Command is one write recovered from an emitted script.
type Command = script.Command

// VerifyScript re-parses an emitted script and reports defective lines.
// Useful as a final check before a script is carried to the target machine,
// where a malformed write has hardware consequences.
func VerifyScript(data []byte) ([]Command, []*RecordError) {
	return script.ParseScript(data)
}
