package script

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/ifrkit/internal/ifrtext"
	"github.com/joshuapare/ifrkit/pkg/types"
)

// Emit serializes staged edits into a setup_var script. The caller supplies
// edits in the order they should appear (catalog order); emission itself is
// a pure function, so repeated exports of the same edit set are
// byte-identical. Zero edits produce a valid empty document.
func Emit(edits []types.Edit, opts types.ExportOptions) ([]byte, error) {
	command := opts.Command
	if command == "" {
		command = DefaultCommand
	}

	var buf bytes.Buffer
	for _, e := range edits {
		if !opts.OmitComments {
			buf.WriteString(CommentPrefix)
			buf.WriteString(e.Setting.Name)
			buf.WriteString(CommentSeparator)
			buf.WriteString(e.Label())
			buf.WriteString(LF)
		}
		fmt.Fprintf(&buf, "%s 0x%X 0x%0*X %s 0x%X %s %s%s%s",
			command,
			e.Setting.VarOffset,
			e.Setting.Size*HexDigitsPerByte, e.Value,
			SizeFlag, e.Setting.Size,
			VarStoreFlag, e.Setting.VarStore,
			LF, LF)
	}

	switch strings.ToUpper(opts.OutputEncoding) {
	case "", ifrtext.EncodingUTF8:
		return buf.Bytes(), nil
	case ifrtext.EncodingUTF16LE:
		return ifrtext.EncodeUTF16LE(buf.String(), opts.WithBOM), nil
	default:
		return nil, fmt.Errorf("script: unsupported output encoding %q", opts.OutputEncoding)
	}
}
