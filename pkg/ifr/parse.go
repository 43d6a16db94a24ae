package ifr

import (
	"fmt"

	"github.com/joshuapare/ifrkit/internal/ifrtext"
	"github.com/joshuapare/ifrkit/internal/mmfile"
)

// ParseFile parses an IFRExtractor dump from disk. Large dumps are mapped
// into memory rather than copied.
//
// The returned defect list names every record that could not be recovered;
// it accompanies a usable catalog rather than replacing one. A non-nil
// error means the document as a whole was unusable (wrong header,
// non-verbose extraction, no records).
func ParseFile(path string, opts ParseOptions) (*Catalog, []*RecordError, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read dump %s: %w", path, err)
	}
	defer cleanup()

	return ParseBytes(data, opts)
}

// ParseString parses dump content from a string.
func ParseString(text string, opts ParseOptions) (*Catalog, []*RecordError, error) {
	return ParseBytes([]byte(text), opts)
}

// ParseBytes parses dump content from bytes. This is the core entry point
// used by ParseFile and ParseString.
func ParseBytes(data []byte, opts ParseOptions) (*Catalog, []*RecordError, error) {
	blocks, err := ifrtext.Tokenize(data, opts)
	if err != nil {
		return nil, nil, err
	}

	settings, defects := ifrtext.ParseBlocks(blocks)
	if opts.Strict && len(defects) > 0 {
		return nil, defects, fmt.Errorf("strict parse: %d defective record(s), first: %w", len(defects), defects[0])
	}
	return newCatalog(settings), defects, nil
}
