package ifrtext

import (
	"bufio"
	"regexp"
	"strings"

	"github.com/joshuapare/ifrkit/pkg/types"
)

// Block is one candidate setting record: the address-prefixed line plus any
// wrapped continuation lines, rejoined. Line is the 1-based source line of
// the address header, kept for error reporting.
type Block struct {
	Line int
	Text string
}

var (
	// addressLine matches the hex address prefix that starts every record
	// in a verbose IFRExtractor dump ("0x4512A: OneOf Prompt: ...").
	addressLine = regexp.MustCompile(`^0x[0-9a-fA-F]+:`)

	// opcodeBytes matches the raw opcode payload group that only the
	// verbose extraction mode includes ("{ 05 91 ... }").
	opcodeBytes = regexp.MustCompile(`\{.*\}`)
)

// Tokenize splits a dump into record blocks. It is a pure function of its
// input: re-tokenizing the same bytes yields the same blocks.
//
// Hard failures (the document is unusable as a whole): the extraction
// header is missing, the dump has no opcode payloads (non-verbose
// extraction), or no record blocks exist. Anything block-shaped is
// forwarded as-is; judging a block's content is the parser's job.
func Tokenize(data []byte, opts types.ParseOptions) ([]Block, error) {
	text, err := DecodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(strings.NewReader(string(text)))
	buf := make([]byte, 0, ScannerInitialBufferSize)
	scanner.Buffer(buf, ScannerMaxLineSize)

	blocks := make([]Block, 0, InitialBlockCapacity)
	var (
		current   strings.Builder
		line      int
		blockLine int
		inBlock   bool
		verbose   bool
	)

	flush := func() {
		if inBlock {
			blocks = append(blocks, Block{Line: blockLine, Text: current.String()})
			current.Reset()
			inBlock = false
		}
	}

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if line == 1 {
			if !strings.Contains(text, ExtractionHeader) {
				return nil, types.ErrNotIFRDump
			}
			continue
		}

		if !verbose && opcodeBytes.MatchString(text) {
			verbose = true
		}

		if addressLine.MatchString(text) {
			flush()
			inBlock = true
			blockLine = line
			current.WriteString(text)
			continue
		}

		// Continuation of a wrapped record line. Blank lines and stray
		// noise outside a block are dropped without merging neighbours.
		if inBlock && text != "" {
			current.WriteString(ContinuationJoiner)
			current.WriteString(text)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if line == 0 {
		return nil, types.ErrNotIFRDump
	}
	if len(blocks) == 0 {
		return nil, types.ErrEmptyDocument
	}
	if !verbose {
		return nil, types.ErrNotVerbose
	}
	return blocks, nil
}
