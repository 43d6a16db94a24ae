package ifrtext

const (
	// ============================================================================
	// IFRExtractor Dump Structure
	// ============================================================================

	// ExtractionHeader must appear on the first line of a usable dump.
	// IFRExtractor-RS writes it for UEFI-mode extractions; framework-mode
	// dumps use different offsets and are not supported.
	ExtractionHeader = "Extraction mode: UEFI"

	// AddressSuffix terminates the hex address prefix of a record line.
	AddressSuffix = ":"

	// HexPrefix introduces hexadecimal literals throughout the dump.
	HexPrefix = "0x"

	// ContinuationJoiner glues wrapped record lines back together.
	ContinuationJoiner = " "

	// ============================================================================
	// Record Markers
	// ============================================================================
	// The markers identify which opcode a record block describes. Matching is
	// on the joined block text, after the address prefix.

	// VarStoreMarker introduces a varstore table entry.
	VarStoreMarker = "VarStoreId:"

	// OneOfMarker introduces an enumerated setting record.
	OneOfMarker = "OneOf Prompt:"

	// OneOfOptionMarker introduces one option of the preceding OneOf.
	OneOfOptionMarker = "OneOfOption Option:"

	// NumericMarker introduces a bounded numeric setting record.
	NumericMarker = "Numeric Prompt:"

	// CheckBoxMarker introduces a boolean setting record.
	CheckBoxMarker = "CheckBox Prompt:"

	// DefaultMarker introduces the default-value record that trails a
	// OneOf or Numeric question.
	DefaultMarker = "Default DefaultId:"

	// ============================================================================
	// CheckBox Default Labels
	// ============================================================================

	// CheckBoxEnabled is the dump's label for a checked default.
	CheckBoxEnabled = "Enabled"

	// CheckBoxDisabled is the dump's label for an unchecked default.
	CheckBoxDisabled = "Disabled"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 encoding.
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding.
	EncodingUTF16LE = "UTF-16LE"

	// ============================================================================
	// Buffer and Parsing Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the dump scanner.
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the dump scanner.
	// Verbose dumps wrap long opcode payloads, but a single physical line
	// can still be very long on some vendors' string packs.
	ScannerMaxLineSize = 1024 * 1024 // 1MB

	// InitialBlockCapacity is the estimated record count for pre-allocation.
	InitialBlockCapacity = 4096

	// BitsPerByte converts the Size field of OneOf/Numeric records (bits)
	// into the byte width setup_var works with.
	BitsPerByte = 8
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian.
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
