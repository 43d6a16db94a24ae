package types

// ============================================================================
// setup_var Width Limits
// ============================================================================
// setup_var.efi writes NVRAM values one machine word at a time and only
// supports 1-, 2-, and 4-byte widths. A dump record declaring any other
// width cannot be scripted and is rejected at parse time rather than at
// export time, where a bad width would silently corrupt neighbouring
// offsets.

const (
	// WidthByte is a one-byte value (CheckBox, small OneOf).
	WidthByte = 1

	// WidthWord is a two-byte value.
	WidthWord = 2

	// WidthDword is a four-byte value, the widest setup_var can write.
	WidthDword = 4

	// MaxSnippetLen bounds the block fragment carried inside a RecordError.
	MaxSnippetLen = 120
)

// SupportedWidth reports whether setup_var can write a value of the given
// byte width.
func SupportedWidth(n int) bool {
	return n == WidthByte || n == WidthWord || n == WidthDword
}
