package script

const (
	// ============================================================================
	// setup_var Scripting Grammar Tokens
	// ============================================================================
	// The emitted syntax is pinned to setup_var.efi 0.3. One write is one
	// line; a malformed line can point a write at the wrong offset, so every
	// token below is spelled out once and reused by both the emitter and the
	// verifier.

	// DefaultCommand is the runtime tool invoked by each script line.
	DefaultCommand = "setup_var.efi"

	// CommentPrefix introduces the human-readable line above each command.
	CommentPrefix = "# "

	// CommentSeparator sits between the setting name and the staged value.
	CommentSeparator = ": "

	// SizeFlag declares the write width in bytes.
	SizeFlag = "-s"

	// VarStoreFlag names the NVRAM variable the offset indexes into.
	VarStoreFlag = "-n"

	// LF terminates every emitted line. setup_var is indifferent to line
	// endings; LF keeps output byte-identical across platforms.
	LF = "\n"

	// HexDigitsPerByte is the zero-padding factor for emitted values: the
	// value field is always exactly two hex digits per byte of width.
	HexDigitsPerByte = 2
)
