package ifrtext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ifrkit/internal/testutil"
	"github.com/joshuapare/ifrkit/pkg/types"
)

func TestTokenize_Blocks(t *testing.T) {
	d := testutil.NewDump()
	d.VarStore(1, 0x30C, "Setup")
	d.OneOf("Above 4G Decoding", 1, 0x10, 8)
	d.Option("Disabled", 0, false)
	d.Option("Enabled", 1, true)

	blocks, err := Tokenize(d.Bytes(), types.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	// Header is line 1, first record line 2.
	assert.Equal(t, 2, blocks[0].Line)
	assert.Contains(t, blocks[0].Text, `Name: "Setup"`)
	assert.Contains(t, blocks[3].Text, `OneOfOption Option: "Enabled" Value: 1, Default`)
}

func TestTokenize_JoinsContinuationLines(t *testing.T) {
	d := testutil.NewDump()
	d.VarStore(1, 0x100, "Setup")
	// A record wrapped across three physical lines, with a blank line after.
	d.Raw(`0x48A10: OneOf Prompt: "Wrapped Setting", Help: "", QuestionFlags: 0x0, QuestionId: 0x12,`)
	d.Raw(`VarStoreId: 0x1, VarOffset: 0x20, Flags: 0x10, Size: 16`)
	d.Raw(`{ 05 91 12 00 }`)
	d.Raw("")
	d.CheckBox("Next Setting", 1, 0x30, false)

	blocks, err := Tokenize(d.Bytes(), types.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	assert.Contains(t, blocks[1].Text, `VarOffset: 0x20, Flags: 0x10, Size: 16 { 05 91 12 00 }`)
	assert.Contains(t, blocks[2].Text, "Next Setting")
}

func TestTokenize_Deterministic(t *testing.T) {
	d := testutil.NewDump()
	d.VarStore(1, 0x100, "Setup")
	d.CheckBox("Fast Boot", 1, 0x2A, true)

	first, err := Tokenize(d.Bytes(), types.ParseOptions{})
	require.NoError(t, err)
	second, err := Tokenize(d.Bytes(), types.ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTokenize_HardFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "empty input",
			input: "",
			want:  types.ErrNotIFRDump,
		},
		{
			name:  "missing extraction header",
			input: "Program version: 1.6.0, Extraction mode: Framework\n0x10: Form { 01 }\n",
			want:  types.ErrNotIFRDump,
		},
		{
			name:  "header only",
			input: "Program version: 1.6.0, Extraction mode: UEFI\n",
			want:  types.ErrEmptyDocument,
		},
		{
			name:  "non-verbose extraction",
			input: "Program version: 1.6.0, Extraction mode: UEFI\n0x10: Form FormId: 0x1, Title: \"Main\"\n",
			want:  types.ErrNotVerbose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize([]byte(tt.input), types.ParseOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, expected %v", err, tt.want)
		})
	}
}

func TestTokenize_UTF16LEInput(t *testing.T) {
	d := testutil.NewDump()
	d.VarStore(1, 0x100, "Setup")
	d.CheckBox("Fast Boot", 1, 0x2A, true)

	encoded := EncodeUTF16LE(d.String(), true)
	blocks, err := Tokenize(encoded, types.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Contains(t, blocks[1].Text, "Fast Boot")

	// Declared encoding without a BOM works too.
	noBOM := EncodeUTF16LE(d.String(), false)
	blocks, err = Tokenize(noBOM, types.ParseOptions{InputEncoding: EncodingUTF16LE})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
}

func TestTokenize_UnsupportedEncoding(t *testing.T) {
	_, err := Tokenize([]byte("x"), types.ParseOptions{InputEncoding: "EBCDIC"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnsupportedEncoding)
}
