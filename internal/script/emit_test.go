package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ifrkit/pkg/types"
)

func above4G() *types.Setting {
	return &types.Setting{
		Type:      types.OneOf,
		Name:      "Above 4G Decoding",
		VarStore:  "Setup",
		VarOffset: 0x10,
		Size:      1,
		Options: []types.Option{
			{Label: "Disabled", Code: 0, Default: true},
			{Label: "Enabled", Code: 1},
		},
	}
}

func TestEmit_SingleEdit(t *testing.T) {
	out, err := Emit([]types.Edit{{Setting: above4G(), Value: 1}}, types.ExportOptions{})
	require.NoError(t, err)

	expected := "# Above 4G Decoding: Enabled\n" +
		"setup_var.efi 0x10 0x01 -s 0x1 -n Setup\n\n"
	assert.Equal(t, expected, string(out))
}

func TestEmit_NoEditsIsEmptyDocument(t *testing.T) {
	out, err := Emit(nil, types.ExportOptions{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEmit_ValuePaddedToWidth(t *testing.T) {
	s := &types.Setting{
		Type:      types.Numeric,
		Name:      "Boot Timeout",
		VarStore:  "PchSetup",
		VarOffset: 0x8,
		Size:      2,
	}
	out, err := Emit([]types.Edit{{Setting: s, Value: 5}}, types.ExportOptions{OmitComments: true})
	require.NoError(t, err)
	assert.Equal(t, "setup_var.efi 0x8 0x0005 -s 0x2 -n PchSetup\n\n", string(out))

	s.Size = 4
	out, err = Emit([]types.Edit{{Setting: s, Value: 0xABC}}, types.ExportOptions{OmitComments: true})
	require.NoError(t, err)
	assert.Equal(t, "setup_var.efi 0x8 0x00000ABC -s 0x4 -n PchSetup\n\n", string(out))
}

func TestEmit_CustomCommand(t *testing.T) {
	out, err := Emit([]types.Edit{{Setting: above4G(), Value: 0}}, types.ExportOptions{
		Command:      "setup_var_cv.efi",
		OmitComments: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "setup_var_cv.efi 0x10 0x00 -s 0x1 -n Setup\n\n", string(out))
}

func TestEmit_Deterministic(t *testing.T) {
	edits := []types.Edit{{Setting: above4G(), Value: 1}}
	first, err := Emit(edits, types.ExportOptions{})
	require.NoError(t, err)
	second, err := Emit(edits, types.ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmit_UTF16Output(t *testing.T) {
	out, err := Emit([]types.Edit{{Setting: above4G(), Value: 1}}, types.ExportOptions{
		OutputEncoding: "UTF-16LE",
		WithBOM:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE}, out[:2])

	// The verifier decodes it back via the shared BOM handling.
	cmds, errs := ParseScript(out)
	require.Empty(t, errs)
	require.Len(t, cmds, 1)
	assert.Equal(t, uint64(1), cmds[0].Value)
}

func TestEmit_UnsupportedEncoding(t *testing.T) {
	_, err := Emit(nil, types.ExportOptions{OutputEncoding: "KOI8-R"})
	assert.Error(t, err)
}
