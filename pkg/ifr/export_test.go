package ifr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportScript(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	matches := cat.Search(NameContains("Above 4G"))
	require.Len(t, matches, 1)
	require.NoError(t, edits.SetLabel(matches[0], "Enabled"))

	out, err := ExportScript(edits, ExportOptions{})
	require.NoError(t, err)
	assert.Equal(t,
		"# Above 4G Decoding: Enabled\n"+
			"setup_var.efi 0x10 0x01 -s 0x1 -n Setup\n\n",
		string(out))
}

func TestExportScript_Empty(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	out, err := ExportScript(edits, ExportOptions{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExportScript_StagedValuesOnly(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	num, err := cat.Find("Boot Timeout")
	require.NoError(t, err)
	require.NoError(t, edits.Set(num, 30))

	out, err := ExportScript(edits, ExportOptions{})
	require.NoError(t, err)

	cmds, defects := VerifyScript(out)
	require.Empty(t, defects)
	require.Len(t, cmds, 1)
	assert.Equal(t, uint32(0x20), cmds[0].Offset)
	assert.Equal(t, uint64(30), cmds[0].Value)
	assert.Equal(t, 2, cmds[0].Size)
	assert.Equal(t, "Setup", cmds[0].VarStore)
	assert.Equal(t, "Boot Timeout: 30", cmds[0].Comment)
}

func TestExportScript_Deterministic(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)
	for _, s := range cat.All() {
		var v uint64
		if len(s.Options) > 0 {
			v = s.Options[0].Code
		}
		require.NoError(t, edits.Set(s, v))
	}

	first, err := ExportScript(edits, ExportOptions{})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ExportScript(edits, ExportOptions{})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
