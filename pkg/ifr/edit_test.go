package ifr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/ifrkit/internal/testutil"
)

func TestEditSet_SetAndClear(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	s, err := cat.Find("Above 4G Decoding")
	require.NoError(t, err)

	require.NoError(t, edits.Set(s, 1))
	v, ok := edits.Value(s)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), v)
	assert.Equal(t, 1, edits.Len())

	// Parsed state is untouched; only the staged value exists.
	assert.Equal(t, uint64(1), s.Value) // declared default
	require.NoError(t, edits.Set(s, 0))
	v, _ = edits.Value(s)
	assert.Equal(t, uint64(0), v)
	assert.Equal(t, 1, edits.Len())

	edits.Clear(s)
	_, ok = edits.Value(s)
	assert.False(t, ok)
	assert.Zero(t, edits.Len())
}

func TestEditSet_SetRejectsInvalidOption(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	s, err := cat.Find("Above 4G Decoding")
	require.NoError(t, err)

	err = edits.Set(s, 5)
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Zero(t, edits.Len())
}

func TestEditSet_SetRejectsOverflow(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	cb, err := cat.Find("Fast Boot") // 1 byte
	require.NoError(t, err)
	assert.ErrorIs(t, edits.Set(cb, 256), ErrValueOutOfRange)

	num, err := cat.Find("Boot Timeout") // 2 bytes, max 65535
	require.NoError(t, err)
	assert.ErrorIs(t, edits.Set(num, 65536), ErrValueOutOfRange)
	require.NoError(t, edits.Set(num, 65535))
}

func TestEditSet_SetRejectsNumericBounds(t *testing.T) {
	d := testutil.NewDump()
	d.VarStore(1, 0x100, "Setup")
	d.Numeric("Fan Duty Cycle", 1, 0x40, 8, 20, 100)

	cat, _, err := ParseBytes(d.Bytes(), ParseOptions{})
	require.NoError(t, err)
	s, err := cat.Find("Fan Duty Cycle")
	require.NoError(t, err)

	edits := NewEditSet(cat)
	assert.ErrorIs(t, edits.Set(s, 10), ErrValueOutOfRange)
	assert.ErrorIs(t, edits.Set(s, 101), ErrValueOutOfRange)
	require.NoError(t, edits.Set(s, 50))
}

func TestEditSet_SetRejectsForeignSetting(t *testing.T) {
	cat := sampleCatalog(t)
	other := sampleCatalog(t)
	edits := NewEditSet(cat)

	err := edits.Set(other.All()[0], 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditSet_SetLabel(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	s, err := cat.Find("Above 4G Decoding")
	require.NoError(t, err)

	require.NoError(t, edits.SetLabel(s, "Enabled"))
	v, _ := edits.Value(s)
	assert.Equal(t, uint64(1), v)

	assert.ErrorIs(t, edits.SetLabel(s, "Auto"), ErrInvalidOption)
}

func TestEditSet_PendingInCatalogOrder(t *testing.T) {
	cat := sampleCatalog(t)
	edits := NewEditSet(cat)

	all := cat.All()
	// Stage in reverse order; Pending must come back in parse order.
	require.NoError(t, edits.Set(all[2], 1))
	require.NoError(t, edits.Set(all[0], 1))

	pending := edits.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "Above 4G Decoding", pending[0].Setting.Name)
	assert.Equal(t, "Fast Boot", pending[1].Setting.Name)
}
