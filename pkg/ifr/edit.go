package ifr

import (
	"fmt"

	"github.com/joshuapare/ifrkit/pkg/types"
)

// EditSet maps settings (by identity) to their pending replacement values.
// It never touches Setting.Value: clearing an edit restores "no change" and
// the catalog stays exportable against its parsed state.
type EditSet struct {
	catalog *Catalog
	pending map[*types.Setting]uint64
}

// NewEditSet creates an empty edit set over one catalog.
func NewEditSet(c *Catalog) *EditSet {
	return &EditSet{
		catalog: c,
		pending: make(map[*types.Setting]uint64),
	}
}

// Set stages v as the pending value for s, replacing any earlier edit.
//
// Rejections are never clamped: ErrValueOutOfRange when v does not fit the
// setting's byte width or violates a Numeric's declared bounds,
// ErrInvalidOption when the setting is enumerated and v is no listed code.
func (e *EditSet) Set(s *types.Setting, v uint64) error {
	if !e.catalog.contains(s) {
		return fmt.Errorf("%w: setting %q is not in this catalog", types.ErrNotFound, s.Name)
	}
	if !s.Fits(v) {
		return fmt.Errorf("%w: %d does not fit in %d byte(s) (%s)", types.ErrValueOutOfRange, v, s.Size, s.Name)
	}
	if s.Type == types.Numeric && s.Max != 0 && (v < s.Min || v > s.Max) {
		return fmt.Errorf("%w: %d outside [%d, %d] (%s)", types.ErrValueOutOfRange, v, s.Min, s.Max, s.Name)
	}
	if len(s.Options) > 0 && s.Option(v) == nil {
		return fmt.Errorf("%w: %d (%s)", types.ErrInvalidOption, v, s.Name)
	}
	e.pending[s] = v
	return nil
}

// SetLabel resolves an option label ("Enabled") to its code and stages it.
func (e *EditSet) SetLabel(s *types.Setting, label string) error {
	opt := s.OptionByLabel(label)
	if opt == nil {
		return fmt.Errorf("%w: no option labeled %q (%s)", types.ErrInvalidOption, label, s.Name)
	}
	return e.Set(s, opt.Code)
}

// Clear removes any pending edit for s; emission goes back to "no change".
func (e *EditSet) Clear(s *types.Setting) {
	delete(e.pending, s)
}

// Value returns the pending value for s, if one is staged.
func (e *EditSet) Value(s *types.Setting) (uint64, bool) {
	v, ok := e.pending[s]
	return v, ok
}

// Len returns the number of pending edits.
func (e *EditSet) Len() int { return len(e.pending) }

// Pending returns the staged edits in catalog (source) order, regardless of
// the order they were staged in. This is the emitter's input and the reason
// repeated exports are reproducible.
func (e *EditSet) Pending() []types.Edit {
	out := make([]types.Edit, 0, len(e.pending))
	for _, s := range e.catalog.settings {
		if v, ok := e.pending[s]; ok {
			out = append(out, types.Edit{Setting: s, Value: v})
		}
	}
	return out
}
