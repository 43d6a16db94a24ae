package ifr

import (
	"fmt"

	"github.com/joshuapare/ifrkit/pkg/types"
)

// Catalog owns the settings of one parsed document, in source order. It is
// created by a successful parse and replaced wholesale when a new document
// is opened; edits never mutate it, so the parsed values stay trustworthy
// for diffing and re-export.
type Catalog struct {
	settings []*types.Setting
	ord      map[*types.Setting]int
}

func newCatalog(settings []*types.Setting) *Catalog {
	ord := make(map[*types.Setting]int, len(settings))
	for i, s := range settings {
		ord[s] = i
	}
	return &Catalog{settings: settings, ord: ord}
}

// Len returns the number of settings.
func (c *Catalog) Len() int { return len(c.settings) }

// All returns every setting in parse order. The slice is the caller's; the
// settings themselves are shared and must be treated as read-only.
func (c *Catalog) All() []*types.Setting {
	out := make([]*types.Setting, len(c.settings))
	copy(out, c.settings)
	return out
}

// VarStores returns the distinct backing variable names, in first-seen order.
func (c *Catalog) VarStores() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range c.settings {
		if !seen[s.VarStore] {
			seen[s.VarStore] = true
			out = append(out, s.VarStore)
		}
	}
	return out
}

// Search returns the settings satisfying pred, in parse order. The catalog
// has no opinion on how predicates are built; see NameContains, NameMatches
// and friends for the common ones.
func (c *Catalog) Search(pred Predicate) []*types.Setting {
	var out []*types.Setting
	for _, s := range c.settings {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the setting whose name matches exactly. ErrNotFound when
// nothing matches; ErrAmbiguousName when several settings share the name
// (names are display labels, not identifiers).
func (c *Catalog) Find(name string) (*types.Setting, error) {
	var found *types.Setting
	for _, s := range c.settings {
		if s.Name != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q", types.ErrAmbiguousName, name)
		}
		found = s
	}
	if found == nil {
		return nil, fmt.Errorf("%w: no setting named %q", types.ErrNotFound, name)
	}
	return found, nil
}

// contains reports whether s belongs to this catalog.
func (c *Catalog) contains(s *types.Setting) bool {
	_, ok := c.ord[s]
	return ok
}

// BulkApply stages one edit per setting matching pred, computing each value
// with fn. Matches are independent: a failed transform or rejected value
// reports that setting's error without rolling back or blocking the others.
// Returns the number of edits staged. Zero matches is a no-op, not an error.
func (c *Catalog) BulkApply(pred Predicate, fn Transform, edits *EditSet) (int, []error) {
	var (
		applied int
		errs    []error
	)
	for _, s := range c.settings {
		if !pred(s) {
			continue
		}
		v, err := fn(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s @ %s+0x%X: %w", s.Name, s.VarStore, s.VarOffset, err))
			continue
		}
		if err := edits.Set(s, v); err != nil {
			errs = append(errs, err)
			continue
		}
		applied++
	}
	return applied, errs
}
