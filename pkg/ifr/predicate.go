package ifr

import (
	"regexp"
	"strings"

	"github.com/joshuapare/ifrkit/pkg/types"
)

// Predicate is a boolean test over one setting. Search and BulkApply take
// predicates so the catalog never depends on a particular pattern engine —
// tests can pass hand-written closures, the CLI compiles regexes.
type Predicate func(*types.Setting) bool

// Transform computes the staged value for one matched setting.
type Transform func(*types.Setting) (uint64, error)

// NameContains matches settings whose name contains substr, case-insensitively.
func NameContains(substr string) Predicate {
	lower := strings.ToLower(substr)
	return func(s *types.Setting) bool {
		return strings.Contains(strings.ToLower(s.Name), lower)
	}
}

// NameMatches matches settings whose name matches re.
func NameMatches(re *regexp.Regexp) Predicate {
	return func(s *types.Setting) bool {
		return re.MatchString(s.Name)
	}
}

// InVarStore matches settings backed by the named NVRAM variable.
func InVarStore(name string) Predicate {
	return func(s *types.Setting) bool {
		return s.VarStore == name
	}
}

// OfType matches settings of the given kind.
func OfType(t types.SettingType) Predicate {
	return func(s *types.Setting) bool {
		return s.Type == t
	}
}

// And combines predicates conjunctively.
func And(preds ...Predicate) Predicate {
	return func(s *types.Setting) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
