// Package conflict decides whether a proposed node name is usable and, when
// it is not, derives a unique alternative by counter-suffixing.
package conflict

import (
	"fmt"
	"strconv"
)

// Settings is the subset of tool settings the resolver reads.
type Settings struct {
	// CheckConflicts enables membership checks against the existing-name set.
	CheckConflicts bool

	// AutoUniqueNames derives a "_<n>" variant instead of failing on conflict.
	AutoUniqueNames bool
}

// NameConflictError reports a candidate name already present in the scope
// while auto-unique naming is disabled.
type NameConflictError struct {
	Name string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("NameConflictError: %q is already in use", e.Name)
}

// Resolve returns the final name for candidate given the names already in
// use. With conflict checking off the candidate passes through untouched.
// On conflict with auto-unique on, the result is candidate + "_<n>" for the
// smallest n >= 1 not in existing; the probe is deterministic, so equal
// inputs always resolve to the same name.
func Resolve(candidate string, existing map[string]struct{}, settings Settings) (string, error) {
	if !settings.CheckConflicts {
		return candidate, nil
	}
	if _, taken := existing[candidate]; !taken {
		return candidate, nil
	}
	if !settings.AutoUniqueNames {
		return "", &NameConflictError{Name: candidate}
	}
	for n := 1; ; n++ {
		probe := candidate + "_" + strconv.Itoa(n)
		if _, taken := existing[probe]; !taken {
			return probe, nil
		}
	}
}
