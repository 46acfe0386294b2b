// Package suffix implements the naming policy for baking suffixes.
//
// The policy is pure string manipulation: appending a suffix, normalizing
// user-supplied suffixes, and stripping the recognized baking suffixes off a
// name. Conflict handling and scene access live elsewhere.
package suffix

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical baking suffixes.
const (
	Low  = "_low"
	High = "_high"
)

// defaultRecognized is the built-in set of suffixes StripKnown removes.
var defaultRecognized = []string{"_low", "_high", "_cage", "_bake", "_LP", "_HP"}

// Policy knows which trailing tokens count as baking suffixes and how to
// attach new ones. The zero value is not usable; construct with NewPolicy.
type Policy struct {
	// recognized is kept sorted longest-first so StripKnown removes the
	// longest matching suffix and never a partial overlap.
	recognized []string

	// validName reports whether a full node name is legal in the host's
	// naming grammar. Supplied by the scene collaborator.
	validName func(string) bool
}

// NewPolicy creates a Policy with the built-in recognized suffixes plus any
// extras, validating composed names with validName.
func NewPolicy(validName func(string) bool, extras ...string) *Policy {
	recognized := make([]string, 0, len(defaultRecognized)+len(extras))
	recognized = append(recognized, defaultRecognized...)
	for _, extra := range extras {
		extra = Normalize(extra)
		if extra == "" || extra == "_" || containsFold(recognized, extra) {
			continue
		}
		recognized = append(recognized, extra)
	}
	sort.Slice(recognized, func(i, j int) bool {
		if len(recognized[i]) != len(recognized[j]) {
			return len(recognized[i]) > len(recognized[j])
		}
		return recognized[i] < recognized[j]
	})
	return &Policy{recognized: recognized, validName: validName}
}

// Recognized returns the suffixes StripKnown removes, longest first.
func (p *Policy) Recognized() []string {
	out := make([]string, len(p.recognized))
	copy(out, p.recognized)
	return out
}

// StripKnown removes the longest recognized suffix from the end of name.
// At most one suffix is stripped; a name without a recognized suffix is
// returned unchanged. Idempotent over already-stripped names.
func (p *Policy) StripKnown(name string) string {
	for _, s := range p.recognized {
		if strings.HasSuffix(name, s) && len(name) > len(s) {
			return name[:len(name)-len(s)]
		}
	}
	return name
}

// WithSuffix appends suffix to base without stripping anything; callers
// strip first when they want replacement semantics. The suffix must be
// non-empty and the composed name must pass the host naming grammar.
func (p *Policy) WithSuffix(base, suffix string) (string, error) {
	if suffix == "" || suffix == "_" {
		return "", &InvalidSuffixError{Suffix: suffix, Reason: "suffix is empty"}
	}
	name := base + suffix
	if p.validName != nil && !p.validName(name) {
		return "", &InvalidSuffixError{Suffix: suffix, Reason: fmt.Sprintf("%q is not a legal node name", name)}
	}
	return name, nil
}

// Normalize ensures a user-supplied suffix starts with an underscore.
func Normalize(suffix string) string {
	if suffix == "" || strings.HasPrefix(suffix, "_") {
		return suffix
	}
	return "_" + suffix
}

// InvalidSuffixError reports a suffix that cannot be applied.
type InvalidSuffixError struct {
	Suffix string
	Reason string
}

func (e *InvalidSuffixError) Error() string {
	return fmt.Sprintf("InvalidSuffixError: %s", e.Reason)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
