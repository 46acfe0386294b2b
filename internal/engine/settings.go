package engine

import "github.com/cgpipe/bakenamer/internal/conflict"

// Settings are the tool toggles read at call time by rename operations.
// They are session state: mutated by explicit user toggles, never persisted.
type Settings struct {
	// CheckConflicts enables conflict detection against sibling names.
	CheckConflicts bool `json:"check_conflicts"`

	// AutoUniqueNames derives a counter-suffixed name on conflict instead
	// of failing the node.
	AutoUniqueNames bool `json:"auto_unique_names"`

	// ShowMessages enables human-readable status messages on successful
	// results. Failures always carry a message.
	ShowMessages bool `json:"show_messages"`
}

// DefaultSettings returns the tool defaults: everything on.
func DefaultSettings() Settings {
	return Settings{
		CheckConflicts:  true,
		AutoUniqueNames: true,
		ShowMessages:    true,
	}
}

func (s Settings) conflict() conflict.Settings {
	return conflict.Settings{
		CheckConflicts:  s.CheckConflicts,
		AutoUniqueNames: s.AutoUniqueNames,
	}
}
