package engine

// Result is the status value every engine operation returns. Errors never
// escape the engine; they surface here as OK:false with a message.
type Result struct {
	// OK reports whether the operation completed without error.
	OK bool `json:"ok"`

	// Message is the status text for the user. Empty on success when
	// ShowMessages is off; always set on failure.
	Message string `json:"message"`

	// AffectedCount is the number of nodes actually renamed. A failed
	// batch reports the applied prefix, which stays renamed and undoable.
	AffectedCount int `json:"affected_count"`

	// Renames lists the applied renames in order, for display.
	Renames []Rename `json:"renames,omitempty"`
}

// Rename is one applied old-name/new-name pair.
type Rename struct {
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// success builds an OK result, honoring the ShowMessages setting.
func (e *Engine) success(msg string, renames []Rename) *Result {
	res := &Result{OK: true, AffectedCount: len(renames), Renames: renames}
	if e.settings.ShowMessages {
		res.Message = msg
	}
	return res
}

// failure builds a failed result carrying whatever prefix was applied
// before the error.
func (e *Engine) failure(err error, renames []Rename) *Result {
	return &Result{
		OK:            false,
		Message:       err.Error(),
		AffectedCount: len(renames),
		Renames:       renames,
	}
}
