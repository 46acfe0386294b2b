package engine

import "fmt"

// AutoRename applies the alternating low/high mode to the current
// selection: the first group gets the low suffix, the next gets high, and
// so on. The phase advances only when at least one node was renamed, so a
// failed or empty call can be retried without skewing the alternation.
//
// Two consecutive calls on the same selection are intentionally not
// idempotent: the second call lands the same objects as the opposite tag.
func (e *Engine) AutoRename() *Result {
	phase := e.alternator.Phase()
	res := e.renameSelection(phase.Suffix())
	if !res.OK || res.AffectedCount == 0 {
		return res
	}

	e.alternator.Advance()
	if e.settings.ShowMessages {
		res.Message = fmt.Sprintf("tagged %d objects with %s; next group gets %s",
			res.AffectedCount, phase.Suffix(), e.alternator.Phase().Suffix())
	}
	return res
}

// ResetAuto returns the automatic mode to the low phase without renaming
// anything.
func (e *Engine) ResetAuto() *Result {
	e.alternator.Reset()
	return e.success(fmt.Sprintf("auto-rename mode reset; next group gets %s", e.alternator.Phase().Suffix()), nil)
}
