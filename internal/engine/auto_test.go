package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgpipe/bakenamer/internal/alternator"
)

func TestAutoRenameAlternates(t *testing.T) {
	eng, graph := newTestEngine(t, "Body")

	res := eng.AutoRename()
	require.True(t, res.OK, res.Message)
	assert.Equal(t, []string{"Body_low"}, graph.Names())
	assert.Equal(t, alternator.PhaseHigh, eng.Phase())

	// Same selection again: the second pass lands as high. This is the
	// intended non-idempotence of auto mode.
	res = eng.AutoRename()
	require.True(t, res.OK, res.Message)
	assert.Equal(t, []string{"Body_high"}, graph.Names())
	assert.Equal(t, alternator.PhaseLow, eng.Phase())
}

func TestAutoRenameEmptySelectionKeepsPhase(t *testing.T) {
	eng, graph := newTestEngine(t, "Body")
	graph.ClearSelection()

	res := eng.AutoRename()

	require.True(t, res.OK)
	assert.Equal(t, 0, res.AffectedCount)
	assert.Equal(t, alternator.PhaseLow, eng.Phase())
}

func TestAutoRenameFailureKeepsPhase(t *testing.T) {
	eng, graph := newTestEngine(t, "Body")
	require.NoError(t, graph.Lock("Body"))

	res := eng.AutoRename()

	require.False(t, res.OK)
	assert.Equal(t, alternator.PhaseLow, eng.Phase())
}

func TestAutoRenameMessageAnnouncesNextPhase(t *testing.T) {
	eng, _ := newTestEngine(t, "Body")

	res := eng.AutoRename()

	require.True(t, res.OK)
	assert.True(t, strings.Contains(res.Message, "_high"), "message %q should announce the next phase", res.Message)
}

func TestResetAuto(t *testing.T) {
	eng, _ := newTestEngine(t, "Body")
	require.True(t, eng.AutoRename().OK)
	require.Equal(t, alternator.PhaseHigh, eng.Phase())

	res := eng.ResetAuto()

	require.True(t, res.OK)
	assert.Equal(t, alternator.PhaseLow, eng.Phase())
}
