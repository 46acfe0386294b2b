package integration

import (
	"reflect"
	"testing"

	"github.com/cgpipe/bakenamer/internal/engine"
	"github.com/cgpipe/bakenamer/internal/scene"
)

func TestRenameRoundTripThroughSceneFile(t *testing.T) {
	path := writeScene(t, `nodes:
  - name: Character_Body
  - name: Character_Head
selection: [Character_Body, Character_Head]
`)
	eng, graph, fs := openEngine(t, path, engine.DefaultSettings())

	res := requireOK(t, eng.RenameToLow())
	if res.AffectedCount != 2 {
		t.Fatalf("AffectedCount = %d, want 2", res.AffectedCount)
	}
	if err := scene.SaveFile(fs, path, graph); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	// A fresh session sees the renamed scene.
	_, reloaded, _ := openEngine(t, path, engine.DefaultSettings())
	want := []string{"Character_Body_low", "Character_Head_low"}
	if got := reloaded.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded names = %v, want %v", got, want)
	}
	if got := reloaded.SelectionNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded selection = %v, want %v", got, want)
	}
}

func TestConflictScenario(t *testing.T) {
	// The canonical scenario: the target name is already taken by a
	// sibling, so the rename lands on the first free counter.
	path := writeScene(t, `nodes:
  - name: Character_Body
  - name: Character_Body_low
selection: [Character_Body]
`)
	eng, graph, _ := openEngine(t, path, engine.DefaultSettings())

	requireOK(t, eng.RenameToLow())

	want := []string{"Character_Body_low_1", "Character_Body_low"}
	if got := graph.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestLowHighPairWorkflow(t *testing.T) {
	// The workflow the tool exists for: tag a low group, then a high
	// group, via the alternating mode.
	path := writeScene(t, `nodes:
  - name: Crate
  - name: Crate_sculpt
`)
	eng, graph, _ := openEngine(t, path, engine.DefaultSettings())

	if err := graph.Select("Crate"); err != nil {
		t.Fatal(err)
	}
	requireOK(t, eng.AutoRename())

	if err := graph.Select("Crate_sculpt"); err != nil {
		t.Fatal(err)
	}
	requireOK(t, eng.AutoRename())

	want := []string{"Crate_low", "Crate_sculpt_high"}
	if got := graph.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestUndoAcrossOperations(t *testing.T) {
	path := writeScene(t, `nodes:
  - name: Body
  - name: Head
selection: [Body, Head]
`)
	eng, graph, _ := openEngine(t, path, engine.DefaultSettings())

	requireOK(t, eng.RenameToLow())
	requireOK(t, eng.RenameToHigh())
	if eng.HistoryLen() != 4 {
		t.Fatalf("HistoryLen = %d, want 4", eng.HistoryLen())
	}

	// Unwind everything, most recent first.
	for i := 0; i < 4; i++ {
		requireOK(t, eng.UndoLastRename())
	}
	want := []string{"Body", "Head"}
	if got := graph.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names after full unwind = %v, want %v", got, want)
	}

	res := eng.UndoLastRename()
	if res.OK || res.Message != "EmptyHistoryError" {
		t.Errorf("undo past empty = %+v, want OK:false EmptyHistoryError", res)
	}
}

func TestConfiguredExtraSuffixes(t *testing.T) {
	path := writeScene(t, `nodes:
  - name: Rock_proxy
selection: [Rock_proxy]
`)
	eng, graph, _ := openEngine(t, path, engine.DefaultSettings(), "_proxy")

	requireOK(t, eng.RenameToLow())

	if got := graph.Names()[0]; got != "Rock_low" {
		t.Errorf("name = %q, want Rock_low (extra suffix stripped)", got)
	}
}

func TestLockedNodeStopsBatchMidScene(t *testing.T) {
	path := writeScene(t, `nodes:
  - name: Body
  - name: Head
    locked: true
  - name: Arm
`)
	eng, graph, _ := openEngine(t, path, engine.DefaultSettings())

	res := eng.BatchRename("low")
	if res.OK {
		t.Fatal("batch over a locked node succeeded, want failure")
	}
	if res.AffectedCount != 1 {
		t.Errorf("AffectedCount = %d, want 1", res.AffectedCount)
	}

	want := []string{"Body_low", "Head", "Arm"}
	if got := graph.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v (prefix kept)", got, want)
	}
}
