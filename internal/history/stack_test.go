package history

import (
	"testing"
	"time"

	"github.com/cgpipe/bakenamer/internal/scene"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPushPop(t *testing.T) {
	s := NewStack()
	s.Push(scene.NodeRef("a"), "Body", "Body_low", t0)
	s.Push(scene.NodeRef("b"), "Head", "Head_low", t0.Add(time.Second))

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	action, ok := s.Pop()
	if !ok {
		t.Fatal("Pop ok = false, want true")
	}
	if action.OldName != "Head" || action.NewName != "Head_low" {
		t.Errorf("popped %q -> %q, want Head -> Head_low", action.OldName, action.NewName)
	}
	if s.Len() != 1 {
		t.Errorf("Len after pop = %d, want 1", s.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	s := NewStack()
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack ok = true, want false")
	}
}

func TestSeqIsMonotonic(t *testing.T) {
	s := NewStack()
	a := s.Push(scene.NodeRef("a"), "A", "A_low", t0)
	b := s.Push(scene.NodeRef("b"), "B", "B_low", t0)
	if a.Seq != 1 || b.Seq != 2 {
		t.Errorf("Seq = %d, %d, want 1, 2", a.Seq, b.Seq)
	}

	s.Clear()
	c := s.Push(scene.NodeRef("c"), "C", "C_low", t0)
	if c.Seq != 3 {
		t.Errorf("Seq after Clear = %d, want 3", c.Seq)
	}
}

func TestClear(t *testing.T) {
	s := NewStack()
	s.Push(scene.NodeRef("a"), "A", "A_low", t0)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
}

func TestRecent(t *testing.T) {
	s := NewStack()
	s.Push(scene.NodeRef("a"), "A", "A_low", t0)
	s.Push(scene.NodeRef("b"), "B", "B_low", t0)
	s.Push(scene.NodeRef("c"), "C", "C_low", t0)

	recent := s.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("len(Recent(2)) = %d, want 2", len(recent))
	}
	if recent[0].OldName != "C" || recent[1].OldName != "B" {
		t.Errorf("Recent order = %s, %s; want C, B", recent[0].OldName, recent[1].OldName)
	}

	if got := len(s.Recent(0)); got != 3 {
		t.Errorf("len(Recent(0)) = %d, want 3", got)
	}
	if got := len(s.Recent(10)); got != 3 {
		t.Errorf("len(Recent(10)) = %d, want 3", got)
	}
}
