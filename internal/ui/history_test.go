package ui

import (
	"testing"

	"github.com/yeutterg/compound-miter-calculator/internal/model"
)

func specWithSides(n int) model.VesselSpec {
	s := model.DefaultVesselSpec()
	s.Sides = n
	return s
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()

	if h.CanUndo() || h.CanRedo() {
		t.Fatal("fresh history should have nothing to undo or redo")
	}

	h.Push(MakeSnapshot(specWithSides(4), "Change Sides"))
	h.Push(MakeSnapshot(specWithSides(5), "Change Sides"))
	current := MakeSnapshot(specWithSides(6), "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("expected an undo snapshot")
	}
	if restored.Spec.Sides != 5 {
		t.Errorf("undo restored sides=%d, want 5", restored.Spec.Sides)
	}
	if !h.CanRedo() {
		t.Error("redo should be available after undo")
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("expected a redo snapshot")
	}
	if redone.Spec.Sides != 6 {
		t.Errorf("redo restored sides=%d, want 6", redone.Spec.Sides)
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(specWithSides(4), "a"))
	if _, ok := h.Undo(MakeSnapshot(specWithSides(5), "b")); !ok {
		t.Fatal("undo failed")
	}
	h.Push(MakeSnapshot(specWithSides(8), "c"))
	if h.CanRedo() {
		t.Error("a new push should clear the redo stack")
	}
}

func TestHistoryMaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(specWithSides(3+i%50), "bulk"))
	}
	if got := len(h.undoStack); got != defaultMaxDepth {
		t.Errorf("undo stack depth = %d, want %d", got, defaultMaxDepth)
	}
}

func TestHistoryUndoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(MakeSnapshot(specWithSides(4), "x")); ok {
		t.Error("undo on empty history should report false")
	}
	if _, ok := h.Redo(MakeSnapshot(specWithSides(4), "x")); ok {
		t.Error("redo on empty history should report false")
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(specWithSides(4), "a"))
	h.Undo(MakeSnapshot(specWithSides(5), "b"))
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}
