package engine

import (
	"bytes"
	"testing"
)

const (
	testW = 800
	testH = 600
)

func newTestEngine(mode Mode) *Engine {
	e := New(testW, testH, testBG)
	e.SetMode(mode)
	e.ApplyConfig(15, testInk)
	return e
}

func assertCanvasEqual(t *testing.T, got, want *Canvas, msg string) {
	t.Helper()
	if !bytes.Equal(got.Pix(), want.Pix()) {
		t.Fatal(msg)
	}
}

// TestDragGesture walks the full drag scenario: preview while dragging,
// committed canvas untouched until release, then undo back to white and
// redo to an identical disc.
func TestDragGesture(t *testing.T) {
	e := newTestEngine(ModeDrag)
	white := e.Canvas().Snapshot()

	e.BeginStroke(100, 100)
	preview := e.UpdateStroke(130, 100)
	if preview == nil {
		t.Fatal("no preview during drag")
	}

	// distance 30, inclusive edge
	if got := preview.At(100, 100); got != testInk {
		t.Fatalf("preview center = %v, want ink", got)
	}
	if got := preview.At(130, 100); got != testInk {
		t.Fatalf("preview edge pixel (130,100) = %v, want ink", got)
	}
	if got := preview.At(100, 70); got != testInk {
		t.Fatalf("preview edge pixel (100,70) = %v, want ink", got)
	}
	if got := preview.At(131, 100); got != testBG {
		t.Fatalf("preview pixel just outside the disc = %v, want background", got)
	}
	assertCanvasEqual(t, e.Canvas(), white, "committed canvas mutated during drag")

	e.EndStroke(130, 100)
	committed := e.Canvas().Snapshot()
	assertCanvasEqual(t, committed, preview, "commit differs from the last preview")

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	assertCanvasEqual(t, e.Canvas(), white, "undo did not restore the blank canvas")

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	assertCanvasEqual(t, e.Canvas(), committed, "redo did not reproduce the disc byte for byte")
}

// TestStampGesture covers the fixed-radius mode: two clicks, one undo
// showing only the first stamp, one redo showing both again.
func TestStampGesture(t *testing.T) {
	e := newTestEngine(ModeStamp)

	e.BeginStroke(50, 50)
	e.EndStroke(50, 50) // pointer-up of a click; no gesture is active
	one := e.Canvas().Snapshot()
	if got := e.Canvas().At(50, 50); got != testInk {
		t.Fatalf("first stamp missing: %v", got)
	}

	e.BeginStroke(200, 120)
	e.EndStroke(200, 120)
	both := e.Canvas().Snapshot()
	if got := e.Canvas().At(200, 120); got != testInk {
		t.Fatalf("second stamp missing: %v", got)
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	assertCanvasEqual(t, e.Canvas(), one, "undo should leave exactly the first stamp")

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	assertCanvasEqual(t, e.Canvas(), both, "redo should restore both stamps pixel-identically")
}

func TestCommitAfterUndoDiscardsRedo(t *testing.T) {
	e := newTestEngine(ModeStamp)
	e.BeginStroke(50, 50)
	e.BeginStroke(100, 100)
	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if !e.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	e.BeginStroke(300, 300)
	if e.CanRedo() {
		t.Fatal("new commit must discard the redo branch")
	}
	if e.Redo() {
		t.Fatal("redo succeeded after the branch was discarded")
	}
}

func TestReentrantBeginIgnored(t *testing.T) {
	e := newTestEngine(ModeDrag)
	e.BeginStroke(10, 10)
	e.BeginStroke(400, 400) // protocol violation, must not move the anchor

	e.EndStroke(13, 14) // distance 5 from the original anchor
	if got := e.Canvas().At(10, 10); got != testInk {
		t.Fatalf("disc not anchored at the first begin: %v", got)
	}
	if got := e.Canvas().At(400, 400); got != testBG {
		t.Fatalf("second begin produced a stamp: %v", got)
	}
	if got := e.Canvas().At(10, 16); got != testBG {
		t.Fatalf("radius exceeded the drag distance: %v", got)
	}
}

func TestUpdateAndEndWhileIdle(t *testing.T) {
	e := newTestEngine(ModeDrag)
	white := e.Canvas().Snapshot()

	if p := e.UpdateStroke(40, 40); p != nil {
		t.Fatal("update without a gesture returned a preview")
	}
	e.EndStroke(40, 40)
	assertCanvasEqual(t, e.Canvas(), white, "idle end mutated the canvas")
	if e.CanUndo() {
		t.Fatal("idle end recorded history")
	}
}

// TestMidDragConfigChange: the config is read each time a disc is
// rasterized, so a color change mid-drag shows up in the next preview
// and in the commit, while the anchor stays fixed.
func TestMidDragConfigChange(t *testing.T) {
	green := RGB{G: 180}
	e := newTestEngine(ModeDrag)

	e.BeginStroke(60, 60)
	p1 := e.UpdateStroke(70, 60)
	if got := p1.At(60, 60); got != testInk {
		t.Fatalf("first preview color = %v, want %v", got, testInk)
	}

	e.ApplyConfig(15, green)
	p2 := e.UpdateStroke(70, 60)
	if got := p2.At(60, 60); got != green {
		t.Fatalf("preview after config change = %v, want %v", got, green)
	}

	e.EndStroke(70, 60)
	if got := e.Canvas().At(60, 60); got != green {
		t.Fatalf("committed color = %v, want %v", got, green)
	}
}

func TestApplyConfigClampsNegativeRadius(t *testing.T) {
	e := newTestEngine(ModeStamp)
	white := e.Canvas().Snapshot()

	e.ApplyConfig(-5, testInk)
	if got := e.Config().Radius; got != 0 {
		t.Fatalf("radius = %v, want 0", got)
	}

	e.BeginStroke(50, 50)
	assertCanvasEqual(t, e.Canvas(), white, "zero-radius stamp touched pixels")
	if !e.CanUndo() {
		t.Fatal("commit protocol skipped for a zero-radius stamp")
	}
}

func TestZeroDistanceDragCommits(t *testing.T) {
	e := newTestEngine(ModeDrag)
	white := e.Canvas().Snapshot()
	e.BeginStroke(20, 20)
	e.EndStroke(20, 20)
	assertCanvasEqual(t, e.Canvas(), white, "zero-distance drag touched pixels")
	if !e.CanUndo() {
		t.Fatal("zero-distance drag did not record history")
	}
}

func TestClearIsUndoable(t *testing.T) {
	e := newTestEngine(ModeStamp)
	e.BeginStroke(50, 50)
	stamped := e.Canvas().Snapshot()
	white := NewCanvas(testW, testH, testBG)

	e.Clear()
	assertCanvasEqual(t, e.Canvas(), white, "clear did not reset to background")

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	assertCanvasEqual(t, e.Canvas(), stamped, "undoing clear did not restore the stamp")
}

func TestDisplaySwitchesBetweenPreviewAndCommitted(t *testing.T) {
	e := newTestEngine(ModeDrag)
	if e.Display() != e.Canvas() {
		t.Fatal("idle display is not the committed canvas")
	}

	e.BeginStroke(30, 30)
	p := e.UpdateStroke(45, 30)
	if e.Display() != p {
		t.Fatal("display during drag is not the preview")
	}

	e.EndStroke(45, 30)
	if e.Display() != e.Canvas() {
		t.Fatal("display after release is not the committed canvas")
	}
}

func TestOnCommitNotifications(t *testing.T) {
	e := newTestEngine(ModeStamp)
	var notes []string
	e.OnCommit = func(desc string) { notes = append(notes, desc) }

	e.BeginStroke(10, 10)
	e.Undo()
	e.Redo()
	e.Undo()
	e.Undo() // empty, no note
	if len(notes) != 4 {
		t.Fatalf("got %d notifications, want 4: %v", len(notes), notes)
	}
}
