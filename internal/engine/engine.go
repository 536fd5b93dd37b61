package engine

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/google/uuid"
)

// Mode selects how a pointer gesture turns into a stamp.
type Mode int

const (
	// ModeStamp stamps a disc of the configured radius where the pointer
	// goes down; the gesture is complete at that moment.
	ModeStamp Mode = iota
	// ModeDrag anchors the disc at the press point and sizes it by how
	// far the pointer is dragged; a preview is shown until release
	// commits the disc.
	ModeDrag
)

func (m Mode) String() string {
	if m == ModeDrag {
		return "drag"
	}
	return "stamp"
}

// ParseMode maps a stored mode name back to a Mode. Unknown names fall
// back to ModeStamp.
func ParseMode(name string) Mode {
	if name == "drag" {
		return ModeDrag
	}
	return ModeStamp
}

// Engine is the single owner of all drawing state: the committed canvas,
// the history, the tool configuration, and the in-progress gesture. UI
// callbacks are thin calls into it and hold no drawing state themselves.
//
// All operations are synchronous. The mutex keeps the state consistent
// if the host ever delivers events or repaints from more than one
// goroutine; the preview handed to the display is always a snapshot,
// never a live alias of a canvas still being mutated.
type Engine struct {
	mu         sync.Mutex
	committed  *Canvas
	history    *History
	background RGB
	cfg        Config
	mode       Mode

	// Gesture state. Only drag gestures stay active between events;
	// stamp gestures commit inside BeginStroke.
	active  bool
	anchorX int
	anchorY int
	preview *Canvas

	// OnCommit, when set, is called after every operation that changed
	// the committed canvas or the history, with a short description for
	// the status line. Called without the engine lock held.
	OnCommit func(desc string)
}

// New creates an engine with a freshly filled canvas, empty history, and
// default tool settings.
func New(width, height int, background RGB) *Engine {
	return &Engine{
		committed:  NewCanvas(width, height, background),
		history:    NewHistory(),
		background: background,
		cfg:        Config{Radius: DefaultRadius},
	}
}

// BeginStroke starts a gesture at the pointer-down position. In stamp
// mode the disc is committed immediately at the configured radius; in
// drag mode the position becomes the anchor of the gesture. A begin while
// another gesture is active is a caller-protocol violation and is logged
// and ignored.
func (e *Engine) BeginStroke(x, y int) {
	e.mu.Lock()
	if e.active {
		log.Printf("[ENGINE] begin at (%d,%d) ignored: gesture already active (anchor %d,%d)", x, y, e.anchorX, e.anchorY)
		e.mu.Unlock()
		return
	}
	var desc string
	switch e.mode {
	case ModeStamp:
		desc = e.commitLocked(x, y, int(e.cfg.Radius))
	case ModeDrag:
		e.active = true
		e.anchorX, e.anchorY = x, y
	}
	e.mu.Unlock()
	e.notify(desc)
}

// UpdateStroke recomputes the drag preview for the current pointer
// position: a snapshot of the committed canvas with the disc rasterized
// on top, the committed canvas itself untouched. Returns nil when no
// drag gesture is active (stamp mode has no intermediate preview).
func (e *Engine) UpdateStroke(x, y int) *Canvas {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.active {
		return nil
	}
	r := dragRadius(e.anchorX, e.anchorY, x, y)
	p := e.committed.Snapshot()
	p.StampCircle(e.anchorX, e.anchorY, r, e.cfg.Color)
	e.preview = p
	return p
}

// EndStroke finishes a drag gesture: the final radius is computed from
// the release position exactly as in UpdateStroke and the disc is
// committed against the committed canvas. Ignored when no gesture is
// active, which is also what absorbs the pointer-up of a stamp-mode
// click.
func (e *Engine) EndStroke(x, y int) {
	e.mu.Lock()
	if !e.active {
		e.mu.Unlock()
		return
	}
	r := dragRadius(e.anchorX, e.anchorY, x, y)
	desc := e.commitLocked(e.anchorX, e.anchorY, r)
	e.active = false
	e.preview = nil
	e.mu.Unlock()
	e.notify(desc)
}

// commitLocked runs the commit protocol: record the pre-stamp canvas
// (which drops any redo states), then stamp. By the time the lock is
// released the display can only observe the new canvas together with a
// consistent history.
func (e *Engine) commitLocked(cx, cy, r int) string {
	id := uuid.NewString()
	e.history.Record(e.committed)
	e.committed.StampCircle(cx, cy, r, e.cfg.Color)
	log.Printf("[ENGINE] commit %s: disc r=%d at (%d,%d)", id, r, cx, cy)
	return fmt.Sprintf("Stamped r=%d at (%d,%d) [%s]", r, cx, cy, id[:8])
}

// Undo restores the canvas to its state before the most recent commit.
// Returns false when the history is empty; nothing changes in that case.
func (e *Engine) Undo() bool {
	e.mu.Lock()
	snap, ok := e.history.Undo(e.committed)
	if ok {
		e.committed.Restore(snap)
	}
	e.mu.Unlock()
	if ok {
		e.notify("Undo")
	}
	return ok
}

// Redo re-applies the most recently undone commit. Returns false when
// there is nothing to redo.
func (e *Engine) Redo() bool {
	e.mu.Lock()
	snap, ok := e.history.Redo(e.committed)
	if ok {
		e.committed.Restore(snap)
	}
	e.mu.Unlock()
	if ok {
		e.notify("Redo")
	}
	return ok
}

// CanUndo reports whether Undo would do anything.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanRedo()
}

// Clear resets the canvas to the background fill through the same
// record-then-mutate protocol as a stamp, so clearing is undoable.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.history.Record(e.committed)
	e.committed.Fill(e.background)
	e.mu.Unlock()
	log.Printf("[ENGINE] canvas cleared")
	e.notify("Cleared")
}

// ApplyConfig replaces the tool settings. A negative radius is malformed
// input from the boundary and is clamped to zero. Takes effect for
// whatever is rasterized next; in-progress gestures that already fixed a
// dimension (a stamp-mode radius) are unaffected.
func (e *Engine) ApplyConfig(radius float64, col RGB) {
	if radius < 0 {
		log.Printf("[ENGINE] negative radius %.1f clamped to 0", radius)
		radius = 0
	}
	e.mu.Lock()
	e.cfg = Config{Radius: radius, Color: col}
	e.mu.Unlock()
}

// Config returns the current tool settings.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// SetMode selects the drawing mode captured by the next BeginStroke.
func (e *Engine) SetMode(m Mode) {
	e.mu.Lock()
	e.mode = m
	e.mu.Unlock()
}

// Mode returns the current drawing mode.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Canvas returns the committed canvas.
func (e *Engine) Canvas() *Canvas {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.committed
}

// Display returns what the host should paint right now: the preview
// while a drag gesture is active, the committed canvas otherwise. The
// preview is a snapshot and is never mutated after being returned.
func (e *Engine) Display() *Canvas {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active && e.preview != nil {
		return e.preview
	}
	return e.committed
}

func (e *Engine) notify(desc string) {
	if desc != "" && e.OnCommit != nil {
		e.OnCommit(desc)
	}
}

// dragRadius is the stamp radius of a drag gesture: the Euclidean
// distance from the anchor to the pointer, truncated to an integer.
// Non-negative by construction.
func dragRadius(ax, ay, x, y int) int {
	dx := float64(x - ax)
	dy := float64(y - ay)
	return int(math.Sqrt(dx*dx + dy*dy))
}
