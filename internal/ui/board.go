package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"stampboard/internal/engine"
)

// BoardWidget paints the engine's canvas and feeds pointer gestures into
// it. It holds no drawing state of its own; every event is a thin call
// into the engine.
type BoardWidget struct {
	widget.BaseWidget
	engine *engine.Engine
	raster *canvas.Raster
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(eng *engine.Engine) *BoardWidget {
	b := &BoardWidget{engine: eng}
	b.raster = canvas.NewRaster(b.draw)
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) draw(w, h int) image.Image {
	return b.engine.Display().RGBA()
}

// MouseDown starts a gesture. Widget coordinates map 1:1 onto canvas
// coordinates; anything outside the raster is handled by clipping in the
// engine, not here.
func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.engine.BeginStroke(int(e.Position.X), int(e.Position.Y))
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.engine.EndStroke(int(e.Position.X), int(e.Position.Y))
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.engine.UpdateStroke(int(e.Position.X), int(e.Position.Y)) != nil {
		b.Refresh()
	}
}

func (b *BoardWidget) DragEnd()                       {}
func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardRenderer{board: b}
}

type boardRenderer struct {
	board *BoardWidget
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.raster.Resize(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	c := r.board.engine.Canvas()
	return fyne.NewSize(float32(c.Width()), float32(c.Height()))
}

func (r *boardRenderer) Refresh() {
	r.board.raster.Refresh()
}

func (r *boardRenderer) Destroy() {}
