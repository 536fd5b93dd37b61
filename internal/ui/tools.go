package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"

	"stampboard/internal/engine"
)

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.RGBA
	OnTapped func(color.RGBA)
}

func newColorSwatch(c color.RGBA, tapped func(color.RGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func toRGB(c color.RGBA) engine.RGB {
	return engine.RGB{R: c.R, G: c.G, B: c.B}
}

// NewToolbar builds the tool strip: mode actions, undo/redo/clear, the
// color palette, and the radius slider. onChange fires after any setting
// or history action so the host can refresh the board and save prefs.
func NewToolbar(eng *engine.Engine, onChange func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.RadioButtonCheckedIcon(), func() {
			eng.SetMode(engine.ModeStamp)
			onChange()
		}), // Stamp: click places a disc at the configured radius
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), func() {
			eng.SetMode(engine.ModeDrag)
			onChange()
		}), // Drag: press sets the center, drag distance sets the radius
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			eng.Undo()
			onChange()
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			eng.Redo()
			onChange()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			eng.Clear()
			onChange()
		}),
	)

	// --- Color palette ---
	onColorTapped := func(c color.RGBA) {
		eng.ApplyConfig(eng.Config().Radius, toRGB(c))
		onChange()
	}
	colorBox := container.NewHBox(
		newColorSwatch(colornames.Black, onColorTapped),
		newColorSwatch(colornames.Red, onColorTapped),
		newColorSwatch(colornames.Green, onColorTapped),
		newColorSwatch(colornames.Blue, onColorTapped),
		newColorSwatch(colornames.Gold, onColorTapped),
		newColorSwatch(colornames.White, onColorTapped), // eraser of sorts
	)

	// --- Radius slider (stamp mode only; drag mode sizes by distance) ---
	radiusSlider := widget.NewSlider(1, 100)
	radiusSlider.SetValue(eng.Config().Radius)
	radiusSlider.OnChanged = func(val float64) {
		eng.ApplyConfig(val, eng.Config().Color)
		onChange()
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), radiusSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Radius:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
