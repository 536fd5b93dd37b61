package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stampboard/internal/engine"
)

// RunApp opens the main window and blocks until it closes. onChange is
// invoked after every toolbar action so the caller can persist settings.
func RunApp(eng *engine.Engine, onChange func()) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Stamp Board")

	board := NewBoardWidget(eng)
	status := widget.NewLabel("Ready")

	// Every history-changing operation lands here, on the event goroutine.
	eng.OnCommit = func(desc string) {
		status.SetText(desc)
		board.Refresh()
	}

	toolbar := NewToolbar(eng, func() {
		board.Refresh()
		if onChange != nil {
			onChange()
		}
	})

	content := container.NewBorder(toolbar, status, nil, nil, board)
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(
		float32(eng.Canvas().Width())+40,
		float32(eng.Canvas().Height())+120,
	))
	myWindow.ShowAndRun()
}
