package ui

import (
	"fmt"

	"SketchPad/internal/config"
	"SketchPad/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewBoard assembles the toolbar, sketch surface and status line.
func NewBoard(conf config.Config) (fyne.CanvasObject, *SketchWidget) {
	board := NewSketchWidget(conf)
	status := widget.NewLabel("Waiting for canvas")

	board.OnReady = func(r *render.Renderer) {
		w, h := r.Size()
		status.SetText(fmt.Sprintf("Canvas %dx%d px", w, h))
	}
	board.OnChange = func(*render.Renderer) {
		s := board.Surface()
		n := len(s.Strokes())
		if n == 0 {
			status.SetText("Canvas cleared")
			return
		}
		b := s.Bounds()
		status.SetText(fmt.Sprintf("%d strokes, inked area %.0fx%.0f px", n, b.Width, b.Height))
	}

	toolbar := NewToolbar(board)
	content := container.NewBorder(toolbar, status, nil, nil, board)
	return content, board
}

func RunApp(conf config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sketch Pad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	content, _ := NewBoard(conf)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
