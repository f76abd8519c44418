package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
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

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// NewToolbar builds the pen controls for board: clear, colour palette, width
// and opacity.
func NewToolbar(board *SketchWidget) fyne.CanvasObject {
	style := board.Surface().Style()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentClearIcon(), board.Clear),
	)

	swatches := make([]fyne.CanvasObject, 0, len(palette))
	for _, c := range palette {
		swatches = append(swatches, newColorSwatch(c, board.SetColor))
	}
	colorBox := container.NewHBox(swatches...)

	// --- Stroke Width Slider ---
	widthSlider := widget.NewSlider(1.0, 50.0)
	widthSlider.SetValue(style.Width)
	widthSlider.OnChanged = board.SetStrokeWidth

	alphaSlider := widget.NewSlider(0.1, 1.0)
	alphaSlider.Step = 0.05
	alphaSlider.SetValue(style.Alpha)
	alphaSlider.OnChanged = board.SetAlpha

	// --- Assemble everything ---
	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sized(widthSlider),
		widget.NewLabel("Opacity:"),
		sized(alphaSlider),
		layout.NewSpacer(),
	)
}

func sized(o fyne.CanvasObject) fyne.CanvasObject {
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), o)
}
