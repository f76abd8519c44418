package ui

import (
	"image"
	"image/color"
	"time"

	"SketchPad/internal/config"
	"SketchPad/internal/render"
	"SketchPad/internal/sketch"
	"SketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// fyneScheduler waits a tick, then runs fn back on the Fyne UI goroutine.
var fyneScheduler = sketch.SchedulerFunc(func(fn func()) {
	time.AfterFunc(time.Millisecond, func() { fyne.Do(fn) })
})

// SketchWidget is a freehand ink surface. Mouse, drag and touch input become
// strokes; the frames are drawn by the sketch surface and shown as an image.
type SketchWidget struct {
	widget.BaseWidget
	OnReady  func(r *render.Renderer)
	OnChange func(r *render.Renderer)

	surface *sketch.Surface
	frame   *canvas.Image
	lastPos fyne.Position
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ mobile.Touchable = (*SketchWidget)(nil)

func NewSketchWidget(conf config.Config) *SketchWidget {
	w := &SketchWidget{}
	w.frame = &canvas.Image{FillMode: canvas.ImageFillStretch, ScaleMode: canvas.ImageScaleSmooth}
	w.surface = sketch.New(conf,
		sketch.WithScheduler(fyneScheduler),
		sketch.WithSink(w.showFrame),
	)
	w.surface.OnReady = func(r *render.Renderer) {
		if w.OnReady != nil {
			w.OnReady(r)
		}
	}
	w.surface.OnChange = func(r *render.Renderer) {
		if w.OnChange != nil {
			w.OnChange(r)
		}
	}
	w.ExtendBaseWidget(w)
	return w
}

// Surface gives access to the strokes and style.
func (w *SketchWidget) Surface() *sketch.Surface {
	return w.surface
}

func (w *SketchWidget) showFrame(img image.Image) {
	w.frame.Image = img
	w.frame.Refresh()
}

// pixelScale is the density of the canvas the widget is shown on; 1 until
// it is placed in a window.
func (w *SketchWidget) pixelScale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(w); c != nil {
		return c.Scale()
	}
	return 1
}

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: float64(pos.X), Y: float64(pos.Y)}
}

// SetColor changes the ink colour for new strokes.
func (w *SketchWidget) SetColor(c color.Color) {
	style := w.surface.Style()
	style.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	w.surface.SetStyle(style)
}

// SetStrokeWidth changes the width, in canvas pixels, of new strokes.
func (w *SketchWidget) SetStrokeWidth(width float64) {
	style := w.surface.Style()
	style.Width = width
	w.surface.SetStyle(style)
}

// SetAlpha changes the opacity of new strokes.
func (w *SketchWidget) SetAlpha(alpha float64) {
	style := w.surface.Style()
	style.Alpha = alpha
	w.surface.SetStyle(style)
}

// Clear wipes every stroke.
func (w *SketchWidget) Clear() {
	w.surface.Clear()
}

func (w *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.lastPos = e.Position
	w.surface.PointerDown(toPoint(e.Position))
}

func (w *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.surface.PointerUp(toPoint(e.Position))
}

func (w *SketchWidget) TouchDown(e *mobile.TouchEvent) {
	w.lastPos = e.Position
	w.surface.PointerDown(toPoint(e.Position))
}

func (w *SketchWidget) TouchUp(e *mobile.TouchEvent) {
	w.surface.PointerUp(toPoint(e.Position))
}

func (w *SketchWidget) TouchCancel(e *mobile.TouchEvent) {
	w.surface.PointerCancel(toPoint(e.Position))
}

func (w *SketchWidget) Dragged(e *fyne.DragEvent) {
	w.lastPos = e.Position
	w.surface.PointerMove(toPoint(e.Position))
}

// DragEnd closes the stroke on drivers that end a drag without a separate
// release event (touch). If the release already arrived this is a no-op.
func (w *SketchWidget) DragEnd() {
	w.surface.PointerUp(toPoint(w.lastPos))
}

func (w *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *SketchWidget) MouseOut()                      {}
func (w *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchWidgetRenderer{
		sketch:     w,
		background: canvas.NewRectangle(color.White),
	}
}

type sketchWidgetRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.sketch.frame}
}

func (r *sketchWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.sketch.frame.Resize(size)
	r.sketch.surface.Resize(size.Width, size.Height, r.sketch.pixelScale())
}

func (r *sketchWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchWidgetRenderer) Refresh() {
	r.background.Refresh()
	r.sketch.frame.Refresh()
}

func (r *sketchWidgetRenderer) Destroy() {
	if err := r.sketch.surface.Close(); err != nil {
		render.Logger().Warn("closing surface", "err", err)
	}
}
