package render

import (
	"image"
)

// Presenter renders a scene and hands the frame to whatever displays it.
// Present is its only operation.
type Presenter struct {
	renderer *Renderer
	scene    *Scene
	sink     func(image.Image)
}

// NewPresenter binds a renderer, the scene it draws and the frame sink. A nil
// sink renders without showing anything.
func NewPresenter(r *Renderer, scene *Scene, sink func(image.Image)) *Presenter {
	return &Presenter{renderer: r, scene: scene, sink: sink}
}

// Present re-renders the whole scene and flushes the frame to the sink.
func (p *Presenter) Present() {
	if err := p.renderer.Render(p.scene); err != nil {
		Logger().Warn("rendering frame", "err", err)
	}
	if p.sink != nil {
		p.sink(p.renderer.Image())
	}
}
