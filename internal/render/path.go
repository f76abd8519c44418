package render

import (
	"SketchPad/internal/state"

	"github.com/gogpu/gg"
)

// BuildPath turns an ordered point list into an open polyline: a MoveTo for
// the first point and a LineTo for every later one. The path is never closed;
// ink is stroked, not filled.
func BuildPath(points []state.Point) *gg.Path {
	path := gg.NewPath()
	for i, p := range points {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
			continue
		}
		path.LineTo(p.X, p.Y)
	}
	return path
}
