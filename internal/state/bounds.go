package state

// Rect is an axis-aligned area of the canvas in pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rect covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect holding both r and o. An empty operand is
// ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}

	minX := min(r.X, o.X)
	minY := min(r.Y, o.Y)
	maxX := max(r.X+r.Width, o.X+o.Width)
	maxY := max(r.Y+r.Height, o.Y+o.Height)

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// StrokeBounds returns the area covered by s, padded by half the stroke
// width so the ink itself is inside.
func StrokeBounds(s Stroke) Rect {
	if len(s.Points) == 0 {
		return Rect{}
	}

	minX, minY := s.Points[0].X, s.Points[0].Y
	maxX, maxY := minX, minY
	for _, p := range s.Points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	pad := s.Style.Width / 2
	return Rect{
		X:      minX - pad,
		Y:      minY - pad,
		Width:  maxX - minX + 2*pad,
		Height: maxY - minY + 2*pad,
	}
}

// Bounds returns the union of the areas of all strokes.
func Bounds(strokes []Stroke) Rect {
	var r Rect
	for _, s := range strokes {
		r = r.Union(StrokeBounds(s))
	}
	return r
}
