package state

// Canvas is the ink held by one surface: the completed strokes in drawing
// order plus at most one stroke still being drawn.
type Canvas struct {
	completed []Stroke
	current   *Stroke
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{completed: make([]Stroke, 0)}
}

// Start seals the current stroke, if any, and begins a new one at p.
func (c *Canvas) Start(p Point, style Style) {
	c.Seal()
	c.current = &Stroke{
		Points: []Point{p},
		Style:  style,
	}
}

// Append adds p to the current stroke. It reports false when no stroke is in
// progress.
func (c *Canvas) Append(p Point) bool {
	if c.current == nil {
		return false
	}
	c.current.Points = append(c.current.Points, p)
	return true
}

// Seal promotes the current stroke to the completed list. A stroke with a
// single point is kept; it renders as a dot.
func (c *Canvas) Seal() bool {
	if c.current == nil {
		return false
	}
	c.completed = append(c.completed, *c.current)
	c.current = nil
	return true
}

// Clear drops every stroke, including the one in progress.
func (c *Canvas) Clear() {
	c.completed = make([]Stroke, 0)
	c.current = nil
}

// Current returns a copy of the in-progress stroke.
func (c *Canvas) Current() (Stroke, bool) {
	if c.current == nil {
		return Stroke{}, false
	}
	return c.current.Clone(), true
}

// CurrentPoints exposes the in-progress points without copying. The slice
// must not be modified.
func (c *Canvas) CurrentPoints() []Point {
	if c.current == nil {
		return nil
	}
	return c.current.Points
}

// Completed returns copies of the sealed strokes.
func (c *Canvas) Completed() []Stroke {
	strokes := make([]Stroke, 0, len(c.completed))
	for _, s := range c.completed {
		strokes = append(strokes, s.Clone())
	}
	return strokes
}

// Len counts sealed strokes.
func (c *Canvas) Len() int {
	return len(c.completed)
}

// All returns copies of every stroke, the in-progress one last.
func (c *Canvas) All() []Stroke {
	strokes := c.Completed()
	if cur, ok := c.Current(); ok {
		strokes = append(strokes, cur)
	}
	return strokes
}
