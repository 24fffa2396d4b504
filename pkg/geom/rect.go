// pkg/geom/rect.go
package geom

// Rect is an axis-aligned box; X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround builds a w×h box centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// SquareAround builds the bounding square of a circle.
func SquareAround(c Vec2, radius float64) Rect {
	return RectAround(c, radius*2, radius*2)
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inflate grows the box by dw horizontally and dh vertically, keeping its center.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// Overlaps reports whether the interiors of r and o intersect.
// Boxes that only touch along an edge, and empty boxes, never overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
