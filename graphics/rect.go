package graphics

import (
	"fmt"

	"github.com/agiangrant/csfml/system"
)

// IntRect matches sfIntRect. Width and Height may be negative; the rectangle
// then extends left of (or above) its origin.
type IntRect struct {
	Left, Top, Width, Height int32
}

// FloatRect matches sfFloatRect.
type FloatRect struct {
	Left, Top, Width, Height float32
}

type scalar interface {
	~int32 | ~float32
}

// span returns the half-open interval covered by start and a signed length.
func span[T scalar](start, length T) (lo, hi T) {
	return min(start, start+length), max(start, start+length)
}

func contains[T scalar](left, top, width, height, x, y T) bool {
	minX, maxX := span(left, width)
	minY, maxY := span(top, height)
	return x >= minX && x < maxX && y >= minY && y < maxY
}

// intersect returns the overlap of two rectangles as left, top, width,
// height, or all zeros with ok false when they don't overlap.
func intersect[T scalar](a, b [4]T) (r [4]T, ok bool) {
	aMinX, aMaxX := span(a[0], a[2])
	aMinY, aMaxY := span(a[1], a[3])
	bMinX, bMaxX := span(b[0], b[2])
	bMinY, bMaxY := span(b[1], b[3])

	left := max(aMinX, bMinX)
	top := max(aMinY, bMinY)
	right := min(aMaxX, bMaxX)
	bottom := min(aMaxY, bMaxY)

	if left < right && top < bottom {
		return [4]T{left, top, right - left, bottom - top}, true
	}
	return r, false
}

// IntRectFromVectors builds a rectangle from its position and size.
func IntRectFromVectors(position, size system.Vector2i) IntRect {
	return IntRect{position.X, position.Y, size.X, size.Y}
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are excluded.
func (r IntRect) Contains(x, y int32) bool {
	return contains(r.Left, r.Top, r.Width, r.Height, x, y)
}

// Intersects returns the overlapping area of r and o.
func (r IntRect) Intersects(o IntRect) (IntRect, bool) {
	v, ok := intersect([4]int32{r.Left, r.Top, r.Width, r.Height}, [4]int32{o.Left, o.Top, o.Width, o.Height})
	return IntRect{v[0], v[1], v[2], v[3]}, ok
}

func (r IntRect) String() string {
	return fmt.Sprintf("IntRect(%d, %d, %d, %d)", r.Left, r.Top, r.Width, r.Height)
}

// FloatRectFromVectors builds a rectangle from its position and size.
func FloatRectFromVectors(position, size system.Vector2f) FloatRect {
	return FloatRect{position.X, position.Y, size.X, size.Y}
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are excluded.
func (r FloatRect) Contains(x, y float32) bool {
	return contains(r.Left, r.Top, r.Width, r.Height, x, y)
}

// Intersects returns the overlapping area of r and o.
func (r FloatRect) Intersects(o FloatRect) (FloatRect, bool) {
	v, ok := intersect([4]float32{r.Left, r.Top, r.Width, r.Height}, [4]float32{o.Left, o.Top, o.Width, o.Height})
	return FloatRect{v[0], v[1], v[2], v[3]}, ok
}

func (r FloatRect) String() string {
	return fmt.Sprintf("FloatRect(%g, %g, %g, %g)", r.Left, r.Top, r.Width, r.Height)
}
