package system

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vector2f matches sfVector2f.
type Vector2f struct {
	X, Y float32
}

// Vector2i matches sfVector2i.
type Vector2i struct {
	X, Y int32
}

// Vector2u matches sfVector2u.
type Vector2u struct {
	X, Y uint32
}

// Vector3f matches sfVector3f.
type Vector3f struct {
	X, Y, Z float32
}

// V2 is shorthand for Vector2f{x, y}.
func V2(x, y float32) Vector2f {
	return Vector2f{X: x, Y: y}
}

// Vec returns v as an x/image vector.
func (v Vector2f) Vec() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// FromVec converts an x/image vector.
func FromVec(v f32.Vec2) Vector2f {
	return Vector2f{X: v[0], Y: v[1]}
}

func (v Vector2f) Add(o Vector2f) Vector2f { return Vector2f{v.X + o.X, v.Y + o.Y} }
func (v Vector2f) Sub(o Vector2f) Vector2f { return Vector2f{v.X - o.X, v.Y - o.Y} }
func (v Vector2f) Mul(s float32) Vector2f  { return Vector2f{v.X * s, v.Y * s} }

func (v Vector2f) String() string {
	return fmt.Sprintf("Vector2f(%g, %g)", v.X, v.Y)
}

func (v Vector2i) String() string {
	return fmt.Sprintf("Vector2i(%d, %d)", v.X, v.Y)
}

func (v Vector2u) String() string {
	return fmt.Sprintf("Vector2u(%d, %d)", v.X, v.Y)
}

// Vec returns v as an x/image vector.
func (v Vector3f) Vec() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func (v Vector3f) String() string {
	return fmt.Sprintf("Vector3f(%g, %g, %g)", v.X, v.Y, v.Z)
}
