package graphics

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"

	"github.com/agiangrant/csfml/system"
)

// Transform matches sfTransform: a 3x3 row-major matrix for 2D affine
// transforms. The layout is identical to the C struct, so values are passed
// to native code as-is.
type Transform struct {
	Matrix f32.Mat3
}

// Identity is the transform that leaves points unchanged.
var Identity = Transform{Matrix: f32.Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}}

// NewTransform builds a transform from its nine components, row by row.
func NewTransform(a00, a01, a02, a10, a11, a12, a20, a21, a22 float32) Transform {
	return Transform{Matrix: f32.Mat3{a00, a01, a02, a10, a11, a12, a20, a21, a22}}
}

// Combine returns t * o: applying the result is applying o, then t.
func (t Transform) Combine(o Transform) Transform {
	a, b := &t.Matrix, &o.Matrix
	var m f32.Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row*3+col] = a[row*3]*b[col] + a[row*3+1]*b[3+col] + a[row*3+2]*b[6+col]
		}
	}
	return Transform{Matrix: m}
}

// Translate returns t combined with a translation.
func (t Transform) Translate(x, y float32) Transform {
	return t.Combine(NewTransform(
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	))
}

// Rotate returns t combined with a rotation of angle degrees.
func (t Transform) Rotate(angle float32) Transform {
	rad := float64(angle) * math.Pi / 180
	cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
	return t.Combine(NewTransform(
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	))
}

// RotateAround rotates by angle degrees around (cx, cy).
func (t Transform) RotateAround(angle, cx, cy float32) Transform {
	rad := float64(angle) * math.Pi / 180
	cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
	return t.Combine(NewTransform(
		cos, -sin, cx*(1-cos)+cy*sin,
		sin, cos, cy*(1-cos)-cx*sin,
		0, 0, 1,
	))
}

// Scale returns t combined with a scaling.
func (t Transform) Scale(sx, sy float32) Transform {
	return t.Combine(NewTransform(
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	))
}

// TransformPoint applies t to p.
func (t Transform) TransformPoint(p system.Vector2f) system.Vector2f {
	m := &t.Matrix
	return system.Vector2f{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// TransformRect returns the axis-aligned bounding box of r after t.
func (t Transform) TransformRect(r FloatRect) FloatRect {
	pts := [4]system.Vector2f{
		t.TransformPoint(system.V2(r.Left, r.Top)),
		t.TransformPoint(system.V2(r.Left, r.Top+r.Height)),
		t.TransformPoint(system.V2(r.Left+r.Width, r.Top)),
		t.TransformPoint(system.V2(r.Left+r.Width, r.Top+r.Height)),
	}
	left, top, right, bottom := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		left, right = min(left, p.X), max(right, p.X)
		top, bottom = min(top, p.Y), max(bottom, p.Y)
	}
	return FloatRect{left, top, right - left, bottom - top}
}

// Inverse returns the inverse of t, or Identity when t is singular.
func (t Transform) Inverse() Transform {
	m := &t.Matrix
	det := m[0]*(m[8]*m[4]-m[7]*m[5]) -
		m[1]*(m[8]*m[3]-m[5]*m[6]) +
		m[2]*(m[7]*m[3]-m[4]*m[6])
	if det == 0 {
		return Identity
	}
	return NewTransform(
		(m[8]*m[4]-m[7]*m[5])/det,
		-(m[8]*m[1]-m[7]*m[2])/det,
		(m[5]*m[1]-m[4]*m[2])/det,
		-(m[8]*m[3]-m[5]*m[6])/det,
		(m[8]*m[0]-m[2]*m[6])/det,
		-(m[5]*m[0]-m[3]*m[2])/det,
		(m[7]*m[3]-m[4]*m[6])/det,
		-(m[7]*m[0]-m[1]*m[6])/det,
		(m[4]*m[0]-m[3]*m[1])/det,
	)
}

// Matrix4 returns t as a column-major 4x4 matrix for OpenGL.
func (t Transform) Matrix4() f32.Mat4 {
	m := &t.Matrix
	// f32.Mat4 is row-major, so the column-major array is laid out as its
	// transpose: element [col*4+row].
	return f32.Mat4{
		m[0], m[3], 0, m[6],
		m[1], m[4], 0, m[7],
		0, 0, 1, 0,
		m[2], m[5], 0, m[8],
	}
}

func (t Transform) String() string {
	m := t.Matrix
	return fmt.Sprintf("Transform(%g, %g, %g, %g, %g, %g, %g, %g, %g)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
