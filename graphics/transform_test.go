package graphics

import (
	"math"
	"testing"
	"unsafe"

	"github.com/agiangrant/csfml/system"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func nearVec(a, b system.Vector2f) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func nearTransform(a, b Transform) bool {
	for i := range a.Matrix {
		if !near(a.Matrix[i], b.Matrix[i]) {
			return false
		}
	}
	return true
}

func TestTransformPoint(t *testing.T) {
	p := system.V2(1, 0)

	tests := []struct {
		name string
		tr   Transform
		want system.Vector2f
	}{
		{"identity", Identity, system.V2(1, 0)},
		{"translate", Identity.Translate(10, 20), system.V2(11, 20)},
		{"scale", Identity.Scale(3, 2), system.V2(3, 0)},
		{"rotate 90", Identity.Rotate(90), system.V2(0, 1)},
		{"rotate around", Identity.RotateAround(180, 2, 0), system.V2(3, 0)},
		{"translate then scale", Identity.Translate(1, 1).Scale(2, 2), system.V2(3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.TransformPoint(p); !nearVec(got, tt.want) {
				t.Errorf("TransformPoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformInverse(t *testing.T) {
	tr := Identity.Translate(5, -3).Rotate(30).Scale(2, 4)
	if got := tr.Combine(tr.Inverse()); !nearTransform(got, Identity) {
		t.Errorf("t * t^-1 = %v", got)
	}

	singular := Identity.Scale(0, 1)
	if singular.Inverse() != Identity {
		t.Errorf("singular Inverse() = %v, want identity", singular.Inverse())
	}
}

func TestTransformRect(t *testing.T) {
	r := Identity.Scale(-1, 2).TransformRect(FloatRect{1, 1, 2, 2})
	if r != (FloatRect{-3, 2, 2, 4}) {
		t.Errorf("TransformRect() = %v", r)
	}
}

func TestMatrix4(t *testing.T) {
	m := Identity.Translate(7, 8).Matrix4()
	// Column-major: translation lands in elements 12 and 13.
	if m[12] != 7 || m[13] != 8 || m[15] != 1 || m[10] != 1 {
		t.Errorf("Matrix4() = %v", m)
	}
}

func TestNativeLayouts(t *testing.T) {
	if got := unsafe.Sizeof(Transform{}); got != 36 {
		t.Errorf("sizeof(Transform) = %d, want 36", got)
	}
	if got := unsafe.Sizeof(Glyph{}); got != 36 {
		t.Errorf("sizeof(Glyph) = %d, want 36", got)
	}
	if got := unsafe.Sizeof(Color{}); got != 4 {
		t.Errorf("sizeof(Color) = %d, want 4", got)
	}
	if unsafe.Sizeof(uintptr(0)) == 8 {
		if got := unsafe.Sizeof(renderStatesC{}); got != 56 {
			t.Errorf("sizeof(renderStatesC) = %d, want 56", got)
		}
		if got := unsafe.Offsetof(renderStatesC{}.Texture); got != 40 {
			t.Errorf("offsetof(Texture) = %d, want 40", got)
		}
	}
}
