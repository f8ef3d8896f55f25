package graphics

import (
	"image/color"
	"testing"
)

func TestColorArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Color
		add, mod Color
	}{
		{
			name: "black and white",
			a:    Black, b: White,
			add: White, mod: Black,
		},
		{
			name: "saturates",
			a:    Color{200, 100, 0, 255}, b: Color{100, 100, 0, 1},
			add: Color{255, 200, 0, 255}, mod: Color{78, 39, 0, 1},
		},
		{
			name: "half intensity",
			a:    Color{128, 128, 128, 128}, b: Color{128, 255, 0, 255},
			add: Color{255, 255, 128, 255}, mod: Color{64, 128, 0, 128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.add {
				t.Errorf("Add() = %v, want %v", got, tt.add)
			}
			if got := tt.a.Modulate(tt.b); got != tt.mod {
				t.Errorf("Modulate() = %v, want %v", got, tt.mod)
			}
		})
	}
}

func TestColorArithmeticAllChannels(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			x := Color{uint8(a), uint8(b), uint8(a), uint8(b)}
			y := Color{uint8(b), uint8(a), uint8(b), uint8(a)}

			wantAdd := uint8(min(a+b, 255))
			wantMod := uint8(a * b / 255)

			sum := x.Add(y)
			prod := x.Modulate(y)
			if sum.R != wantAdd || sum.G != wantAdd || sum.B != wantAdd || sum.A != wantAdd {
				t.Fatalf("%d + %d = %v, want %d", a, b, sum, wantAdd)
			}
			if prod.R != wantMod || prod.G != wantMod || prod.B != wantMod || prod.A != wantMod {
				t.Fatalf("%d * %d = %v, want %d", a, b, prod, wantMod)
			}
		}
	}
}

func TestNamedColorsAreValues(t *testing.T) {
	c := Red
	c.G = 255
	if Red != (Color{255, 0, 0, 255}) {
		t.Errorf("modifying a copy changed Red to %v", Red)
	}
	if Transparent.A != 0 || Magenta != RGB(255, 0, 255) {
		t.Error("named colors have unexpected values")
	}
}

func TestColorInterop(t *testing.T) {
	var _ color.Color = Color{}

	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if got != RGBA(10, 20, 30, 40) {
		t.Errorf("FromColor() = %v", got)
	}
	if FromColor(White) != White {
		t.Errorf("FromColor(White) = %v", FromColor(White))
	}
	if White.String() != "Color(255, 255, 255, 255)" {
		t.Errorf("String() = %q", White.String())
	}
}
