package graphics

import (
	"fmt"
	"image/color"
)

// Color matches sfColor: 8-bit non-premultiplied RGBA.
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Magenta     = Color{255, 0, 255, 255}
	Cyan        = Color{0, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// FromColor converts any image/color value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// Add returns the component-wise sum, clamped to 255.
func (c Color) Add(o Color) Color {
	return Color{
		R: addChannel(c.R, o.R),
		G: addChannel(c.G, o.G),
		B: addChannel(c.B, o.B),
		A: addChannel(c.A, o.A),
	}
}

// Modulate returns the component-wise product, scaled back to 0..255.
func (c Color) Modulate(o Color) Color {
	return Color{
		R: modulateChannel(c.R, o.R),
		G: modulateChannel(c.G, o.G),
		B: modulateChannel(c.B, o.B),
		A: modulateChannel(c.A, o.A),
	}
}

func addChannel(a, b uint8) uint8 {
	return uint8(min(int(a)+int(b), 255))
}

func modulateChannel(a, b uint8) uint8 {
	return uint8(int(a) * int(b) / 255)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
