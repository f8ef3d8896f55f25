package window

import (
	"fmt"
	"unsafe"
)

// Style is a bit set of window decorations (sfWindowStyle).
type Style uint32

const (
	StyleNone       Style = 0
	StyleTitlebar   Style = 1 << 0
	StyleResize     Style = 1 << 1
	StyleClose      Style = 1 << 2
	StyleFullscreen Style = 1 << 3
	StyleDefault          = StyleTitlebar | StyleResize | StyleClose
)

// ContextSettings matches sfContextSettings.
type ContextSettings struct {
	DepthBits         uint32
	StencilBits       uint32
	AntialiasingLevel uint32
	MajorVersion      uint32
	MinorVersion      uint32
}

// DefaultContextSettings requests an OpenGL 2.0 context with no extra buffers.
func DefaultContextSettings() ContextSettings {
	return ContextSettings{MajorVersion: 2, MinorVersion: 0}
}

// VideoMode matches sfVideoMode.
type VideoMode struct {
	Width        uint32
	Height       uint32
	BitsPerPixel uint32
}

// NewVideoMode returns a 32 bits-per-pixel mode.
func NewVideoMode(width, height uint32) VideoMode {
	return VideoMode{Width: width, Height: height, BitsPerPixel: 32}
}

func (m VideoMode) String() string {
	return fmt.Sprintf("%dx%d@%dbpp", m.Width, m.Height, m.BitsPerPixel)
}

// IsValid reports whether the mode can be used for fullscreen windows.
func (m VideoMode) IsValid() (bool, error) {
	if err := initLibrary(); err != nil {
		return false, err
	}
	return fnVideoModeIsValid(m).Go(), nil
}

// DesktopMode returns the current desktop video mode.
func DesktopMode() (VideoMode, error) {
	if err := initLibrary(); err != nil {
		return VideoMode{}, err
	}
	return fnVideoModeGetDesktopMode(), nil
}

// FullscreenModes returns all valid fullscreen modes, best first.
func FullscreenModes() ([]VideoMode, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	var count uintptr
	ptr := fnVideoModeGetFullscreenModes(&count)
	if ptr == 0 || count == 0 {
		return nil, nil
	}
	// The array lives in static native memory; copy it out.
	native := unsafe.Slice((*VideoMode)(unsafe.Pointer(ptr)), count)
	modes := make([]VideoMode, count)
	copy(modes, native)
	return modes, nil
}
