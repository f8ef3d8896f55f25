package graphics

import (
	"runtime"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

// RenderWindow is a window with the 2D renderer attached. It accepts the
// same events and settings as window.Window.
type RenderWindow struct {
	ref *handle.Ref
	// viewport of the view last passed to SetView
	viewport FloatRect
}

// NewRenderWindow opens a window. settings may be nil for defaults.
func NewRenderWindow(mode window.VideoMode, title string, style window.Style, settings *window.ContextSettings) (*RenderWindow, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	t := ffi.UTF32(title)
	ptr := fnRenderWindowCreateUnicode(mode, t, uint32(style), settings)
	runtime.KeepAlive(t)
	if ptr == 0 {
		return nil, sferrors.Native("NewRenderWindow", "sfRenderWindow_createUnicode returned null")
	}
	ffi.Logger().Debug("graphics: render window opened")
	rw := &RenderWindow{
		ref:      handle.Owned("render window", ptr, func(p uintptr) { fnRenderWindowDestroy(p) }),
		viewport: fullViewport,
	}
	handle.Track(rw, rw.ref)
	return rw, nil
}

func (rw *RenderWindow) ptr() uintptr {
	return handle.Must(rw.ref, "RenderWindow", "NewRenderWindow")
}

// Destroy closes the window and releases it.
func (rw *RenderWindow) Destroy() {
	rw.ref.Release()
}

func (rw *RenderWindow) Close() {
	fnRenderWindowClose(rw.ptr())
}

func (rw *RenderWindow) IsOpen() bool {
	return fnRenderWindowIsOpen(rw.ptr()).Go()
}

func (rw *RenderWindow) Settings() window.ContextSettings {
	return fnRenderWindowGetSettings(rw.ptr())
}

// PollEvent returns the next pending event without blocking.
func (rw *RenderWindow) PollEvent() (window.Event, bool) {
	var raw window.RawEvent
	if !fnRenderWindowPollEvent(rw.ptr(), &raw).Go() {
		return nil, false
	}
	return window.DecodeEvent(raw), true
}

// WaitEvent blocks until an event arrives.
func (rw *RenderWindow) WaitEvent() (window.Event, bool) {
	var raw window.RawEvent
	if !fnRenderWindowWaitEvent(rw.ptr(), &raw).Go() {
		return nil, false
	}
	return window.DecodeEvent(raw), true
}

func (rw *RenderWindow) Position() system.Vector2i {
	return fnRenderWindowGetPosition(rw.ptr())
}

func (rw *RenderWindow) SetPosition(p system.Vector2i) {
	fnRenderWindowSetPosition(rw.ptr(), p)
}

// Size implements RenderTarget.
func (rw *RenderWindow) Size() system.Vector2u {
	return fnRenderWindowGetSize(rw.ptr())
}

func (rw *RenderWindow) SetSize(s system.Vector2u) {
	fnRenderWindowSetSize(rw.ptr(), s)
}

func (rw *RenderWindow) SetTitle(title string) {
	t := ffi.UTF32(title)
	fnRenderWindowSetUnicodeTitle(rw.ptr(), t)
	runtime.KeepAlive(t)
}

func (rw *RenderWindow) SetVisible(visible bool) {
	fnRenderWindowSetVisible(rw.ptr(), ffi.BoolOf(visible))
}

func (rw *RenderWindow) SetMouseCursorVisible(visible bool) {
	fnRenderWindowSetMouseCursorVisible(rw.ptr(), ffi.BoolOf(visible))
}

func (rw *RenderWindow) SetVerticalSyncEnabled(enabled bool) {
	fnRenderWindowSetVerticalSyncEnabled(rw.ptr(), ffi.BoolOf(enabled))
}

func (rw *RenderWindow) SetKeyRepeatEnabled(enabled bool) {
	fnRenderWindowSetKeyRepeatEnabled(rw.ptr(), ffi.BoolOf(enabled))
}

func (rw *RenderWindow) SetActive(active bool) error {
	if !fnRenderWindowSetActive(rw.ptr(), ffi.BoolOf(active)).Go() {
		return sferrors.Native("RenderWindow.SetActive", "failed to change the active context")
	}
	return nil
}

// Display shows what has been drawn since the last Clear.
func (rw *RenderWindow) Display() {
	fnRenderWindowDisplay(rw.ptr())
}

func (rw *RenderWindow) SetFramerateLimit(limit uint32) {
	fnRenderWindowSetFramerateLimit(rw.ptr(), limit)
}

func (rw *RenderWindow) SetJoystickThreshold(threshold float32) {
	fnRenderWindowSetJoystickThreshold(rw.ptr(), threshold)
}

// Clear fills the window with c.
func (rw *RenderWindow) Clear(c Color) {
	fnRenderWindowClear(rw.ptr(), c)
}

// Draw renders d onto the window.
func (rw *RenderWindow) Draw(d Drawable, states RenderStates) error {
	return drawOn(rw, d, states)
}

// DrawSprite renders s with states.
func (rw *RenderWindow) DrawSprite(s *Sprite, states RenderStates) {
	fnRenderWindowDrawSprite(rw.ptr(), s.ptr(), states.native())
	runtime.KeepAlive(s)
	runtime.KeepAlive(states)
}

// SetView copies v into the window.
func (rw *RenderWindow) SetView(v *View) {
	fnRenderWindowSetView(rw.ptr(), v.ptr())
	rw.viewport = v.viewport
	runtime.KeepAlive(v)
}

// View returns the current view. It is const and only valid while rw is.
func (rw *RenderWindow) View() *View {
	return borrowedView(fnRenderWindowGetView(rw.ptr()), rw.ref, rw, rw.viewport)
}

// DefaultView returns the view matching the window size. It is const.
func (rw *RenderWindow) DefaultView() *View {
	return borrowedView(fnRenderWindowGetDefaultView(rw.ptr()), rw.ref, rw, fullViewport)
}

// Viewport returns the pixel area of the window covered by v.
func (rw *RenderWindow) Viewport(v *View) IntRect {
	r := fnRenderWindowGetViewport(rw.ptr(), v.ptr())
	runtime.KeepAlive(v)
	return r
}

// MapPixelToCoords converts a window pixel to world coordinates. A nil view
// uses the current view.
func (rw *RenderWindow) MapPixelToCoords(point system.Vector2i, v *View) system.Vector2f {
	var vp uintptr
	if v != nil {
		vp = v.ptr()
	}
	c := fnRenderWindowMapPixelToCoords(rw.ptr(), point, vp)
	runtime.KeepAlive(v)
	return c
}

// MapCoordsToPixel converts world coordinates to a window pixel. A nil view
// uses the current view.
func (rw *RenderWindow) MapCoordsToPixel(point system.Vector2f, v *View) system.Vector2i {
	var vp uintptr
	if v != nil {
		vp = v.ptr()
	}
	p := fnRenderWindowMapCoordsToPixel(rw.ptr(), point, vp)
	runtime.KeepAlive(v)
	return p
}

// Capture copies the current contents of the window into a new Image.
func (rw *RenderWindow) Capture() (*Image, error) {
	return newImage("RenderWindow.Capture", fnRenderWindowCapture(rw.ptr()))
}
