// Package window binds the CSFML window library: video modes, context
// settings, real-time input state, the event union and the Window proxy.
//
// Windows must be created and driven from one OS thread. Call
// runtime.LockOSThread from main's init before opening a window.
package window

import (
	"fmt"
	"runtime"
	"sync"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

// ============================================================================
// Library Loading
// ============================================================================

var (
	libOnce sync.Once
	libErr  error
)

// Library function pointers (populated by initLibrary)
var (
	// Video modes
	fnVideoModeGetDesktopMode     func() VideoMode
	fnVideoModeGetFullscreenModes func(count *uintptr) uintptr
	fnVideoModeIsValid            func(mode VideoMode) ffi.Bool

	// Window lifecycle
	fnWindowCreateUnicode func(mode VideoMode, title *uint32, style uint32, settings *ContextSettings) uintptr
	fnWindowDestroy       func(window uintptr)
	fnWindowClose         func(window uintptr)
	fnWindowIsOpen        func(window uintptr) ffi.Bool
	fnWindowGetSettings   func(window uintptr) ContextSettings

	// Events
	fnWindowPollEvent func(window uintptr, event *RawEvent) ffi.Bool
	fnWindowWaitEvent func(window uintptr, event *RawEvent) ffi.Bool

	// Window state
	fnWindowGetPosition            func(window uintptr) system.Vector2i
	fnWindowSetPosition            func(window uintptr, position system.Vector2i)
	fnWindowGetSize                func(window uintptr) system.Vector2u
	fnWindowSetSize                func(window uintptr, size system.Vector2u)
	fnWindowSetUnicodeTitle        func(window uintptr, title *uint32)
	fnWindowSetVisible             func(window uintptr, visible ffi.Bool)
	fnWindowSetMouseCursorVisible  func(window uintptr, visible ffi.Bool)
	fnWindowSetVerticalSyncEnabled func(window uintptr, enabled ffi.Bool)
	fnWindowSetKeyRepeatEnabled    func(window uintptr, enabled ffi.Bool)
	fnWindowSetActive              func(window uintptr, active ffi.Bool) ffi.Bool
	fnWindowDisplay                func(window uintptr)
	fnWindowSetFramerateLimit      func(window uintptr, limit uint32)
	fnWindowSetJoystickThreshold   func(window uintptr, threshold float32)

	// Real-time input
	fnKeyboardIsKeyPressed    func(key Key) ffi.Bool
	fnMouseIsButtonPressed    func(button MouseButton) ffi.Bool
	fnMouseGetPosition        func(relativeTo uintptr) system.Vector2i
	fnMouseSetPosition        func(position system.Vector2i, relativeTo uintptr)
	fnJoystickIsConnected     func(joystick uint32) ffi.Bool
	fnJoystickGetButtonCount  func(joystick uint32) uint32
	fnJoystickGetAxisPosition func(joystick uint32, axis JoystickAxis) float32
	fnJoystickUpdate          func()

	// Added in CSFML 2.2; nil when running against 2.1.
	fnJoystickGetIdentification func(joystick uint32) joystickIdentificationC
)

// initLibrary loads the window library and registers all function pointers
func initLibrary() error {
	libOnce.Do(func() {
		lib, err := ffi.Open(ffi.Window)
		if err != nil {
			libErr = err
			return
		}
		b := ffi.NewBinder(ffi.Window, lib)
		registerVideoModeFunctions(b)
		registerWindowFunctions(b)
		registerInputFunctions(b)
		libErr = b.Err()
	})
	return libErr
}

func registerVideoModeFunctions(b *ffi.Binder) {
	b.Bind(&fnVideoModeGetDesktopMode, "sfVideoMode_getDesktopMode")
	b.Bind(&fnVideoModeGetFullscreenModes, "sfVideoMode_getFullscreenModes")
	b.Bind(&fnVideoModeIsValid, "sfVideoMode_isValid")
}

func registerWindowFunctions(b *ffi.Binder) {
	b.Bind(&fnWindowCreateUnicode, "sfWindow_createUnicode")
	b.Bind(&fnWindowDestroy, "sfWindow_destroy")
	b.Bind(&fnWindowClose, "sfWindow_close")
	b.Bind(&fnWindowIsOpen, "sfWindow_isOpen")
	b.Bind(&fnWindowGetSettings, "sfWindow_getSettings")
	b.Bind(&fnWindowPollEvent, "sfWindow_pollEvent")
	b.Bind(&fnWindowWaitEvent, "sfWindow_waitEvent")
	b.Bind(&fnWindowGetPosition, "sfWindow_getPosition")
	b.Bind(&fnWindowSetPosition, "sfWindow_setPosition")
	b.Bind(&fnWindowGetSize, "sfWindow_getSize")
	b.Bind(&fnWindowSetSize, "sfWindow_setSize")
	b.Bind(&fnWindowSetUnicodeTitle, "sfWindow_setUnicodeTitle")
	b.Bind(&fnWindowSetVisible, "sfWindow_setVisible")
	b.Bind(&fnWindowSetMouseCursorVisible, "sfWindow_setMouseCursorVisible")
	b.Bind(&fnWindowSetVerticalSyncEnabled, "sfWindow_setVerticalSyncEnabled")
	b.Bind(&fnWindowSetKeyRepeatEnabled, "sfWindow_setKeyRepeatEnabled")
	b.Bind(&fnWindowSetActive, "sfWindow_setActive")
	b.Bind(&fnWindowDisplay, "sfWindow_display")
	b.Bind(&fnWindowSetFramerateLimit, "sfWindow_setFramerateLimit")
	b.Bind(&fnWindowSetJoystickThreshold, "sfWindow_setJoystickThreshold")
}

func registerInputFunctions(b *ffi.Binder) {
	b.Bind(&fnKeyboardIsKeyPressed, "sfKeyboard_isKeyPressed")
	b.Bind(&fnMouseIsButtonPressed, "sfMouse_isButtonPressed")
	b.Bind(&fnMouseGetPosition, "sfMouse_getPosition")
	b.Bind(&fnMouseSetPosition, "sfMouse_setPosition")
	b.Bind(&fnJoystickIsConnected, "sfJoystick_isConnected")
	b.Bind(&fnJoystickGetButtonCount, "sfJoystick_getButtonCount")
	b.Bind(&fnJoystickGetAxisPosition, "sfJoystick_getAxisPosition")
	b.Bind(&fnJoystickUpdate, "sfJoystick_update")
	b.Optional(&fnJoystickGetIdentification, "sfJoystick_getIdentification")
}

// Init loads the window library eagerly.
func Init() error {
	return initLibrary()
}

// ============================================================================
// Window
// ============================================================================

// Window is an OpenGL-capable native window without the 2D renderer.
type Window struct {
	ref *handle.Ref
}

// NewWindow opens a window. settings may be nil for defaults.
func NewWindow(mode VideoMode, title string, style Style, settings *ContextSettings) (*Window, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	t := ffi.UTF32(title)
	ptr := fnWindowCreateUnicode(mode, t, uint32(style), settings)
	runtime.KeepAlive(t)
	if ptr == 0 {
		return nil, sferrors.Native("NewWindow", "sfWindow_createUnicode returned null")
	}
	w := &Window{ref: handle.Owned("window", ptr, func(p uintptr) { fnWindowDestroy(p) })}
	handle.Track(w, w.ref)
	return w, nil
}

func (w *Window) ptr() uintptr {
	return handle.Must(w.ref, "Window", "NewWindow")
}

// Native returns the sfWindow pointer, for APIs such as
// graphics.Texture.UpdateFromWindow.
func (w *Window) Native() uintptr {
	return w.ptr()
}

// Destroy closes the window and releases it. Calling it again is a no-op.
func (w *Window) Destroy() {
	w.ref.Release()
}

// Close closes the window but keeps the handle valid for queries.
func (w *Window) Close() {
	fnWindowClose(w.ptr())
}

// IsOpen reports whether the window is open.
func (w *Window) IsOpen() bool {
	return fnWindowIsOpen(w.ptr()).Go()
}

// Settings returns the context settings actually granted.
func (w *Window) Settings() ContextSettings {
	return fnWindowGetSettings(w.ptr())
}

// PollEvent returns the next pending event without blocking.
func (w *Window) PollEvent() (Event, bool) {
	var raw RawEvent
	if !fnWindowPollEvent(w.ptr(), &raw).Go() {
		return nil, false
	}
	return DecodeEvent(raw), true
}

// WaitEvent blocks until an event arrives. It returns false when the native
// wait fails, typically because the window was closed.
func (w *Window) WaitEvent() (Event, bool) {
	var raw RawEvent
	if !fnWindowWaitEvent(w.ptr(), &raw).Go() {
		return nil, false
	}
	return DecodeEvent(raw), true
}

func (w *Window) Position() system.Vector2i {
	return fnWindowGetPosition(w.ptr())
}

func (w *Window) SetPosition(p system.Vector2i) {
	fnWindowSetPosition(w.ptr(), p)
}

func (w *Window) Size() system.Vector2u {
	return fnWindowGetSize(w.ptr())
}

func (w *Window) SetSize(s system.Vector2u) {
	fnWindowSetSize(w.ptr(), s)
}

func (w *Window) SetTitle(title string) {
	t := ffi.UTF32(title)
	fnWindowSetUnicodeTitle(w.ptr(), t)
	runtime.KeepAlive(t)
}

func (w *Window) SetVisible(visible bool) {
	fnWindowSetVisible(w.ptr(), ffi.BoolOf(visible))
}

func (w *Window) SetMouseCursorVisible(visible bool) {
	fnWindowSetMouseCursorVisible(w.ptr(), ffi.BoolOf(visible))
}

func (w *Window) SetVerticalSyncEnabled(enabled bool) {
	fnWindowSetVerticalSyncEnabled(w.ptr(), ffi.BoolOf(enabled))
}

func (w *Window) SetKeyRepeatEnabled(enabled bool) {
	fnWindowSetKeyRepeatEnabled(w.ptr(), ffi.BoolOf(enabled))
}

// SetActive makes the window's OpenGL context current on this thread.
func (w *Window) SetActive(active bool) error {
	if !fnWindowSetActive(w.ptr(), ffi.BoolOf(active)).Go() {
		return sferrors.Native("Window.SetActive", "failed to change the active context")
	}
	return nil
}

// Display swaps the front and back buffers.
func (w *Window) Display() {
	fnWindowDisplay(w.ptr())
}

// SetFramerateLimit caps Display to limit frames per second; 0 disables.
func (w *Window) SetFramerateLimit(limit uint32) {
	fnWindowSetFramerateLimit(w.ptr(), limit)
}

func (w *Window) SetJoystickThreshold(threshold float32) {
	fnWindowSetJoystickThreshold(w.ptr(), threshold)
}

// ============================================================================
// Real-time Input
// ============================================================================

// IsKeyPressed reports the current state of key.
func IsKeyPressed(key Key) bool {
	if initLibrary() != nil {
		return false
	}
	return fnKeyboardIsKeyPressed(key).Go()
}

// IsMouseButtonPressed reports the current state of button.
func IsMouseButtonPressed(button MouseButton) bool {
	if initLibrary() != nil {
		return false
	}
	return fnMouseIsButtonPressed(button).Go()
}

// MousePosition returns the cursor position relative to w, or to the desktop
// when w is nil.
func MousePosition(w *Window) system.Vector2i {
	if initLibrary() != nil {
		return system.Vector2i{}
	}
	var rel uintptr
	if w != nil {
		rel = w.ptr()
	}
	return fnMouseGetPosition(rel)
}

// SetMousePosition moves the cursor relative to w, or to the desktop when w
// is nil.
func SetMousePosition(p system.Vector2i, w *Window) {
	if initLibrary() != nil {
		return
	}
	var rel uintptr
	if w != nil {
		rel = w.ptr()
	}
	fnMouseSetPosition(p, rel)
}

// JoystickConnected reports whether joystick id is plugged in.
func JoystickConnected(id uint32) bool {
	if initLibrary() != nil {
		return false
	}
	return fnJoystickIsConnected(id).Go()
}

func JoystickButtonCount(id uint32) uint32 {
	if initLibrary() != nil {
		return 0
	}
	return fnJoystickGetButtonCount(id)
}

func JoystickAxisPosition(id uint32, axis JoystickAxis) float32 {
	if initLibrary() != nil {
		return 0
	}
	return fnJoystickGetAxisPosition(id, axis)
}

// UpdateJoysticks refreshes joystick state when no window is polling events.
func UpdateJoysticks() {
	if initLibrary() != nil {
		return
	}
	fnJoystickUpdate()
}

// joystickIdentificationC matches sfJoystickIdentification.
type joystickIdentificationC struct {
	Name      uintptr
	VendorID  uint32
	ProductID uint32
}

// JoystickIdentification describes a connected joystick.
type JoystickIdentification struct {
	Name      string
	VendorID  uint32
	ProductID uint32
}

func (j JoystickIdentification) String() string {
	return fmt.Sprintf("%s (%04x:%04x)", j.Name, j.VendorID, j.ProductID)
}

// JoystickInfo returns the name and USB ids of joystick id. It needs CSFML
// 2.2 or later and reports an unsupported error otherwise.
func JoystickInfo(id uint32) (JoystickIdentification, error) {
	if err := initLibrary(); err != nil {
		return JoystickIdentification{}, err
	}
	if fnJoystickGetIdentification == nil {
		return JoystickIdentification{}, sferrors.New(sferrors.KindUnsupported, "JoystickInfo").
			Resource("window").
			Detail("sfJoystick_getIdentification requires CSFML 2.2").
			Build()
	}
	c := fnJoystickGetIdentification(id)
	return JoystickIdentification{
		Name:      ffi.GoString(c.Name),
		VendorID:  c.VendorID,
		ProductID: c.ProductID,
	}, nil
}
