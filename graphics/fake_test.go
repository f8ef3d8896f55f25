package graphics

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

// fakeLib stands in for the graphics library. Handles are small integers;
// calls are counted per native symbol.
type fakeLib struct {
	mu     sync.Mutex
	calls  map[string]int
	next   uintptr
	sizes  map[uintptr]system.Vector2u
	pixels map[uintptr][]byte

	spriteTexture map[uintptr]uintptr
	spriteRect    map[uintptr]IntRect
	spriteXform   Transform
	fontTexture   uintptr
	targetView    uintptr
	targetTexture uintptr
	drawn         []renderStatesC

	// events queued for the render window, oldest first
	events []window.RawEvent

	saveOK     bool
	fontData   []byte
	failCreate bool
}

// record counts a call. Destroy functions can also run from the cleanup
// goroutine, hence the lock.
func (f *fakeLib) record(symbol string) {
	f.mu.Lock()
	f.calls[symbol]++
	f.mu.Unlock()
}

func (f *fakeLib) handle(symbol string) uintptr {
	f.record(symbol)
	if f.failCreate {
		return 0
	}
	f.next += 0x10
	return f.next
}

func (f *fakeLib) count(symbol string) func(uintptr) {
	return func(uintptr) { f.record(symbol) }
}

// installFakes marks the library as loaded and points every function
// variable the tests reach at the fake.
func installFakes(t *testing.T) *fakeLib {
	t.Helper()
	libOnce.Do(func() {})

	f := &fakeLib{
		calls:         make(map[string]int),
		next:          0x1000,
		sizes:         make(map[uintptr]system.Vector2u),
		pixels:        make(map[uintptr][]byte),
		spriteTexture: make(map[uintptr]uintptr),
		spriteRect:    make(map[uintptr]IntRect),
		spriteXform:   Identity,
		saveOK:        true,
	}
	f.fontTexture = f.handle("font atlas")
	f.targetView = f.handle("target view")
	f.targetTexture = f.handle("target texture")

	// Image
	fnImageCreateFromPixels = func(w, h uint32, pixels *byte) uintptr {
		p := f.handle("sfImage_createFromPixels")
		if p != 0 {
			f.sizes[p] = system.Vector2u{X: w, Y: h}
			f.pixels[p] = append([]byte(nil), unsafe.Slice(pixels, int(w*h*4))...)
		}
		return p
	}
	fnImageCreate = func(w, h uint32) uintptr {
		p := f.handle("sfImage_create")
		f.sizes[p] = system.Vector2u{X: w, Y: h}
		f.pixels[p] = make([]byte, w*h*4)
		return p
	}
	fnImageDestroy = f.count("sfImage_destroy")
	fnImageGetSize = func(p uintptr) system.Vector2u { return f.sizes[p] }
	fnImageGetPixelsPtr = func(p uintptr) uintptr {
		if len(f.pixels[p]) == 0 {
			return 0
		}
		return uintptr(unsafe.Pointer(&f.pixels[p][0]))
	}
	fnImageSaveToFile = func(uintptr, *byte) ffi.Bool {
		f.record("sfImage_saveToFile")
		return ffi.BoolOf(f.saveOK)
	}

	// Texture
	fnTextureCreate = func(w, h uint32) uintptr {
		p := f.handle("sfTexture_create")
		f.sizes[p] = system.Vector2u{X: w, Y: h}
		return p
	}
	fnTextureCopy = func(uintptr) uintptr { return f.handle("sfTexture_copy") }
	fnTextureDestroy = f.count("sfTexture_destroy")
	fnTextureGetSize = func(p uintptr) system.Vector2u { return f.sizes[p] }
	fnTextureUpdateFromPixels = func(uintptr, *byte, uint32, uint32, uint32, uint32) {
		f.record("sfTexture_updateFromPixels")
	}
	fnTextureUpdateFromImage = func(uintptr, uintptr, uint32, uint32) { f.record("sfTexture_updateFromImage") }
	fnTextureUpdateFromWindow = func(uintptr, uintptr, uint32, uint32) { f.record("sfTexture_updateFromWindow") }
	fnTextureUpdateFromRenderWindow = func(uintptr, uintptr, uint32, uint32) {
		f.record("sfTexture_updateFromRenderWindow")
	}
	fnTextureSetSmooth = func(uintptr, ffi.Bool) { f.record("sfTexture_setSmooth") }
	fnTextureSetRepeated = func(uintptr, ffi.Bool) { f.record("sfTexture_setRepeated") }
	fnTextureIsSmooth = func(uintptr) ffi.Bool {
		f.record("sfTexture_isSmooth")
		return ffi.True
	}

	// Font
	fnFontCreateFromMemory = func(data *byte, size uintptr) uintptr {
		f.fontData = unsafe.Slice(data, size)
		return f.handle("sfFont_createFromMemory")
	}
	fnFontCopy = func(uintptr) uintptr { return f.handle("sfFont_copy") }
	fnFontDestroy = f.count("sfFont_destroy")
	fnFontGetTexture = func(uintptr, uint32) uintptr { return f.fontTexture }

	// Shader
	fnShaderCreateFromMemory = func(v, frag *byte) uintptr { return f.handle("sfShader_createFromMemory") }
	fnShaderDestroy = f.count("sfShader_destroy")
	fnShaderSetTextureParameter = func(uintptr, *byte, uintptr) { f.record("sfShader_setTextureParameter") }

	// Sprite
	fnSpriteCreate = func() uintptr { return f.handle("sfSprite_create") }
	fnSpriteCopy = func(src uintptr) uintptr {
		p := f.handle("sfSprite_copy")
		f.spriteTexture[p] = f.spriteTexture[src]
		return p
	}
	fnSpriteDestroy = f.count("sfSprite_destroy")
	fnSpriteSetTexture = func(s, tex uintptr, _ ffi.Bool) { f.spriteTexture[s] = tex }
	fnSpriteGetTexture = func(s uintptr) uintptr { return f.spriteTexture[s] }
	fnSpriteSetTextureRect = func(s uintptr, r IntRect) { f.spriteRect[s] = r }
	fnSpriteGetTextureRect = func(s uintptr) IntRect { return f.spriteRect[s] }
	fnSpriteGetTransform = func(uintptr) Transform { return f.spriteXform }

	// View
	fnViewCreate = func() uintptr { return f.handle("sfView_create") }
	fnViewCreateFromRect = func(FloatRect) uintptr { return f.handle("sfView_createFromRect") }
	fnViewCopy = func(uintptr) uintptr { return f.handle("sfView_copy") }
	fnViewDestroy = f.count("sfView_destroy")
	fnViewSetCenter = func(uintptr, system.Vector2f) { f.record("sfView_setCenter") }
	fnViewSetSize = func(uintptr, system.Vector2f) { f.record("sfView_setSize") }
	fnViewSetRotation = func(uintptr, float32) { f.record("sfView_setRotation") }
	fnViewSetViewport = func(uintptr, FloatRect) { f.record("sfView_setViewport") }
	fnViewReset = func(uintptr, FloatRect) { f.record("sfView_reset") }
	fnViewMove = func(uintptr, system.Vector2f) { f.record("sfView_move") }
	fnViewRotate = func(uintptr, float32) { f.record("sfView_rotate") }
	fnViewZoom = func(uintptr, float32) { f.record("sfView_zoom") }

	// RenderTexture
	fnRenderTextureCreate = func(w, h uint32, _ ffi.Bool) uintptr {
		p := f.handle("sfRenderTexture_create")
		f.sizes[p] = system.Vector2u{X: w, Y: h}
		return p
	}
	fnRenderTextureDestroy = f.count("sfRenderTexture_destroy")
	fnRenderTextureGetSize = func(p uintptr) system.Vector2u { return f.sizes[p] }
	fnRenderTextureClear = func(uintptr, Color) { f.record("sfRenderTexture_clear") }
	fnRenderTextureGetView = func(uintptr) uintptr { return f.targetView }
	fnRenderTextureGetDefaultView = func(uintptr) uintptr { return f.targetView }
	fnRenderTextureGetTexture = func(uintptr) uintptr { return f.targetTexture }
	fnRenderTextureSetView = func(uintptr, uintptr) { f.record("sfRenderTexture_setView") }
	fnRenderTextureDrawSprite = func(_ uintptr, _ uintptr, states *renderStatesC) {
		f.record("sfRenderTexture_drawSprite")
		f.drawn = append(f.drawn, *states)
	}

	// RenderWindow
	fnRenderWindowCreateUnicode = func(mode window.VideoMode, _ *uint32, _ uint32, _ *window.ContextSettings) uintptr {
		p := f.handle("sfRenderWindow_createUnicode")
		f.sizes[p] = system.Vector2u{X: mode.Width, Y: mode.Height}
		return p
	}
	fnRenderWindowDestroy = f.count("sfRenderWindow_destroy")
	fnRenderWindowClose = f.count("sfRenderWindow_close")
	fnRenderWindowGetSize = func(p uintptr) system.Vector2u { return f.sizes[p] }
	fnRenderWindowPollEvent = func(_ uintptr, ev *window.RawEvent) ffi.Bool {
		f.record("sfRenderWindow_pollEvent")
		return f.nextEvent(ev)
	}
	fnRenderWindowWaitEvent = func(_ uintptr, ev *window.RawEvent) ffi.Bool {
		f.record("sfRenderWindow_waitEvent")
		return f.nextEvent(ev)
	}
	fnRenderWindowClear = func(uintptr, Color) { f.record("sfRenderWindow_clear") }
	fnRenderWindowDisplay = f.count("sfRenderWindow_display")
	fnRenderWindowGetView = func(uintptr) uintptr { return f.targetView }
	fnRenderWindowGetDefaultView = func(uintptr) uintptr { return f.targetView }
	fnRenderWindowSetView = func(uintptr, uintptr) { f.record("sfRenderWindow_setView") }
	fnRenderWindowDrawSprite = func(_ uintptr, _ uintptr, states *renderStatesC) {
		f.record("sfRenderWindow_drawSprite")
		f.drawn = append(f.drawn, *states)
	}
	fnRenderWindowCapture = func(rw uintptr) uintptr {
		p := f.handle("sfRenderWindow_capture")
		if p != 0 {
			size := f.sizes[rw]
			f.sizes[p] = size
			f.pixels[p] = make([]byte, size.X*size.Y*4)
		}
		return p
	}

	return f
}

// nextEvent pops the oldest queued event into ev.
func (f *fakeLib) nextEvent(ev *window.RawEvent) ffi.Bool {
	if len(f.events) == 0 {
		return ffi.False
	}
	*ev = f.events[0]
	f.events = f.events[1:]
	return ffi.True
}

// nativeCalls sums the calls made to the given symbols.
func (f *fakeLib) nativeCalls(symbols ...string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range symbols {
		n += f.calls[s]
	}
	return n
}
