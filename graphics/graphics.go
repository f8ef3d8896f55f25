// Package graphics binds the CSFML graphics library: colors, rectangles,
// transforms, and the resource proxies (images, textures, fonts, shaders,
// sprites, views) along with the two render targets.
//
// Every proxy owns or borrows exactly one native handle. Owned handles are
// released by Destroy, or when the proxy becomes unreachable. Borrowed
// handles, such as a font's glyph texture or a target's current view, are
// const: their mutators return an error matching errors.ErrConst.
package graphics

import (
	"sync"

	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
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
	// Image
	fnImageCreate              func(width, height uint32) uintptr
	fnImageCreateFromColor     func(width, height uint32, color Color) uintptr
	fnImageCreateFromPixels    func(width, height uint32, pixels *byte) uintptr
	fnImageCreateFromFile      func(filename *byte) uintptr
	fnImageCreateFromMemory    func(data *byte, size uintptr) uintptr
	fnImageCreateFromStream    func(stream *system.InputStreamC) uintptr
	fnImageCopy                func(image uintptr) uintptr
	fnImageDestroy             func(image uintptr)
	fnImageSaveToFile          func(image uintptr, filename *byte) ffi.Bool
	fnImageGetSize             func(image uintptr) system.Vector2u
	fnImageCreateMaskFromColor func(image uintptr, color Color, alpha uint8)
	fnImageCopyImage           func(image, source uintptr, destX, destY uint32, sourceRect IntRect, applyAlpha ffi.Bool)
	fnImageSetPixel            func(image uintptr, x, y uint32, color Color)
	fnImageGetPixel            func(image uintptr, x, y uint32) Color
	fnImageGetPixelsPtr        func(image uintptr) uintptr
	fnImageFlipHorizontally    func(image uintptr)
	fnImageFlipVertically      func(image uintptr)

	// Texture
	fnTextureCreate                 func(width, height uint32) uintptr
	fnTextureCreateFromFile         func(filename *byte, area *IntRect) uintptr
	fnTextureCreateFromMemory       func(data *byte, size uintptr, area *IntRect) uintptr
	fnTextureCreateFromStream       func(stream *system.InputStreamC, area *IntRect) uintptr
	fnTextureCreateFromImage        func(image uintptr, area *IntRect) uintptr
	fnTextureCopy                   func(texture uintptr) uintptr
	fnTextureDestroy                func(texture uintptr)
	fnTextureGetSize                func(texture uintptr) system.Vector2u
	fnTextureCopyToImage            func(texture uintptr) uintptr
	fnTextureUpdateFromPixels       func(texture uintptr, pixels *byte, width, height, x, y uint32)
	fnTextureUpdateFromImage        func(texture, image uintptr, x, y uint32)
	fnTextureUpdateFromWindow       func(texture, window uintptr, x, y uint32)
	fnTextureUpdateFromRenderWindow func(texture, renderWindow uintptr, x, y uint32)
	fnTextureSetSmooth              func(texture uintptr, smooth ffi.Bool)
	fnTextureIsSmooth               func(texture uintptr) ffi.Bool
	fnTextureSetRepeated            func(texture uintptr, repeated ffi.Bool)
	fnTextureIsRepeated             func(texture uintptr) ffi.Bool
	fnTextureBind                   func(texture uintptr)
	fnTextureGetMaximumSize         func() uint32

	// Font
	fnFontCreateFromFile   func(filename *byte) uintptr
	fnFontCreateFromMemory func(data *byte, size uintptr) uintptr
	fnFontCreateFromStream func(stream *system.InputStreamC) uintptr
	fnFontCopy             func(font uintptr) uintptr
	fnFontDestroy          func(font uintptr)
	fnFontGetGlyph         func(font uintptr, codePoint uint32, characterSize uint32, bold ffi.Bool) Glyph
	fnFontGetKerning       func(font uintptr, first, second uint32, characterSize uint32) int32
	fnFontGetLineSpacing   func(font uintptr, characterSize uint32) int32
	fnFontGetTexture       func(font uintptr, characterSize uint32) uintptr

	// Shader
	fnShaderCreateFromFile             func(vertex, fragment *byte) uintptr
	fnShaderCreateFromMemory           func(vertex, fragment *byte) uintptr
	fnShaderCreateFromStream           func(vertex, fragment *system.InputStreamC) uintptr
	fnShaderDestroy                    func(shader uintptr)
	fnShaderSetFloatParameter          func(shader uintptr, name *byte, x float32)
	fnShaderSetFloat2Parameter         func(shader uintptr, name *byte, x, y float32)
	fnShaderSetFloat3Parameter         func(shader uintptr, name *byte, x, y, z float32)
	fnShaderSetFloat4Parameter         func(shader uintptr, name *byte, x, y, z, w float32)
	fnShaderSetVector2Parameter        func(shader uintptr, name *byte, v system.Vector2f)
	fnShaderSetVector3Parameter        func(shader uintptr, name *byte, v system.Vector3f)
	fnShaderSetColorParameter          func(shader uintptr, name *byte, c Color)
	fnShaderSetTransformParameter      func(shader uintptr, name *byte, t Transform)
	fnShaderSetTextureParameter        func(shader uintptr, name *byte, texture uintptr)
	fnShaderSetCurrentTextureParameter func(shader uintptr, name *byte)
	fnShaderBind                       func(shader uintptr)
	fnShaderIsAvailable                func() ffi.Bool

	// Sprite
	fnSpriteCreate              func() uintptr
	fnSpriteCopy                func(sprite uintptr) uintptr
	fnSpriteDestroy             func(sprite uintptr)
	fnSpriteSetPosition         func(sprite uintptr, position system.Vector2f)
	fnSpriteSetRotation         func(sprite uintptr, angle float32)
	fnSpriteSetScale            func(sprite uintptr, scale system.Vector2f)
	fnSpriteSetOrigin           func(sprite uintptr, origin system.Vector2f)
	fnSpriteGetPosition         func(sprite uintptr) system.Vector2f
	fnSpriteGetRotation         func(sprite uintptr) float32
	fnSpriteGetScale            func(sprite uintptr) system.Vector2f
	fnSpriteGetOrigin           func(sprite uintptr) system.Vector2f
	fnSpriteMove                func(sprite uintptr, offset system.Vector2f)
	fnSpriteRotate              func(sprite uintptr, angle float32)
	fnSpriteScale               func(sprite uintptr, factors system.Vector2f)
	fnSpriteGetTransform        func(sprite uintptr) Transform
	fnSpriteGetInverseTransform func(sprite uintptr) Transform
	fnSpriteSetTexture          func(sprite, texture uintptr, resetRect ffi.Bool)
	fnSpriteSetTextureRect      func(sprite uintptr, rect IntRect)
	fnSpriteSetColor            func(sprite uintptr, color Color)
	fnSpriteGetTexture          func(sprite uintptr) uintptr
	fnSpriteGetTextureRect      func(sprite uintptr) IntRect
	fnSpriteGetColor            func(sprite uintptr) Color

	// Transformable
	fnTransformableCreate              func() uintptr
	fnTransformableCopy                func(t uintptr) uintptr
	fnTransformableDestroy             func(t uintptr)
	fnTransformableSetPosition         func(t uintptr, position system.Vector2f)
	fnTransformableSetRotation         func(t uintptr, angle float32)
	fnTransformableSetScale            func(t uintptr, scale system.Vector2f)
	fnTransformableSetOrigin           func(t uintptr, origin system.Vector2f)
	fnTransformableGetPosition         func(t uintptr) system.Vector2f
	fnTransformableGetRotation         func(t uintptr) float32
	fnTransformableGetScale            func(t uintptr) system.Vector2f
	fnTransformableGetOrigin           func(t uintptr) system.Vector2f
	fnTransformableMove                func(t uintptr, offset system.Vector2f)
	fnTransformableRotate              func(t uintptr, angle float32)
	fnTransformableScale               func(t uintptr, factors system.Vector2f)
	fnTransformableGetTransform        func(t uintptr) Transform
	fnTransformableGetInverseTransform func(t uintptr) Transform

	// View
	fnViewCreate         func() uintptr
	fnViewCreateFromRect func(rect FloatRect) uintptr
	fnViewCopy           func(view uintptr) uintptr
	fnViewDestroy        func(view uintptr)
	fnViewSetCenter      func(view uintptr, center system.Vector2f)
	fnViewSetSize        func(view uintptr, size system.Vector2f)
	fnViewSetRotation    func(view uintptr, angle float32)
	fnViewSetViewport    func(view uintptr, viewport FloatRect)
	fnViewReset          func(view uintptr, rect FloatRect)
	fnViewGetCenter      func(view uintptr) system.Vector2f
	fnViewGetSize        func(view uintptr) system.Vector2f
	fnViewGetRotation    func(view uintptr) float32
	fnViewMove           func(view uintptr, offset system.Vector2f)
	fnViewRotate         func(view uintptr, angle float32)
	fnViewZoom           func(view uintptr, factor float32)

	// RenderWindow
	fnRenderWindowCreateUnicode          func(mode window.VideoMode, title *uint32, style uint32, settings *window.ContextSettings) uintptr
	fnRenderWindowDestroy                func(rw uintptr)
	fnRenderWindowClose                  func(rw uintptr)
	fnRenderWindowIsOpen                 func(rw uintptr) ffi.Bool
	fnRenderWindowGetSettings            func(rw uintptr) window.ContextSettings
	fnRenderWindowPollEvent              func(rw uintptr, event *window.RawEvent) ffi.Bool
	fnRenderWindowWaitEvent              func(rw uintptr, event *window.RawEvent) ffi.Bool
	fnRenderWindowGetPosition            func(rw uintptr) system.Vector2i
	fnRenderWindowSetPosition            func(rw uintptr, position system.Vector2i)
	fnRenderWindowGetSize                func(rw uintptr) system.Vector2u
	fnRenderWindowSetSize                func(rw uintptr, size system.Vector2u)
	fnRenderWindowSetUnicodeTitle        func(rw uintptr, title *uint32)
	fnRenderWindowSetVisible             func(rw uintptr, visible ffi.Bool)
	fnRenderWindowSetMouseCursorVisible  func(rw uintptr, visible ffi.Bool)
	fnRenderWindowSetVerticalSyncEnabled func(rw uintptr, enabled ffi.Bool)
	fnRenderWindowSetKeyRepeatEnabled    func(rw uintptr, enabled ffi.Bool)
	fnRenderWindowSetActive              func(rw uintptr, active ffi.Bool) ffi.Bool
	fnRenderWindowDisplay                func(rw uintptr)
	fnRenderWindowSetFramerateLimit      func(rw uintptr, limit uint32)
	fnRenderWindowSetJoystickThreshold   func(rw uintptr, threshold float32)
	fnRenderWindowClear                  func(rw uintptr, color Color)
	fnRenderWindowSetView                func(rw, view uintptr)
	fnRenderWindowGetView                func(rw uintptr) uintptr
	fnRenderWindowGetDefaultView         func(rw uintptr) uintptr
	fnRenderWindowGetViewport            func(rw, view uintptr) IntRect
	fnRenderWindowMapPixelToCoords       func(rw uintptr, point system.Vector2i, view uintptr) system.Vector2f
	fnRenderWindowMapCoordsToPixel       func(rw uintptr, point system.Vector2f, view uintptr) system.Vector2i
	fnRenderWindowDrawSprite             func(rw, sprite uintptr, states *renderStatesC)
	fnRenderWindowCapture                func(rw uintptr) uintptr

	// RenderTexture
	fnRenderTextureCreate         func(width, height uint32, depthBuffer ffi.Bool) uintptr
	fnRenderTextureDestroy        func(rt uintptr)
	fnRenderTextureGetSize        func(rt uintptr) system.Vector2u
	fnRenderTextureSetActive      func(rt uintptr, active ffi.Bool) ffi.Bool
	fnRenderTextureDisplay        func(rt uintptr)
	fnRenderTextureClear          func(rt uintptr, color Color)
	fnRenderTextureSetView        func(rt, view uintptr)
	fnRenderTextureGetView        func(rt uintptr) uintptr
	fnRenderTextureGetDefaultView func(rt uintptr) uintptr
	fnRenderTextureDrawSprite     func(rt, sprite uintptr, states *renderStatesC)
	fnRenderTextureGetTexture     func(rt uintptr) uintptr
	fnRenderTextureSetSmooth      func(rt uintptr, smooth ffi.Bool)
	fnRenderTextureIsSmooth       func(rt uintptr) ffi.Bool
)

// initLibrary loads the graphics library and registers all function pointers
func initLibrary() error {
	libOnce.Do(func() {
		lib, err := ffi.Open(ffi.Graphics)
		if err != nil {
			libErr = err
			return
		}
		b := ffi.NewBinder(ffi.Graphics, lib)
		registerImageFunctions(b)
		registerTextureFunctions(b)
		registerFontFunctions(b)
		registerShaderFunctions(b)
		registerSpriteFunctions(b)
		registerTransformableFunctions(b)
		registerViewFunctions(b)
		registerRenderWindowFunctions(b)
		registerRenderTextureFunctions(b)
		libErr = b.Err()
	})
	return libErr
}

// Init loads the graphics library eagerly.
func Init() error {
	return initLibrary()
}

func registerImageFunctions(b *ffi.Binder) {
	b.Bind(&fnImageCreate, "sfImage_create")
	b.Bind(&fnImageCreateFromColor, "sfImage_createFromColor")
	b.Bind(&fnImageCreateFromPixels, "sfImage_createFromPixels")
	b.Bind(&fnImageCreateFromFile, "sfImage_createFromFile")
	b.Bind(&fnImageCreateFromMemory, "sfImage_createFromMemory")
	b.Bind(&fnImageCreateFromStream, "sfImage_createFromStream")
	b.Bind(&fnImageCopy, "sfImage_copy")
	b.Bind(&fnImageDestroy, "sfImage_destroy")
	b.Bind(&fnImageSaveToFile, "sfImage_saveToFile")
	b.Bind(&fnImageGetSize, "sfImage_getSize")
	b.Bind(&fnImageCreateMaskFromColor, "sfImage_createMaskFromColor")
	b.Bind(&fnImageCopyImage, "sfImage_copyImage")
	b.Bind(&fnImageSetPixel, "sfImage_setPixel")
	b.Bind(&fnImageGetPixel, "sfImage_getPixel")
	b.Bind(&fnImageGetPixelsPtr, "sfImage_getPixelsPtr")
	b.Bind(&fnImageFlipHorizontally, "sfImage_flipHorizontally")
	b.Bind(&fnImageFlipVertically, "sfImage_flipVertically")
}

func registerTextureFunctions(b *ffi.Binder) {
	b.Bind(&fnTextureCreate, "sfTexture_create")
	b.Bind(&fnTextureCreateFromFile, "sfTexture_createFromFile")
	b.Bind(&fnTextureCreateFromMemory, "sfTexture_createFromMemory")
	b.Bind(&fnTextureCreateFromStream, "sfTexture_createFromStream")
	b.Bind(&fnTextureCreateFromImage, "sfTexture_createFromImage")
	b.Bind(&fnTextureCopy, "sfTexture_copy")
	b.Bind(&fnTextureDestroy, "sfTexture_destroy")
	b.Bind(&fnTextureGetSize, "sfTexture_getSize")
	b.Bind(&fnTextureCopyToImage, "sfTexture_copyToImage")
	b.Bind(&fnTextureUpdateFromPixels, "sfTexture_updateFromPixels")
	b.Bind(&fnTextureUpdateFromImage, "sfTexture_updateFromImage")
	b.Bind(&fnTextureUpdateFromWindow, "sfTexture_updateFromWindow")
	b.Bind(&fnTextureUpdateFromRenderWindow, "sfTexture_updateFromRenderWindow")
	b.Bind(&fnTextureSetSmooth, "sfTexture_setSmooth")
	b.Bind(&fnTextureIsSmooth, "sfTexture_isSmooth")
	b.Bind(&fnTextureSetRepeated, "sfTexture_setRepeated")
	b.Bind(&fnTextureIsRepeated, "sfTexture_isRepeated")
	b.Bind(&fnTextureBind, "sfTexture_bind")
	b.Bind(&fnTextureGetMaximumSize, "sfTexture_getMaximumSize")
}

func registerFontFunctions(b *ffi.Binder) {
	b.Bind(&fnFontCreateFromFile, "sfFont_createFromFile")
	b.Bind(&fnFontCreateFromMemory, "sfFont_createFromMemory")
	b.Bind(&fnFontCreateFromStream, "sfFont_createFromStream")
	b.Bind(&fnFontCopy, "sfFont_copy")
	b.Bind(&fnFontDestroy, "sfFont_destroy")
	b.Bind(&fnFontGetGlyph, "sfFont_getGlyph")
	b.Bind(&fnFontGetKerning, "sfFont_getKerning")
	b.Bind(&fnFontGetLineSpacing, "sfFont_getLineSpacing")
	b.Bind(&fnFontGetTexture, "sfFont_getTexture")
}

func registerShaderFunctions(b *ffi.Binder) {
	b.Bind(&fnShaderCreateFromFile, "sfShader_createFromFile")
	b.Bind(&fnShaderCreateFromMemory, "sfShader_createFromMemory")
	b.Bind(&fnShaderCreateFromStream, "sfShader_createFromStream")
	b.Bind(&fnShaderDestroy, "sfShader_destroy")
	b.Bind(&fnShaderSetFloatParameter, "sfShader_setFloatParameter")
	b.Bind(&fnShaderSetFloat2Parameter, "sfShader_setFloat2Parameter")
	b.Bind(&fnShaderSetFloat3Parameter, "sfShader_setFloat3Parameter")
	b.Bind(&fnShaderSetFloat4Parameter, "sfShader_setFloat4Parameter")
	b.Bind(&fnShaderSetVector2Parameter, "sfShader_setVector2Parameter")
	b.Bind(&fnShaderSetVector3Parameter, "sfShader_setVector3Parameter")
	b.Bind(&fnShaderSetColorParameter, "sfShader_setColorParameter")
	b.Bind(&fnShaderSetTransformParameter, "sfShader_setTransformParameter")
	b.Bind(&fnShaderSetTextureParameter, "sfShader_setTextureParameter")
	b.Bind(&fnShaderSetCurrentTextureParameter, "sfShader_setCurrentTextureParameter")
	b.Bind(&fnShaderBind, "sfShader_bind")
	b.Bind(&fnShaderIsAvailable, "sfShader_isAvailable")
}

func registerSpriteFunctions(b *ffi.Binder) {
	b.Bind(&fnSpriteCreate, "sfSprite_create")
	b.Bind(&fnSpriteCopy, "sfSprite_copy")
	b.Bind(&fnSpriteDestroy, "sfSprite_destroy")
	b.Bind(&fnSpriteSetPosition, "sfSprite_setPosition")
	b.Bind(&fnSpriteSetRotation, "sfSprite_setRotation")
	b.Bind(&fnSpriteSetScale, "sfSprite_setScale")
	b.Bind(&fnSpriteSetOrigin, "sfSprite_setOrigin")
	b.Bind(&fnSpriteGetPosition, "sfSprite_getPosition")
	b.Bind(&fnSpriteGetRotation, "sfSprite_getRotation")
	b.Bind(&fnSpriteGetScale, "sfSprite_getScale")
	b.Bind(&fnSpriteGetOrigin, "sfSprite_getOrigin")
	b.Bind(&fnSpriteMove, "sfSprite_move")
	b.Bind(&fnSpriteRotate, "sfSprite_rotate")
	b.Bind(&fnSpriteScale, "sfSprite_scale")
	b.Bind(&fnSpriteGetTransform, "sfSprite_getTransform")
	b.Bind(&fnSpriteGetInverseTransform, "sfSprite_getInverseTransform")
	b.Bind(&fnSpriteSetTexture, "sfSprite_setTexture")
	b.Bind(&fnSpriteSetTextureRect, "sfSprite_setTextureRect")
	b.Bind(&fnSpriteSetColor, "sfSprite_setColor")
	b.Bind(&fnSpriteGetTexture, "sfSprite_getTexture")
	b.Bind(&fnSpriteGetTextureRect, "sfSprite_getTextureRect")
	b.Bind(&fnSpriteGetColor, "sfSprite_getColor")
}

func registerTransformableFunctions(b *ffi.Binder) {
	b.Bind(&fnTransformableCreate, "sfTransformable_create")
	b.Bind(&fnTransformableCopy, "sfTransformable_copy")
	b.Bind(&fnTransformableDestroy, "sfTransformable_destroy")
	b.Bind(&fnTransformableSetPosition, "sfTransformable_setPosition")
	b.Bind(&fnTransformableSetRotation, "sfTransformable_setRotation")
	b.Bind(&fnTransformableSetScale, "sfTransformable_setScale")
	b.Bind(&fnTransformableSetOrigin, "sfTransformable_setOrigin")
	b.Bind(&fnTransformableGetPosition, "sfTransformable_getPosition")
	b.Bind(&fnTransformableGetRotation, "sfTransformable_getRotation")
	b.Bind(&fnTransformableGetScale, "sfTransformable_getScale")
	b.Bind(&fnTransformableGetOrigin, "sfTransformable_getOrigin")
	b.Bind(&fnTransformableMove, "sfTransformable_move")
	b.Bind(&fnTransformableRotate, "sfTransformable_rotate")
	b.Bind(&fnTransformableScale, "sfTransformable_scale")
	b.Bind(&fnTransformableGetTransform, "sfTransformable_getTransform")
	b.Bind(&fnTransformableGetInverseTransform, "sfTransformable_getInverseTransform")
}

func registerViewFunctions(b *ffi.Binder) {
	b.Bind(&fnViewCreate, "sfView_create")
	b.Bind(&fnViewCreateFromRect, "sfView_createFromRect")
	b.Bind(&fnViewCopy, "sfView_copy")
	b.Bind(&fnViewDestroy, "sfView_destroy")
	b.Bind(&fnViewSetCenter, "sfView_setCenter")
	b.Bind(&fnViewSetSize, "sfView_setSize")
	b.Bind(&fnViewSetRotation, "sfView_setRotation")
	b.Bind(&fnViewSetViewport, "sfView_setViewport")
	b.Bind(&fnViewReset, "sfView_reset")
	b.Bind(&fnViewGetCenter, "sfView_getCenter")
	b.Bind(&fnViewGetSize, "sfView_getSize")
	b.Bind(&fnViewGetRotation, "sfView_getRotation")
	b.Bind(&fnViewMove, "sfView_move")
	b.Bind(&fnViewRotate, "sfView_rotate")
	b.Bind(&fnViewZoom, "sfView_zoom")
}

func registerRenderWindowFunctions(b *ffi.Binder) {
	b.Bind(&fnRenderWindowCreateUnicode, "sfRenderWindow_createUnicode")
	b.Bind(&fnRenderWindowDestroy, "sfRenderWindow_destroy")
	b.Bind(&fnRenderWindowClose, "sfRenderWindow_close")
	b.Bind(&fnRenderWindowIsOpen, "sfRenderWindow_isOpen")
	b.Bind(&fnRenderWindowGetSettings, "sfRenderWindow_getSettings")
	b.Bind(&fnRenderWindowPollEvent, "sfRenderWindow_pollEvent")
	b.Bind(&fnRenderWindowWaitEvent, "sfRenderWindow_waitEvent")
	b.Bind(&fnRenderWindowGetPosition, "sfRenderWindow_getPosition")
	b.Bind(&fnRenderWindowSetPosition, "sfRenderWindow_setPosition")
	b.Bind(&fnRenderWindowGetSize, "sfRenderWindow_getSize")
	b.Bind(&fnRenderWindowSetSize, "sfRenderWindow_setSize")
	b.Bind(&fnRenderWindowSetUnicodeTitle, "sfRenderWindow_setUnicodeTitle")
	b.Bind(&fnRenderWindowSetVisible, "sfRenderWindow_setVisible")
	b.Bind(&fnRenderWindowSetMouseCursorVisible, "sfRenderWindow_setMouseCursorVisible")
	b.Bind(&fnRenderWindowSetVerticalSyncEnabled, "sfRenderWindow_setVerticalSyncEnabled")
	b.Bind(&fnRenderWindowSetKeyRepeatEnabled, "sfRenderWindow_setKeyRepeatEnabled")
	b.Bind(&fnRenderWindowSetActive, "sfRenderWindow_setActive")
	b.Bind(&fnRenderWindowDisplay, "sfRenderWindow_display")
	b.Bind(&fnRenderWindowSetFramerateLimit, "sfRenderWindow_setFramerateLimit")
	b.Bind(&fnRenderWindowSetJoystickThreshold, "sfRenderWindow_setJoystickThreshold")
	b.Bind(&fnRenderWindowClear, "sfRenderWindow_clear")
	b.Bind(&fnRenderWindowSetView, "sfRenderWindow_setView")
	b.Bind(&fnRenderWindowGetView, "sfRenderWindow_getView")
	b.Bind(&fnRenderWindowGetDefaultView, "sfRenderWindow_getDefaultView")
	b.Bind(&fnRenderWindowGetViewport, "sfRenderWindow_getViewport")
	b.Bind(&fnRenderWindowMapPixelToCoords, "sfRenderWindow_mapPixelToCoords")
	b.Bind(&fnRenderWindowMapCoordsToPixel, "sfRenderWindow_mapCoordsToPixel")
	b.Bind(&fnRenderWindowDrawSprite, "sfRenderWindow_drawSprite")
	b.Bind(&fnRenderWindowCapture, "sfRenderWindow_capture")
}

func registerRenderTextureFunctions(b *ffi.Binder) {
	b.Bind(&fnRenderTextureCreate, "sfRenderTexture_create")
	b.Bind(&fnRenderTextureDestroy, "sfRenderTexture_destroy")
	b.Bind(&fnRenderTextureGetSize, "sfRenderTexture_getSize")
	b.Bind(&fnRenderTextureSetActive, "sfRenderTexture_setActive")
	b.Bind(&fnRenderTextureDisplay, "sfRenderTexture_display")
	b.Bind(&fnRenderTextureClear, "sfRenderTexture_clear")
	b.Bind(&fnRenderTextureSetView, "sfRenderTexture_setView")
	b.Bind(&fnRenderTextureGetView, "sfRenderTexture_getView")
	b.Bind(&fnRenderTextureGetDefaultView, "sfRenderTexture_getDefaultView")
	b.Bind(&fnRenderTextureDrawSprite, "sfRenderTexture_drawSprite")
	b.Bind(&fnRenderTextureGetTexture, "sfRenderTexture_getTexture")
	b.Bind(&fnRenderTextureSetSmooth, "sfRenderTexture_setSmooth")
	b.Bind(&fnRenderTextureIsSmooth, "sfRenderTexture_isSmooth")
}
