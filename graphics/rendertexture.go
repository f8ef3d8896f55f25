package graphics

import (
	"runtime"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

// RenderTexture is an offscreen render target whose result is a texture.
type RenderTexture struct {
	ref *handle.Ref
	// viewport of the view last passed to SetView
	viewport FloatRect
}

// NewRenderTexture creates an offscreen target, with a depth buffer when
// depthBuffer is set.
func NewRenderTexture(width, height uint32, depthBuffer bool) (*RenderTexture, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	ptr := fnRenderTextureCreate(width, height, ffi.BoolOf(depthBuffer))
	if ptr == 0 {
		return nil, sferrors.Native("NewRenderTexture", "render textures are not supported by the driver")
	}
	rt := &RenderTexture{
		ref:      handle.Owned("render texture", ptr, func(p uintptr) { fnRenderTextureDestroy(p) }),
		viewport: fullViewport,
	}
	handle.Track(rt, rt.ref)
	return rt, nil
}

func (rt *RenderTexture) ptr() uintptr {
	return handle.Must(rt.ref, "RenderTexture", "NewRenderTexture")
}

func (rt *RenderTexture) Destroy() {
	rt.ref.Release()
}

func (rt *RenderTexture) Size() system.Vector2u {
	return fnRenderTextureGetSize(rt.ptr())
}

func (rt *RenderTexture) SetActive(active bool) error {
	if !fnRenderTextureSetActive(rt.ptr(), ffi.BoolOf(active)).Go() {
		return sferrors.Native("RenderTexture.SetActive", "failed to change the active context")
	}
	return nil
}

// Display copies what was drawn into the target texture.
func (rt *RenderTexture) Display() {
	fnRenderTextureDisplay(rt.ptr())
}

func (rt *RenderTexture) Clear(c Color) {
	fnRenderTextureClear(rt.ptr(), c)
}

func (rt *RenderTexture) Draw(d Drawable, states RenderStates) error {
	return drawOn(rt, d, states)
}

func (rt *RenderTexture) DrawSprite(s *Sprite, states RenderStates) {
	fnRenderTextureDrawSprite(rt.ptr(), s.ptr(), states.native())
	runtime.KeepAlive(s)
	runtime.KeepAlive(states)
}

func (rt *RenderTexture) SetView(v *View) {
	fnRenderTextureSetView(rt.ptr(), v.ptr())
	rt.viewport = v.viewport
	runtime.KeepAlive(v)
}

func (rt *RenderTexture) View() *View {
	return borrowedView(fnRenderTextureGetView(rt.ptr()), rt.ref, rt, rt.viewport)
}

func (rt *RenderTexture) DefaultView() *View {
	return borrowedView(fnRenderTextureGetDefaultView(rt.ptr()), rt.ref, rt, fullViewport)
}

// Texture returns the target texture. It is const and valid while rt is.
func (rt *RenderTexture) Texture() *Texture {
	return borrowedTexture(fnRenderTextureGetTexture(rt.ptr()), rt.ref, rt)
}

// SetSmooth toggles filtering of the target texture. The texture returned by
// Texture is const, so this is the way to change it.
func (rt *RenderTexture) SetSmooth(smooth bool) {
	fnRenderTextureSetSmooth(rt.ptr(), ffi.BoolOf(smooth))
}

func (rt *RenderTexture) IsSmooth() bool {
	return fnRenderTextureIsSmooth(rt.ptr()).Go()
}
