package graphics

import (
	"runtime"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

// Sprite draws a textured rectangle.
type Sprite struct {
	ref *handle.Ref
	// texture is the proxy given to SetTexture. Native sprites store only
	// the handle, so the sprite keeps the proxy alive.
	texture *Texture
}

func newSprite(op string, ptr uintptr, texture *Texture) (*Sprite, error) {
	if ptr == 0 {
		return nil, sferrors.Native(op, "native sprite creation failed")
	}
	s := &Sprite{ref: handle.Owned("sprite", ptr, func(p uintptr) { fnSpriteDestroy(p) }), texture: texture}
	handle.Track(s, s.ref)
	return s, nil
}

func (s *Sprite) ptr() uintptr {
	return handle.Must(s.ref, "Sprite", "NewSprite")
}

// NewSprite creates a sprite with no texture.
func NewSprite() (*Sprite, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newSprite("NewSprite", fnSpriteCreate(), nil)
}

// Copy returns a new sprite that shares the texture of s.
func (s *Sprite) Copy() (*Sprite, error) {
	return newSprite("Sprite.Copy", fnSpriteCopy(s.ptr()), s.texture)
}

// Destroy releases the sprite. The texture is not affected.
func (s *Sprite) Destroy() {
	if s.ref.Release() {
		s.texture = nil
	}
}

func (s *Sprite) SetPosition(p system.Vector2f) {
	fnSpriteSetPosition(s.ptr(), p)
}

// SetRotation sets the absolute rotation in degrees.
func (s *Sprite) SetRotation(angle float32) {
	fnSpriteSetRotation(s.ptr(), angle)
}

func (s *Sprite) SetScale(scale system.Vector2f) {
	fnSpriteSetScale(s.ptr(), scale)
}

// SetOrigin sets the local point that position, rotation and scale are
// relative to.
func (s *Sprite) SetOrigin(origin system.Vector2f) {
	fnSpriteSetOrigin(s.ptr(), origin)
}

func (s *Sprite) Position() system.Vector2f {
	return fnSpriteGetPosition(s.ptr())
}

func (s *Sprite) Rotation() float32 {
	return fnSpriteGetRotation(s.ptr())
}

func (s *Sprite) Scale() system.Vector2f {
	return fnSpriteGetScale(s.ptr())
}

func (s *Sprite) Origin() system.Vector2f {
	return fnSpriteGetOrigin(s.ptr())
}

func (s *Sprite) Move(offset system.Vector2f) {
	fnSpriteMove(s.ptr(), offset)
}

func (s *Sprite) Rotate(angle float32) {
	fnSpriteRotate(s.ptr(), angle)
}

// ScaleBy multiplies the current scale.
func (s *Sprite) ScaleBy(factors system.Vector2f) {
	fnSpriteScale(s.ptr(), factors)
}

func (s *Sprite) Transform() Transform {
	return fnSpriteGetTransform(s.ptr())
}

func (s *Sprite) InverseTransform() Transform {
	return fnSpriteGetInverseTransform(s.ptr())
}

// SetTexture assigns t, which may be const. When resetRect is true the
// texture rect is reset to the full size of t. A nil t is a usage error
// and leaves the sprite unchanged.
func (s *Sprite) SetTexture(t *Texture, resetRect bool) error {
	p := s.ptr()
	if t == nil {
		return sferrors.Usage("Sprite.SetTexture", "nil texture")
	}
	fnSpriteSetTexture(p, t.ptr(), ffi.BoolOf(resetRect))
	s.texture = t
	return nil
}

// Texture returns the sprite's texture: the proxy passed to SetTexture when
// the native handle still matches it, a const proxy otherwise, and nil when
// the sprite has none.
func (s *Sprite) Texture() *Texture {
	p := fnSpriteGetTexture(s.ptr())
	if p == 0 {
		return nil
	}
	if s.texture != nil && s.texture.ref.Raw() == p {
		return s.texture
	}
	return borrowedTexture(p, nil, s)
}

func (s *Sprite) SetTextureRect(r IntRect) {
	fnSpriteSetTextureRect(s.ptr(), r)
}

func (s *Sprite) TextureRect() IntRect {
	return fnSpriteGetTextureRect(s.ptr())
}

// SetColor sets the color the texture is modulated with.
func (s *Sprite) SetColor(c Color) {
	fnSpriteSetColor(s.ptr(), c)
}

func (s *Sprite) Color() Color {
	return fnSpriteGetColor(s.ptr())
}

// LocalBounds returns the bounds before the sprite's transform: the size of
// the texture rect, anchored at the origin.
func (s *Sprite) LocalBounds() FloatRect {
	r := s.TextureRect()
	return FloatRect{0, 0, float32(abs(r.Width)), float32(abs(r.Height))}
}

// GlobalBounds returns the bounds in world coordinates.
func (s *Sprite) GlobalBounds() FloatRect {
	return s.Transform().TransformRect(s.LocalBounds())
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Draw implements Drawable.
func (s *Sprite) Draw(target RenderTarget, states RenderStates) error {
	if target == nil {
		return sferrors.Usage("Sprite.Draw", "nil render target")
	}
	target.DrawSprite(s, states)
	runtime.KeepAlive(s)
	return nil
}
