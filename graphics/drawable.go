package graphics

import (
	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/system"
)

// Drawable is anything that can render itself onto a RenderTarget.
type Drawable interface {
	Draw(target RenderTarget, states RenderStates) error
}

// RenderTarget is a surface that draws: RenderWindow or RenderTexture.
type RenderTarget interface {
	Clear(c Color)
	Draw(d Drawable, states RenderStates) error
	DrawSprite(s *Sprite, states RenderStates)
	SetView(v *View)
	View() *View
	DefaultView() *View
	Size() system.Vector2u
}

// UnimplementedDrawable can be embedded by drawables that implement Draw
// later. Its Draw reports a not-implemented error.
type UnimplementedDrawable struct{}

func (UnimplementedDrawable) Draw(RenderTarget, RenderStates) error {
	return sferrors.New(sferrors.KindNotImplemented, "Drawable.Draw").
		Detail("drawable does not implement Draw").
		Build()
}

// drawOn is the shared body of RenderTarget.Draw.
func drawOn(target RenderTarget, d Drawable, states RenderStates) error {
	if d == nil {
		return sferrors.Usage("RenderTarget.Draw", "nil drawable")
	}
	return d.Draw(target, states)
}

var (
	_ Drawable     = UnimplementedDrawable{}
	_ Drawable     = (*Sprite)(nil)
	_ RenderTarget = (*RenderWindow)(nil)
	_ RenderTarget = (*RenderTexture)(nil)
)
