package graphics

import (
	"errors"
	"testing"

	sferrors "github.com/agiangrant/csfml/errors"
)

// pending embeds the base and never overrides Draw.
type pending struct {
	UnimplementedDrawable
}

// twice draws its sprite two times, shifted.
type twice struct {
	sprite *Sprite
}

func (d twice) Draw(target RenderTarget, states RenderStates) error {
	if err := d.sprite.Draw(target, states); err != nil {
		return err
	}
	states.Transform = states.Transform.Translate(10, 0)
	return d.sprite.Draw(target, states)
}

func TestUnimplementedDrawable(t *testing.T) {
	installFakes(t)
	rt, err := NewRenderTexture(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Destroy()

	err = rt.Draw(pending{}, DefaultRenderStates())
	if !errors.Is(err, sferrors.ErrNotImplemented) {
		t.Errorf("Draw() error = %v, want not implemented", err)
	}
	if err := rt.Draw(nil, DefaultRenderStates()); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("Draw(nil) error = %v", err)
	}
}

func TestDrawSpriteMarshalsStates(t *testing.T) {
	f := installFakes(t)
	rt, err := NewRenderTexture(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Destroy()
	s, err := NewSprite()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()
	tex, err := NewTexture(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()

	states := DefaultRenderStates()
	states.BlendMode = BlendAdd
	states.Texture = tex

	if err := rt.Draw(twice{sprite: s}, states); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(f.drawn) != 2 {
		t.Fatalf("drawSprite calls = %d, want 2", len(f.drawn))
	}
	first, second := f.drawn[0], f.drawn[1]
	if first.BlendMode != BlendAdd || first.Texture != tex.ref.Raw() || first.Shader != 0 {
		t.Errorf("first states = %+v", first)
	}
	if first.Transform != Identity {
		t.Errorf("first transform = %v", first.Transform)
	}
	if second.Transform.Matrix[2] != 10 {
		t.Errorf("second transform = %v, want a translation by 10", second.Transform)
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendMultiply.String() != "multiply" || BlendMode(9).String() != "unknown" {
		t.Error("unexpected blend mode names")
	}
}
