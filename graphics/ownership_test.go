package graphics

import (
	"errors"
	"strings"
	"testing"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

func TestOwnedDestroyOnce(t *testing.T) {
	f := installFakes(t)

	tex, err := NewTexture(4, 4)
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	tex.Destroy()
	tex.Destroy()
	if got := f.nativeCalls("sfTexture_destroy"); got != 1 {
		t.Errorf("sfTexture_destroy calls = %d, want 1", got)
	}

	img, err := NewImage(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.Destroy()
	img.Destroy()
	if got := f.nativeCalls("sfImage_destroy"); got != 1 {
		t.Errorf("sfImage_destroy calls = %d, want 1", got)
	}
}

func TestBorrowedTextureNeverDestroyed(t *testing.T) {
	f := installFakes(t)

	font, err := DefaultFont()
	if err != nil {
		t.Fatal(err)
	}
	defer font.Destroy()

	atlas := font.Texture(24)
	if atlas == nil || !atlas.IsConst() {
		t.Fatalf("Font.Texture() = %v, want a const texture", atlas)
	}
	atlas.Destroy()
	atlas.Destroy()
	if got := f.nativeCalls("sfTexture_destroy"); got != 0 {
		t.Errorf("borrowed texture teardown made %d destroy calls", got)
	}
}

func TestUseAfterDestroyPanics(t *testing.T) {
	installFakes(t)
	s, err := NewSprite()
	if err != nil {
		t.Fatal(err)
	}
	s.Destroy()

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, sferrors.ErrDestroyed) {
			t.Errorf("recover() = %v, want destroyed error", rec)
		}
	}()
	s.Texture()
}

func TestZeroValueShaderPanics(t *testing.T) {
	installFakes(t)
	var s Shader

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, sferrors.ErrUsage) {
			t.Fatalf("recover() = %v, want usage error", rec)
		}
		if !strings.Contains(err.Error(), "ShaderFromFile") {
			t.Errorf("error %q does not name the constructors", err)
		}
	}()
	s.SetFloatParameter("time", 1)
}

func TestConstructorFailureIsNativeError(t *testing.T) {
	f := installFakes(t)
	f.failCreate = true

	if _, err := NewTexture(1, 1); !errors.Is(err, sferrors.ErrNative) {
		t.Errorf("NewTexture() error = %v", err)
	}
	if _, err := NewSprite(); !errors.Is(err, sferrors.ErrNative) {
		t.Errorf("NewSprite() error = %v", err)
	}
	if _, err := ShaderFromMemory("", "void main() {}"); !errors.Is(err, sferrors.ErrNative) {
		t.Errorf("ShaderFromMemory() error = %v", err)
	}
}

func TestShaderRequiresAStage(t *testing.T) {
	f := installFakes(t)
	if _, err := ShaderFromMemory("", ""); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("ShaderFromMemory() error = %v", err)
	}
	if f.nativeCalls("sfShader_createFromMemory") != 0 {
		t.Error("native create called without any stage")
	}
}

func TestShaderKeepsTextures(t *testing.T) {
	installFakes(t)
	sh, err := ShaderFromMemory("", "uniform sampler2D tex;")
	if err != nil {
		t.Fatal(err)
	}
	tex, err := NewTexture(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()

	sh.SetTextureParameter("tex", tex)
	if sh.textures["tex"] != tex {
		t.Error("shader does not reference its texture uniform")
	}
	sh.Destroy()
	if sh.textures != nil {
		t.Error("Destroy() kept texture references")
	}
}

func TestSpriteTextureIdentity(t *testing.T) {
	f := installFakes(t)

	s, err := NewSprite()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	if s.Texture() != nil {
		t.Error("Texture() on a fresh sprite should be nil")
	}

	tex, err := NewTexture(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()

	if err := s.SetTexture(tex, true); err != nil {
		t.Fatalf("SetTexture() error = %v", err)
	}
	if got := s.Texture(); got != tex {
		t.Errorf("Texture() = %p, want the proxy passed to SetTexture %p", got, tex)
	}

	cp, err := s.Copy()
	if err != nil {
		t.Fatal(err)
	}
	defer cp.Destroy()
	if cp.Texture() != tex {
		t.Error("Copy() does not share the texture")
	}

	// A texture assigned behind the proxy's back comes back borrowed.
	f.spriteTexture[s.ref.Raw()] = f.targetTexture
	got := s.Texture()
	if got == nil || got == tex || !got.IsConst() {
		t.Errorf("Texture() = %v, want a new const proxy", got)
	}
}

func TestSpriteDestroyKeepsTexture(t *testing.T) {
	f := installFakes(t)
	s, _ := NewSprite()
	tex, _ := NewTexture(1, 1)
	defer tex.Destroy()

	if err := s.SetTexture(tex, false); err != nil {
		t.Fatal(err)
	}
	s.Destroy()
	if f.nativeCalls("sfTexture_destroy") != 0 {
		t.Error("destroying a sprite destroyed its texture")
	}
	if tex.Size() != (system.Vector2u{X: 1, Y: 1}) {
		t.Error("texture unusable after sprite destroy")
	}
}

func TestFontSourceOutlivesOriginal(t *testing.T) {
	f := installFakes(t)

	font, err := FontFromMemory([]byte("not really a font"))
	if err != nil {
		t.Fatal(err)
	}
	if string(f.fontData) != "not really a font" {
		t.Errorf("native received %q", f.fontData)
	}
	cp, err := font.Copy()
	if err != nil {
		t.Fatal(err)
	}
	font.Destroy()
	if cp.src == nil || cp.src.data == nil {
		t.Fatal("copy lost its source after the original was destroyed")
	}
	cp.Destroy()
	if cp.src.data != nil {
		t.Error("source not released after the last font")
	}
	if got := f.nativeCalls("sfFont_destroy"); got != 2 {
		t.Errorf("sfFont_destroy calls = %d, want 2", got)
	}
}

// expectDestroyed runs fn and checks that it panics with a destroyed error.
func expectDestroyed(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, sferrors.ErrDestroyed) {
			t.Errorf("%s: recover() = %v, want destroyed error", name, rec)
		}
	}()
	fn()
}

func TestBorrowedHandlesDieWithOwner(t *testing.T) {
	f := installFakes(t)

	rt, err := NewRenderTexture(8, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	target := rt.Texture()
	view := rt.View()
	def := rt.DefaultView()

	font, err := DefaultFont()
	if err != nil {
		t.Fatal(err)
	}
	atlas := font.Texture(16)

	rw, err := NewRenderWindow(window.NewVideoMode(32, 32), "owner", window.StyleDefault, nil)
	if err != nil {
		t.Fatal(err)
	}
	rwView := rw.View()
	rwDefault := rw.DefaultView()

	// Usable while the owners are alive.
	target.Size()
	atlas.Size()
	if rwView.Viewport() != fullViewport {
		t.Errorf("RenderWindow.View().Viewport() = %v", rwView.Viewport())
	}

	rt.Destroy()
	font.Destroy()
	rw.Destroy()

	expectDestroyed(t, "RenderTexture.Texture", func() { target.Size() })
	expectDestroyed(t, "RenderTexture.View", func() { view.Center() })
	expectDestroyed(t, "RenderTexture.DefaultView", func() { def.Viewport() })
	expectDestroyed(t, "Font.Texture", func() { atlas.Size() })
	expectDestroyed(t, "RenderWindow.View", func() { rwView.Copy() })
	expectDestroyed(t, "RenderWindow.DefaultView", func() { rwDefault.Size() })

	if got := f.nativeCalls("sfTexture_destroy", "sfView_destroy"); got != 0 {
		t.Errorf("owner teardown destroyed %d borrowed handles", got)
	}
}

func TestSpriteSetNilTexture(t *testing.T) {
	f := installFakes(t)
	s, err := NewSprite()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	tex, err := NewTexture(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()
	if err := s.SetTexture(tex, true); err != nil {
		t.Fatal(err)
	}

	if err := s.SetTexture(nil, true); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("SetTexture(nil) error = %v, want usage error", err)
	}
	if s.Texture() != tex || f.spriteTexture[s.ref.Raw()] != tex.ref.Raw() {
		t.Error("SetTexture(nil) changed the sprite's texture")
	}
}

func TestTextureUpdateFromNilSource(t *testing.T) {
	f := installFakes(t)
	tex, err := NewTexture(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Destroy()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"UpdateFromImage", func() error { return tex.UpdateFromImage(nil, 0, 0) }},
		{"UpdateFromWindow", func() error { return tex.UpdateFromWindow(nil, 0, 0) }},
		{"UpdateFromRenderWindow", func() error { return tex.UpdateFromRenderWindow(nil, 0, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, sferrors.ErrUsage) {
				t.Errorf("%s(nil) error = %v, want usage error", tt.name, err)
			}
		})
	}
	if got := f.nativeCalls(textureMutators...); got != 0 {
		t.Errorf("nil sources made %d native calls", got)
	}
}

func TestFileNameWithNUL(t *testing.T) {
	installFakes(t)
	// The file loaders are not faked: reaching native code would panic.
	if _, err := ImageFromFile("bad\x00.png"); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("ImageFromFile() error = %v, want usage error", err)
	}
	if _, err := TextureFromFile("bad\x00.png", nil); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("TextureFromFile() error = %v, want usage error", err)
	}
	if _, err := FontFromFile("bad\x00.ttf"); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("FontFromFile() error = %v, want usage error", err)
	}
	if _, err := ShaderFromMemory("void main() {}\x00", ""); !errors.Is(err, sferrors.ErrUsage) {
		t.Errorf("ShaderFromMemory() error = %v, want usage error", err)
	}
}

func TestSpriteBounds(t *testing.T) {
	f := installFakes(t)
	s, err := NewSprite()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	s.SetTextureRect(IntRect{Left: 4, Top: 4, Width: -10, Height: 6})
	if got, want := s.LocalBounds(), (FloatRect{0, 0, 10, 6}); got != want {
		t.Errorf("LocalBounds() = %v, want %v", got, want)
	}

	f.spriteXform = Identity.Translate(5, -2).Scale(2, 2)
	if got, want := s.GlobalBounds(), (FloatRect{5, -2, 20, 12}); got != want {
		t.Errorf("GlobalBounds() = %v, want %v", got, want)
	}
}
