package graphics

import (
	"io"
	"runtime"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

const textureConstructors = "NewTexture, TextureFromFile, TextureFromMemory, TextureFromStream or TextureFromImage"

// Texture is an image living in graphics memory.
//
// Textures handed out by a Font, a RenderTexture or a Sprite that did not get
// them through SetTexture are borrowed. Borrowed textures are const: every
// Update and Set method returns an error and leaves the texture untouched.
type Texture struct {
	ref *handle.Ref
}

func newTexture(op string, ptr uintptr) (*Texture, error) {
	if ptr == 0 {
		return nil, sferrors.Native(op, "native texture creation failed")
	}
	t := &Texture{ref: handle.Owned("texture", ptr, func(p uintptr) { fnTextureDestroy(p) })}
	handle.Track(t, t.ref)
	return t, nil
}

// borrowedTexture wraps a texture owned by owner. It returns nil for a null
// pointer.
func borrowedTexture(ptr uintptr, parent *handle.Ref, owner any) *Texture {
	if ptr == 0 {
		return nil
	}
	return &Texture{ref: handle.Borrowed("texture", ptr, parent, owner)}
}

func (t *Texture) ptr() uintptr {
	return handle.Must(t.ref, "Texture", textureConstructors)
}

// mutable returns the handle, or a const error for borrowed textures.
func (t *Texture) mutable(op string) (uintptr, error) {
	p := t.ptr()
	if err := t.ref.Mutable(op); err != nil {
		return 0, err
	}
	return p, nil
}

// NewTexture creates an empty texture.
func NewTexture(width, height uint32) (*Texture, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newTexture("NewTexture", fnTextureCreate(width, height))
}

// TextureFromFile loads a texture. area selects a sub-rectangle and may be
// nil for the whole image.
func TextureFromFile(filename string, area *IntRect) (*Texture, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	name, err := ffi.CString(filename)
	if err != nil {
		return nil, err
	}
	ptr := fnTextureCreateFromFile(name, area)
	runtime.KeepAlive(name)
	return newTexture("TextureFromFile", ptr)
}

// TextureFromMemory loads a texture from an encoded image in data.
func TextureFromMemory(data []byte, area *IntRect) (*Texture, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	ptr := fnTextureCreateFromMemory(ffi.BytesPtr(data), uintptr(len(data)), area)
	runtime.KeepAlive(data)
	return newTexture("TextureFromMemory", ptr)
}

// TextureFromStream loads a texture from an encoded image read from r.
func TextureFromStream(r io.ReadSeeker, area *IntRect) (*Texture, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	s, err := system.NewInputStream(r)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return newTexture("TextureFromStream", fnTextureCreateFromStream(s.Native(), area))
}

// TextureFromImage uploads img.
func TextureFromImage(img *Image, area *IntRect) (*Texture, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	ptr := fnTextureCreateFromImage(img.ptr(), area)
	runtime.KeepAlive(img)
	return newTexture("TextureFromImage", ptr)
}

// MaximumSize returns the largest texture dimension the driver accepts.
func MaximumSize() (uint32, error) {
	if err := initLibrary(); err != nil {
		return 0, err
	}
	return fnTextureGetMaximumSize(), nil
}

// Copy returns an owned copy. Copying a const texture is allowed.
func (t *Texture) Copy() (*Texture, error) {
	return newTexture("Texture.Copy", fnTextureCopy(t.ptr()))
}

// Destroy releases the texture. For borrowed textures it only drops the
// reference.
func (t *Texture) Destroy() {
	t.ref.Release()
}

// IsConst reports whether the texture is borrowed and read-only.
func (t *Texture) IsConst() bool {
	return t.ref.Const()
}

func (t *Texture) Size() system.Vector2u {
	return fnTextureGetSize(t.ptr())
}

func (t *Texture) Width() uint32 {
	return t.Size().X
}

func (t *Texture) Height() uint32 {
	return t.Size().Y
}

// CopyToImage downloads the texture into a new Image.
func (t *Texture) CopyToImage() (*Image, error) {
	return newImage("Texture.CopyToImage", fnTextureCopyToImage(t.ptr()))
}

// UpdateFromPixels uploads a width*height RGBA block at (x, y).
func (t *Texture) UpdateFromPixels(pixels []byte, width, height, x, y uint32) error {
	p, err := t.mutable("Texture.UpdateFromPixels")
	if err != nil {
		return err
	}
	if uint64(len(pixels)) < uint64(width)*uint64(height)*4 {
		return sferrors.Usage("Texture.UpdateFromPixels", "pixel buffer is smaller than width*height*4")
	}
	fnTextureUpdateFromPixels(p, ffi.BytesPtr(pixels), width, height, x, y)
	runtime.KeepAlive(pixels)
	return nil
}

// UpdateFromImage uploads img at (x, y). A nil img is a usage error.
func (t *Texture) UpdateFromImage(img *Image, x, y uint32) error {
	p, err := t.mutable("Texture.UpdateFromImage")
	if err != nil {
		return err
	}
	if img == nil {
		return sferrors.Usage("Texture.UpdateFromImage", "nil image")
	}
	fnTextureUpdateFromImage(p, img.ptr(), x, y)
	runtime.KeepAlive(img)
	return nil
}

// UpdateFromWindow copies the contents of w at (x, y). A nil w is a usage
// error.
func (t *Texture) UpdateFromWindow(w *window.Window, x, y uint32) error {
	p, err := t.mutable("Texture.UpdateFromWindow")
	if err != nil {
		return err
	}
	if w == nil {
		return sferrors.Usage("Texture.UpdateFromWindow", "nil window")
	}
	fnTextureUpdateFromWindow(p, w.Native(), x, y)
	runtime.KeepAlive(w)
	return nil
}

// UpdateFromRenderWindow copies the contents of rw at (x, y). A nil rw is
// a usage error.
func (t *Texture) UpdateFromRenderWindow(rw *RenderWindow, x, y uint32) error {
	p, err := t.mutable("Texture.UpdateFromRenderWindow")
	if err != nil {
		return err
	}
	if rw == nil {
		return sferrors.Usage("Texture.UpdateFromRenderWindow", "nil render window")
	}
	fnTextureUpdateFromRenderWindow(p, rw.ptr(), x, y)
	runtime.KeepAlive(rw)
	return nil
}

// SetSmooth toggles bilinear filtering.
func (t *Texture) SetSmooth(smooth bool) error {
	p, err := t.mutable("Texture.SetSmooth")
	if err != nil {
		return err
	}
	fnTextureSetSmooth(p, ffi.BoolOf(smooth))
	return nil
}

func (t *Texture) IsSmooth() bool {
	return fnTextureIsSmooth(t.ptr()).Go()
}

// SetRepeated toggles texture wrapping outside [0, size].
func (t *Texture) SetRepeated(repeated bool) error {
	p, err := t.mutable("Texture.SetRepeated")
	if err != nil {
		return err
	}
	fnTextureSetRepeated(p, ffi.BoolOf(repeated))
	return nil
}

func (t *Texture) IsRepeated() bool {
	return fnTextureIsRepeated(t.ptr()).Go()
}

// Bind makes t the current OpenGL texture. Binding only reads the texture,
// so const textures may be bound.
func (t *Texture) Bind() {
	fnTextureBind(t.ptr())
}

// UnbindTexture clears the current OpenGL texture.
func UnbindTexture() {
	if initLibrary() != nil {
		return
	}
	fnTextureBind(0)
}
