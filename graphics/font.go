package graphics

import (
	"bytes"
	"io"
	"runtime"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

const fontConstructors = "FontFromFile, FontFromMemory, FontFromStream or DefaultFont"

// Glyph matches sfGlyph.
type Glyph struct {
	Advance     int32
	Bounds      IntRect
	TextureRect IntRect
}

// Font is a loaded typeface. Fonts read their source lazily as glyphs are
// requested, so the backing memory or stream lives as long as the font and
// every copy of it.
type Font struct {
	ref *handle.Ref
	src *fontSource
}

// fontSource is the memory or stream a font reads from, shared between a
// font and its copies.
type fontSource struct {
	refs   atomic.Int32
	data   []byte
	stream *system.InputStream
	native *system.InputStreamC
}

func (s *fontSource) retain() *fontSource {
	if s != nil {
		s.refs.Add(1)
	}
	return s
}

func (s *fontSource) release() {
	if s == nil || s.refs.Add(-1) > 0 {
		return
	}
	if s.stream != nil {
		s.stream.Close()
	}
	s.native = nil
	s.data = nil
}

// newFont takes over one reference to src.
func newFont(op string, ptr uintptr, src *fontSource) (*Font, error) {
	if ptr == 0 {
		src.release()
		return nil, sferrors.Native(op, "native font creation failed")
	}
	f := &Font{src: src}
	f.ref = handle.Owned("font", ptr, func(p uintptr) {
		fnFontDestroy(p)
		src.release()
	})
	handle.Track(f, f.ref)
	return f, nil
}

func (f *Font) ptr() uintptr {
	return handle.Must(f.ref, "Font", fontConstructors)
}

// FontFromFile loads a font file (TrueType, Type 1, CFF, OpenType and others
// supported by FreeType).
func FontFromFile(filename string) (*Font, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	name, err := ffi.CString(filename)
	if err != nil {
		return nil, err
	}
	ptr := fnFontCreateFromFile(name)
	runtime.KeepAlive(name)
	return newFont("FontFromFile", ptr, nil)
}

// FontFromMemory loads a font from data. The bytes are copied once and the
// copy is kept for the lifetime of the font.
func FontFromMemory(data []byte) (*Font, error) {
	return fontFromBytes("FontFromMemory", bytes.Clone(data))
}

func fontFromBytes(op string, data []byte) (*Font, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	src := (&fontSource{data: data}).retain()
	ptr := fnFontCreateFromMemory(ffi.BytesPtr(src.data), uintptr(len(src.data)))
	return newFont(op, ptr, src)
}

// FontFromStream loads a font read from r. The stream stays registered, and
// r is read from, until the font is destroyed.
func FontFromStream(r io.ReadSeeker) (*Font, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	s, err := system.NewInputStream(r)
	if err != nil {
		return nil, err
	}
	src := (&fontSource{stream: s, native: s.Native()}).retain()
	ptr := fnFontCreateFromStream(src.native)
	return newFont("FontFromStream", ptr, src)
}

// DefaultFont loads Go Regular, which needs no file on disk.
func DefaultFont() (*Font, error) {
	return fontFromBytes("DefaultFont", goregular.TTF)
}

// Copy returns an independent font sharing the same source.
func (f *Font) Copy() (*Font, error) {
	p := f.ptr()
	return newFont("Font.Copy", fnFontCopy(p), f.src.retain())
}

// Destroy releases the font and any stream backing it.
func (f *Font) Destroy() {
	f.ref.Release()
}

// Glyph returns the metrics of codePoint at characterSize pixels.
func (f *Font) Glyph(codePoint rune, characterSize uint32, bold bool) Glyph {
	return fnFontGetGlyph(f.ptr(), uint32(codePoint), characterSize, ffi.BoolOf(bold))
}

// Kerning returns the offset to apply between first and second.
func (f *Font) Kerning(first, second rune, characterSize uint32) int32 {
	return fnFontGetKerning(f.ptr(), uint32(first), uint32(second), characterSize)
}

func (f *Font) LineSpacing(characterSize uint32) int32 {
	return fnFontGetLineSpacing(f.ptr(), characterSize)
}

// Texture returns the glyph atlas for characterSize. The texture belongs to
// the font and is const.
func (f *Font) Texture(characterSize uint32) *Texture {
	return borrowedTexture(fnFontGetTexture(f.ptr(), characterSize), f.ref, f)
}
