package graphics

import (
	"bytes"
	"image"
	"io"
	"runtime"
	"unsafe"

	"golang.org/x/image/draw"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

const imageConstructors = "NewImage, ImageFromColor, ImageFromPixels, ImageFromFile, ImageFromMemory, ImageFromStream or ImageFromGo"

// Image is a CPU-side RGBA pixel buffer.
type Image struct {
	ref *handle.Ref
}

func newImage(op string, ptr uintptr) (*Image, error) {
	if ptr == 0 {
		return nil, sferrors.Native(op, "native image creation failed")
	}
	img := &Image{ref: handle.Owned("image", ptr, func(p uintptr) { fnImageDestroy(p) })}
	handle.Track(img, img.ref)
	return img, nil
}

func (img *Image) ptr() uintptr {
	return handle.Must(img.ref, "Image", imageConstructors)
}

// NewImage creates a black, opaque image.
func NewImage(width, height uint32) (*Image, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newImage("NewImage", fnImageCreate(width, height))
}

// ImageFromColor creates an image filled with c.
func ImageFromColor(width, height uint32, c Color) (*Image, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newImage("ImageFromColor", fnImageCreateFromColor(width, height, c))
}

// ImageFromPixels copies width*height RGBA pixels.
func ImageFromPixels(width, height uint32, pixels []byte) (*Image, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	if uint64(len(pixels)) < uint64(width)*uint64(height)*4 {
		return nil, sferrors.Usage("ImageFromPixels", "pixel buffer is smaller than width*height*4")
	}
	ptr := fnImageCreateFromPixels(width, height, ffi.BytesPtr(pixels))
	runtime.KeepAlive(pixels)
	return newImage("ImageFromPixels", ptr)
}

// ImageFromFile decodes an image file (bmp, png, tga, jpg, gif, psd, hdr, pic).
func ImageFromFile(filename string) (*Image, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	name, err := ffi.CString(filename)
	if err != nil {
		return nil, err
	}
	ptr := fnImageCreateFromFile(name)
	runtime.KeepAlive(name)
	return newImage("ImageFromFile", ptr)
}

// ImageFromMemory decodes an encoded image held in data.
func ImageFromMemory(data []byte) (*Image, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	ptr := fnImageCreateFromMemory(ffi.BytesPtr(data), uintptr(len(data)))
	runtime.KeepAlive(data)
	return newImage("ImageFromMemory", ptr)
}

// ImageFromStream decodes an encoded image read from r.
func ImageFromStream(r io.ReadSeeker) (*Image, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	s, err := system.NewInputStream(r)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return newImage("ImageFromStream", fnImageCreateFromStream(s.Native()))
}

// ImageFromGo converts any image.Image.
func ImageFromGo(src image.Image) (*Image, error) {
	b := src.Bounds()
	dst, ok := src.(*image.NRGBA)
	if !ok || dst.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		dst = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	}
	return ImageFromPixels(uint32(b.Dx()), uint32(b.Dy()), dst.Pix)
}

// Copy returns an independent copy.
func (img *Image) Copy() (*Image, error) {
	return newImage("Image.Copy", fnImageCopy(img.ptr()))
}

// Destroy releases the image. Further use panics.
func (img *Image) Destroy() {
	img.ref.Release()
}

// SaveToFile encodes the image; the format is chosen by extension.
func (img *Image) SaveToFile(filename string) error {
	name, err := ffi.CString(filename)
	if err != nil {
		return err
	}
	ok := fnImageSaveToFile(img.ptr(), name)
	runtime.KeepAlive(name)
	if !ok.Go() {
		return sferrors.New(sferrors.KindNative, "Image.SaveToFile").
			Resource("image").
			Detail("save failed: " + filename).
			Build()
	}
	return nil
}

func (img *Image) Size() system.Vector2u {
	return fnImageGetSize(img.ptr())
}

func (img *Image) Width() uint32 {
	return img.Size().X
}

func (img *Image) Height() uint32 {
	return img.Size().Y
}

// CreateMaskFromColor sets the alpha of every pixel equal to c to alpha.
func (img *Image) CreateMaskFromColor(c Color, alpha uint8) {
	fnImageCreateMaskFromColor(img.ptr(), c, alpha)
}

// CopyImage blits sourceRect of source to (destX, destY). A zero rect copies
// all of source.
func (img *Image) CopyImage(source *Image, destX, destY uint32, sourceRect IntRect, applyAlpha bool) {
	fnImageCopyImage(img.ptr(), source.ptr(), destX, destY, sourceRect, ffi.BoolOf(applyAlpha))
	runtime.KeepAlive(source)
}

func (img *Image) SetPixel(x, y uint32, c Color) {
	fnImageSetPixel(img.ptr(), x, y, c)
}

func (img *Image) Pixel(x, y uint32) Color {
	return fnImageGetPixel(img.ptr(), x, y)
}

// Pixels returns a copy of the RGBA pixel buffer, row by row.
func (img *Image) Pixels() []byte {
	p := img.ptr()
	size := fnImageGetSize(p)
	n := int(size.X) * int(size.Y) * 4
	src := fnImageGetPixelsPtr(p)
	if src == 0 || n == 0 {
		return nil
	}
	out := bytes.Clone(unsafe.Slice((*byte)(unsafe.Pointer(src)), n))
	runtime.KeepAlive(img)
	return out
}

// ToGo copies the pixels into an *image.NRGBA.
func (img *Image) ToGo() *image.NRGBA {
	size := img.Size()
	out := image.NewNRGBA(image.Rect(0, 0, int(size.X), int(size.Y)))
	copy(out.Pix, img.Pixels())
	return out
}

func (img *Image) FlipHorizontally() {
	fnImageFlipHorizontally(img.ptr())
}

func (img *Image) FlipVertically() {
	fnImageFlipVertically(img.ptr())
}
