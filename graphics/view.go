package graphics

import (
	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

// View is a 2D camera: the region of the world shown, and where on the
// target it is shown.
//
// Views returned by RenderWindow.View, DefaultView and the RenderTexture
// equivalents belong to the target and are const. Copy one to modify it,
// then pass the copy to SetView. They are invalid once the target is
// destroyed.
type View struct {
	ref *handle.Ref
	// sfFloatRect comes back in two SSE registers on System V, which
	// purego cannot read, so the viewport is kept on this side.
	viewport FloatRect
}

// fullViewport covers the whole target.
var fullViewport = FloatRect{0, 0, 1, 1}

func newView(op string, ptr uintptr, viewport FloatRect) (*View, error) {
	if ptr == 0 {
		return nil, sferrors.Native(op, "native view creation failed")
	}
	v := &View{ref: handle.Owned("view", ptr, func(p uintptr) { fnViewDestroy(p) }), viewport: viewport}
	handle.Track(v, v.ref)
	return v, nil
}

func borrowedView(ptr uintptr, parent *handle.Ref, owner any, viewport FloatRect) *View {
	if ptr == 0 {
		return nil
	}
	return &View{ref: handle.Borrowed("view", ptr, parent, owner), viewport: viewport}
}

func (v *View) ptr() uintptr {
	return handle.Must(v.ref, "View", "NewView or ViewFromRect")
}

func (v *View) mutable(op string) (uintptr, error) {
	p := v.ptr()
	if err := v.ref.Mutable(op); err != nil {
		return 0, err
	}
	return p, nil
}

// NewView creates a view covering (0, 0, 1000, 1000).
func NewView() (*View, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newView("NewView", fnViewCreate(), fullViewport)
}

// ViewFromRect creates a view showing r.
func ViewFromRect(r FloatRect) (*View, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newView("ViewFromRect", fnViewCreateFromRect(r), fullViewport)
}

// Copy returns an owned, mutable copy.
func (v *View) Copy() (*View, error) {
	return newView("View.Copy", fnViewCopy(v.ptr()), v.viewport)
}

func (v *View) Destroy() {
	v.ref.Release()
}

// IsConst reports whether the view belongs to a render target.
func (v *View) IsConst() bool {
	return v.ref.Const()
}

func (v *View) SetCenter(center system.Vector2f) error {
	p, err := v.mutable("View.SetCenter")
	if err != nil {
		return err
	}
	fnViewSetCenter(p, center)
	return nil
}

func (v *View) SetSize(size system.Vector2f) error {
	p, err := v.mutable("View.SetSize")
	if err != nil {
		return err
	}
	fnViewSetSize(p, size)
	return nil
}

func (v *View) SetRotation(angle float32) error {
	p, err := v.mutable("View.SetRotation")
	if err != nil {
		return err
	}
	fnViewSetRotation(p, angle)
	return nil
}

// SetViewport sets the target area, as ratios of the target size.
func (v *View) SetViewport(viewport FloatRect) error {
	p, err := v.mutable("View.SetViewport")
	if err != nil {
		return err
	}
	fnViewSetViewport(p, viewport)
	v.viewport = viewport
	return nil
}

// Reset shows r and clears the rotation. The viewport is kept.
func (v *View) Reset(r FloatRect) error {
	p, err := v.mutable("View.Reset")
	if err != nil {
		return err
	}
	fnViewReset(p, r)
	return nil
}

func (v *View) Move(offset system.Vector2f) error {
	p, err := v.mutable("View.Move")
	if err != nil {
		return err
	}
	fnViewMove(p, offset)
	return nil
}

func (v *View) Rotate(angle float32) error {
	p, err := v.mutable("View.Rotate")
	if err != nil {
		return err
	}
	fnViewRotate(p, angle)
	return nil
}

// Zoom scales the view size by factor; values above 1 zoom out.
func (v *View) Zoom(factor float32) error {
	p, err := v.mutable("View.Zoom")
	if err != nil {
		return err
	}
	fnViewZoom(p, factor)
	return nil
}

func (v *View) Center() system.Vector2f {
	return fnViewGetCenter(v.ptr())
}

func (v *View) Size() system.Vector2f {
	return fnViewGetSize(v.ptr())
}

func (v *View) Rotation() float32 {
	return fnViewGetRotation(v.ptr())
}

// Viewport returns the target area set by SetViewport, (0, 0, 1, 1) by
// default.
func (v *View) Viewport() FloatRect {
	v.ptr()
	return v.viewport
}
