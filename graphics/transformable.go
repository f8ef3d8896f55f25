package graphics

import (
	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/handle"
	"github.com/agiangrant/csfml/system"
)

// Transformable holds a position, rotation, scale and origin and combines
// them into a Transform. It draws nothing by itself.
type Transformable struct {
	ref *handle.Ref
}

func newTransformable(op string, ptr uintptr) (*Transformable, error) {
	if ptr == 0 {
		return nil, sferrors.Native(op, "native transformable creation failed")
	}
	t := &Transformable{ref: handle.Owned("transformable", ptr, func(p uintptr) { fnTransformableDestroy(p) })}
	handle.Track(t, t.ref)
	return t, nil
}

func (t *Transformable) ptr() uintptr {
	return handle.Must(t.ref, "Transformable", "NewTransformable")
}

func NewTransformable() (*Transformable, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	return newTransformable("NewTransformable", fnTransformableCreate())
}

func (t *Transformable) Copy() (*Transformable, error) {
	return newTransformable("Transformable.Copy", fnTransformableCopy(t.ptr()))
}

func (t *Transformable) Destroy() {
	t.ref.Release()
}

func (t *Transformable) SetPosition(p system.Vector2f) { fnTransformableSetPosition(t.ptr(), p) }
func (t *Transformable) SetRotation(angle float32)     { fnTransformableSetRotation(t.ptr(), angle) }
func (t *Transformable) SetScale(s system.Vector2f)    { fnTransformableSetScale(t.ptr(), s) }
func (t *Transformable) SetOrigin(o system.Vector2f)   { fnTransformableSetOrigin(t.ptr(), o) }

func (t *Transformable) Position() system.Vector2f { return fnTransformableGetPosition(t.ptr()) }
func (t *Transformable) Rotation() float32         { return fnTransformableGetRotation(t.ptr()) }
func (t *Transformable) Scale() system.Vector2f    { return fnTransformableGetScale(t.ptr()) }
func (t *Transformable) Origin() system.Vector2f   { return fnTransformableGetOrigin(t.ptr()) }

func (t *Transformable) Move(offset system.Vector2f)     { fnTransformableMove(t.ptr(), offset) }
func (t *Transformable) Rotate(angle float32)            { fnTransformableRotate(t.ptr(), angle) }
func (t *Transformable) ScaleBy(factors system.Vector2f) { fnTransformableScale(t.ptr(), factors) }

// Transform returns the combined transform of the object.
func (t *Transformable) Transform() Transform {
	return fnTransformableGetTransform(t.ptr())
}

func (t *Transformable) InverseTransform() Transform {
	return fnTransformableGetInverseTransform(t.ptr())
}
