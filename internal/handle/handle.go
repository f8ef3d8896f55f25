// Package handle tracks ownership of opaque native handles.
//
// A Ref is either owned, in which case releasing it calls the native destroy
// function exactly once, or borrowed, in which case releasing it only clears
// the local reference. Borrowed refs are const: callers must not mutate the
// resource through them.
package handle

import (
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
)

// Ref is an ownership-tagged native handle.
type Ref struct {
	ptr     atomic.Uintptr
	kind    string
	release func(uintptr) // nil when borrowed
	owner   any           // borrowed refs pin the proxy that owns the resource
	parent  *Ref          // owner's ref; a borrowed handle dies with it
	cleanup runtime.Cleanup
	tracked bool
}

// Owned wraps a handle this process must release.
func Owned(kind string, ptr uintptr, release func(uintptr)) *Ref {
	r := &Ref{kind: kind, release: release}
	r.ptr.Store(ptr)
	return r
}

// Borrowed wraps a handle whose lifetime belongs to owner (or to the native
// library when owner is nil). parent is the owner's ref: once it is
// released the borrowed handle is dangling and Ptr panics.
func Borrowed(kind string, ptr uintptr, parent *Ref, owner any) *Ref {
	r := &Ref{kind: kind, owner: owner, parent: parent}
	r.ptr.Store(ptr)
	return r
}

// Track releases r once obj becomes unreachable. obj must be the proxy that
// holds r, and r must not reference obj.
func Track[T any](obj *T, r *Ref) {
	if r.release == nil {
		return
	}
	r.cleanup = runtime.AddCleanup(obj, func(r *Ref) { r.Release() }, r)
	r.tracked = true
}

// Ptr returns the native handle. It panics when the handle has been released;
// using a destroyed resource is a programming error.
func (r *Ref) Ptr() uintptr {
	if r == nil {
		panic(sferrors.Usage("Ptr", "resource was not created through a constructor"))
	}
	p := r.Raw()
	if p == 0 {
		panic(sferrors.Destroyed("Ptr", r.kind))
	}
	return p
}

// Must is Ptr for proxy methods. A nil r means the proxy is a zero value,
// and the panic names the constructors that should have been used.
func Must(r *Ref, kind, constructors string) uintptr {
	if r == nil {
		panic(sferrors.New(sferrors.KindUsage, kind).
			Resource(kind).
			Detail("use " + constructors).
			Build())
	}
	return r.Ptr()
}

// Raw returns the handle without checking, 0 once r or its parent is
// released.
func (r *Ref) Raw() uintptr {
	if r == nil {
		return 0
	}
	if r.parent != nil && r.parent.Raw() == 0 {
		return 0
	}
	return r.ptr.Load()
}

// Owned reports whether releasing r calls the native destroy function.
func (r *Ref) Owned() bool {
	return r != nil && r.release != nil
}

// Const reports whether r is borrowed and therefore read-only.
func (r *Ref) Const() bool {
	return r != nil && r.release == nil
}

// Released reports whether r no longer refers to a live handle.
func (r *Ref) Released() bool {
	return r.Raw() == 0
}

// Mutable returns a const error for borrowed refs so mutators can bail out
// before touching native memory they do not own.
func (r *Ref) Mutable(op string) error {
	if r.Const() {
		return sferrors.Const(op, r.kind)
	}
	return nil
}

// Release clears the handle and, for owned refs, calls the native destroy
// function. It reports whether the destroy function ran. Only the first call
// can return true.
func (r *Ref) Release() bool {
	if r == nil {
		return false
	}
	p := r.ptr.Swap(0)
	if p == 0 {
		return false
	}
	if r.tracked {
		r.cleanup.Stop()
	}
	r.owner = nil
	if r.release == nil {
		return false
	}
	r.release(p)
	ffi.Logger().Debug("handle: released", zap.String("kind", r.kind), zap.Uintptr("ptr", p))
	return true
}
