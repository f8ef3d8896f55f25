// Package errors defines the structured error type returned by the csfml
// bindings.
//
// Every error carries a Kind. Callers match on the kind with the standard
// library's errors.Is and the sentinel values below:
//
//	if errors.Is(err, sferrors.ErrConst) { ... }
package errors

import (
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindUsage          Kind = "usage"           // constructor misuse
	KindConst          Kind = "const"           // mutation of a borrowed resource
	KindNative         Kind = "native"          // native call reported failure
	KindLoad           Kind = "load"            // shared library or symbol not loadable
	KindUnsupported    Kind = "unsupported"     // platform has no known library layout
	KindNotImplemented Kind = "not_implemented" // abstract operation invoked
	KindDestroyed      Kind = "destroyed"       // handle used after release
)

// Error is the structured error type used throughout the bindings
type Error struct {
	Cause    error
	Kind     Kind
	Op       string // operation, e.g. "Texture.SetSmooth"
	Resource string // native library or resource kind, e.g. "graphics"
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("csfml: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Resource != "" {
		b.WriteString(" [")
		b.WriteString(e.Resource)
		b.WriteByte(']')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrUsage          = &Error{Kind: KindUsage}
	ErrConst          = &Error{Kind: KindConst}
	ErrNative         = &Error{Kind: KindNative}
	ErrLoad           = &Error{Kind: KindLoad}
	ErrUnsupported    = &Error{Kind: KindUnsupported}
	ErrNotImplemented = &Error{Kind: KindNotImplemented}
	ErrDestroyed      = &Error{Kind: KindDestroyed}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(kind Kind, op string) *Builder {
	return &Builder{
		err: Error{
			Kind: kind,
			Op:   op,
		},
	}
}

// Resource sets the resource name
func (b *Builder) Resource(r string) *Builder {
	b.err.Resource = r
	return b
}

// Detail sets the detail message
func (b *Builder) Detail(d string) *Builder {
	b.err.Detail = d
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	e := b.err
	return &e
}

// Const reports a mutation attempted on a borrowed resource.
func Const(op, resource string) *Error {
	return New(KindConst, op).Resource(resource).Detail("this " + resource + " is const").Build()
}

// Native reports a native call that returned failure.
func Native(op, detail string) *Error {
	return New(KindNative, op).Detail(detail).Build()
}

// Usage reports a constructor misuse.
func Usage(op, detail string) *Error {
	return New(KindUsage, op).Detail(detail).Build()
}

// Destroyed reports use of a released handle.
func Destroyed(op, resource string) *Error {
	return New(KindDestroyed, op).Resource(resource).Detail("use of destroyed " + resource).Build()
}
