package ffi

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"unsafe"
)

// ============================================================================
// By-Value Structs
// ============================================================================
//
// CSFML passes and returns small structs (sfVector2f, sfColor, sfIntRect,
// sfTransform...) by value. purego only marshals struct parameters on darwin,
// so everywhere else the Go signature is lowered to scalars the way the
// platform C compiler would: see abi_sysv.go and abi_win64.go.

// nativeStructs reports whether purego handles struct arguments itself.
var nativeStructs = runtime.GOOS == "darwin"

// bindFunc registers the C function at addr into fptr. Registration panics
// (purego rejects signatures it cannot call) are returned as errors.
func bindFunc(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	fn := reflect.ValueOf(fptr).Elem()
	if nativeStructs || !hasStructs(fn.Type()) {
		registerFunc(fptr, addr)
		return nil
	}
	return lowerFunc(fn, addr)
}

func hasStructs(t reflect.Type) bool {
	for i := 0; i < t.NumIn(); i++ {
		if t.In(i).Kind() == reflect.Struct {
			return true
		}
	}
	return t.NumOut() == 1 && t.Out(0).Kind() == reflect.Struct
}

// errSignature reports a signature the platform lowering cannot express.
func errSignature(t reflect.Type, why string) error {
	return fmt.Errorf("cannot call %s on %s/%s: %s", t, runtime.GOOS, runtime.GOARCH, why)
}

// structBytes returns a heap copy of the memory of struct value v.
func structBytes(v reflect.Value) []byte {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	b := make([]byte, v.Type().Size())
	copy(b, unsafe.Slice((*byte)(p.UnsafePointer()), len(b)))
	return b
}

// structFrom builds a value of type t from its memory image.
func structFrom(t reflect.Type, b []byte) reflect.Value {
	p := reflect.New(t)
	copy(unsafe.Slice((*byte)(p.UnsafePointer()), t.Size()), b)
	return p.Elem()
}

// word returns eightbyte i of b, zero padded.
func word(b []byte, i int) uint64 {
	var buf [8]byte
	if lo := i * 8; lo < len(b) {
		copy(buf[:], b[lo:])
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// putWord stores w as eightbyte i of b, truncated to len(b).
func putWord(b []byte, i int, w uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], w)
	if lo := i * 8; lo < len(b) {
		copy(b[lo:], buf[:])
	}
}

// eightbytes is the number of 8-byte words t occupies.
func eightbytes(t reflect.Type) int {
	return int((t.Size() + 7) / 8)
}

// floatEightbyte reports whether every scalar inside eightbyte i of t is a
// floating point value, the SSE class of the System V ABI.
func floatEightbyte(t reflect.Type, i int) bool {
	found := false
	all := true
	var walk func(t reflect.Type, base uintptr)
	walk = func(t reflect.Type, base uintptr) {
		switch t.Kind() {
		case reflect.Struct:
			for f := 0; f < t.NumField(); f++ {
				walk(t.Field(f).Type, base+t.Field(f).Offset)
			}
		case reflect.Array:
			for e := 0; e < t.Len(); e++ {
				walk(t.Elem(), base+uintptr(e)*t.Elem().Size())
			}
		default:
			if int(base/8) != i {
				return
			}
			found = true
			if t.Kind() != reflect.Float32 && t.Kind() != reflect.Float64 {
				all = false
			}
		}
	}
	walk(t, 0)
	return found && all
}

// scalarWord converts an integer-class scalar for a stack slot or a raw
// register.
func scalarWord(v reflect.Value) uintptr {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uintptr(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintptr(v.Uint())
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Ptr, reflect.UnsafePointer:
		return v.Pointer()
	case reflect.Float32:
		return uintptr(floatBits(v))
	case reflect.Float64:
		return uintptr(floatBits(v))
	}
	panic("ffi: unsupported scalar kind " + v.Kind().String())
}

// floatBits returns the register image of a float argument: float32 values
// occupy the low half.
func floatBits(v reflect.Value) uint64 {
	if v.Kind() == reflect.Float32 {
		return uint64(math.Float32bits(float32(v.Float())))
	}
	return math.Float64bits(v.Float())
}

func isFloat(t reflect.Type) bool {
	return t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64
}

var (
	uint64Type  = reflect.TypeOf(uint64(0))
	float64Type = reflect.TypeOf(float64(0))
	uintptrType = reflect.TypeOf(uintptr(0))
	pointerType = reflect.TypeOf(unsafe.Pointer(nil))
)
