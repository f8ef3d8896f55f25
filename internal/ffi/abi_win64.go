//go:build windows && amd64

package ffi

import (
	"reflect"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Microsoft x64. A struct of 1, 2, 4 or 8 bytes is passed and returned as
// an integer, floats included. Any other struct is passed as a pointer to a
// caller-owned copy, and returned through a hidden pointer in the first
// argument slot.

const loweringSupported = true

// maxArgs is purego's limit on arguments per call.
const maxArgs = 15

func inRegister(t reflect.Type) bool {
	switch t.Size() {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

func lowerFunc(fn reflect.Value, addr uintptr) error {
	t := fn.Type()

	var out reflect.Type
	if t.NumOut() == 1 {
		out = t.Out(0)
	}
	memResult := out != nil && out.Kind() == reflect.Struct && !inRegister(out)

	var wireIn []reflect.Type
	if memResult {
		wireIn = append(wireIn, pointerType)
	}
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		switch {
		case in.Kind() != reflect.Struct:
			wireIn = append(wireIn, in)
		case inRegister(in):
			wireIn = append(wireIn, uint64Type)
		default:
			wireIn = append(wireIn, pointerType)
		}
	}
	if len(wireIn) > maxArgs {
		return errSignature(t, "too many arguments")
	}

	var wireOut []reflect.Type
	switch {
	case out == nil:
	case out.Kind() != reflect.Struct:
		wireOut = []reflect.Type{out}
	case memResult:
		wireOut = []reflect.Type{uintptrType}
	default:
		wireOut = []reflect.Type{uint64Type}
	}

	wire := reflect.New(reflect.FuncOf(wireIn, wireOut, false))
	purego.RegisterFunc(wire.Interface(), addr)
	call := wire.Elem()

	fn.Set(reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		in := make([]reflect.Value, 0, len(wireIn))
		var copies [][]byte

		var result []byte
		if memResult {
			result = make([]byte, out.Size())
			in = append(in, reflect.ValueOf(unsafe.Pointer(&result[0])))
		}
		for _, a := range args {
			switch {
			case a.Kind() != reflect.Struct:
				in = append(in, a)
			case inRegister(a.Type()):
				in = append(in, reflect.ValueOf(word(structBytes(a), 0)))
			default:
				b := structBytes(a)
				copies = append(copies, b)
				in = append(in, reflect.ValueOf(unsafe.Pointer(&b[0])))
			}
		}

		outs := call.Call(in)
		runtime.KeepAlive(args)
		runtime.KeepAlive(copies)

		switch {
		case out == nil:
			return nil
		case out.Kind() != reflect.Struct:
			return outs
		case memResult:
			return []reflect.Value{structFrom(out, result)}
		}
		b := make([]byte, out.Size())
		putWord(b, 0, outs[0].Uint())
		return []reflect.Value{structFrom(out, b)}
	}))
	return nil
}
