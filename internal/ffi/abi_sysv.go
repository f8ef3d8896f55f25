//go:build (linux || freebsd) && amd64

package ffi

import (
	"math"
	"reflect"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// System V AMD64. A struct of up to 16 bytes travels in registers, one per
// eightbyte: an SSE register when the eightbyte holds only floats, an
// integer register otherwise. If the registers it needs are not all free,
// or it is larger than 16 bytes, the whole struct is copied onto the stack.
// Results larger than 16 bytes are written through a hidden pointer passed
// as the first integer argument; smaller ones come back in RAX/RDX or
// XMM0/XMM1.

const loweringSupported = true

const (
	intRegisters   = 6
	floatRegisters = 8
)

type pieceKind int

const (
	pieceScalar pieceKind = iota // the argument as declared
	pieceInt                     // INTEGER eightbyte of a struct argument
	pieceFloat                   // SSE eightbyte of a struct argument
	pieceStack                   // one stack word of an argument
	piecePad                     // unused integer register
)

// piece is one lowered argument. word is the eightbyte index for struct
// arguments and -1 for scalars.
type piece struct {
	kind pieceKind
	arg  int
	word int
}

func (p piece) wireType(t reflect.Type) reflect.Type {
	switch p.kind {
	case pieceScalar:
		return t.In(p.arg)
	case pieceInt:
		return uint64Type
	case pieceFloat:
		return float64Type
	default:
		return uintptrType
	}
}

func (p piece) value(args []reflect.Value, images [][]byte) reflect.Value {
	switch p.kind {
	case pieceScalar:
		return args[p.arg]
	case pieceInt:
		return reflect.ValueOf(word(images[p.arg], p.word))
	case pieceFloat:
		return reflect.ValueOf(math.Float64frombits(word(images[p.arg], p.word)))
	case pieceStack:
		if p.word < 0 {
			return reflect.ValueOf(scalarWord(args[p.arg]))
		}
		return reflect.ValueOf(uintptr(word(images[p.arg], p.word)))
	default:
		return reflect.ValueOf(uintptr(0))
	}
}

// structImages copies every struct argument to memory.
func structImages(args []reflect.Value) [][]byte {
	images := make([][]byte, len(args))
	for i, a := range args {
		if a.Kind() == reflect.Struct {
			images[i] = structBytes(a)
		}
	}
	return images
}

func lowerFunc(fn reflect.Value, addr uintptr) error {
	t := fn.Type()

	var out reflect.Type
	if t.NumOut() == 1 {
		out = t.Out(0)
	}
	memResult := out != nil && out.Kind() == reflect.Struct && out.Size() > 16

	var ints, floats, stack []piece
	usedInts := 0
	if memResult {
		usedInts = 1
	}

	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		switch {
		case in.Kind() == reflect.Struct:
			if in.Size() == 0 {
				continue
			}
			n := eightbytes(in)
			if in.Size() <= 16 {
				needInts, needFloats := 0, 0
				for w := 0; w < n; w++ {
					if floatEightbyte(in, w) {
						needFloats++
					} else {
						needInts++
					}
				}
				if usedInts+needInts <= intRegisters && len(floats)+needFloats <= floatRegisters {
					for w := 0; w < n; w++ {
						if floatEightbyte(in, w) {
							floats = append(floats, piece{pieceFloat, i, w})
						} else {
							ints = append(ints, piece{pieceInt, i, w})
							usedInts++
						}
					}
					continue
				}
			}
			for w := 0; w < n; w++ {
				stack = append(stack, piece{pieceStack, i, w})
			}
		case isFloat(in):
			if len(floats) == floatRegisters {
				return errSignature(t, "more than 8 float arguments")
			}
			floats = append(floats, piece{pieceScalar, i, -1})
		default:
			if usedInts < intRegisters {
				ints = append(ints, piece{pieceScalar, i, -1})
				usedInts++
			} else {
				stack = append(stack, piece{pieceStack, i, -1})
			}
		}
	}

	// purego moves integer arguments to the stack once the six registers
	// are taken, so fill them before the stack words.
	if len(stack) > 0 {
		for usedInts < intRegisters {
			ints = append(ints, piece{piecePad, -1, -1})
			usedInts++
		}
	}

	if out != nil && out.Kind() == reflect.Struct && !memResult && eightbytes(out) == 2 {
		return lowerTwoWordResult(fn, addr, ints, floats, stack)
	}

	var wireIn []reflect.Type
	if memResult {
		wireIn = append(wireIn, pointerType)
	}
	for _, group := range [][]piece{ints, floats, stack} {
		for _, p := range group {
			wireIn = append(wireIn, p.wireType(t))
		}
	}

	var wireOut []reflect.Type
	switch {
	case out == nil:
	case out.Kind() != reflect.Struct:
		wireOut = []reflect.Type{out}
	case memResult:
		wireOut = []reflect.Type{uintptrType}
	case floatEightbyte(out, 0):
		wireOut = []reflect.Type{float64Type}
	default:
		wireOut = []reflect.Type{uint64Type}
	}

	wire := reflect.New(reflect.FuncOf(wireIn, wireOut, false))
	purego.RegisterFunc(wire.Interface(), addr)
	call := wire.Elem()

	fn.Set(reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		images := structImages(args)
		in := make([]reflect.Value, 0, len(wireIn))

		var result []byte
		if memResult {
			result = make([]byte, out.Size())
			in = append(in, reflect.ValueOf(unsafe.Pointer(&result[0])))
		}
		for _, group := range [][]piece{ints, floats, stack} {
			for _, p := range group {
				in = append(in, p.value(args, images))
			}
		}

		outs := call.Call(in)
		runtime.KeepAlive(args)
		runtime.KeepAlive(images)

		switch {
		case out == nil:
			return nil
		case out.Kind() != reflect.Struct:
			return outs
		case memResult:
			return []reflect.Value{structFrom(out, result)}
		}
		b := make([]byte, out.Size())
		if outs[0].Kind() == reflect.Float64 {
			putWord(b, 0, math.Float64bits(outs[0].Float()))
		} else {
			putWord(b, 0, outs[0].Uint())
		}
		return []reflect.Value{structFrom(out, b)}
	}))
	return nil
}

// lowerTwoWordResult handles 9 to 16 byte results. RegisterFunc only
// surfaces RAX, so these go through SyscallN, which returns RAX and RDX.
// That limits them to integer-class results and arguments, which covers
// sfIntRect, sfVideoMode and sfJoystickIdentification getters.
func lowerTwoWordResult(fn reflect.Value, addr uintptr, ints, floats, stack []piece) error {
	t := fn.Type()
	out := t.Out(0)
	if floatEightbyte(out, 0) || floatEightbyte(out, 1) {
		return errSignature(t, "struct result returned in SSE registers")
	}
	if len(floats) > 0 || len(stack) > 0 {
		return errSignature(t, "two-register result with float or stack arguments")
	}
	for _, p := range ints {
		if p.kind == pieceScalar {
			if k := t.In(p.arg).Kind(); k == reflect.Ptr || k == reflect.UnsafePointer {
				return errSignature(t, "two-register result with pointer arguments")
			}
		}
	}

	fn.Set(reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
		images := structImages(args)
		words := make([]uintptr, 0, len(ints))
		for _, p := range ints {
			switch p.kind {
			case pieceScalar:
				words = append(words, scalarWord(args[p.arg]))
			case pieceInt:
				words = append(words, uintptr(word(images[p.arg], p.word)))
			default:
				words = append(words, 0)
			}
		}

		r1, r2, _ := purego.SyscallN(addr, words...)

		b := make([]byte, out.Size())
		putWord(b, 0, uint64(r1))
		putWord(b, 1, uint64(r2))
		return []reflect.Value{structFrom(out, b)}
	}))
	return nil
}
