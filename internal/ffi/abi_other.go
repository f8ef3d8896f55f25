//go:build !((linux || freebsd || windows) && amd64)

package ffi

import "reflect"

// Struct lowering is only implemented for the amd64 calling conventions.
// darwin needs none since purego marshals structs there itself.
const loweringSupported = false

func lowerFunc(fn reflect.Value, addr uintptr) error {
	return errSignature(fn.Type(), "by-value struct arguments are not supported")
}
