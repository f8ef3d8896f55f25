//go:build !(darwin || linux || freebsd || windows)

package ffi

import (
	"runtime"

	sferrors "github.com/agiangrant/csfml/errors"
)

func unsupported(op string) error {
	return sferrors.New(sferrors.KindUnsupported, op).Detail("no CSFML loader for " + runtime.GOOS).Build()
}

func openLibrary(path string) (uintptr, error) {
	return 0, unsupported("openLibrary")
}

func getSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, unsupported("getSymbol")
}

func registerFunc(fptr any, addr uintptr) {}

func newCallback(fn any) uintptr { return 0 }
