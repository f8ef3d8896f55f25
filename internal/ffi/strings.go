package ffi

import (
	"fmt"
	"strings"
	"unsafe"

	sferrors "github.com/agiangrant/csfml/errors"
)

// ============================================================================
// String Helpers for FFI
// ============================================================================

// MaxGoString is the longest C string GoString reads. Longer strings are
// truncated to this many bytes.
const MaxGoString = 1 << 20

// CString returns a NUL-terminated copy of s. The caller keeps the returned
// pointer alive (runtime.KeepAlive) until the native call returns.
// C would stop reading at an embedded NUL, so such strings are rejected with
// a usage error.
func CString(s string) (*byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, sferrors.New(sferrors.KindUsage, "CString").
			Detail(fmt.Sprintf("string contains NUL at byte %d", i)).
			Build()
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0], nil
}

// CStringOrNil is CString, but returns nil for the empty string. CSFML treats
// a null path or source as "stage not provided".
func CStringOrNil(s string) (*byte, error) {
	if s == "" {
		return nil, nil
	}
	return CString(s)
}

// GoString converts a C string pointer to a Go string, reading at most
// MaxGoString bytes.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	// Find the null terminator
	var length int
	for {
		b := *(*byte)(unsafe.Pointer(ptr + uintptr(length)))
		if b == 0 {
			break
		}
		length++
		if length == MaxGoString {
			break
		}
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}

// BytesPtr returns the address of the first byte of data, or nil when empty.
func BytesPtr(data []byte) *byte {
	if len(data) == 0 {
		return nil
	}
	return &data[0]
}

// UTF32 returns a NUL-terminated UTF-32 copy of s for the *Unicode variants
// of the window functions.
func UTF32(s string) *uint32 {
	runes := []rune(s)
	buf := make([]uint32, len(runes)+1)
	for i, r := range runes {
		buf[i] = uint32(r)
	}
	return &buf[0]
}
