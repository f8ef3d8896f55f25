package system

import (
	"bytes"
	"errors"
	"testing"
	"time"
	"unsafe"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/ffi"
)

func TestStreamCallbacks(t *testing.T) {
	s, err := NewInputStream(bytes.NewReader([]byte("abcdefgh")))
	if err != nil {
		t.Fatalf("NewInputStream() error = %v", err)
	}
	defer s.Close()
	id := s.UserData()

	if got := streamGetSize(id); got != 8 {
		t.Errorf("getSize = %d, want 8", got)
	}

	buf := make([]byte, 3)
	if n := streamRead(uintptr(unsafe.Pointer(&buf[0])), 3, id); n != 3 || string(buf) != "abc" {
		t.Errorf("read = %d %q, want 3 \"abc\"", n, buf)
	}
	if pos := streamTell(id); pos != 3 {
		t.Errorf("tell = %d, want 3", pos)
	}
	if pos := streamSeek(6, id); pos != 6 {
		t.Errorf("seek = %d, want 6", pos)
	}

	// Short read at the end returns the bytes available.
	buf = make([]byte, 4)
	if n := streamRead(uintptr(unsafe.Pointer(&buf[0])), 4, id); n != 2 || string(buf[:2]) != "gh" {
		t.Errorf("read at end = %d %q, want 2 \"gh\"", n, buf[:n])
	}
}

func TestStreamUnknownUserData(t *testing.T) {
	s, err := NewInputStream(bytes.NewReader([]byte("x")))
	if err != nil {
		t.Fatal(err)
	}
	id := s.UserData()
	s.Close()

	if streamGetSize(id) != -1 || streamTell(id) != -1 || streamSeek(0, id) != -1 {
		t.Error("callbacks on a closed stream should report -1")
	}
	var b byte
	if streamRead(uintptr(unsafe.Pointer(&b)), 1, id) != -1 {
		t.Error("read on a closed stream should report -1")
	}
}

func TestStreamIDsAreUnique(t *testing.T) {
	a, _ := NewInputStream(bytes.NewReader(nil))
	b, _ := NewInputStream(bytes.NewReader(nil))
	defer a.Close()
	defer b.Close()
	if a.UserData() == b.UserData() {
		t.Error("streams share a registry id")
	}
}

type fakeClock struct {
	created, destroyed int
	elapsed            time.Duration
}

func installFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	libOnce.Do(func() {})
	f := &fakeClock{elapsed: 1500 * time.Microsecond}
	fnClockCreate = func() uintptr { f.created++; return uintptr(0x100 + f.created) }
	fnClockCopy = func(uintptr) uintptr { f.created++; return uintptr(0x100 + f.created) }
	fnClockDestroy = func(uintptr) { f.destroyed++ }
	fnClockGetElapsedTime = func(uintptr) timeC { return timeOf(f.elapsed) }
	fnClockRestart = func(uintptr) timeC { d := f.elapsed; f.elapsed = 0; return timeOf(d) }
	return f
}

func TestClock(t *testing.T) {
	f := installFakeClock(t)

	c, err := NewClock()
	if err != nil {
		t.Fatalf("NewClock() error = %v", err)
	}
	if got := c.ElapsedTime(); got != 1500*time.Microsecond {
		t.Errorf("ElapsedTime() = %v", got)
	}
	if got := c.Restart(); got != 1500*time.Microsecond {
		t.Errorf("Restart() = %v", got)
	}
	if got := c.ElapsedTime(); got != 0 {
		t.Errorf("ElapsedTime() after restart = %v", got)
	}

	cp, err := c.Copy()
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	c.Destroy()
	c.Destroy()
	cp.Destroy()
	if f.destroyed != 2 {
		t.Errorf("destroy calls = %d, want 2", f.destroyed)
	}
}

func TestClockCopyFailure(t *testing.T) {
	installFakeClock(t)
	c, err := NewClock()
	if err != nil {
		t.Fatal(err)
	}
	defer c.Destroy()

	fnClockCopy = func(uintptr) uintptr { return 0 }
	cp, err := c.Copy()
	if cp != nil || !errors.Is(err, sferrors.ErrNative) {
		t.Errorf("Copy() = %v, %v, want native error", cp, err)
	}
}

func TestClockMisuse(t *testing.T) {
	installFakeClock(t)

	tests := []struct {
		name  string
		clock func() *Clock
		want  error
	}{
		{"zero value", func() *Clock { return &Clock{} }, sferrors.ErrUsage},
		{"destroyed", func() *Clock {
			c, err := NewClock()
			if err != nil {
				t.Fatal(err)
			}
			c.Destroy()
			return c
		}, sferrors.ErrDestroyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.clock()
			defer func() {
				rec := recover()
				err, ok := rec.(error)
				if !ok || !errors.Is(err, tt.want) {
					t.Errorf("recover() = %v, want %v", rec, tt.want)
				}
			}()
			c.ElapsedTime()
		})
	}
}

func TestBindSignatures(t *testing.T) {
	if !ffi.StructsSupported() {
		t.Skip("by-value structs are not supported on this platform")
	}
	b := ffi.NewCheckBinder(ffi.System)
	registerClockFunctions(b)
	if err := b.Err(); err != nil {
		t.Errorf("binding error = %v", err)
	}
}

func TestVectorConversions(t *testing.T) {
	v := V2(1.5, -2)
	if FromVec(v.Vec()) != v {
		t.Errorf("FromVec(Vec()) = %v", FromVec(v.Vec()))
	}
	if got := v.Add(V2(1, 1)).Mul(2); got != V2(5, -2) {
		t.Errorf("arithmetic = %v", got)
	}
	if v.String() != "Vector2f(1.5, -2)" {
		t.Errorf("String() = %q", v.String())
	}
}
