// Package system binds the CSFML system library: vectors, time and the
// callback-driven input stream used by the loaders in package graphics.
package system

import (
	"sync"
	"time"

	"github.com/agiangrant/csfml/internal/ffi"
)

var (
	libOnce sync.Once
	libErr  error
)

// Library function pointers (populated by initLibrary)
var (
	fnClockCreate         func() uintptr
	fnClockCopy           func(clock uintptr) uintptr
	fnClockDestroy        func(clock uintptr)
	fnClockGetElapsedTime func(clock uintptr) timeC
	fnClockRestart        func(clock uintptr) timeC
	fnSleep               func(duration timeC)
)

// timeC matches sfTime.
type timeC struct {
	Microseconds int64
}

func (t timeC) duration() time.Duration {
	return time.Duration(t.Microseconds) * time.Microsecond
}

func timeOf(d time.Duration) timeC {
	return timeC{Microseconds: d.Microseconds()}
}

// initLibrary loads the system library and registers all function pointers
func initLibrary() error {
	libOnce.Do(func() {
		lib, err := ffi.Open(ffi.System)
		if err != nil {
			libErr = err
			return
		}
		b := ffi.NewBinder(ffi.System, lib)
		registerClockFunctions(b)
		libErr = b.Err()
	})
	return libErr
}

func registerClockFunctions(b *ffi.Binder) {
	b.Bind(&fnClockCreate, "sfClock_create")
	b.Bind(&fnClockCopy, "sfClock_copy")
	b.Bind(&fnClockDestroy, "sfClock_destroy")
	b.Bind(&fnClockGetElapsedTime, "sfClock_getElapsedTime")
	b.Bind(&fnClockRestart, "sfClock_restart")
	b.Bind(&fnSleep, "sfSleep")
}

// Init loads the system library eagerly.
func Init() error {
	return initLibrary()
}

// Sleep blocks the calling thread in native code for d.
func Sleep(d time.Duration) error {
	if err := initLibrary(); err != nil {
		return err
	}
	fnSleep(timeOf(d))
	return nil
}
