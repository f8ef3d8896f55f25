package system

import (
	"time"

	sferrors "github.com/agiangrant/csfml/errors"
	"github.com/agiangrant/csfml/internal/handle"
)

// Clock measures elapsed time with the native high-resolution clock.
type Clock struct {
	ref *handle.Ref
}

func newClock(ptr uintptr) *Clock {
	c := &Clock{ref: handle.Owned("clock", ptr, func(p uintptr) { fnClockDestroy(p) })}
	handle.Track(c, c.ref)
	return c
}

// NewClock starts a new clock.
func NewClock() (*Clock, error) {
	if err := initLibrary(); err != nil {
		return nil, err
	}
	ptr := fnClockCreate()
	if ptr == 0 {
		return nil, sferrors.Native("NewClock", "sfClock_create returned null")
	}
	return newClock(ptr), nil
}

func (c *Clock) ptr() uintptr {
	return handle.Must(c.ref, "Clock", "NewClock")
}

// Copy returns an independent clock with the same start time.
func (c *Clock) Copy() (*Clock, error) {
	ptr := fnClockCopy(c.ptr())
	if ptr == 0 {
		return nil, sferrors.Native("Clock.Copy", "sfClock_copy returned null")
	}
	return newClock(ptr), nil
}

// Destroy releases the native clock. Calling it again is a no-op.
func (c *Clock) Destroy() {
	c.ref.Release()
}

// ElapsedTime returns the time since the clock started or was restarted.
func (c *Clock) ElapsedTime() time.Duration {
	return fnClockGetElapsedTime(c.ptr()).duration()
}

// Restart resets the clock and returns the time elapsed before the reset.
func (c *Clock) Restart() time.Duration {
	return fnClockRestart(c.ptr()).duration()
}
