package system

import (
	"errors"
	"io"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/agiangrant/csfml/internal/ffi"
)

// InputStreamC matches the C struct layout of sfInputStream.
type InputStreamC struct {
	Read     uintptr
	Seek     uintptr
	Tell     uintptr
	GetSize  uintptr
	UserData uintptr
}

// InputStream exposes an io.ReadSeeker to native loaders. Native code only
// sees a registry id in UserData, never a Go pointer.
type InputStream struct {
	id   uintptr
	r    io.ReadSeeker
	size int64
}

var (
	streamsMu sync.RWMutex
	streams   = make(map[uintptr]*InputStream)
	nextID    uintptr = 1
)

// Native callback trampolines, created on first use.
var (
	callbacksOnce                     sync.Once
	cbRead, cbSeek, cbTell, cbGetSize uintptr
)

// NewInputStream registers r. Close must be called once native code no
// longer reads from the stream.
func NewInputStream(r io.ReadSeeker) (*InputStream, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	s := &InputStream{r: r, size: size}
	streamsMu.Lock()
	s.id = nextID
	nextID++
	streams[s.id] = s
	streamsMu.Unlock()
	return s, nil
}

// UserData returns the id passed to the native callbacks.
func (s *InputStream) UserData() uintptr {
	return s.id
}

// Native returns the sfInputStream record for this stream.
func (s *InputStream) Native() *InputStreamC {
	callbacksOnce.Do(func() {
		cbRead = ffi.NewCallback(streamRead)
		cbSeek = ffi.NewCallback(streamSeek)
		cbTell = ffi.NewCallback(streamTell)
		cbGetSize = ffi.NewCallback(streamGetSize)
	})
	return &InputStreamC{
		Read:     cbRead,
		Seek:     cbSeek,
		Tell:     cbTell,
		GetSize:  cbGetSize,
		UserData: s.id,
	}
}

// Close unregisters the stream. It does not close the underlying reader.
func (s *InputStream) Close() error {
	streamsMu.Lock()
	delete(streams, s.id)
	streamsMu.Unlock()
	return nil
}

func lookupStream(userData uintptr) *InputStream {
	streamsMu.RLock()
	defer streamsMu.RUnlock()
	return streams[userData]
}

func streamRead(data uintptr, size int64, userData uintptr) int64 {
	s := lookupStream(userData)
	if s == nil || size < 0 {
		return -1
	}
	if size == 0 {
		return 0
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(data)), size)
	n, err := io.ReadFull(s.r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		ffi.Logger().Warn("system: stream read failed", zap.Uintptr("stream", userData), zap.Error(err))
		return -1
	}
	return int64(n)
}

func streamSeek(position int64, userData uintptr) int64 {
	s := lookupStream(userData)
	if s == nil {
		return -1
	}
	pos, err := s.r.Seek(position, io.SeekStart)
	if err != nil {
		return -1
	}
	return pos
}

func streamTell(userData uintptr) int64 {
	s := lookupStream(userData)
	if s == nil {
		return -1
	}
	pos, err := s.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

func streamGetSize(userData uintptr) int64 {
	s := lookupStream(userData)
	if s == nil {
		return -1
	}
	return s.size
}
