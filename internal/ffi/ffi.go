// Package ffi loads the CSFML shared libraries and binds their exported
// functions into Go function variables via purego.
// No CGo is involved, which keeps cross-compilation working.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"sync"

	"go.uber.org/zap"

	sferrors "github.com/agiangrant/csfml/errors"
)

// ============================================================================
// Library Loading
// ============================================================================

// Module names one of the three CSFML shared libraries.
type Module string

const (
	System   Module = "system"
	Window   Module = "window"
	Graphics Module = "graphics"
)

// LibDirEnv overrides the directory searched for the CSFML libraries.
const LibDirEnv = "CSFML_LIB_DIR"

// Options controls how the shared libraries are located.
type Options struct {
	// Dir is searched before the default locations.
	Dir string
	// Version is appended to the Unix file name (libcsfml-graphics.so.2.1).
	Version string
	// Names overrides the file name for a module entirely.
	Names map[Module]string
}

type library struct {
	once   sync.Once
	handle uintptr
	err    error
}

var (
	optsMu sync.Mutex
	opts   Options

	libs = map[Module]*library{
		System:   {},
		Window:   {},
		Graphics: {},
	}
)

// Configure sets the library search options. It only affects modules that
// have not been opened yet.
func Configure(o Options) {
	optsMu.Lock()
	defer optsMu.Unlock()
	opts = o
}

func currentOptions() Options {
	optsMu.Lock()
	defer optsMu.Unlock()
	return opts
}

// Open loads the shared library for m on first use and returns its handle.
// A failed load is permanent for the life of the process.
func Open(m Module) (uintptr, error) {
	lib, ok := libs[m]
	if !ok {
		return 0, sferrors.New(sferrors.KindLoad, "Open").Resource(string(m)).Detail("unknown module").Build()
	}

	lib.once.Do(func() {
		o := currentOptions()
		Logger().Debug("ffi: resolving library",
			zap.String("module", string(m)),
			zap.String("goos", runtime.GOOS),
			zap.String("goarch", runtime.GOARCH))

		path, err := libraryPath(runtime.GOOS, m, o)
		if err != nil {
			lib.err = err
			return
		}

		lib.handle, err = openLibrary(path)
		if err != nil {
			lib.err = sferrors.New(sferrors.KindLoad, "Open").
				Resource(string(m)).
				Detail(fmt.Sprintf("failed to load %s", path)).
				Cause(err).
				Build()
			return
		}
		Logger().Info("ffi: loaded library", zap.String("module", string(m)), zap.String("path", path))
	})

	return lib.handle, lib.err
}

// LibraryName returns the platform file name of a module. Only the platforms
// listed here are supported.
func LibraryName(goos string, m Module, version string) (string, error) {
	switch goos {
	case "linux", "freebsd":
		name := fmt.Sprintf("libcsfml-%s.so", m)
		if version != "" {
			name += "." + version
		}
		return name, nil
	case "darwin":
		if version != "" {
			return fmt.Sprintf("libcsfml-%s.%s.dylib", m, version), nil
		}
		return fmt.Sprintf("libcsfml-%s.dylib", m), nil
	case "windows":
		return fmt.Sprintf("csfml-%s-2.dll", m), nil
	default:
		return "", sferrors.New(sferrors.KindUnsupported, "LibraryName").
			Resource(string(m)).
			Detail(fmt.Sprintf("don't know how to find CSFML libraries on %s", goos)).
			Build()
	}
}

// libraryPath returns the path to the dynamic library
func libraryPath(goos string, m Module, o Options) (string, error) {
	libName := o.Names[m]
	if libName == "" {
		var err error
		libName, err = LibraryName(goos, m, o.Version)
		if err != nil {
			return "", err
		}
	}
	if filepath.IsAbs(libName) {
		return libName, nil
	}

	var searchPaths []string
	if dir := os.Getenv(LibDirEnv); dir != "" {
		searchPaths = append(searchPaths, filepath.Join(dir, libName))
	}
	if o.Dir != "" {
		searchPaths = append(searchPaths, filepath.Join(o.Dir, libName))
	}
	searchPaths = append(searchPaths,
		libName,
		filepath.Join("lib", libName),
	)

	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, libName),
			filepath.Join(execDir, "..", "lib", libName),
		)
		if goos == "darwin" {
			searchPaths = append(searchPaths, filepath.Join(execDir, "..", "Frameworks", libName))
		}
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs, nil
			}
			return path, nil
		}
	}

	// Let the system loader find it
	return libName, nil
}

// ============================================================================
// Function Binding
// ============================================================================

// Binder registers native functions from one library into Go function
// variables. The first missing symbol is remembered and reported by Err.
type Binder struct {
	module Module
	lib    uintptr
	check  bool
	errs   []error
}

// NewBinder returns a Binder for the library handle returned by Open.
func NewBinder(m Module, lib uintptr) *Binder {
	return &Binder{module: m, lib: lib}
}

// NewCheckBinder returns a Binder that resolves no symbols and leaves the
// function variables untouched. It only verifies that every signature can
// be registered on this platform, and collects all failures in Err.
func NewCheckBinder(m Module) *Binder {
	return &Binder{module: m, check: true}
}

// StructsSupported reports whether by-value struct signatures can be bound
// on this platform.
func StructsSupported() bool {
	return nativeStructs || loweringSupported
}

// Bind points fptr (a pointer to a func variable) at the named symbol.
// A signature the platform cannot call is reported as a KindLoad error
// instead of panicking.
func (b *Binder) Bind(fptr any, name string) {
	if len(b.errs) > 0 && !b.check {
		return
	}
	addr, err := b.lookup(name)
	if err != nil {
		Logger().Warn("ffi: missing symbol", zap.String("module", string(b.module)), zap.String("symbol", name), zap.Error(err))
		b.fail("missing symbol "+name, err)
		return
	}
	if err := b.register(fptr, addr); err != nil {
		Logger().Warn("ffi: cannot bind symbol", zap.String("module", string(b.module)), zap.String("symbol", name), zap.Error(err))
		b.fail("cannot bind "+name, err)
	}
}

// Optional binds a symbol that older library versions may not export.
// It reports whether the symbol was found and bound.
func (b *Binder) Optional(fptr any, name string) bool {
	addr, err := b.lookup(name)
	if err != nil {
		Logger().Debug("ffi: optional symbol not found", zap.String("module", string(b.module)), zap.String("symbol", name))
		return false
	}
	if err := b.register(fptr, addr); err != nil {
		Logger().Warn("ffi: cannot bind optional symbol", zap.String("module", string(b.module)), zap.String("symbol", name), zap.Error(err))
		if b.check {
			b.fail("cannot bind "+name, err)
		}
		return false
	}
	return true
}

// Err returns the first binding error, or every error for a check binder.
func (b *Binder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	if b.check {
		return errors.Join(b.errs...)
	}
	return b.errs[0]
}

func (b *Binder) lookup(name string) (uintptr, error) {
	if b.check {
		// Any non-zero address satisfies registration.
		return 1, nil
	}
	return getSymbol(b.lib, name)
}

func (b *Binder) register(fptr any, addr uintptr) error {
	if b.check {
		fptr = reflect.New(reflect.TypeOf(fptr).Elem()).Interface()
	}
	return bindFunc(fptr, addr)
}

func (b *Binder) fail(detail string, cause error) {
	b.errs = append(b.errs, sferrors.New(sferrors.KindLoad, "Bind").
		Resource(string(b.module)).
		Detail(detail).
		Cause(cause).
		Build())
}

// NewCallback returns a C function pointer that calls fn.
// Callbacks are never freed, so create them once per process.
func NewCallback(fn any) uintptr {
	return newCallback(fn)
}

// ============================================================================
// C Types
// ============================================================================

// Bool mirrors sfBool (a C int).
type Bool int32

const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Go converts to a Go bool.
func (b Bool) Go() bool {
	return b != False
}
