// Package csfml binds the CSFML 2.x C libraries (system, window and
// graphics) without cgo. The bindings live in the system, window and
// graphics packages; this package configures how the shared libraries are
// found and where the bindings log.
//
// Libraries load lazily on the first constructor call. To change the search
// path, call Init before that:
//
//	cfg, err := csfml.LoadConfig("")
//	if err != nil { ... }
//	if err := csfml.Init(cfg); err != nil { ... }
//
// The CSFML_LIB_DIR environment variable takes precedence over the
// configured directory.
package csfml

import (
	"errors"

	"go.uber.org/zap"

	"github.com/agiangrant/csfml/graphics"
	"github.com/agiangrant/csfml/internal/ffi"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

// Version is the version of these bindings.
const Version = "0.1.0"

// NativeVersion is the CSFML ABI the bindings are written against.
const NativeVersion = "2.1"

// Init applies cfg. Library settings only affect libraries that have not
// been loaded yet.
func Init(cfg Config) error {
	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	ffi.SetLogger(logger)
	ffi.Configure(cfg.options())
	return nil
}

// SetLogger replaces the logger used by all binding packages. Pass nil to
// silence them again.
func SetLogger(l *zap.Logger) {
	ffi.SetLogger(l)
}

// Logger returns the current binding logger.
func Logger() *zap.Logger {
	return ffi.Logger()
}

// Load opens all three libraries now instead of on first use, and reports
// every failure.
func Load() error {
	return errors.Join(system.Init(), window.Init(), graphics.Init())
}

// LibraryName returns the platform file name for a module ("system",
// "window" or "graphics") on goos.
func LibraryName(goos, module, version string) (string, error) {
	return ffi.LibraryName(goos, ffi.Module(module), version)
}
