package ffi

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	sferrors "github.com/agiangrant/csfml/errors"
)

func TestLibraryName(t *testing.T) {
	tests := []struct {
		goos    string
		module  Module
		version string
		want    string
	}{
		{"linux", Graphics, "", "libcsfml-graphics.so"},
		{"linux", Window, "2.1", "libcsfml-window.so.2.1"},
		{"freebsd", System, "", "libcsfml-system.so"},
		{"darwin", Graphics, "", "libcsfml-graphics.dylib"},
		{"darwin", Graphics, "2.5", "libcsfml-graphics.2.5.dylib"},
		{"windows", System, "", "csfml-system-2.dll"},
		{"windows", Graphics, "2.1", "csfml-graphics-2.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+string(tt.module), func(t *testing.T) {
			got, err := LibraryName(tt.goos, tt.module, tt.version)
			if err != nil {
				t.Fatalf("LibraryName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LibraryName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLibraryNameUnsupported(t *testing.T) {
	for _, goos := range []string{"plan9", "js", "aix"} {
		_, err := LibraryName(goos, Graphics, "")
		if !stderrors.Is(err, sferrors.ErrUnsupported) {
			t.Errorf("LibraryName(%s) error = %v, want unsupported", goos, err)
		}
	}
}

func TestLibraryPathPrefersConfiguredDir(t *testing.T) {
	t.Setenv(LibDirEnv, "")
	dir := t.TempDir()
	name := "libcsfml-graphics.so"
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := libraryPath("linux", Graphics, Options{Dir: dir})
	if err != nil {
		t.Fatalf("libraryPath() error = %v", err)
	}
	if got != filepath.Join(dir, name) {
		t.Errorf("libraryPath() = %q, want %q", got, filepath.Join(dir, name))
	}
}

func TestLibraryPathEnvOverride(t *testing.T) {
	envDir := t.TempDir()
	cfgDir := t.TempDir()
	name := "libcsfml-window.so"
	for _, d := range []string{envDir, cfgDir} {
		if err := os.WriteFile(filepath.Join(d, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv(LibDirEnv, envDir)

	got, err := libraryPath("linux", Window, Options{Dir: cfgDir})
	if err != nil {
		t.Fatalf("libraryPath() error = %v", err)
	}
	if got != filepath.Join(envDir, name) {
		t.Errorf("libraryPath() = %q, want env dir", got)
	}
}

func TestLibraryPathFallsBackToBareName(t *testing.T) {
	t.Setenv(LibDirEnv, "")
	got, err := libraryPath("windows", System, Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("libraryPath() error = %v", err)
	}
	if got != "csfml-system-2.dll" {
		t.Errorf("libraryPath() = %q, want bare name", got)
	}
}

func TestLibraryPathNameOverride(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "custom.so")
	got, err := libraryPath("plan9", Graphics, Options{Names: map[Module]string{Graphics: abs}})
	if err != nil {
		t.Fatalf("libraryPath() error = %v", err)
	}
	if got != abs {
		t.Errorf("libraryPath() = %q, want %q", got, abs)
	}
}

func TestOpenUnknownModule(t *testing.T) {
	_, err := Open(Module("audio"))
	if !stderrors.Is(err, sferrors.ErrLoad) {
		t.Errorf("Open(audio) error = %v, want load error", err)
	}
}

func TestStrings(t *testing.T) {
	p, err := CString("hello")
	if err != nil {
		t.Fatalf("CString() error = %v", err)
	}
	if got := GoString(uintptr(unsafe.Pointer(p))); got != "hello" {
		t.Errorf("GoString(CString) = %q", got)
	}
	if GoString(0) != "" {
		t.Error("GoString(0) should be empty")
	}
	if p, err := CStringOrNil(""); p != nil || err != nil {
		t.Errorf("CStringOrNil(\"\") = %v, %v, want nil", p, err)
	}
	if BytesPtr(nil) != nil {
		t.Error("BytesPtr(nil) should be nil")
	}
}

func TestCStringRejectsNUL(t *testing.T) {
	tests := []string{"a\x00b", "\x00", "trailing\x00"}
	for _, s := range tests {
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			p, err := CString(s)
			if p != nil || !stderrors.Is(err, sferrors.ErrUsage) {
				t.Errorf("CString() = %v, %v, want usage error", p, err)
			}
			if _, err := CStringOrNil(s); !stderrors.Is(err, sferrors.ErrUsage) {
				t.Errorf("CStringOrNil() error = %v, want usage error", err)
			}
		})
	}
}

func TestGoStringLimit(t *testing.T) {
	buf := make([]byte, MaxGoString+16)
	for i := range buf[:len(buf)-1] {
		buf[i] = 'x'
	}
	got := GoString(uintptr(unsafe.Pointer(&buf[0])))
	if len(got) != MaxGoString {
		t.Errorf("len(GoString()) = %d, want %d", len(got), MaxGoString)
	}
}

func TestUTF32(t *testing.T) {
	p := UTF32("hé")
	got := unsafe.Slice(p, 3)
	if got[0] != 'h' || got[1] != 0xe9 || got[2] != 0 {
		t.Errorf("UTF32() = %v", got)
	}
}

func TestBool(t *testing.T) {
	if BoolOf(true) != True || BoolOf(false) != False {
		t.Error("BoolOf mismatch")
	}
	if !Bool(7).Go() {
		t.Error("any non-zero sfBool is true")
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
}
