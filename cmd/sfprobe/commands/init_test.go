package commands

import (
	"testing"

	"github.com/agiangrant/csfml"
)

func TestInitWritesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := Init([]string{"-dir", "/opt/csfml", "-version", "2.1", "-log", "warn"}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := csfml.LoadConfig(csfml.ConfigFile)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Library.Dir != "/opt/csfml" || cfg.Library.Version != "2.1" || cfg.Log.Level != "warn" {
		t.Errorf("written config = %+v", cfg)
	}

	if err := Init(nil); err == nil {
		t.Error("Init() overwrote an existing file without -force")
	}
	if err := Init([]string{"-force"}); err != nil {
		t.Errorf("Init(-force) error = %v", err)
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := Init([]string{"-log", "chatty"}); err == nil {
		t.Error("Init() accepted an unknown log level")
	}
}

func TestRenderPlain(t *testing.T) {
	saved := colorOutput
	colorOutput = false
	t.Cleanup(func() { colorOutput = saved })

	if got := render(okStyle, "ok"); got != "ok" {
		t.Errorf("render() = %q", got)
	}
	if got := label("shaders"); got != "shaders:" {
		t.Errorf("label() = %q", got)
	}
}
