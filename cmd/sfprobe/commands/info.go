package commands

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/agiangrant/csfml"
	"github.com/agiangrant/csfml/graphics"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

// Info implements the 'sfprobe info' command
func Info(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	common := addCommon(fs)
	fs.Parse(args)

	cfg, err := common.apply()
	if err != nil {
		return err
	}

	fmt.Println(render(titleStyle, "CSFML bindings"))
	fmt.Println(label("version"), csfml.Version)
	fmt.Println(label("native ABI"), csfml.NativeVersion)
	fmt.Println(label("platform"), runtime.GOOS+"/"+runtime.GOARCH)
	if cfg.Library.Dir != "" {
		fmt.Println(label("library dir"), cfg.Library.Dir)
	}
	fmt.Println()

	fmt.Println(render(titleStyle, "Libraries"))
	loaders := []struct {
		module string
		init   func() error
	}{
		{"system", system.Init},
		{"window", window.Init},
		{"graphics", graphics.Init},
	}
	loaded := make(map[string]bool)
	for _, l := range loaders {
		name, err := csfml.LibraryName(runtime.GOOS, l.module, cfg.Library.Version)
		if err != nil {
			fmt.Println(label(l.module), render(errStyle, err.Error()))
			continue
		}
		if err := l.init(); err != nil {
			fmt.Println(label(l.module), name, render(errStyle, err.Error()))
			continue
		}
		loaded[l.module] = true
		fmt.Println(label(l.module), name, render(okStyle, "ok"))
	}

	if loaded["window"] {
		fmt.Println()
		fmt.Println(render(titleStyle, "Display"))
		mode, err := window.DesktopMode()
		if err != nil {
			return err
		}
		fmt.Println(label("desktop"), mode)
		if modes, err := window.FullscreenModes(); err == nil {
			fmt.Println(label("fullscreen"), fmt.Sprintf("%d modes", len(modes)))
		}
	}

	if loaded["graphics"] {
		fmt.Println()
		fmt.Println(render(titleStyle, "Graphics"))
		shaders := render(errStyle, "no")
		if graphics.ShaderIsAvailable() {
			shaders = render(okStyle, "yes")
		}
		fmt.Println(label("shaders"), shaders)
		// Querying the texture size needs a GL context, which CSFML
		// creates on demand.
		if size, err := graphics.MaximumSize(); err == nil {
			fmt.Println(label("max texture"), fmt.Sprintf("%dpx", size))
		}
	}

	return nil
}
