package commands

import (
	"flag"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/agiangrant/csfml"
	"github.com/agiangrant/csfml/graphics"
	"github.com/agiangrant/csfml/system"
	"github.com/agiangrant/csfml/window"
)

// Show implements the 'sfprobe show' command
func Show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	common := addCommon(fs)
	smooth := fs.Bool("smooth", false, "Smooth the texture when scaled")
	fps := fs.Uint("fps", 60, "Frame rate limit")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: sfprobe show [options] <image>")
	}
	path := fs.Arg(0)

	if _, err := common.apply(); err != nil {
		return err
	}
	log := csfml.Logger()

	tex, err := graphics.TextureFromFile(path, nil)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	defer tex.Destroy()
	if err := tex.SetSmooth(*smooth); err != nil {
		return err
	}

	sprite, err := graphics.NewSprite()
	if err != nil {
		return err
	}
	defer sprite.Destroy()
	if err := sprite.SetTexture(tex, true); err != nil {
		return err
	}

	size := tex.Size()
	mode := window.NewVideoMode(size.X, size.Y)
	rw, err := graphics.NewRenderWindow(mode, filepath.Base(path), window.StyleDefault, nil)
	if err != nil {
		return err
	}
	defer rw.Destroy()
	rw.SetFramerateLimit(uint32(*fps))

	log.Debug("showing image", zap.String("path", path), zap.Stringer("size", size))

	for rw.IsOpen() {
		for {
			ev, ok := rw.PollEvent()
			if !ok {
				break
			}
			if err := handleEvent(rw, sprite, ev); err != nil {
				return err
			}
		}

		rw.Clear(graphics.Black)
		rw.DrawSprite(sprite, graphics.DefaultRenderStates())
		rw.Display()
	}
	return nil
}

func handleEvent(rw *graphics.RenderWindow, sprite *graphics.Sprite, ev window.Event) error {
	switch e := ev.(type) {
	case window.KeyEvent:
		if e.Type == window.EventKeyPressed && e.Code == window.KeyEscape {
			rw.Close()
		}
	case window.SizeEvent:
		// Keep one image pixel per screen pixel and the image centered.
		view, err := graphics.ViewFromRect(graphics.FloatRect{Width: float32(e.Width), Height: float32(e.Height)})
		if err != nil {
			return err
		}
		rw.SetView(view)
		view.Destroy()

		bounds := sprite.LocalBounds()
		sprite.SetPosition(system.V2(
			(float32(e.Width)-bounds.Width)/2,
			(float32(e.Height)-bounds.Height)/2,
		))
	default:
		if ev.EventType() == window.EventClosed {
			rw.Close()
		}
	}
	return nil
}
