package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/csfml/window"
)

// Modes implements the 'sfprobe modes' command
func Modes(args []string) error {
	fs := flag.NewFlagSet("modes", flag.ExitOnError)
	common := addCommon(fs)
	bpp := fs.Uint("bpp", 0, "Only list modes with this color depth")
	fs.Parse(args)

	if _, err := common.apply(); err != nil {
		return err
	}

	modes, err := window.FullscreenModes()
	if err != nil {
		return err
	}
	desktop, err := window.DesktopMode()
	if err != nil {
		return err
	}

	count := 0
	for _, m := range modes {
		if *bpp != 0 && m.BitsPerPixel != uint32(*bpp) {
			continue
		}
		line := m.String()
		if m == desktop {
			line += " " + render(okStyle, "(desktop)")
		}
		fmt.Println(line)
		count++
	}
	if count == 0 {
		fmt.Println(render(errStyle, "no matching modes"))
	}
	return nil
}
