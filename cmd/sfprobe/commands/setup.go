package commands

import (
	"flag"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/agiangrant/csfml"
)

// Common holds the options every command accepts.
type Common struct {
	config  *string
	verbose *bool
}

func addCommon(fs *flag.FlagSet) *Common {
	return &Common{
		config:  fs.String("config", "", "Configuration file"),
		verbose: fs.Bool("verbose", false, "Log binding activity"),
	}
}

// apply loads the configuration and hands it to the bindings.
func (c *Common) apply() (csfml.Config, error) {
	path := *c.config
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path, _ = csfml.FindConfig(cwd)
		}
	}

	cfg, err := csfml.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if *c.verbose {
		cfg.Log.Level = "debug"
	}
	if err := csfml.Init(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var colorOutput = term.IsTerminal(int(os.Stdout.Fd()))

// render applies s only when stdout is a terminal.
func render(s lipgloss.Style, text string) string {
	if !colorOutput {
		return text
	}
	return s.Render(text)
}

func label(text string) string {
	if !colorOutput {
		return text + ":"
	}
	return labelStyle.Render(text)
}
