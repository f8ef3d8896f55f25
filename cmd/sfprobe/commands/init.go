package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/csfml"
)

// Init implements the 'sfprobe init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dir := fs.String("dir", "", "Directory holding the CSFML libraries")
	version := fs.String("version", "", "Library version suffix (e.g., 2.1)")
	level := fs.String("log", "off", "Log level")
	force := fs.Bool("force", false, "Overwrite an existing file")
	fs.Parse(args)

	if _, err := os.Stat(csfml.ConfigFile); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", csfml.ConfigFile)
	}

	config := csfml.DefaultConfig()
	config.Library.Dir = *dir
	config.Library.Version = *version
	config.Log.Level = *level

	// Reject a bad level now rather than on first use
	if _, err := config.Log.NewLogger(); err != nil {
		return err
	}

	if err := csfml.SaveConfig(csfml.ConfigFile, config); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", csfml.ConfigFile)
	return nil
}
