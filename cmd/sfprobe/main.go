package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/agiangrant/csfml"
	"github.com/agiangrant/csfml/cmd/sfprobe/commands"
)

func init() {
	// Window and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "info":
		err = commands.Info(args)
	case "modes":
		err = commands.Modes(args)
	case "show":
		err = commands.Show(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("sfprobe version %s (CSFML %s)\n", csfml.Version, csfml.NativeVersion)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sfprobe - inspect and exercise the CSFML bindings

Usage: sfprobe <command> [options]

Commands:
  info      Show which CSFML libraries load and what they report
  modes     List the fullscreen video modes
  show      Open an image in a window
  init      Write a default csfml.toml
  version   Print version information
  help      Show this help message

Common options:
  -config <path>  Configuration file (default: nearest csfml.toml)
  -verbose        Log binding activity to stderr

Examples:
  sfprobe info                        Check that the libraries are found
  sfprobe modes -bpp 32               List 32-bit fullscreen modes
  sfprobe show -smooth photo.png      View an image with smoothing
  sfprobe init -dir /opt/csfml/lib    Point the bindings at a library directory

Configuration:
  Library locations are read from csfml.toml. The CSFML_LIB_DIR
  environment variable overrides the configured directory.`)
}
