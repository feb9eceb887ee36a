// Package cli implements the xkcd-wallpaper command line interface: flag
// and environment handling, the fetch → build → save flow, and the
// self-update check.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/joho/godotenv"

	"github.com/tbruckner/xkcd-wallpaper/pkg/wallpaper"
	"github.com/tbruckner/xkcd-wallpaper/pkg/xkcd"
)

const (
	defaultBackground = "#1F241F"
	defaultForeground = "light"
	defaultOutput     = "./%y-%m-%d_%t.png"
)

// Config is the validated CLI configuration.
type Config struct {
	Width, Height int
	Background    color.NRGBA
	Foreground    wallpaper.ContrastMode
	Comic         int
	Output        string
	Reference     wallpaper.ReferenceStrategy
	Verbose       bool
	Update        bool
	ShowVersion   bool
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseArgs parses and validates command line arguments. Defaults come from
// the environment (optionally loaded from a .env file) before falling back
// to the built-in values.
func ParseArgs(args []string) (*Config, error) {
	// A missing .env file is fine; explicit flags always win.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("xkcd-wallpaper", flag.ContinueOnError)
	width := fs.Int("width", 0, "width of the output wallpaper in pixels (required)")
	height := fs.Int("height", 0, "height of the output wallpaper in pixels (required)")
	bg := fs.String("bg", envDefault("XKCD_WALLPAPER_BG", defaultBackground), "background color in hex format, e.g. #1F241F")
	fg := fs.String("fg", envDefault("XKCD_WALLPAPER_FG", defaultForeground), "foreground color, either dark or light")
	comic := fs.Int("comic", xkcd.Latest, "comic number; by default the latest xkcd is used")
	output := fs.String("output", envDefault("XKCD_WALLPAPER_OUTPUT", defaultOutput), "output filename, supports %y %m %d %n %t placeholders")
	ref := fs.String("ref", "border", "background detection strategy: border, cluster or dominant")
	verbose := fs.Bool("v", false, "verbose progress output")
	update := fs.Bool("update", false, "check for a newer release and self-update")
	version := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Comic:       *comic,
		Output:      *output,
		Verbose:     *verbose,
		Update:      *update,
		ShowVersion: *version,
	}
	if cfg.Update || cfg.ShowVersion {
		return cfg, nil
	}

	if *width < 1 || *height < 1 {
		return nil, errors.New("--width and --height are required and must be > 0")
	}
	cfg.Width = *width
	cfg.Height = *height

	background, err := wallpaper.ParseHexColor(*bg)
	if err != nil {
		return nil, err
	}
	cfg.Background = background

	mode, err := wallpaper.ParseContrastMode(*fg)
	if err != nil {
		return nil, err
	}
	cfg.Foreground = mode

	switch *ref {
	case "border":
		cfg.Reference = wallpaper.BorderMode{}
	case "cluster":
		cfg.Reference = wallpaper.BorderClusters{}
	case "dominant":
		cfg.Reference = wallpaper.Dominant{}
	default:
		return nil, fmt.Errorf("unknown reference strategy %q (want border, cluster or dominant)", *ref)
	}

	return cfg, nil
}

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	cfg, err := ParseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "xkcd-wallpaper: %v\n", err)
		return 2
	}
	setVerbose(cfg.Verbose)

	if cfg.ShowVersion {
		fmt.Println("xkcd-wallpaper " + Version)
		return 0
	}
	if cfg.Update {
		if err := CheckForUpdates(); err != nil {
			fmt.Fprintf(os.Stderr, "xkcd-wallpaper: update check failed: %v\n", err)
			return 1
		}
		return 0
	}

	client := xkcd.NewClient()
	client.Logf = infof

	infof("starting comic download")
	meta, raw, err := client.Comic(context.Background(), cfg.Comic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xkcd-wallpaper: failed to download comic: %v\n", err)
		return 1
	}

	infof("converting comic %d (%s) into a wallpaper", meta.Num, meta.SafeTitle)
	img, err := wallpaper.Build(raw, wallpaper.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
		Reference:  cfg.Reference,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "xkcd-wallpaper: %v\n", err)
		return 1
	}

	out := xkcd.ExpandFilename(cfg.Output, meta)
	infof("writing wallpaper to %s", out)
	if err := SaveImage(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "xkcd-wallpaper: failed to save wallpaper: %v\n", err)
		return 1
	}
	fmt.Println(out)
	return 0
}
