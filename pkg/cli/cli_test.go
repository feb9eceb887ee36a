package cli

import (
	"errors"
	"image/color"
	"testing"

	"github.com/tbruckner/xkcd-wallpaper/pkg/wallpaper"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"--width", "1920", "--height", "1080"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Background != (color.NRGBA{0x1f, 0x24, 0x1f, 0xff}) {
		t.Fatalf("background = %v, want default #1F241F", cfg.Background)
	}
	if cfg.Foreground != wallpaper.ContrastLight {
		t.Fatalf("foreground = %v, want light", cfg.Foreground)
	}
	if cfg.Comic != 0 {
		t.Fatalf("comic = %d, want latest (0)", cfg.Comic)
	}
	if cfg.Output != defaultOutput {
		t.Fatalf("output = %q", cfg.Output)
	}
	if _, ok := cfg.Reference.(wallpaper.BorderMode); !ok {
		t.Fatalf("reference = %T, want BorderMode", cfg.Reference)
	}
}

func TestParseArgsFullFlagSet(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--width", "2560", "--height", "1440",
		"--bg", "#000000", "--fg", "dark",
		"--comic", "3084", "--output", "out/%n.png",
		"--ref", "cluster", "-v",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Background != (color.NRGBA{0, 0, 0, 0xff}) {
		t.Fatalf("background = %v", cfg.Background)
	}
	if cfg.Foreground != wallpaper.ContrastDark {
		t.Fatalf("foreground = %v", cfg.Foreground)
	}
	if cfg.Comic != 3084 || cfg.Output != "out/%n.png" || !cfg.Verbose {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if _, ok := cfg.Reference.(wallpaper.BorderClusters); !ok {
		t.Fatalf("reference = %T, want BorderClusters", cfg.Reference)
	}
}

func TestParseArgsRequiresDimensions(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"--width", "1920"},
		{"--height", "1080"},
		{"--width", "0", "--height", "1080"},
		{"--width", "1920", "--height", "-1"},
	} {
		if _, err := ParseArgs(args); err == nil {
			t.Fatalf("args %v: expected error", args)
		}
	}
}

func TestParseArgsRejectsBadColor(t *testing.T) {
	_, err := ParseArgs([]string{"--width", "1", "--height", "1", "--bg", "ZZ0000"})
	if !errors.Is(err, wallpaper.ErrInvalidColor) {
		t.Fatalf("err = %v, want ErrInvalidColor", err)
	}
}

func TestParseArgsRejectsBadForegroundAndStrategy(t *testing.T) {
	if _, err := ParseArgs([]string{"--width", "1", "--height", "1", "--fg", "neon"}); err == nil {
		t.Fatalf("expected error for bad --fg")
	}
	if _, err := ParseArgs([]string{"--width", "1", "--height", "1", "--ref", "magic"}); err == nil {
		t.Fatalf("expected error for bad --ref")
	}
}

func TestParseArgsEnvironmentDefaults(t *testing.T) {
	t.Setenv("XKCD_WALLPAPER_BG", "#102030")
	t.Setenv("XKCD_WALLPAPER_FG", "dark")
	cfg, err := ParseArgs([]string{"--width", "10", "--height", "10"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Background != (color.NRGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Fatalf("background = %v, want env value", cfg.Background)
	}
	if cfg.Foreground != wallpaper.ContrastDark {
		t.Fatalf("foreground = %v, want env value", cfg.Foreground)
	}
}

func TestParseArgsUpdateAndVersionSkipValidation(t *testing.T) {
	cfg, err := ParseArgs([]string{"--update"})
	if err != nil || !cfg.Update {
		t.Fatalf("update: cfg=%+v err=%v", cfg, err)
	}
	cfg, err = ParseArgs([]string{"--version"})
	if err != nil || !cfg.ShowVersion {
		t.Fatalf("version: cfg=%+v err=%v", cfg, err)
	}
}
