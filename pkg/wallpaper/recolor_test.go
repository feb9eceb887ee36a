package wallpaper

import (
	"bytes"
	"image/color"
	"testing"
)

func uniformMap(w, h int, v float64) *ClassificationMap {
	m := &ClassificationMap{W: w, H: h, Values: make([]float64, w*h)}
	for i := range m.Values {
		m.Values[i] = v
	}
	return m
}

func TestRecolorReplacesPureBackgroundExactly(t *testing.T) {
	src := NewSolid(6, 4, white)
	target := color.NRGBA{0x1f, 0x24, 0x1f, 0xff}
	out := Recolor(src, uniformMap(6, 4, 1.0), target, ContrastDark)
	for i := 0; i < len(out.Pix); i += 4 {
		got := color.NRGBA{out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]}
		if got != target {
			t.Fatalf("pixel %d = %v, want %v", i/4, got, target)
		}
	}
}

func TestRecolorIsIdempotentOnBackground(t *testing.T) {
	target := color.NRGBA{0x11, 0x22, 0x33, 0xff}
	src := NewSolid(8, 8, white)

	once := Recolor(src, Classify(src, nil), target, ContrastDark)
	twice := Recolor(once, Classify(once, nil), target, ContrastDark)
	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Fatalf("recoloring an already-recolored background changed pixels")
	}
}

func TestRecolorRoundTripKeepsImage(t *testing.T) {
	// recoloring toward the color the background already has is a no-op
	src := NewSolid(8, 8, white)
	out := Recolor(src, Classify(src, nil), white, ContrastDark)
	if !bytes.Equal(src.Pix, out.Pix) {
		t.Fatalf("round-trip recolor modified a uniform background image")
	}
}

func TestRecolorContrastModes(t *testing.T) {
	src := NewSolid(1, 1, black)
	m := uniformMap(1, 1, 0.0) // pure line art
	target := color.NRGBA{0x1f, 0x24, 0x1f, 0xff}

	dark := Recolor(src, m, target, ContrastDark)
	if got := (color.NRGBA{dark.Pix[0], dark.Pix[1], dark.Pix[2], dark.Pix[3]}); got != black {
		t.Fatalf("dark mode: line art = %v, want untouched black", got)
	}

	light := Recolor(src, m, target, ContrastLight)
	if got := (color.NRGBA{light.Pix[0], light.Pix[1], light.Pix[2], light.Pix[3]}); got != white {
		t.Fatalf("light mode: line art = %v, want inverted to white", got)
	}
}

func TestRecolorBlendsTransitionPixels(t *testing.T) {
	src := NewSolid(1, 1, black)
	out := Recolor(src, uniformMap(1, 1, 0.5), white, ContrastDark)
	if out.Pix[0] < 127 || out.Pix[0] > 128 {
		t.Fatalf("half-blend = %d, want ~127", out.Pix[0])
	}
}

func TestRecolorForcesOpaqueOutput(t *testing.T) {
	src := NewSolid(3, 3, color.NRGBA{10, 20, 30, 0})
	out := Recolor(src, uniformMap(3, 3, 0.0), white, ContrastDark)
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0xff {
			t.Fatalf("alpha at byte %d = %d, want 255", i, out.Pix[i])
		}
	}
}
