// Package wallpaper turns a decoded comic image into a desktop wallpaper:
// it classifies each pixel as background, line art or anti-aliased edge,
// recolors the background toward a target color without haloing, and
// composites the result centered on a canvas of the requested size.
//
// All stages are pure functions over pixel buffers: each allocates its own
// output and never mutates its input, so they are independently testable and
// the whole pipeline either succeeds deterministically or fails before any
// partial result escapes.
package wallpaper

import (
	"bytes"
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Options configures a wallpaper build.
type Options struct {
	// Width and Height are the output canvas dimensions in pixels; both
	// must be > 0.
	Width, Height int
	// Background is the target background color (opaque).
	Background color.NRGBA
	// Foreground selects the line-art contrast handling.
	Foreground ContrastMode
	// Reference overrides the background-detection strategy. nil means
	// the border-sampling default.
	Reference ReferenceStrategy
}

// DecodeError wraps a failure to decode the raw comic bytes.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "decode comic image: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Build decodes raw comic image bytes and runs classification, recoloring
// and compositing in sequence, returning the finished canvas ready for
// encoding. It fails with *DecodeError on malformed input and
// ErrInvalidDimensions on a zero canvas dimension; dimension validation
// happens before any pixel work.
func Build(raw []byte, opts Options) (*image.NRGBA, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, ErrInvalidDimensions
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return BuildFromImage(img, opts)
}

// BuildFromImage is Build for an already-decoded image.
func BuildFromImage(img image.Image, opts Options) (*image.NRGBA, error) {
	src := ToNRGBA(img)
	m := Classify(src, opts.Reference)
	recolored := Recolor(src, m, opts.Background, opts.Foreground)
	return Compose(recolored, opts.Width, opts.Height, opts.Background)
}
