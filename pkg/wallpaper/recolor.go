package wallpaper

import (
	"image"
	"image/color"
)

// lineArtCutoff is the background-ness below which a pixel counts as pure
// line art for contrast adjustment.
const lineArtCutoff = 0.1

// Recolor rewrites background and transition pixels of src toward target,
// using the classification map as the per-pixel blend weight:
//
//	result = source*(1-bg) + target*bg
//
// Pure background is replaced exactly, anti-aliased edges blend smoothly and
// line art keeps its source color. In ContrastLight mode line-art pixels are
// luminance-inverted first so dark drawings stay visible on a dark target
// background; ContrastDark leaves them alone. The output is fully opaque and
// dimension-preserving; src and m are not modified.
func Recolor(src *image.NRGBA, m *ClassificationMap, target color.NRGBA, mode ContrastMode) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	tr := float64(target.R)
	tg := float64(target.G)
	tb := float64(target.B)

	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			sr := float64(src.Pix[i+0])
			sg := float64(src.Pix[i+1])
			sb := float64(src.Pix[i+2])
			bg := m.Values[idx]

			if mode == ContrastLight && bg < lineArtCutoff {
				sr = 255 - sr
				sg = 255 - sg
				sb = 255 - sb
			}

			o := idx * 4
			out.Pix[o+0] = clampUint8(sr*(1-bg) + tr*bg)
			out.Pix[o+1] = clampUint8(sg*(1-bg) + tg*bg)
			out.Pix[o+2] = clampUint8(sb*(1-bg) + tb*bg)
			// wallpapers must not carry transparency
			out.Pix[o+3] = 0xff
			idx++
		}
	}
	return out
}
