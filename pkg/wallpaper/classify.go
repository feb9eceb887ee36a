package wallpaper

import (
	"image"
	"image/color"
	"math"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"
)

// ClassificationMap holds one background-ness value per source pixel in
// [0,1]: 0 = pure line art, 1 = pure background, in between = anti-aliased
// edge. It is purely derived data and is never mutated after Classify.
type ClassificationMap struct {
	W, H   int
	Values []float64
}

// At returns the background-ness of pixel (x, y).
func (m *ClassificationMap) At(x, y int) float64 {
	return m.Values[y*m.W+x]
}

// Distance thresholds on the 0..255 luminance-weighted RGB scale. At or
// below distBackground a pixel counts as pure background; at or above
// distLineArt as pure line art. The linear band in between is what keeps
// anti-aliased edges smooth instead of producing jagged cutouts.
const (
	distBackground = 16.0
	distLineArt    = 160.0
)

// alphaVarEps is the minimum variance of the source alpha channel before an
// existing transparency channel is trusted over the color-distance heuristic.
const alphaVarEps = 1.0

// ReferenceStrategy determines the original background color of a comic,
// i.e. the color Classify measures every pixel against. Comics are drawn on
// a uniform light background, so the default samples the image border; the
// other strategies exist for comics where that heuristic fails.
type ReferenceStrategy interface {
	Reference(src *image.NRGBA) color.NRGBA
}

// BorderMode picks the most frequent color on the outermost pixel ring.
type BorderMode struct{}

func (BorderMode) Reference(src *image.NRGBA) color.NRGBA {
	counts := make(map[uint32]int)
	for _, c := range borderPixels(src) {
		counts[uint32(c.R)<<16|uint32(c.G)<<8|uint32(c.B)]++
	}
	var bestKey uint32
	bestCount := -1
	for key, n := range counts {
		// deterministic tie-break on the packed RGB value
		if n > bestCount || (n == bestCount && key < bestKey) {
			bestCount = n
			bestKey = key
		}
	}
	return color.NRGBA{
		R: uint8(bestKey >> 16),
		G: uint8(bestKey >> 8),
		B: uint8(bestKey),
		A: 0xff,
	}
}

// BorderClusters clusters the border ring with k-means and returns the
// centroid of the largest cluster. More robust than exact counting when
// JPEG artifacts smear the border colors. K defaults to 3.
type BorderClusters struct {
	K int
}

func (s BorderClusters) Reference(src *image.NRGBA) color.NRGBA {
	k := s.K
	if k <= 0 {
		k = 3
	}
	ring := borderPixels(src)
	if len(ring) < 2*k {
		return BorderMode{}.Reference(src)
	}
	dataset := make(clusters.Observations, 0, len(ring))
	for _, c := range ring {
		dataset = append(dataset, clusters.Coordinates{
			float64(c.R) / 255.0,
			float64(c.G) / 255.0,
			float64(c.B) / 255.0,
		})
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return BorderMode{}.Reference(src)
	}
	best := 0
	for i := range cc {
		if len(cc[i].Observations) > len(cc[best].Observations) {
			best = i
		}
	}
	center := cc[best].Center
	if len(center) < 3 {
		return BorderMode{}.Reference(src)
	}
	col := colorful.Color{R: center[0], G: center[1], B: center[2]}.Clamped()
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Dominant uses the dominant color of the whole image. Explicit opt-in for
// comics whose border is not representative of the drawing background.
type Dominant struct{}

func (Dominant) Reference(src *image.NRGBA) color.NRGBA {
	c := dominantcolor.Find(src)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// borderPixels returns the outermost ring of pixels. For a 1x1 image that is
// the single pixel.
func borderPixels(src *image.NRGBA) []color.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	at := func(x, y int) color.NRGBA {
		i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
		return color.NRGBA{src.Pix[i+0], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]}
	}
	out := make([]color.NRGBA, 0, 2*w+2*h)
	for x := 0; x < w; x++ {
		out = append(out, at(x, 0))
		if h > 1 {
			out = append(out, at(x, h-1))
		}
	}
	for y := 1; y < h-1; y++ {
		out = append(out, at(0, y))
		if w > 1 {
			out = append(out, at(w-1, y))
		}
	}
	return out
}

// Classify produces the per-pixel background-ness map for src. strategy may
// be nil, in which case the border-sampling heuristic is used. Classify is
// total: it always returns a complete map, even for a 1x1 image.
func Classify(src *image.NRGBA, strategy ReferenceStrategy) *ClassificationMap {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	m := &ClassificationMap{W: w, H: h, Values: make([]float64, w*h)}

	// An explicit transparency channel is a stronger signal than any color
	// distance heuristic: derive background-ness from it directly.
	if hasAlphaVariation(src) {
		idx := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				i := src.PixOffset(x, y)
				m.Values[idx] = 1.0 - float64(src.Pix[i+3])/255.0
				idx++
			}
		}
		return m
	}

	if strategy == nil {
		strategy = BorderMode{}
	}
	ref := strategy.Reference(src)
	refR := float64(ref.R)
	refG := float64(ref.G)
	refB := float64(ref.B)

	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := src.PixOffset(x, y)
			dr := float64(src.Pix[i+0]) - refR
			dg := float64(src.Pix[i+1]) - refG
			db := float64(src.Pix[i+2]) - refB
			// Rec.601 channel weights keep the distance roughly perceptual
			// while staying on the 0..255 scale.
			d := math.Sqrt(0.299*dr*dr + 0.587*dg*dg + 0.114*db*db)
			m.Values[idx] = backgroundness(d)
			idx++
		}
	}
	return m
}

func backgroundness(dist float64) float64 {
	switch {
	case dist <= distBackground:
		return 1.0
	case dist >= distLineArt:
		return 0.0
	default:
		return 1.0 - (dist-distBackground)/(distLineArt-distBackground)
	}
}

// hasAlphaVariation reports whether the alpha channel carries real
// information. Fully-opaque (or fully-uniform) alpha has zero variance and
// falls through to the color-distance path.
func hasAlphaVariation(src *image.NRGBA) bool {
	n := len(src.Pix) / 4
	if n < 2 {
		return false
	}
	// Sample at a stride so huge images stay cheap; variance of a uniform
	// channel is 0 regardless of sampling.
	stride := 1
	const maxSamples = 1 << 14
	if n > maxSamples {
		stride = n / maxSamples
	}
	samples := make([]float64, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		samples = append(samples, float64(src.Pix[i*4+3]))
	}
	if len(samples) < 2 {
		return false
	}
	return stat.Variance(samples, nil) > alphaVarEps
}
