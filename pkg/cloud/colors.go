package cloud

import (
	"image/color"
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue offsets from the anchor, in degrees: the anchor itself, two analogous
// angles, and two near-complementary ones.
var hueAngles = [...]float64{-15, 0, 15, 165, 195}

const (
	// minChroma keeps pale or gray anchors from producing washed-out
	// palettes; anything below is lifted to this floor.
	minChroma = 0.16

	hueNoise    = 2.0  // degrees, each side
	chromaNoise = 0.08 // HCL chroma units, each side
)

// Sampler draws random palette colors biased around one anchor color.
// Every call is independent; a fixed seed reproduces the full sequence.
type Sampler struct {
	h, c, l float64
	rng     *rand.Rand
}

// NewSampler creates a sampler anchored at accent. A nil accent falls back
// to white, which after the chroma floor still yields vivid output.
func NewSampler(accent color.Color, seed int64) *Sampler {
	base := colorful.Color{R: 1, G: 1, B: 1}
	if accent != nil {
		base, _ = colorful.MakeColor(accent)
	}
	h, c, l := base.Hcl()
	return &Sampler{h: h, c: math.Max(c, minChroma), l: l, rng: rand.New(rand.NewSource(seed))}
}

// Sample returns one palette color: a random hue offset from the anchor
// with bounded hue and chroma noise, converted back to clamped sRGB.
func (s *Sampler) Sample() color.RGBA {
	angle := hueAngles[s.rng.Intn(len(hueAngles))]
	h := math.Mod(s.h+angle+s.noise(hueNoise)+360, 360)
	c := math.Max(0, s.c+s.noise(chromaNoise))
	col := colorful.Hcl(h, c, s.l).Clamped()
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// noise returns a uniform draw from (-amplitude, amplitude).
func (s *Sampler) noise(amplitude float64) float64 {
	return (s.rng.Float64()*2 - 1) * amplitude
}
