package cloud

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lexicloud/pkg/observability"
)

// Fraction is the canvas-width budget of the heaviest drawable: it gets to
// span roughly 1/Fraction of the canvas's primary dimension. A tuning
// choice trading cloud density against legibility of individual words.
const Fraction = 4

// Default canvas extent.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Item pairs a drawable with its idiom weight.
type Item struct {
	Drawable Drawable
	Weight   float32
}

// Option configures a render.
type Option func(*renderer)

type renderer struct {
	width, height int
	accent        color.Color
	seed          int64
	logger        *log.Logger
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(w, h int) Option {
	return func(r *renderer) { r.width, r.height = w, h }
}

// WithAccent sets the anchor color for the palette. Nil keeps the neutral
// default.
func WithAccent(c color.Color) Option {
	return func(r *renderer) { r.accent = c }
}

// WithSeed fixes the color sampler's random seed for reproducible output.
func WithSeed(seed int64) Option {
	return func(r *renderer) { r.seed = seed }
}

// WithLogger sets the logger used for per-placement progress.
func WithLogger(l *log.Logger) Option {
	return func(r *renderer) { r.logger = l }
}

// sizeFactor converts weights to pixel sizes so the heaviest drawable ends
// up at roughly width/Fraction pixels.
func sizeFactor(width int, items []Item) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Weight)
	}
	if total == 0 {
		return 0
	}
	return 2 * float64(width/Fraction) / total
}

// Render lays out the items as a word cloud and returns the painted canvas.
//
// Items are sized proportionally to their weight, sorted descending, and
// placed greedily. The first drawable that no longer fits terminates the
// whole render: remaining items are all lighter, and a partial cloud is the
// accepted output over an exhaustive packing search.
func Render(items []Item, opts ...Option) (*image.RGBA, error) {
	r := renderer{width: DefaultWidth, height: DefaultHeight, seed: 1, logger: log.Default()}
	for _, opt := range opts {
		opt(&r)
	}

	observability.Render().OnRenderStart(r.width, r.height, len(items))

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	factor := sizeFactor(r.width, sorted)
	sampler := NewSampler(r.accent, r.seed)
	canvas := NewCanvas(r.width, r.height)
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	placed := 0
	for _, it := range sorted {
		sprite, err := it.Drawable.Rasterize(float64(it.Weight)*factor, sampler.Sample())
		if err != nil {
			observability.Render().OnRenderComplete(placed, err)
			return nil, err
		}
		pos, err := canvas.Place(sprite.Mask)
		if err != nil {
			// Canvas exhausted: stop here, keep what fit.
			r.logger.Debug("canvas exhausted", "drawable", it.Drawable.String(), "placed", placed)
			break
		}
		rect := image.Rect(pos.X, pos.Y, pos.X+sprite.Mask.Width(), pos.Y+sprite.Mask.Height())
		draw.Draw(img, rect, sprite.Tile, sprite.Tile.Bounds().Min, draw.Over)
		r.logger.Debug("placed drawable", "drawable", it.Drawable.String(), "x", pos.X, "y", pos.Y)
		placed++
	}

	observability.Render().OnRenderComplete(placed, nil)
	return img, nil
}

// EncodePNG encodes the canvas as a lossless PNG for upload.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
