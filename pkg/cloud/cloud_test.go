package cloud

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"
)

// rectDrawable is a test drawable rasterizing to a solid square of its
// target size, so layout behavior can be tested without fonts.
type rectDrawable struct {
	name string
	log  *[]string // records rasterization order
}

func (r *rectDrawable) String() string { return r.name }

func (r *rectDrawable) Rasterize(size float64, col color.Color) (*Sprite, error) {
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	side := int(math.Max(size, 1))
	tile := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(tile, tile.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return &Sprite{Tile: tile, Mask: maskFromAlpha(tile)}, nil
}

func TestSizeFactor(t *testing.T) {
	items := []Item{{Weight: 3}, {Weight: 1}}
	// factor = 2 * (width/Fraction) / totalWeight
	if got, want := sizeFactor(800, items), 2*200.0/4.0; got != want {
		t.Errorf("sizeFactor = %v, want %v", got, want)
	}
	if got := sizeFactor(800, nil); got != 0 {
		t.Errorf("sizeFactor with no items = %v, want 0", got)
	}
}

func TestRenderDescendingWeightOrder(t *testing.T) {
	var order []string
	items := []Item{
		{Drawable: &rectDrawable{name: "small", log: &order}, Weight: 1},
		{Drawable: &rectDrawable{name: "big", log: &order}, Weight: 10},
		{Drawable: &rectDrawable{name: "mid", log: &order}, Weight: 5},
	}
	if _, err := Render(items, WithSize(400, 200), WithSeed(1)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []string{"big", "mid", "small"}
	if len(order) != len(want) {
		t.Fatalf("rasterization order %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("rasterization order %v, want %v", order, want)
		}
	}
}

func TestRenderPaintsPixels(t *testing.T) {
	items := []Item{{Drawable: &rectDrawable{name: "x"}, Weight: 4}}
	img, err := Render(items, WithSize(200, 100), WithSeed(1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	painted := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("render painted no pixels")
	}
}

func TestRenderEarlyTermination(t *testing.T) {
	// Once one drawable fails to place, the rest must not even be
	// rasterized: a canvas-sized drawable floods the canvas, the second
	// copy fails, and the light tail item never runs.
	var order []string
	flood := []Item{
		{Drawable: &fixedDrawable{w: 32, h: 32, log: &order, name: "flood"}, Weight: 2},
		{Drawable: &fixedDrawable{w: 32, h: 32, log: &order, name: "second"}, Weight: 2},
		{Drawable: &fixedDrawable{w: 4, h: 4, log: &order, name: "never"}, Weight: 1},
	}
	if _, err := Render(flood, WithSize(32, 32), WithSeed(1)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, name := range order {
		if name == "never" {
			t.Error("drawable after the first placement failure was still rasterized")
		}
	}
}

// fixedDrawable rasterizes to a fixed-size solid tile regardless of weight.
type fixedDrawable struct {
	name string
	w, h int
	log  *[]string
}

func (f *fixedDrawable) String() string { return f.name }

func (f *fixedDrawable) Rasterize(size float64, col color.Color) (*Sprite, error) {
	if f.log != nil {
		*f.log = append(*f.log, f.name)
	}
	tile := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	draw.Draw(tile, tile.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	return &Sprite{Tile: tile, Mask: maskFromAlpha(tile)}, nil
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	// PNG magic bytes.
	if len(data) < 8 || data[0] != 0x89 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG stream")
	}
}
