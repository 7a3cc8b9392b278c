package cloud

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// Text is a drawable word rendered with a truetype font.
type Text struct {
	text string
	font *truetype.Font
}

// NewText creates a text drawable for the given word.
func NewText(text string, fnt *truetype.Font) *Text {
	return &Text{text: text, font: fnt}
}

func (t *Text) String() string { return t.text }

// Rasterize draws the word at the given point size in the given color onto
// a transparent tile and derives the packing mask from glyph coverage.
func (t *Text) Rasterize(size float64, col color.Color) (*Sprite, error) {
	if size < 1 {
		size = 1
	}
	face := truetype.NewFace(t.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()

	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	w, _ := measure.MeasureString(t.text)
	width := int(w) + 2
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(t.text, 1, float64(ascent))

	tile, ok := dc.Image().(*image.RGBA)
	if !ok {
		tile = image.NewRGBA(dc.Image().Bounds())
		draw.Draw(tile, tile.Bounds(), dc.Image(), dc.Image().Bounds().Min, draw.Src)
	}
	return &Sprite{Tile: tile, Mask: maskFromAlpha(tile)}, nil
}
