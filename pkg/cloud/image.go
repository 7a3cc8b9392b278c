package cloud

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Image is a drawable with intrinsic pixels, typically a custom emoji. It
// is scaled so its height matches the size a word of the same weight would
// get; the sampler color is ignored.
type Image struct {
	name string
	img  image.Image
}

// NewImage creates an image drawable. The name is used for logging only.
func NewImage(name string, img image.Image) *Image {
	return &Image{name: name, img: img}
}

func (i *Image) String() string { return i.name }

// Rasterize scales the image proportionally to the target height and builds
// the packing mask from its alpha coverage.
func (i *Image) Rasterize(size float64, _ color.Color) (*Sprite, error) {
	h := int(size)
	if h < 1 {
		h = 1
	}
	resized := imaging.Resize(i.img, 0, h, imaging.Lanczos)

	tile := image.NewRGBA(resized.Bounds())
	draw.Draw(tile, tile.Bounds(), resized, resized.Bounds().Min, draw.Src)
	return &Sprite{Tile: tile, Mask: maskFromAlpha(tile)}, nil
}
