package cloud

import (
	"fmt"
	"image"
	"image/color"
)

// alphaThreshold is the minimum alpha for a pixel to count as occupied in
// a sprite's packing mask.
const alphaThreshold = 0x20

// Drawable is one renderable word-cloud unit: a text run or an image.
// Rasterize produces the sized sprite used for both collision testing and
// painting; the color is chosen by the renderer's Sampler and ignored by
// drawables with intrinsic colors.
type Drawable interface {
	fmt.Stringer
	Rasterize(size float64, col color.Color) (*Sprite, error)
}

// Sprite is a rasterized drawable: the pixels to paint plus the occupancy
// footprint used by the packing search.
type Sprite struct {
	Tile *image.RGBA
	Mask *Mask
}

// maskFromAlpha builds the occupancy mask of an RGBA tile from its alpha
// channel.
func maskFromAlpha(tile *image.RGBA) *Mask {
	b := tile.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if tile.RGBAAt(b.Min.X+x, b.Min.Y+y).A >= alphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}
