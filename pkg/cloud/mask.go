// Package cloud implements the word-cloud layout engine: weight-to-size
// mapping, greedy descending-weight placement, a bit-packed occupancy
// structure for collision-free packing, accent-biased color sampling, and
// rasterization adapters for text and images.
//
// A render is single-threaded: one canvas, one occupancy mask, strictly
// sequential placement. Concurrent renders each get their own Canvas.
package cloud

import (
	"errors"
	"image"
)

// ErrNoSpace is returned by Place when no position on the canvas can hold
// the mask without overlap. Renders treat it as the stop signal, not as a
// failure: the partially filled canvas is the accepted output.
var ErrNoSpace = errors.New("no space left on canvas")

// wordBits is the packing width of a mask row word.
const wordBits = 64

// Mask is a 2-D pixel-presence bitmap packed into 64-bit words row by row.
// It serves both as the footprint of a single rasterized drawable and as
// the occupancy index of a whole canvas.
type Mask struct {
	w, h   int
	stride int // words per row
	words  []uint64
}

// NewMask creates an empty mask of the given dimensions.
func NewMask(w, h int) *Mask {
	stride := (w + wordBits - 1) / wordBits
	return &Mask{w: w, h: h, stride: stride, words: make([]uint64, stride*h)}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks the pixel at (x, y) as occupied. Out-of-bounds sets are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.words[y*m.stride+x/wordBits] |= 1 << (x % wordBits)
}

// At reports whether the pixel at (x, y) is occupied.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.words[y*m.stride+x/wordBits]&(1<<(x%wordBits)) != 0
}

// overlapsAt reports whether o, offset by (dx, dy), shares any occupied
// pixel with m. Offsets must be non-negative. The comparison works
// word-by-word with bit shifting, so a row costs a handful of AND
// operations instead of a per-pixel walk.
func (m *Mask) overlapsAt(o *Mask, dx, dy int) bool {
	shift := uint(dx % wordBits)
	base := dx / wordBits
	for yo := 0; yo < o.h; yo++ {
		y := dy + yo
		if y < 0 || y >= m.h {
			continue
		}
		orow := o.words[yo*o.stride : (yo+1)*o.stride]
		mrow := m.words[y*m.stride : (y+1)*m.stride]
		for wi, w := range orow {
			if w == 0 {
				continue
			}
			lo := base + wi
			if lo >= 0 && lo < m.stride && mrow[lo]&(w<<shift) != 0 {
				return true
			}
			if shift != 0 && lo+1 >= 0 && lo+1 < m.stride && mrow[lo+1]&(w>>(wordBits-shift)) != 0 {
				return true
			}
		}
	}
	return false
}

// mergeAt commits o's occupied pixels into m at offset (dx, dy).
func (m *Mask) mergeAt(o *Mask, dx, dy int) {
	shift := uint(dx % wordBits)
	base := dx / wordBits
	for yo := 0; yo < o.h; yo++ {
		y := dy + yo
		if y < 0 || y >= m.h {
			continue
		}
		orow := o.words[yo*o.stride : (yo+1)*o.stride]
		mrow := m.words[y*m.stride : (y+1)*m.stride]
		for wi, w := range orow {
			if w == 0 {
				continue
			}
			lo := base + wi
			if lo >= 0 && lo < m.stride {
				mrow[lo] |= w << shift
			}
			if shift != 0 && lo+1 >= 0 && lo+1 < m.stride {
				mrow[lo+1] |= w >> (wordBits - shift)
			}
		}
	}
}

// searchStep is the pixel granularity of the placement spiral. Coarser
// steps trade packing density for search speed.
const searchStep = 4

// Canvas is the occupancy structure for one render: a fixed extent plus the
// committed footprint of every accepted placement.
type Canvas struct {
	occupied *Mask
}

// NewCanvas creates an empty canvas occupancy index of the given extent.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{occupied: NewMask(w, h)}
}

// Place searches for a position where m fits without overlapping any
// committed pixels, commits it there, and returns the top-left position.
// The search walks an expanding rectangular spiral outward from the canvas
// center so the cloud grows compactly around earlier placements. Returns
// ErrNoSpace once the spiral leaves the canvas everywhere.
func (c *Canvas) Place(m *Mask) (image.Point, error) {
	if m.w > c.occupied.w || m.h > c.occupied.h {
		return image.Point{}, ErrNoSpace
	}
	cx := (c.occupied.w - m.w) / 2
	cy := (c.occupied.h - m.h) / 2

	try := func(x, y int) bool {
		if x < 0 || y < 0 || x+m.w > c.occupied.w || y+m.h > c.occupied.h {
			return false
		}
		return !c.occupied.overlapsAt(m, x, y)
	}

	if try(cx, cy) {
		c.occupied.mergeAt(m, cx, cy)
		return image.Point{X: cx, Y: cy}, nil
	}

	maxR := c.occupied.w + c.occupied.h
	for r := searchStep; r <= maxR; r += searchStep {
		inBounds := false
		for _, p := range ringOffsets(r) {
			x, y := cx+p.X, cy+p.Y
			if x < 0 || y < 0 || x+m.w > c.occupied.w || y+m.h > c.occupied.h {
				continue
			}
			inBounds = true
			if !c.occupied.overlapsAt(m, x, y) {
				c.occupied.mergeAt(m, x, y)
				return image.Point{X: x, Y: y}, nil
			}
		}
		if !inBounds {
			break
		}
	}
	return image.Point{}, ErrNoSpace
}

// ringOffsets enumerates the offsets on the square ring of Chebyshev radius
// r, sampled at searchStep intervals.
func ringOffsets(r int) []image.Point {
	pts := make([]image.Point, 0, 8*r/searchStep+8)
	for d := -r; d <= r; d += searchStep {
		pts = append(pts, image.Point{X: d, Y: -r}, image.Point{X: d, Y: r})
	}
	for d := -r + searchStep; d <= r-searchStep; d += searchStep {
		pts = append(pts, image.Point{X: -r, Y: d}, image.Point{X: r, Y: d})
	}
	return pts
}
