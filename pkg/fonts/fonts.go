// Package fonts locates and parses the truetype font used by the text
// rasterizer.
//
// No font is shipped with the binary; a suitable system font is discovered
// with go-findfont and parsed once, then shared by every render. Callers
// that want a specific face can load it by path instead.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
)

// candidates are tried in order until one resolves on the host system.
var candidates = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
	"FreeSans.ttf",
}

var (
	defaultFont *truetype.Font
	defaultErr  error
	defaultOnce sync.Once
)

// Default returns the process-wide default font, discovering and parsing it
// on first use. The result is cached; the error is sticky.
func Default() (*truetype.Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = discover()
	})
	return defaultFont, defaultErr
}

// Load parses the truetype font at path.
func Load(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return fnt, nil
}

func discover() (*truetype.Font, error) {
	var lastErr error
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			lastErr = err
			continue
		}
		fnt, err := Load(path)
		if err != nil {
			lastErr = err
			continue
		}
		return fnt, nil
	}
	return nil, fmt.Errorf("no usable system font found (tried %v): %w", candidates, lastErr)
}
