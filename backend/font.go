package backend

import (
	"fmt"

	"github.com/gogpu/gg/cache"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/nodes/geom"
)

// DefaultFontSize is the label size of the built-in face, in pixels.
const DefaultFontSize = 13

// FontMeasurer sizes labels with a real font face. Measurements are
// cached by string, as the same labels are measured every frame.
type FontMeasurer struct {
	face   text.Face
	height float64
	cache  *cache.ShardedCache[string, geom.Vec2]
}

// NewFontMeasurer returns a measurer for face.
func NewFontMeasurer(face text.Face) *FontMeasurer {
	return &FontMeasurer{
		face:   face,
		height: face.Metrics().LineHeight(),
		cache:  cache.NewSharded[string, geom.Vec2](256, cache.StringHasher),
	}
}

// Measure implements nodes.TextMeasurer.
func (m *FontMeasurer) Measure(s string) geom.Vec2 {
	return m.cache.GetOrCreate(s, func() geom.Vec2 {
		return geom.V(m.face.Advance(s), m.height)
	})
}

// Face returns the measured face.
func (m *FontMeasurer) Face() text.Face { return m.face }

// Cached returns the number of measured strings held in the cache.
func (m *FontMeasurer) Cached() int { return m.cache.Len() }

// LoadFace loads a face at size from a TTF/OTF file, or from the embedded
// Go Regular font when path is empty.
func LoadFace(path string, size float64) (text.Face, *text.FontSource, error) {
	var (
		src *text.FontSource
		err error
	)
	if path == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("backend: load font: %w", err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	return src.Face(size), src, nil
}
