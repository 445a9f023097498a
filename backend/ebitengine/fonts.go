package ebitengine

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/sapling"
)

// variant identifies one of the bundled Go font files.
type variant struct {
	mono, bold, italic bool
}

var fontData = map[variant][]byte{
	{}:                                     goregular.TTF,
	{bold: true}:                           gobold.TTF,
	{italic: true}:                         goitalic.TTF,
	{bold: true, italic: true}:             gobolditalic.TTF,
	{mono: true}:                           gomono.TTF,
	{mono: true, bold: true}:               gomonobold.TTF,
	{mono: true, italic: true}:             gomonoitalic.TTF,
	{mono: true, bold: true, italic: true}: gomonobolditalic.TTF,
}

// variantFor maps a Font onto the bundled files. Families naming a
// monospace face get Go Mono; everything else gets the proportional Go font.
func variantFor(f sapling.Font) variant {
	fam := strings.ToLower(strings.TrimSpace(f.Family))
	mono := strings.Contains(fam, "mono")
	return variant{mono: mono, bold: f.Bold, italic: f.Italic}
}

type cachedFace struct {
	face       *text.GoTextFace
	lineHeight float64
}

// fontCache owns the parsed font sources and one face per Font. It lives as
// long as its Renderer.
type fontCache struct {
	sources map[variant]*text.GoTextFaceSource
	faces   map[sapling.Font]cachedFace
}

func newFontCache() (*fontCache, error) {
	c := &fontCache{
		sources: make(map[variant]*text.GoTextFaceSource, len(fontData)),
		faces:   make(map[sapling.Font]cachedFace),
	}
	for v, ttf := range fontData {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
		if err != nil {
			return nil, fmt.Errorf("sapling: parse font %+v: %w", v, err)
		}
		c.sources[v] = src
	}
	return c, nil
}

// face returns the face for f and its line height.
func (c *fontCache) face(f sapling.Font) (*text.GoTextFace, float64) {
	if f.Size <= 0 {
		f.Size = sapling.DefaultFont.Size
	}
	if cf, ok := c.faces[f]; ok {
		return cf.face, cf.lineHeight
	}
	face := &text.GoTextFace{Source: c.sources[variantFor(f)], Size: f.Size}
	m := face.Metrics()
	cf := cachedFace{face: face, lineHeight: m.HAscent + m.HDescent + m.HLineGap}
	c.faces[f] = cf
	return cf.face, cf.lineHeight
}
