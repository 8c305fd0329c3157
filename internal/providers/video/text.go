package video

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"
)

// DejaVu Sans ships Latin, Cyrillic, Greek and the Arabic block with its
// joining forms, which covers every locale the API serves.
//
//go:embed fonts/DejaVuSans.ttf
var overlayFontData []byte

var loadOverlayFont = sync.OnceValues(func() (*gtfont.Font, error) {
	face, err := gtfont.ParseTTF(bytes.NewReader(overlayFontData))
	if err != nil {
		return nil, fmt.Errorf("video: parse overlay font: %w", err)
	}
	return face.Font, nil
})

// textRenderer shapes one line of text and rasterizes it with antialiasing.
// It is not safe for concurrent use.
type textRenderer struct {
	face   *gtfont.Face
	size   fixed.Int26_6
	shaper shaping.HarfbuzzShaper
	seg    shaping.Segmenter
	raster *vector.Rasterizer
	src    *image.Uniform
}

func newTextRenderer(px int, c color.Color) (*textRenderer, error) {
	ft, err := loadOverlayFont()
	if err != nil {
		return nil, err
	}
	return &textRenderer{
		face:   gtfont.NewFace(ft),
		size:   fixed.I(px),
		raster: vector.NewRasterizer(0, 0),
		src:    image.NewUniform(c),
	}, nil
}

// ResolveFace implements shaping.Fontmap with the single embedded face.
func (r *textRenderer) ResolveFace(rune) *gtfont.Face {
	return r.face
}

// DrawLine paints text into the rectangle area of dst with its baseline at
// area.Min.Y+baseline. Glyphs beyond the rectangle are clipped.
func (r *textRenderer) DrawLine(dst *image.RGBA, area image.Rectangle, baseline int, text string) {
	runes := []rune(text)
	if len(runes) == 0 || area.Empty() {
		return
	}
	base := paragraphDirection(runes)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: base,
		Face:      r.face,
		Size:      r.size,
	}
	runs := r.seg.Split(input, r)
	shaped := make([]shaping.Output, len(runs))
	for i, run := range runs {
		shaped[i] = r.shaper.Shape(run)
	}

	r.raster.Reset(area.Dx(), area.Dy())
	scale := float32(r.size) / 64 / float32(r.face.Upem())
	pen := fixed.Int26_6(0)
	by := float32(baseline)
	for _, out := range visualOrder(shaped, base) {
		for _, g := range out.Glyphs {
			gx := float32(pen+g.XOffset) / 64
			gy := by - float32(g.YOffset)/64
			r.addGlyph(g.GlyphID, gx, gy, scale)
			pen += g.Advance
		}
	}
	r.raster.Draw(dst, area, r.src, image.Point{})
}

func (r *textRenderer) addGlyph(gid gtfont.GID, x, y, scale float32) {
	outline, ok := r.face.GlyphData(gid).(gtfont.GlyphOutline)
	if !ok {
		return
	}
	open := false
	for _, s := range outline.Segments {
		a := s.Args
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				r.raster.ClosePath()
			}
			r.raster.MoveTo(x+a[0].X*scale, y-a[0].Y*scale)
			open = true
		case ot.SegmentOpLineTo:
			r.raster.LineTo(x+a[0].X*scale, y-a[0].Y*scale)
		case ot.SegmentOpQuadTo:
			r.raster.QuadTo(x+a[0].X*scale, y-a[0].Y*scale, x+a[1].X*scale, y-a[1].Y*scale)
		case ot.SegmentOpCubeTo:
			r.raster.CubeTo(x+a[0].X*scale, y-a[0].Y*scale, x+a[1].X*scale, y-a[1].Y*scale, x+a[2].X*scale, y-a[2].Y*scale)
		}
	}
	if open {
		r.raster.ClosePath()
	}
}

// paragraphDirection follows the first strong character, defaulting to
// left-to-right.
func paragraphDirection(runes []rune) di.Direction {
	for _, c := range runes {
		props, _ := bidi.LookupRune(c)
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}

// visualOrder arranges shaped runs left to right. Runs arrive in logical
// order; levels are reversed from the highest down to the lowest odd level.
// Glyphs inside a run are already in visual order.
func visualOrder(runs []shaping.Output, base di.Direction) []shaping.Output {
	levels := make([]int, len(runs))
	maxLevel := 0
	for i, run := range runs {
		rtl := run.Direction.Progression() == di.TowardTopLeft
		switch {
		case base == di.DirectionRTL && rtl:
			levels[i] = 1
		case base == di.DirectionRTL:
			levels[i] = 2
		case rtl:
			levels[i] = 1
		}
		if levels[i] > maxLevel {
			maxLevel = levels[i]
		}
	}
	ordered := append([]shaping.Output(nil), runs...)
	for lvl := maxLevel; lvl >= 1; lvl-- {
		for i := 0; i < len(ordered); {
			if levels[i] < lvl {
				i++
				continue
			}
			j := i
			for j < len(ordered) && levels[j] >= lvl {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				ordered[a], ordered[b] = ordered[b], ordered[a]
				levels[a], levels[b] = levels[b], levels[a]
			}
			i = j
		}
	}
	return ordered
}
