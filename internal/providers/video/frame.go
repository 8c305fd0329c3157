package video

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const (
	FrameWidth  = 1280
	FrameHeight = 720
	FrameRate   = 24

	textSize     = 40
	textMarginX  = 60
	textMarginY  = 60
	lineHeight   = 60
	textBaseline = 44
)

// frameSequence renders frames on demand into a single reused canvas.
type frameSequence struct {
	topic   string
	palette []color.RGBA
	total   int

	canvas *image.RGBA
	text   *textRenderer
}

func newFrameSequence(topic string, palette []color.RGBA, total int) (*frameSequence, error) {
	text, err := newTextRenderer(textSize, overlayColor)
	if err != nil {
		return nil, err
	}
	return &frameSequence{
		topic:   topic,
		palette: palette,
		total:   total,
		canvas:  image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight)),
		text:    text,
	}, nil
}

func (s *frameSequence) Len() int {
	return s.total
}

// Frame paints frame i. The returned image is only valid until the next call.
func (s *frameSequence) Frame(i int) (*image.RGBA, error) {
	if i < 0 || i >= s.total {
		return nil, fmt.Errorf("video: frame %d out of range [0,%d)", i, s.total)
	}
	if len(s.palette) == 0 {
		return nil, fmt.Errorf("video: empty palette")
	}
	bg := s.palette[i%len(s.palette)]
	draw.Draw(s.canvas, s.canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	lines := []string{s.topic, fmt.Sprintf("Frame %d / %d", i+1, s.total)}
	for n, line := range lines {
		top := textMarginY + n*lineHeight
		area := image.Rect(textMarginX, top, FrameWidth-textMarginX, top+lineHeight)
		s.text.DrawLine(s.canvas, area, textBaseline, line)
	}
	return s.canvas, nil
}
