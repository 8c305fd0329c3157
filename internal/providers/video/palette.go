package video

import (
	"image/color"

	"aion/internal/domain"
)

var palettes = map[domain.Style][]color.RGBA{
	domain.StyleKids: {
		{R: 255, G: 87, B: 51, A: 255},
		{R: 255, G: 195, B: 0, A: 255},
		{R: 46, G: 204, B: 113, A: 255},
		{R: 52, G: 152, B: 219, A: 255},
		{R: 155, G: 89, B: 182, A: 255},
	},
	domain.StyleProfessional: {
		{R: 44, G: 62, B: 80, A: 255},
		{R: 52, G: 73, B: 94, A: 255},
		{R: 93, G: 109, B: 126, A: 255},
		{R: 127, G: 140, B: 141, A: 255},
	},
	domain.StyleDocumentary: {
		{R: 101, G: 67, B: 33, A: 255},
		{R: 139, G: 115, B: 85, A: 255},
		{R: 85, G: 107, B: 47, A: 255},
		{R: 47, G: 79, B: 79, A: 255},
	},
}

var overlayColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Palette returns the ordered background colors for style. Unknown styles use
// the professional palette.
func Palette(style domain.Style) []color.RGBA {
	if p, ok := palettes[style]; ok {
		return p
	}
	return palettes[domain.StyleProfessional]
}
