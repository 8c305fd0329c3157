package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects the palette used for frame backgrounds.
type Style string

const (
	StyleKids         Style = "kids"
	StyleProfessional Style = "professional"
	StyleDocumentary  Style = "documentary"
)

var knownStyles = map[Style]struct{}{
	StyleKids:         {},
	StyleProfessional: {},
	StyleDocumentary:  {},
}

var lowerStyle = cases.Lower(language.Und)

// ParseStyle matches raw case-insensitively against the known styles and
// returns fallback for anything else.
func ParseStyle(raw string, fallback Style) Style {
	s := Style(lowerStyle.String(strings.TrimSpace(raw)))
	if _, ok := knownStyles[s]; ok {
		return s
	}
	return fallback
}

