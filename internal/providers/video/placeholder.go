package video

import "context"

var placeholderPayload = append([]byte("RIFF"), make([]byte, 100)...)

// PlaceholderPayload returns the bytes served when a job has no artifact.
func PlaceholderPayload() []byte {
	out := make([]byte, len(placeholderPayload))
	copy(out, placeholderPayload)
	return out
}

// Placeholder never renders anything; every download falls back to
// PlaceholderPayload.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) Synthesize(ctx context.Context, req Request) Result {
	return Result{}
}

var _ Generator = (*Placeholder)(nil)
