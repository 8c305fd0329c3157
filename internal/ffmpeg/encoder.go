package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strings"
)

// Frames yields the frames of a video in order. Implementations may reuse the
// returned image between calls; the encoder copies it onto the pipe before
// asking for the next one.
type Frames interface {
	Len() int
	Frame(i int) (*image.RGBA, error)
}

// Encoder runs an ffmpeg process and streams frames into it.
type Encoder struct {
	binary  string
	builder *CommandBuilder
}

func NewEncoder(binary string) *Encoder {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	return &Encoder{binary: binary, builder: NewCommandBuilder()}
}

// Encode writes every frame to ffmpeg's stdin and waits for the process to
// exit. The error includes ffmpeg's stderr when the process fails.
func (e *Encoder) Encode(ctx context.Context, p RawVideoParams, frames Frames) error {
	if frames == nil || frames.Len() == 0 {
		return errors.New("ffmpeg: no frames to encode")
	}
	if p.Width <= 0 || p.Height <= 0 || p.FrameRate <= 0 {
		return fmt.Errorf("ffmpeg: invalid stream %dx%d@%d", p.Width, p.Height, p.FrameRate)
	}

	cmd := exec.CommandContext(ctx, e.binary, e.builder.RawVideo(p)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg: stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg: start %s: %w", e.binary, err)
	}

	writeErr := writeFrames(stdin, p, frames)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if waitErr != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %w: %s", waitErr, msg)
		}
		return fmt.Errorf("ffmpeg: %w", waitErr)
	}
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("ffmpeg: close stdin: %w", closeErr)
	}
	return nil
}

func writeFrames(w io.Writer, p RawVideoParams, frames Frames) error {
	size := p.FrameSize()
	for i := 0; i < frames.Len(); i++ {
		img, err := frames.Frame(i)
		if err != nil {
			return fmt.Errorf("ffmpeg: frame %d: %w", i, err)
		}
		if img == nil || len(img.Pix) != size {
			return fmt.Errorf("ffmpeg: frame %d has unexpected size", i)
		}
		if _, err := w.Write(img.Pix); err != nil {
			return fmt.Errorf("ffmpeg: write frame %d: %w", i, err)
		}
	}
	return nil
}
