package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

type solidFrames struct {
	n   int
	img *image.RGBA
	err error
}

func (s solidFrames) Len() int { return s.n }

func (s solidFrames) Frame(i int) (*image.RGBA, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.img, nil
}

func TestWriteFramesStreamsPixels(t *testing.T) {
	p := RawVideoParams{Width: 2, Height: 2, FrameRate: 1}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := writeFrames(&buf, p, solidFrames{n: 3, img: img}); err != nil {
		t.Fatalf("writeFrames() error: %v", err)
	}
	if buf.Len() != 3*p.FrameSize() {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 3*p.FrameSize())
	}
}

func TestWriteFramesRejectsWrongSize(t *testing.T) {
	p := RawVideoParams{Width: 4, Height: 4, FrameRate: 1}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := writeFrames(&bytes.Buffer{}, p, solidFrames{n: 1, img: img}); err == nil {
		t.Fatalf("writeFrames() expected size error")
	}
}

func TestWriteFramesPropagatesRenderError(t *testing.T) {
	boom := errors.New("boom")
	p := RawVideoParams{Width: 2, Height: 2, FrameRate: 1}
	err := writeFrames(&bytes.Buffer{}, p, solidFrames{n: 1, err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("writeFrames() error = %v, want boom", err)
	}
}

func TestEncodeMissingBinary(t *testing.T) {
	enc := NewEncoder(filepath.Join(t.TempDir(), "no-such-ffmpeg"))
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	p := RawVideoParams{Width: 2, Height: 2, FrameRate: 1, Output: filepath.Join(t.TempDir(), "o.mp4")}
	if err := enc.Encode(context.Background(), p, solidFrames{n: 1, img: img}); err == nil {
		t.Fatalf("Encode() expected error for missing binary")
	}
}

func TestEncodeRejectsEmptyInput(t *testing.T) {
	enc := NewEncoder("")
	p := RawVideoParams{Width: 2, Height: 2, FrameRate: 1, Output: "o.mp4"}
	if err := enc.Encode(context.Background(), p, solidFrames{n: 0}); err == nil {
		t.Fatalf("Encode() expected error for zero frames")
	}
}

func TestEncodeWithFFmpeg(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	out := filepath.Join(t.TempDir(), "clip.mp4")
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	p := RawVideoParams{Width: 64, Height: 64, FrameRate: 24, Output: out}
	if err := NewEncoder("ffmpeg").Encode(context.Background(), p, solidFrames{n: 24, img: img}); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("encoded file is empty")
	}
}
