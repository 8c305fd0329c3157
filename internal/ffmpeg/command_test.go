package ffmpeg

import (
	"strings"
	"testing"
)

func TestRawVideoCommand(t *testing.T) {
	args := NewCommandBuilder().RawVideo(RawVideoParams{
		Width:     1280,
		Height:    720,
		FrameRate: 24,
		Output:    "/tmp/out/video.mp4",
	})

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-f rawvideo -pix_fmt rgba -s 1280x720 -r 24 -i pipe:0",
		"-c:v libx264",
		"-pix_fmt yuv420p",
		"-movflags +faststart",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in args: %s", want, joined)
		}
	}
	if args[len(args)-1] != "/tmp/out/video.mp4" {
		t.Fatalf("output must be the last argument, got %q", args[len(args)-1])
	}
}

func TestRawVideoCommandCustomCodec(t *testing.T) {
	b := &CommandBuilder{Codec: "mpeg4"}
	joined := strings.Join(b.RawVideo(RawVideoParams{Width: 2, Height: 2, FrameRate: 1, Output: "o.mp4"}), " ")
	if !strings.Contains(joined, "-c:v mpeg4") {
		t.Fatalf("custom codec not used: %s", joined)
	}
}

func TestFrameSize(t *testing.T) {
	if got := (RawVideoParams{Width: 1280, Height: 720}).FrameSize(); got != 1280*720*4 {
		t.Fatalf("FrameSize() = %d", got)
	}
}
