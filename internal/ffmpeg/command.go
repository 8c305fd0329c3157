package ffmpeg

import (
	"fmt"
)

// RawVideoParams describes a raw RGBA frame stream fed on stdin and the MP4
// file it should be encoded into.
type RawVideoParams struct {
	Width     int
	Height    int
	FrameRate int
	Output    string
}

// FrameSize is the number of bytes one RGBA frame occupies on the pipe.
func (p RawVideoParams) FrameSize() int {
	return p.Width * p.Height * 4
}

type CommandBuilder struct {
	Codec string
}

func NewCommandBuilder() *CommandBuilder {
	return &CommandBuilder{Codec: "libx264"}
}

// RawVideo returns ffmpeg arguments that read raw RGBA frames from stdin and
// write a playable H.264 MP4.
func (b *CommandBuilder) RawVideo(p RawVideoParams) []string {
	codec := b.Codec
	if codec == "" {
		codec = "libx264"
	}
	return []string{
		"-nostats", "-hide_banner", "-loglevel", "error",
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-r", fmt.Sprintf("%d", p.FrameRate),
		"-i", "pipe:0",
		"-an",
		"-c:v", codec,
		"-pix_fmt", "yuv420p",
		"-r", fmt.Sprintf("%d", p.FrameRate),
		"-movflags", "+faststart",
		"-f", "mp4",
		p.Output,
	}
}
