// video.go

// Copyright (C) 2018  Steve Merrony

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package tello

import (
	"context"
	"os/exec"
	"strconv"
)

// DefaultVideoPort is the local UDP port the Tello streams H.264 video to after 'streamon'.
const DefaultVideoPort = 11111

// StreamOn asks the Tello to start sending video.
func (tello *Tello) StreamOn() error {
	return tello.SendCommand(CmdStreamOn)
}

// StreamOff asks the Tello to stop sending video.
func (tello *Tello) StreamOff() error {
	return tello.SendCommand(CmdStreamOff)
}

// VideoURL returns the ffmpeg-style URL for listening to the video stream on port.
func VideoURL(port int) string {
	return "udp://@:" + strconv.Itoa(port)
}

// Player describes an external program which displays (or records) the video stream.
// The stream is never decoded by this package.
type Player struct {
	Path string
	Args []string
}

// NewFFPlay returns a Player which shows the stream arriving on port in an ffplay window.
func NewFFPlay(port int) *Player {
	return &Player{
		Path: "ffplay",
		Args: []string{"-fflags", "nobuffer", "-i", VideoURL(port)},
	}
}

// NewFFMpeg returns a Player which copies the stream arriving on port into output.
func NewFFMpeg(port int, output string) *Player {
	return &Player{
		Path: "ffmpeg",
		Args: []string{"-i", VideoURL(port), "-c", "copy", output},
	}
}

// Start launches the player; it is killed if ctx is cancelled.
// The caller should Wait() on the returned command.
func (p *Player) Start(ctx context.Context) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, p.Path, p.Args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}
