// messages.go

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
	"fmt"
	"strconv"
	"strings"
)

// Command is a single Tello SDK text command, sent as one UDP datagram.
type Command string

// Fixed Tello SDK commands
const (
	CmdSDKMode       Command = "command"
	CmdTakeOff       Command = "takeoff"
	CmdLand          Command = "land"
	CmdStop          Command = "stop"
	CmdEmergency     Command = "emergency"
	CmdStreamOn      Command = "streamon"
	CmdStreamOff     Command = "streamoff"
	CmdMissionPadOn  Command = "mon"
	CmdMissionPadOff Command = "moff"

	CmdQueryBattery      Command = "battery?"
	CmdQuerySpeed        Command = "speed?"
	CmdQueryTime         Command = "time?"
	CmdQueryWifi         Command = "wifi?"
	CmdQuerySDK          Command = "sdk?"
	CmdQuerySerialNumber Command = "sn?"
)

// Direction is a linear movement direction understood by the drone.
type Direction string

// Movement directions...
const (
	DirForward Direction = "forward"
	DirBack    Direction = "back"
	DirLeft    Direction = "left"
	DirRight   Direction = "right"
	DirUp      Direction = "up"
	DirDown    Direction = "down"
)

// FlipDirection represents a flip direction.
type FlipDirection string

// Flip directions...
const (
	FlipLeft     FlipDirection = "l"
	FlipRight    FlipDirection = "r"
	FlipForward  FlipDirection = "f"
	FlipBackward FlipDirection = "b"
)

// MissionPadDirection selects which camera(s) look for Mission Pads.
type MissionPadDirection int

// Mission Pad detection modes...
const (
	MissionPadDownward MissionPadDirection = iota // downward detection only
	MissionPadForward                             // forward detection only
	MissionPadBoth                                // forward and downward detection
)

// limits applied by the drone firmware, we clamp rather than let it reply 'error'
const (
	minMoveCm = 20
	maxMoveCm = 500
	minSpeed  = 10
	maxSpeed  = 100
)

// ParseDirection checks that s is a known movement direction.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirForward, DirBack, DirLeft, DirRight, DirUp, DirDown:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// ParseFlipDirection checks that s is one of l, r, f or b.
func ParseFlipDirection(s string) (FlipDirection, error) {
	switch f := FlipDirection(s); f {
	case FlipLeft, FlipRight, FlipForward, FlipBackward:
		return f, nil
	}
	return "", fmt.Errorf("unknown flip direction %q", s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatCommand joins a verb and its integer arguments with single spaces.
func formatCommand(verb string, args ...int) Command {
	var sb strings.Builder
	sb.WriteString(verb)
	for _, a := range args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(a))
	}
	return Command(sb.String())
}

func moveCommand(dir Direction, cm int) Command {
	return formatCommand(string(dir), clamp(cm, minMoveCm, maxMoveCm))
}

func speedCommand(cmPerSec int) Command {
	return formatCommand("speed", clamp(cmPerSec, minSpeed, maxSpeed))
}

func clockwiseCommand(deg int) Command     { return formatCommand("cw", deg) }
func anticlockwiseCommand(deg int) Command { return formatCommand("ccw", deg) }

func flipCommand(dir FlipDirection) Command {
	return Command("flip " + string(dir))
}

func goCommand(x, y, z, speed int) Command {
	return formatCommand("go", x, y, z, speed)
}

func curveCommand(x1, y1, z1, x2, y2, z2, speed int) Command {
	return formatCommand("curve", x1, y1, z1, x2, y2, z2, speed)
}

func missionDirectionCommand(md MissionPadDirection) Command {
	return formatCommand("mdirection", int(md))
}
