// flightCommands.go

// This file contains the high-level Tello SDK command API

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

// *** Control commands ***

// SDKMode puts the Tello into SDK mode, it must be sent before any other command.
func (tello *Tello) SDKMode() error {
	return tello.SendCommand(CmdSDKMode)
}

// SetSpeed sets the flight speed in cm/s, clamped to 10..100.
func (tello *Tello) SetSpeed(cmPerSec int) error {
	return tello.SendCommand(speedCommand(cmPerSec))
}

// MissionPadOn enables Mission Pad detection, then selects the detection direction.
// If the first send fails the direction is not sent.
func (tello *Tello) MissionPadOn(md MissionPadDirection) error {
	if err := tello.SendCommand(CmdMissionPadOn); err != nil {
		return err
	}
	return tello.SendCommand(missionDirectionCommand(md))
}

// MissionPadOff disables Mission Pad detection.
func (tello *Tello) MissionPadOff() error {
	return tello.SendCommand(CmdMissionPadOff)
}

// *** Flight commands ***

// TakeOff sends a normal takeoff request to the Tello
func (tello *Tello) TakeOff() error {
	return tello.SendCommand(CmdTakeOff)
}

// Land sends a normal Land request to the Tello
func (tello *Tello) Land() error {
	return tello.SendCommand(CmdLand)
}

// Stop halts the current manoeuvre and hovers, it works at any time.
func (tello *Tello) Stop() error {
	return tello.SendCommand(CmdStop)
}

// Emergency stops all motors immediately - the drone will fall!
func (tello *Tello) Emergency() error {
	return tello.SendCommand(CmdEmergency)
}

// Clockwise rotates clockwise by deg degrees (1..360).
func (tello *Tello) Clockwise(deg int) error {
	return tello.SendCommand(clockwiseCommand(deg))
}

// TurnRight is an alias for Clockwise()
func (tello *Tello) TurnRight(deg int) error {
	return tello.Clockwise(deg)
}

// Anticlockwise rotates anticlockwise by deg degrees (1..360).
func (tello *Tello) Anticlockwise(deg int) error {
	return tello.SendCommand(anticlockwiseCommand(deg))
}

// TurnLeft is an alias for Anticlockwise()
func (tello *Tello) TurnLeft(deg int) error {
	return tello.Anticlockwise(deg)
}

// Flip performs a flip in the given direction.
func (tello *Tello) Flip(dir FlipDirection) error {
	return tello.SendCommand(flipCommand(dir))
}

// Move flies cm centimetres in direction dir, cm is clamped to 20..500.
func (tello *Tello) Move(dir Direction, cm int) error {
	return tello.SendCommand(moveCommand(dir, cm))
}

// Forward moves forward by cm centimetres
func (tello *Tello) Forward(cm int) error { return tello.Move(DirForward, cm) }

// Back moves backward by cm centimetres
func (tello *Tello) Back(cm int) error { return tello.Move(DirBack, cm) }

// Left moves left by cm centimetres
func (tello *Tello) Left(cm int) error { return tello.Move(DirLeft, cm) }

// Right moves right by cm centimetres
func (tello *Tello) Right(cm int) error { return tello.Move(DirRight, cm) }

// Up climbs by cm centimetres
func (tello *Tello) Up(cm int) error { return tello.Move(DirUp, cm) }

// Down descends by cm centimetres
func (tello *Tello) Down(cm int) error { return tello.Move(DirDown, cm) }

// Go flies to x, y, z (cm, relative to the current position) at speed cm/s.
// Arguments are passed through unchecked, the drone rejects out-of-range values.
func (tello *Tello) Go(x, y, z, speed int) error {
	return tello.SendCommand(goCommand(x, y, z, speed))
}

// Curve flies an arc through (x1, y1, z1) to (x2, y2, z2) at speed cm/s.
// The drone refuses arcs whose radius is outside 0.5-10m.
func (tello *Tello) Curve(x1, y1, z1, x2, y2, z2, speed int) error {
	return tello.SendCommand(curveCommand(x1, y1, z1, x2, y2, z2, speed))
}

// *** Queries ***
// The drone replies on the control port; this package does not read replies.

// QueryBattery asks for the remaining battery percentage.
func (tello *Tello) QueryBattery() error { return tello.SendCommand(CmdQueryBattery) }

// QuerySpeed asks for the current speed.
func (tello *Tello) QuerySpeed() error { return tello.SendCommand(CmdQuerySpeed) }

// QueryTime asks for the flight time so far.
func (tello *Tello) QueryTime() error { return tello.SendCommand(CmdQueryTime) }

// QueryWifi asks for the Wi-Fi SNR.
func (tello *Tello) QueryWifi() error { return tello.SendCommand(CmdQueryWifi) }

// QuerySDK asks for the SDK version.
func (tello *Tello) QuerySDK() error { return tello.SendCommand(CmdQuerySDK) }

// QuerySerialNumber asks for the serial number.
func (tello *Tello) QuerySerialNumber() error { return tello.SendCommand(CmdQuerySerialNumber) }
