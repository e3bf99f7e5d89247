// tello.go

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
	"errors"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
)

// Default network addresses of a Tello in SDK mode
const (
	DefaultTelloAddr        = "192.168.10.1"
	DefaultTelloControlPort = 8889
	DefaultLocalControlPort = 8889
)

// ErrNotConnected is returned when a command is sent before Connect has opened a socket.
var ErrNotConnected = errors.New("tello: control connection not open")

// Tello holds the UDP control socket for a single drone.
// Commands are fire-and-forget, nothing is read back from the drone.
type Tello struct {
	ctrlMu   sync.Mutex // protects ctrlConn
	ctrlConn *net.UDPConn
	logger   *slog.Logger
}

// New returns an unconnected Tello which logs to logger.
// A nil logger discards all log output.
func New(logger *slog.Logger) *Tello {
	tello := new(Tello)
	tello.SetLogger(logger)
	return tello
}

// SetLogger replaces the logger used to trace outgoing commands.
func (tello *Tello) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger
	}
	tello.logger = logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// log allows a zero-value Tello, eg. new(Tello), to be used without SetLogger.
func (tello *Tello) log() *slog.Logger {
	if tello.logger == nil {
		return discardLogger
	}
	return tello.logger
}

// Connect opens a UDP socket on localUDPPort aimed at the Tello at udpAddr:droneUDPPort.
// No handshake is made, use SDKMode() to put the drone into SDK mode.
// Any socket left open by an earlier Connect is closed first, freeing its local port.
func (tello *Tello) Connect(udpAddr string, droneUDPPort int, localUDPPort int) (err error) {
	tello.ctrlMu.Lock()
	if tello.ctrlConn != nil {
		tello.ctrlConn.Close()
		tello.ctrlConn = nil
	}
	tello.ctrlMu.Unlock()

	droneAddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(udpAddr, strconv.Itoa(droneUDPPort)))
	if err != nil {
		return err
	}
	localAddr, err := net.ResolveUDPAddr("udp", ":"+strconv.Itoa(localUDPPort))
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", localAddr, droneAddr)
	if err != nil {
		return err
	}

	tello.ctrlMu.Lock()
	tello.ctrlConn = conn
	tello.ctrlMu.Unlock()

	tello.log().Info("control socket open", "local", conn.LocalAddr().String(), "drone", droneAddr.String())
	return nil
}

// ConnectDefault opens the control socket using the default Tello addresses.
func (tello *Tello) ConnectDefault() (err error) {
	return tello.Connect(DefaultTelloAddr, DefaultTelloControlPort, DefaultLocalControlPort)
}

// Disconnect closes the control socket.
// Commands sent afterwards fail with the transport's closed-connection error.
func (tello *Tello) Disconnect() error {
	tello.ctrlMu.Lock()
	defer tello.ctrlMu.Unlock()
	if tello.ctrlConn == nil {
		return ErrNotConnected
	}
	return tello.ctrlConn.Close()
}

// SendCommand writes cmd to the drone as a single datagram.
// Any transport error is returned as-is.
func (tello *Tello) SendCommand(cmd Command) error {
	tello.ctrlMu.Lock()
	defer tello.ctrlMu.Unlock()
	if tello.ctrlConn == nil {
		return ErrNotConnected
	}
	tello.log().Debug("send command", "command", string(cmd))
	_, err := tello.ctrlConn.Write([]byte(cmd))
	return err
}
