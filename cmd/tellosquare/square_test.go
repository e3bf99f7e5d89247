package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/ltsdrone/tello/internal/config"
)

type recordingDrone struct {
	calls  []string
	failOn string
}

func (d *recordingDrone) record(s string) error {
	d.calls = append(d.calls, s)
	if s == d.failOn {
		return errors.New("send failed")
	}
	return nil
}

func (d *recordingDrone) SDKMode() error              { return d.record("command") }
func (d *recordingDrone) TakeOff() error              { return d.record("takeoff") }
func (d *recordingDrone) Land() error                 { return d.record("land") }
func (d *recordingDrone) Up(cm int) error             { return d.record(fmt.Sprintf("up %d", cm)) }
func (d *recordingDrone) Forward(cm int) error        { return d.record(fmt.Sprintf("forward %d", cm)) }
func (d *recordingDrone) Back(cm int) error           { return d.record(fmt.Sprintf("back %d", cm)) }
func (d *recordingDrone) Left(cm int) error           { return d.record(fmt.Sprintf("left %d", cm)) }
func (d *recordingDrone) Right(cm int) error          { return d.record(fmt.Sprintf("right %d", cm)) }
func (d *recordingDrone) Anticlockwise(deg int) error { return d.record(fmt.Sprintf("ccw %d", deg)) }

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestFlySquare(t *testing.T) {
	drone := &recordingDrone{}
	cfg := config.SquareConfig{Climb: 50, Side: 100, Laps: 2}

	if err := flySquare(drone, cfg, 0, quiet); err != nil {
		t.Fatalf("flySquare: %v", err)
	}

	want := []string{
		"takeoff", "up 50",
		"forward 100", "left 100", "back 100", "right 100",
		"forward 100", "ccw 90",
		"forward 100", "ccw 90",
		"land",
	}
	if !reflect.DeepEqual(drone.calls, want) {
		t.Errorf("got %v\nwant %v", drone.calls, want)
	}
}

func TestFlySquareStopsOnError(t *testing.T) {
	drone := &recordingDrone{failOn: "left 100"}
	cfg := config.SquareConfig{Climb: 50, Side: 100, Laps: 4}

	err := flySquare(drone, cfg, 0, quiet)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := drone.calls[len(drone.calls)-1]; got != "left 100" {
		t.Errorf("expected to stop after the failing step, last call %q", got)
	}
}

func TestFlyLandsAfterFailedStep(t *testing.T) {
	drone := &recordingDrone{failOn: "back 100"}
	cfg := config.SquareConfig{Climb: 50, Side: 100, Laps: 1}
	var prompts []string

	err := fly(drone, cfg, 0, func(msg string) { prompts = append(prompts, msg) }, quiet)
	if err == nil {
		t.Fatal("expected an error")
	}
	want := []string{"command", "takeoff", "up 50", "forward 100", "left 100", "back 100", "land"}
	if !reflect.DeepEqual(drone.calls, want) {
		t.Errorf("got %v\nwant %v", drone.calls, want)
	}
	if len(prompts) != 2 {
		t.Errorf("expected 2 prompts, got %v", prompts)
	}
}

func TestFlySDKModeFailure(t *testing.T) {
	drone := &recordingDrone{failOn: "command"}
	err := fly(drone, config.SquareConfig{Side: 100, Laps: 1}, 0, func(string) {}, quiet)
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(drone.calls) != 1 {
		t.Errorf("expected nothing after SDK mode failed, got %v", drone.calls)
	}
}

func TestRunReturnsConnectError(t *testing.T) {
	cfg := config.Default()
	cfg.Drone.Addr = "no such host.invalid"
	cfg.Drone.LocalPort = 0
	if err := run(cfg, 0, func(string) {}, quiet); err == nil {
		t.Error("expected an error for an unresolvable drone address")
	}
}
