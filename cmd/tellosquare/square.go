package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ltsdrone/tello/internal/config"
)

type squareDrone interface {
	SDKMode() error
	TakeOff() error
	Land() error
	Up(cm int) error
	Forward(cm int) error
	Back(cm int) error
	Left(cm int) error
	Right(cm int) error
	Anticlockwise(deg int) error
}

type step struct {
	name string
	send func() error
}

// squareSteps flies a square without turning, then the same square again facing the direction of travel.
func squareSteps(drone squareDrone, cfg config.SquareConfig) []step {
	side := cfg.Side
	steps := []step{
		{"takeoff", drone.TakeOff},
		{"climb", func() error { return drone.Up(cfg.Climb) }},
		{"forward", func() error { return drone.Forward(side) }},
		{"left", func() error { return drone.Left(side) }},
		{"back", func() error { return drone.Back(side) }},
		{"right", func() error { return drone.Right(side) }},
	}
	for i := 0; i < cfg.Laps; i++ {
		steps = append(steps,
			step{fmt.Sprintf("leg %d/%d", i+1, cfg.Laps), func() error { return drone.Forward(side) }},
			step{"turn", func() error { return drone.Anticlockwise(90) }},
		)
	}
	return append(steps, step{"land", drone.Land})
}

// flySquare sends each step, sleeping pause between them since nothing waits for the drone to finish.
// It stops at the first failed send.
func flySquare(drone squareDrone, cfg config.SquareConfig, pause time.Duration, logger *slog.Logger) error {
	for _, s := range squareSteps(drone, cfg) {
		logger.Info("[Drone]", "step", s.name)
		if err := s.send(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		time.Sleep(pause)
	}
	return nil
}

// fly enters SDK mode and flies the square, landing if any step fails.
func fly(drone squareDrone, cfg config.SquareConfig, pause time.Duration, prompt func(string), logger *slog.Logger) error {
	prompt("press ENTER to put the drone into SDK mode")
	if err := drone.SDKMode(); err != nil {
		return fmt.Errorf("entering SDK mode: %w", err)
	}

	prompt("press ENTER to take off and start the demo")
	if err := flySquare(drone, cfg, pause, logger); err != nil {
		drone.Land()
		return err
	}
	return nil
}
