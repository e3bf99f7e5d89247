// Command tellosquare flies a Tello around a square, then around it again turning at each corner.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ltsdrone/tello"
	"github.com/ltsdrone/tello/internal/config"
	"github.com/ltsdrone/tello/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults used if empty)")
	side := flag.Int("side", 0, "side of the square in cm (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("loading config", "error", err)
			os.Exit(1)
		}
	}
	if *side > 0 {
		cfg.Square.Side = *side
	}

	logger := logging.Setup(cfg.Log)

	pause, err := cfg.Square.PauseDuration()
	if err != nil {
		logger.Error("bad config", "error", err)
		os.Exit(1)
	}

	stdin := bufio.NewReader(os.Stdin)
	prompt := func(msg string) {
		if cfg.Square.Interact {
			logger.Info(msg)
			stdin.ReadString('\n')
		}
	}

	if err := run(cfg, pause, prompt, logger); err != nil {
		logger.Error("demo aborted", "error", err)
		os.Exit(1)
	}
	logger.Info("demo completed")
}

// run owns the control socket for the length of the demo.
func run(cfg *config.Config, pause time.Duration, prompt func(string), logger *slog.Logger) error {
	drone := tello.New(logger)
	if err := drone.Connect(cfg.Drone.Addr, cfg.Drone.Port, cfg.Drone.LocalPort); err != nil {
		return fmt.Errorf("opening control socket: %w", err)
	}
	defer drone.Disconnect()

	logger.Info("running square demo", "side", cfg.Square.Side, "laps", cfg.Square.Laps)
	return fly(drone, cfg.Square, pause, prompt, logger)
}
