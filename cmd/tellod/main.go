package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ltsdrone/tello"
	"github.com/ltsdrone/tello/internal/api"
	"github.com/ltsdrone/tello/internal/config"
	"github.com/ltsdrone/tello/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults used if empty)")
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

	logger := logging.Setup(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("tellod stopped", "error", err)
		cancel()
		os.Exit(1)
	}
}

// run serves the HTTP control surface until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	drone := tello.New(logger)
	if err := drone.Connect(cfg.Drone.Addr, cfg.Drone.Port, cfg.Drone.LocalPort); err != nil {
		return fmt.Errorf("opening control socket: %w", err)
	}
	defer drone.Disconnect()

	if err := drone.SDKMode(); err != nil {
		return fmt.Errorf("entering SDK mode: %w", err)
	}

	if cfg.Video.Enabled {
		if err := startVideo(ctx, drone, cfg.Video, logger); err != nil {
			logger.Warn("video disabled", "error", err)
		}
	}

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: api.NewServer(drone, logger).Router(),
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting tello control server", "addr", cfg.HTTP.Addr, "drone", cfg.Drone.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

func startVideo(ctx context.Context, drone *tello.Tello, cfg config.VideoConfig, logger *slog.Logger) error {
	player, err := cfg.NewPlayer()
	if err != nil {
		return err
	}
	if err := drone.StreamOn(); err != nil {
		return err
	}
	cmd, err := player.Start(ctx)
	if err != nil {
		return err
	}
	logger.Info("video player started", "player", player.Path, "url", tello.VideoURL(cfg.Port))
	go func() {
		if err := cmd.Wait(); err != nil && ctx.Err() == nil {
			logger.Warn("video player exited", "error", err)
		}
	}()
	return nil
}
