package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ltsdrone/tello"
)

type Config struct {
	Drone  DroneConfig  `yaml:"drone"`
	Video  VideoConfig  `yaml:"video"`
	HTTP   HTTPConfig   `yaml:"http"`
	Square SquareConfig `yaml:"square"`
	Log    LogConfig    `yaml:"log"`
}

type DroneConfig struct {
	Addr      string `yaml:"addr"`
	Port      int    `yaml:"port"`
	LocalPort int    `yaml:"local_port"`
}

type VideoConfig struct {
	Enabled bool   `yaml:"enabled"`
	Player  string `yaml:"player"` // "ffplay" or "ffmpeg"
	Port    int    `yaml:"port"`
	Output  string `yaml:"output"` // ffmpeg only
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// SquareConfig drives the square demo flight.
type SquareConfig struct {
	Climb    int    `yaml:"climb"`
	Side     int    `yaml:"side"`
	Laps     int    `yaml:"laps"`
	Pause    string `yaml:"pause"`
	Interact bool   `yaml:"interact"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse expands ${VAR} references in data, decodes it and fills in defaults.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	if c.Drone.Addr == "" {
		c.Drone.Addr = tello.DefaultTelloAddr
	}
	if c.Drone.Port == 0 {
		c.Drone.Port = tello.DefaultTelloControlPort
	}
	if c.Drone.LocalPort == 0 {
		c.Drone.LocalPort = tello.DefaultLocalControlPort
	}
	if c.Video.Player == "" {
		c.Video.Player = "ffplay"
	}
	if c.Video.Port == 0 {
		c.Video.Port = tello.DefaultVideoPort
	}
	if c.Video.Output == "" {
		c.Video.Output = "tello.h264"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.Square.Climb == 0 {
		c.Square.Climb = 50
	}
	if c.Square.Side == 0 {
		c.Square.Side = 100
	}
	if c.Square.Laps == 0 {
		c.Square.Laps = 4
	}
	if c.Square.Pause == "" {
		c.Square.Pause = "5s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// PauseDuration returns the square demo's pause between commands.
func (s SquareConfig) PauseDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Pause)
	if err != nil {
		return 0, fmt.Errorf("parsing square pause %q: %w", s.Pause, err)
	}
	return d, nil
}

// NewPlayer builds the external video player named by the config.
func (v VideoConfig) NewPlayer() (*tello.Player, error) {
	switch v.Player {
	case "ffplay":
		return tello.NewFFPlay(v.Port), nil
	case "ffmpeg":
		return tello.NewFFMpeg(v.Port, v.Output), nil
	default:
		return nil, fmt.Errorf("unknown video player %q", v.Player)
	}
}
