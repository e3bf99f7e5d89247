package api

import (
	"log/slog"

	"github.com/gorilla/mux"

	"github.com/ltsdrone/tello"
)

// Drone is the part of *tello.Tello the HTTP surface drives.
type Drone interface {
	SDKMode() error
	TakeOff() error
	Land() error
	Stop() error
	Emergency() error
	StreamOn() error
	StreamOff() error
	MissionPadOn(md tello.MissionPadDirection) error
	MissionPadOff() error
	SetSpeed(cmPerSec int) error
	Move(dir tello.Direction, cm int) error
	Clockwise(deg int) error
	Anticlockwise(deg int) error
	Flip(dir tello.FlipDirection) error
	Go(x, y, z, speed int) error
	Curve(x1, y1, z1, x2, y2, z2, speed int) error
}

type Server struct {
	drone  Drone
	logger *slog.Logger
}

func NewServer(drone Drone, logger *slog.Logger) *Server {
	return &Server{drone: drone, logger: logger}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/command/{name}", s.CommandHandler).Methods("POST")
	router.HandleFunc("/api/missionpad", s.MissionPadHandler).Methods("POST")
	router.HandleFunc("/api/move/{direction}", s.MoveHandler).Methods("POST")
	router.HandleFunc("/api/rotate/{direction:cw|ccw}", s.RotateHandler).Methods("POST")
	router.HandleFunc("/api/flip/{direction}", s.FlipHandler).Methods("POST")
	router.HandleFunc("/api/speed", s.SpeedHandler).Methods("POST")
	router.HandleFunc("/api/go", s.GoHandler).Methods("POST")
	router.HandleFunc("/api/curve", s.CurveHandler).Methods("POST")
	router.NotFoundHandler = s.notFound()
	return router
}
