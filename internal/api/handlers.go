package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ltsdrone/tello"
)

func writeResult(w http.ResponseWriter, result any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(Result{Result: result, Code: code})
}

// reply reports the outcome of a send, transport failures map to 502.
func (s *Server) reply(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		s.logger.Error("send failed", "path", r.URL.Path, "error", err)
		writeResult(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.logger.Info("command sent", "path", r.URL.Path)
	writeResult(w, "OK", http.StatusOK)
}

func (s *Server) notFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, "Not found", http.StatusNotFound)
	})
}

func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, fmt.Errorf("missing %s parameter", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad %s parameter: %w", name, err)
	}
	return n, nil
}

func (s *Server) CommandHandler(w http.ResponseWriter, r *http.Request) {
	var send func() error
	switch mux.Vars(r)["name"] {
	case "command":
		send = s.drone.SDKMode
	case "takeoff":
		send = s.drone.TakeOff
	case "land":
		send = s.drone.Land
	case "stop":
		send = s.drone.Stop
	case "emergency":
		send = s.drone.Emergency
	case "streamon":
		send = s.drone.StreamOn
	case "streamoff":
		send = s.drone.StreamOff
	case "moff":
		send = s.drone.MissionPadOff
	default:
		writeResult(w, "Not found", http.StatusNotFound)
		return
	}
	s.reply(w, r, send())
}

func (s *Server) MissionPadHandler(w http.ResponseWriter, r *http.Request) {
	md, err := intParam(r, "direction")
	if err != nil {
		writeResult(w, err.Error(), http.StatusBadRequest)
		return
	}
	if md < int(tello.MissionPadDownward) || md > int(tello.MissionPadBoth) {
		writeResult(w, fmt.Sprintf("bad direction parameter: %d", md), http.StatusBadRequest)
		return
	}
	s.reply(w, r, s.drone.MissionPadOn(tello.MissionPadDirection(md)))
}

func (s *Server) MoveHandler(w http.ResponseWriter, r *http.Request) {
	dir, err := tello.ParseDirection(mux.Vars(r)["direction"])
	if err != nil {
		writeResult(w, err.Error(), http.StatusNotFound)
		return
	}
	cm, err := intParam(r, "distance")
	if err != nil {
		writeResult(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.reply(w, r, s.drone.Move(dir, cm))
}

func (s *Server) RotateHandler(w http.ResponseWriter, r *http.Request) {
	deg, err := intParam(r, "degrees")
	if err != nil {
		writeResult(w, err.Error(), http.StatusBadRequest)
		return
	}
	if mux.Vars(r)["direction"] == "ccw" {
		s.reply(w, r, s.drone.Anticlockwise(deg))
		return
	}
	s.reply(w, r, s.drone.Clockwise(deg))
}

func (s *Server) FlipHandler(w http.ResponseWriter, r *http.Request) {
	dir, err := tello.ParseFlipDirection(mux.Vars(r)["direction"])
	if err != nil {
		writeResult(w, err.Error(), http.StatusNotFound)
		return
	}
	s.reply(w, r, s.drone.Flip(dir))
}

func (s *Server) SpeedHandler(w http.ResponseWriter, r *http.Request) {
	speed, err := intParam(r, "value")
	if err != nil {
		writeResult(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.reply(w, r, s.drone.SetSpeed(speed))
}

func (s *Server) GoHandler(w http.ResponseWriter, r *http.Request) {
	var req GoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, "invalid body", http.StatusBadRequest)
		return
	}
	s.reply(w, r, s.drone.Go(req.X, req.Y, req.Z, req.Speed))
}

func (s *Server) CurveHandler(w http.ResponseWriter, r *http.Request) {
	var req CurveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResult(w, "invalid body", http.StatusBadRequest)
		return
	}
	s.reply(w, r, s.drone.Curve(req.X1, req.Y1, req.Z1, req.X2, req.Y2, req.Z2, req.Speed))
}
