package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/ltsdrone/tello/internal/config"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRunReturnsConnectError(t *testing.T) {
	cfg := config.Default()
	cfg.Drone.Addr = "no such host.invalid"
	cfg.Drone.LocalPort = 0

	if err := run(context.Background(), cfg, quiet); err == nil {
		t.Error("expected an error for an unresolvable drone address")
	}
}

func TestRunReleasesSocketOnShutdown(t *testing.T) {
	listener, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	// pick a free local port up front so we can check it is released afterwards
	spare, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	localPort := spare.LocalAddr().(*net.UDPAddr).Port
	spare.Close()

	cfg := config.Default()
	cfg.Drone.Addr = "127.0.0.1"
	cfg.Drone.Port = listener.LocalAddr().(*net.UDPAddr).Port
	cfg.Drone.LocalPort = localPort
	cfg.HTTP.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- run(ctx, cfg, quiet) }()

	buf := make([]byte, 1518)
	listener.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := listener.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("no datagram: %v", err)
	}
	if got := string(buf[:n]); got != "command" {
		t.Errorf("expected <command> got <%s>", got)
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: localPort})
	if err != nil {
		t.Fatalf("control socket still held after run returned: %v", err)
	}
	conn.Close()
}
