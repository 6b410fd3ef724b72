// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"net"
	"net/http"
	"os"
	"testing"
	"time"
)

func runAsync(server *http.Server, shutdown chan os.Signal) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- run(server, shutdown)
	}()
	return done
}

func TestRun_ReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	server := &http.Server{Addr: ln.Addr().String(), Handler: http.NewServeMux()}
	select {
	case err := <-runAsync(server, make(chan os.Signal, 1)):
		if err == nil {
			t.Fatal("run: want error for address in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run: still waiting after listen failure")
	}
}

func TestRun_StopsOnShutdown(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	shutdown := make(chan os.Signal, 1)
	done := runAsync(server, shutdown)
	shutdown <- os.Interrupt
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("run: did not stop after shutdown")
	}
}
