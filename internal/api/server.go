// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/ffutop/onkyo-rs232/internal/receiver"
	"github.com/ffutop/onkyo-rs232/iscp"
	"github.com/ffutop/onkyo-rs232/transport"
)

// BuildInfo is reported by GET /version.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
}

// Server exposes one Receiver over HTTP. Requests are handled one at a
// time, since the receiver takes a single command per delay window.
type Server struct {
	mu    sync.Mutex
	rcv   *receiver.Receiver
	build BuildInfo

	router *mux.Router
}

// NewServer builds the router for rcv.
func NewServer(rcv *receiver.Receiver, build BuildInfo) *Server {
	s := &Server{rcv: rcv, build: build}

	r := mux.NewRouter()
	r.HandleFunc("/version", s.versionInfo).Methods("GET")
	r.HandleFunc("/power/{state:on|off}", s.do(func(ctx context.Context, vars map[string]string) error {
		if vars["state"] == "on" {
			return s.rcv.PowerOn(ctx)
		}
		return s.rcv.PowerOff(ctx)
	})).Methods("PUT")
	r.HandleFunc("/volume/up", s.do(func(ctx context.Context, _ map[string]string) error {
		return s.rcv.VolumeUp(ctx)
	})).Methods("POST")
	r.HandleFunc("/volume/down", s.do(func(ctx context.Context, _ map[string]string) error {
		return s.rcv.VolumeDown(ctx)
	})).Methods("POST")
	r.HandleFunc("/volume/{level}", s.do(func(ctx context.Context, vars map[string]string) error {
		level, err := atoi(vars["level"])
		if err != nil {
			return err
		}
		return s.rcv.SetVolume(ctx, level)
	})).Methods("PUT")
	r.HandleFunc("/input/{name}", s.do(func(ctx context.Context, vars map[string]string) error {
		return s.rcv.SetInput(ctx, vars["name"])
	})).Methods("PUT")
	r.HandleFunc("/tuner/{band}/{freq}", s.do(func(ctx context.Context, vars map[string]string) error {
		return s.rcv.TuneFreq(ctx, vars["band"], vars["freq"])
	})).Methods("PUT")
	r.HandleFunc("/preset/{n}", s.do(func(ctx context.Context, vars map[string]string) error {
		n, err := atoi(vars["n"])
		if err != nil {
			return err
		}
		return s.rcv.TunePreset(ctx, n)
	})).Methods("PUT")
	r.HandleFunc("/trigger/{id}/{state:on|off}", s.do(func(ctx context.Context, vars map[string]string) error {
		return s.rcv.SendTrigger(ctx, vars["id"], vars["state"] == "on")
	})).Methods("PUT")
	r.HandleFunc("/dimmer/{level}", s.do(func(ctx context.Context, vars map[string]string) error {
		return s.rcv.SetDimmer(ctx, vars["level"])
	})).Methods("PUT")
	r.HandleFunc("/raw/{code}", s.do(func(ctx context.Context, vars map[string]string) error {
		return s.rcv.SendRaw(ctx, vars["code"])
	})).Methods("POST")

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is done.
func (s *Server) Serve(ctx context.Context, addr string) error {
	h := &http.Server{Addr: addr, Handler: s.router}

	errc := make(chan error, 1)
	go func() { errc <- h.ListenAndServe() }()
	slog.Info("HTTP API listening", "address", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) versionInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	j, _ := json.Marshal(s.build)
	w.Write(j)
}

// do serializes op against the receiver and maps its error to a status.
func (s *Server) do(op func(ctx context.Context, vars map[string]string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		err := op(r.Context(), mux.Vars(r))
		s.mu.Unlock()

		if err != nil {
			status := statusFor(err)
			slog.Warn("Request failed", "method", r.Method, "path", r.URL.Path, "status", status, "err", err)
			w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
			w.WriteHeader(status)
			w.Write([]byte(err.Error()))
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("\"OK\"\n"))
	}
}

func statusFor(err error) int {
	switch {
	case iscp.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, transport.ErrClosed):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", iscp.ErrInvalidRange, s)
	}
	return n, nil
}
