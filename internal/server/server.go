// Package server provides the fleet dashboard backend API: the two
// collection endpoints the dashboard acquires, plus a health check and a
// single-fleet lookup.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/fleetdash/internal/fleet"
)

// Config holds configuration for the API server.
type Config struct {
	Host     string
	Port     int
	DataFile string // optional CSV seed file; empty uses the built-in sample data
	Watch    bool   // reload DataFile on change
	Logger   *slog.Logger
}

// Server is the fleet API server.
type Server struct {
	host     string
	port     int
	dataFile string
	watch    bool
	logger   *slog.Logger

	mu      sync.RWMutex
	records []fleet.Record
}

// New creates a Server. When cfg.DataFile is set the seed file is loaded
// immediately so a bad file fails fast instead of at first request.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		host:     cfg.Host,
		port:     cfg.Port,
		dataFile: cfg.DataFile,
		watch:    cfg.Watch,
		logger:   logger,
	}

	if cfg.DataFile != "" {
		records, err := fleet.LoadCSV(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		s.records = records
		logger.Info("loaded fleet data", "path", cfg.DataFile, "records", len(records))
	} else {
		s.records = fleet.SampleRecords()
	}

	return s, nil
}

// Handler builds the chi router for the API surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/", s.handleHome)
	r.Get("/api/fleet-data", s.handleFleetData)
	r.Get("/api/fleet-summary", s.handleFleetSummary)
	r.Get("/api/fleet/{fleetID}", s.handleSingleFleet)

	return r
}

// Serve starts the API server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	s.logger.Info("starting fleet API server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch && s.dataFile != "" {
		eg.Go(func() error {
			return s.watchDataFile(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down fleet API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Records returns the current dataset.
func (s *Server) Records() []fleet.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// watchDataFile reloads the CSV seed file whenever it changes on disk.
func (s *Server) watchDataFile(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.dataFile); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.dataFile, err)
	}
	s.logger.Debug("watching data file", "path", s.dataFile)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			records, err := fleet.LoadCSV(s.dataFile)
			if err != nil {
				// Keep serving the previous dataset on a bad reload.
				s.logger.Warn("failed to reload data file", "path", s.dataFile, "error", err)
				continue
			}
			s.mu.Lock()
			s.records = records
			s.mu.Unlock()
			s.logger.Info("reloaded fleet data", "path", s.dataFile, "records", len(records))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watch error", "error", err)
		}
	}
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "Fleet Dashboard API",
	})
}

func (s *Server) handleFleetData(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Records())
}

func (s *Server) handleFleetSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, fleet.Summarize(s.Records()))
}

func (s *Server) handleSingleFleet(w http.ResponseWriter, r *http.Request) {
	fleetID := chi.URLParam(r, "fleetID")

	records := fleet.Select(s.Records(), fleetID)
	if len(records) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Fleet not found"})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
