// Package server serves the opening-range chart over HTTP and websockets.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/lox/preflopcharts/internal/app"
	"github.com/lox/preflopcharts/internal/chart"
	"github.com/lox/preflopcharts/internal/handrange"
)

// Server serves the chart API and live websocket sessions
type Server struct {
	addr        string
	chart       *chart.Chart
	clock       quartz.Clock
	logger      *log.Logger
	upgrader    websocket.Upgrader
	router      chi.Router
	httpServer  *http.Server
	connections map[*Connection]struct{}
	mu          sync.Mutex
}

// NewServer creates a new server for a chart
func NewServer(addr string, c *chart.Chart, logger *log.Logger, clock quartz.Clock) *Server {
	s := &Server{
		addr:  addr,
		chart: c,
		clock: clock,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The API is read-only, so any origin may browse it
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]struct{}),
		logger:      logger.WithPrefix("server"),
	}
	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/ws", s.handleWebSocket)

	r.Route("/api", func(r chi.Router) {
		r.Use(requestLogger(s.logger))
		r.Use(middleware.Compress(5))
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/tables", s.handleTables)
		r.Get("/ranges/{players}/{position}", s.handleRange)
		r.Get("/expand", s.handleExpand)
	})
	return r
}

// Handler returns the HTTP handler, for embedding or tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting server", "addr", s.addr, "chart", s.chart.Source())
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown closes every websocket session and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
	s.mu.Unlock()

	s.logger.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// ConnectionCount returns the number of open websocket sessions
func (s *Server) ConnectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.connections)
}

func (s *Server) register(conn *Connection) {
	s.mu.Lock()
	s.connections[conn] = struct{}{}
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.mu.Lock()
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "total", total)
}

// handleWebSocket handles websocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.chart, s.logger, s.clock)
	s.register(client)
	client.Start()

	// Connection cleanup is handled by the connection itself
	go func() {
		<-client.Done()
		s.unregister(client)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	counts := s.chart.PlayerCounts()
	tables := make([]TableInfo, 0, len(counts))
	for _, n := range counts {
		tables = append(tables, TableInfo{Players: n, Positions: s.chart.Positions(n)})
	}
	s.writeJSON(w, http.StatusOK, tables)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	players, err := strconv.Atoi(chi.URLParam(r, "players"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", chart.ErrUnsupportedPlayers, chi.URLParam(r, "players")))
		return
	}

	sel := Selection{Players: players, Position: chi.URLParam(r, "position")}
	q := r.URL.Query()
	if v := q.Get("compact"); v != "" {
		sel.Compact, _ = strconv.ParseBool(v)
	}
	if v := q.Get("show_percentage"); v != "" {
		show, err := strconv.ParseBool(v)
		if err == nil {
			sel.ShowPercentage = &show
		}
	}

	state, err := sel.State(s.chart)
	if err != nil {
		s.writeError(w, errorStatus(err), err)
		return
	}
	view, err := app.Compute(s.chart, state)
	if err != nil {
		s.writeError(w, errorStatus(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, ViewDataFrom(view))
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	token, ok := rawQueryParam(r, "token")
	if !ok || strings.TrimSpace(token) == "" {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("%w: token is required", handrange.ErrMalformedToken))
		return
	}

	data, err := expandData(token)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, data)
}

// rawQueryParam reads a query parameter without turning '+' into a space,
// so range notation like "AJs+" survives unencoded.
func rawQueryParam(r *http.Request, name string) (string, bool) {
	for pair := range strings.SplitSeq(r.URL.RawQuery, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if key != name {
			continue
		}
		v, err := url.PathUnescape(value)
		if err != nil {
			return "", false
		}
		return v, true
	}
	return "", false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, ErrorData{Code: errorCode(err), Message: err.Error()})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, chart.ErrUnsupportedPlayers):
		return "unsupported_players"
	case errors.Is(err, chart.ErrUnknownPosition):
		return "unknown_position"
	case errors.Is(err, handrange.ErrMalformedToken):
		return "malformed_token"
	default:
		return "internal_error"
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, chart.ErrUnsupportedPlayers), errors.Is(err, handrange.ErrMalformedToken):
		return http.StatusBadRequest
	case errors.Is(err, chart.ErrUnknownPosition):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("Request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
