package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/rpn"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Calculator defines what the server needs from rpn.Calculator.
type Calculator interface {
	runner.Calculator
	Reset()
	SetAngleUnit(u domain.AngleUnit)
}

// Server implements the generated ServerInterface and serialises every
// request on the single calculator it owns.
type Server struct {
	mu      sync.Mutex
	calc    Calculator
	Streams *StreamManager
	logger  *slog.Logger
	metrics http.Handler
}

var _ ServerInterface = (*Server)(nil)

// Option configures the HTTP handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the calculator.
func NewHandler(calc Calculator, opts ...Option) http.Handler {
	s := &Server{
		calc:    calc,
		Streams: NewStreamManager(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			s.logger.Warn("invalid request parameter", "path", r.URL.Path, "error", err)
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		},
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, http.StatusOK, InfoResponse{
		App:        "rpn-http",
		Version:    rpn.Version,
		ApiVersion: apiVersion,
	})
}

// GetDisplay handles the GET /display request.
func (s *Server) GetDisplay(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	d := s.calc.Display()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, d)
}

// GetStack handles the GET /stack request. Limit keeps the top entries only.
func (s *Server) GetStack(w http.ResponseWriter, r *http.Request, params GetStackParams) {
	if params.Limit != nil && *params.Limit < 0 {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must not be negative"})
		return
	}

	s.mu.Lock()
	entries := s.calc.Entries()
	s.mu.Unlock()

	if params.Limit != nil && *params.Limit < len(entries) {
		entries = entries[:*params.Limit]
	}
	s.writeJSON(w, http.StatusOK, StackResponse{Stack: entries})
}

// PostInput handles the POST /input request.
func (s *Server) PostInput(w http.ResponseWriter, r *http.Request) {
	var body InputRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.logger.Warn("PostInput: invalid request body", "error", err)
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	var inputs []domain.Input
	if body.Line != "" {
		clean, err := runner.SanitizeLine(body.Line)
		if err != nil {
			s.logger.Warn("PostInput: input rejected", "error", err, "size", len(body.Line))
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("invalid input: %v", err)})
			return
		}
		req, err := runner.ParseLine(clean)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if req.Command != runner.CommandNone {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("command %q is not available over HTTP", req.Command)})
			return
		}
		inputs = req.Inputs
	}
	inputs = append(inputs, body.Inputs...)
	if len(inputs) == 0 {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "no inputs"})
		return
	}

	s.mu.Lock()
	resp := runner.ApplyAndRender(s.calc, inputs)
	s.mu.Unlock()

	s.logger.Debug("PostInput: applied", "inputs", len(inputs), "errors", len(resp.Errors))
	s.broadcast(resp.Display)
	s.writeJSON(w, http.StatusOK, resp)
}

// PostReset handles the POST /reset request.
func (s *Server) PostReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calc.Reset()
	d := s.calc.Display()
	s.mu.Unlock()

	s.broadcast(d)
	s.writeJSON(w, http.StatusOK, d)
}

// PutAngle handles the PUT /angle request.
func (s *Server) PutAngle(w http.ResponseWriter, r *http.Request) {
	var body AngleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	u, err := domain.ParseAngleUnit(body.Angle)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	s.calc.SetAngleUnit(u)
	d := s.calc.Display()
	s.mu.Unlock()

	s.broadcast(d)
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) broadcast(d domain.Display) {
	if bytes, err := json.Marshal(d); err == nil {
		s.Streams.Broadcast(string(bytes))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}
