package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/rpn"
	"github.com/aretw0/rpn/internal/config"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// StackURI addresses the stack resource.
const StackURI = "rpn://stack"

// Calculator defines what the MCP server needs from rpn.Calculator.
type Calculator interface {
	runner.Calculator
	Reset()
	SetAngleUnit(u domain.AngleUnit)
}

// Factory builds a calculator for the given settings. It is called once at
// start and again whenever the separators change.
type Factory func(cfg config.Config) (Calculator, error)

// StackResponse is the output of the stack tool.
type StackResponse struct {
	Stack []string `json:"stack" jsonschema_description:"Stack entries, top (X) first"`
}

// ConfigureResponse is the output of the configure tool.
type ConfigureResponse struct {
	Decimal  string         `json:"decimal" jsonschema_description:"Decimal separator in use"`
	Grouping string         `json:"grouping" jsonschema_description:"Grouping separator in use"`
	Angle    string         `json:"angle" jsonschema_description:"Angle unit in use"`
	Display  domain.Display `json:"display" jsonschema_description:"Display after the change"`
}

// configurable lists the settings the configure tool accepts.
var configurable = map[string]bool{
	"locale":   true,
	"decimal":  true,
	"grouping": true,
	"angle":    true,
}

// Server exposes one calculator session as an MCP server.
type Server struct {
	mu        sync.Mutex
	cfg       config.Config
	factory   Factory
	calc      Calculator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance around a calculator built by
// factory from cfg.
func NewServer(cfg config.Config, factory Factory, opts ...Option) (*Server, error) {
	calc, err := factory(cfg)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:       cfg,
		factory:   factory,
		calc:      calc,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("rpn-mcp", strings.TrimSpace(rpn.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: press
	pressTool := mcp.NewTool("press",
		mcp.WithDescription("Type numbers and keys into the calculator, e.g. '7 3 +' or '2 enter 10 y^x'. Unknown tokens are rejected before anything is applied."),
		mcp.WithString("line", mcp.Required(), mcp.Description("Whitespace separated numbers and key names (enter, swap, drop, shift, sin, 1/x, y^x, mod, pi, drg, ...)")),
		mcp.WithOutputSchema[runner.RichResponse](),
	)
	s.mcpServer.AddTool(pressTool, mcp.NewStructuredToolHandler(s.handlePress))

	// TOOL: display
	displayTool := mcp.NewTool("display",
		mcp.WithDescription("Read the X, Y and Z registers and the status line."),
		mcp.WithOutputSchema[domain.Display](),
	)
	s.mcpServer.AddTool(displayTool, mcp.NewStructuredToolHandler(s.handleDisplay))

	// TOOL: stack
	stackTool := mcp.NewTool("stack",
		mcp.WithDescription("List every stack entry, top first."),
		mcp.WithOutputSchema[StackResponse](),
	)
	s.mcpServer.AddTool(stackTool, mcp.NewStructuredToolHandler(s.handleStack))

	// TOOL: configure
	configureTool := mcp.NewTool("configure",
		mcp.WithDescription("Change the angle unit or the number format. Changing separators starts a fresh stack."),
		mcp.WithString("angle", mcp.Description("DEG, RAD or GRAD")),
		mcp.WithString("locale", mcp.Description("BCP 47 tag deciding the separators, e.g. en-US or pt-BR")),
		mcp.WithString("decimal", mcp.Description("Decimal separator override (one character)")),
		mcp.WithString("grouping", mcp.Description("Grouping separator override (one character)")),
		mcp.WithBoolean("reset", mcp.Description("Clear the stack after applying the settings")),
		mcp.WithOutputSchema[ConfigureResponse](),
	)
	s.mcpServer.AddTool(configureTool, mcp.NewStructuredToolHandler(s.handleConfigure))
}

func (s *Server) handlePress(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (runner.RichResponse, error) {
	line, _ := args["line"].(string)

	clean, err := runner.SanitizeLine(line)
	if err != nil {
		s.logger.Warn("MCP Press: input rejected", "error", err, "size", len(line))
		return runner.RichResponse{}, fmt.Errorf("input rejected: %w", err)
	}
	req, err := runner.ParseLine(clean)
	if err != nil {
		return runner.RichResponse{}, err
	}
	if req.Command != runner.CommandNone {
		return runner.RichResponse{}, fmt.Errorf("command %q is not available over MCP", req.Command)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rich := runner.ApplyAndRender(s.calc, req.Inputs)
	s.logger.Debug("MCP Press: applied", "inputs", len(req.Inputs), "errors", len(rich.Errors))
	return *rich, nil
}

func (s *Server) handleDisplay(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Display, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.Display(), nil
}

func (s *Server) handleStack(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StackResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StackResponse{Stack: s.calc.Entries()}, nil
}

func (s *Server) handleConfigure(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ConfigureResponse, error) {
	settings := make(map[string]any, len(args))
	var reset bool
	for k, v := range args {
		switch {
		case k == "reset":
			reset, _ = v.(bool)
		case configurable[k]:
			settings[k] = v
		default:
			return ConfigureResponse{}, fmt.Errorf("unknown setting %q", k)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.cfg.Merge(settings)
	if err != nil {
		return ConfigureResponse{}, err
	}
	oldFormat, _ := s.cfg.NumberFormat()
	newFormat, _ := next.NumberFormat()
	unit, _ := next.AngleUnit()

	if newFormat != oldFormat {
		calc, err := s.factory(next)
		if err != nil {
			return ConfigureResponse{}, fmt.Errorf("rebuild calculator: %w", err)
		}
		s.calc = calc
		s.logger.Info("MCP Configure: number format changed",
			"decimal", string(newFormat.Decimal), "grouping", string(newFormat.Grouping))
	}
	s.calc.SetAngleUnit(unit)
	if reset {
		s.calc.Reset()
	}
	s.cfg = next

	return ConfigureResponse{
		Decimal:  string(newFormat.Decimal),
		Grouping: string(newFormat.Grouping),
		Angle:    unit.String(),
		Display:  s.calc.Display(),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: rpn://stack
	s.mcpServer.AddResource(mcp.NewResource(StackURI, "Calculator Stack",
		mcp.WithMIMEType("application/json"),
	), s.handleStackResource)
}

func (s *Server) handleStackResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	s.mu.Lock()
	entries := s.calc.Entries()
	s.mu.Unlock()

	jsonBytes, err := json.Marshal(StackResponse{Stack: entries})
	if err != nil {
		return nil, fmt.Errorf("failed to encode stack: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      StackURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
