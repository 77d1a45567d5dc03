package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/rpn/internal/config"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/aretw0/rpn/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rpn.yaml")
	require.NoError(t, os.WriteFile(path, []byte("angle: RAD\nlocale: en-US\n"), 0644))

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "RAD", cfg.Angle)
		assert.Equal(t, "en-US", cfg.Locale)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("RPN_ANGLE", "GRAD")
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "GRAD", cfg.Angle)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("RPN_ANGLE", "GRAD")
		cfg, err := LoadConfig(path, map[string]any{"angle": "DEG", "debug": true})
		require.NoError(t, err)
		assert.Equal(t, "DEG", cfg.Angle)
		assert.True(t, cfg.Debug)
	})

	t.Run("bad override", func(t *testing.T) {
		_, err := LoadConfig(path, map[string]any{"angle": "turns"})
		assert.Error(t, err)
	})
}

func TestCreateCalculator(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "en-US"
	cfg.Angle = "GRAD"

	calc, err := createCalculator(cfg, createLogger(cfg, true))
	require.NoError(t, err)
	assert.Equal(t, '.', calc.Format().Decimal)
	assert.Equal(t, domain.Gradians, calc.AngleUnit())

	cfg.Decimal = "::"
	_, err = createCalculator(cfg, createLogger(cfg, true))
	assert.Error(t, err)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(runner.ErrInterrupted))
	assert.NoError(t, handleExecutionError(fmt.Errorf("run: %w", runner.ErrInterrupted)))

	boom := errors.New("boom")
	assert.ErrorIs(t, handleExecutionError(boom), boom)
}

func TestLogCompletion(t *testing.T) {
	var buf bytes.Buffer
	logCompletion(&buf, runner.ErrInterrupted, false, os.Interrupt)
	assert.Equal(t, "[CTRL+C]\n>>> Interrupted.\n", buf.String())

	buf.Reset()
	logCompletion(&buf, nil, true, nil)
	assert.Empty(t, buf.String())
}

func TestExecute_Conflicts(t *testing.T) {
	err := Execute(RunOptions{Config: config.Default(), JSON: true, Keys: true})
	assert.Error(t, err)

	err = Execute(RunOptions{Config: config.Default(), Keys: true, Headless: true})
	assert.Error(t, err)
}

func TestRunSession_JSON(t *testing.T) {
	var out bytes.Buffer
	err := Execute(RunOptions{
		Config: config.Default(),
		JSON:   true,
		In:     strings.NewReader("\"7 3 +\"\n"),
		Out:    &out,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "initial display plus one per input line")

	var d domain.Display
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &d))
	assert.Equal(t, "10", d.X)
}

func TestRunSession_Headless(t *testing.T) {
	var out bytes.Buffer
	err := Execute(RunOptions{
		Config:   config.Default(),
		Headless: true,
		In:       strings.NewReader("6,25 3,50 +\nquit\n"),
		Out:      &out,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "9,75")
	assert.NotContains(t, out.String(), ">>>")
}

func TestRunSession_KeysNeedsTerminal(t *testing.T) {
	err := Execute(RunOptions{
		Config: config.Default(),
		Keys:   true,
		In:     strings.NewReader("1"),
		Out:    &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, runner.ErrNotTerminal)
}

func TestNewServeHandler(t *testing.T) {
	h, err := NewServeHandler(config.Default())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/input", strings.NewReader(`{"line":"2 3 *"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rpn_operations_total")
	assert.Contains(t, w.Body.String(), "rpn_stack_depth 1")
}

func TestNewMCPServer(t *testing.T) {
	srv, err := NewMCPServer(config.Default())
	require.NoError(t, err)
	assert.NotNil(t, srv)

	assert.Error(t, ServeMCP(t.Context(), config.Default(), "carrier-pigeon", 0))
}
