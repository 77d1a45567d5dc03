package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/rpn"
	"github.com/aretw0/rpn/internal/config"
	"github.com/aretw0/rpn/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory(builds *int) Factory {
	return func(cfg config.Config) (Calculator, error) {
		*builds++
		f, err := cfg.NumberFormat()
		if err != nil {
			return nil, err
		}
		u, err := cfg.AngleUnit()
		if err != nil {
			return nil, err
		}
		return rpn.New(rpn.WithNumberFormat(f), rpn.WithAngleUnit(u))
	}
}

func newTestServer(t *testing.T) (*Server, *int) {
	t.Helper()
	builds := 0
	s, err := NewServer(config.Default(), testFactory(&builds))
	require.NoError(t, err)
	return s, &builds
}

func TestHandlePress(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "6,25 3,50 +"})
	require.NoError(t, err)
	assert.Equal(t, "9,75", resp.Display.X)
	assert.Equal(t, []string{"9,75"}, resp.Stack)

	resp, err = s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "0 /"})
	require.NoError(t, err)
	assert.Equal(t, domain.ErrorText, resp.Display.X)
	assert.Len(t, resp.Errors, 1)
}

func TestHandlePress_Rejected(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "1 bogus"})
	assert.ErrorIs(t, err, domain.ErrUnknownKey)

	_, err = s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "help"})
	assert.Error(t, err)

	// Nothing was applied.
	d, err := s.handleDisplay(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "0", d.X)
}

func TestHandleDisplayAndStack(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "1 enter 2"})
	require.NoError(t, err)

	d, err := s.handleDisplay(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", d.X)
	assert.Equal(t, "1", d.Y)

	st, err := s.handleStack(ctx, mcp.CallToolRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, st.Stack)
}

func TestHandleConfigure_Angle(t *testing.T) {
	s, builds := newTestServer(t)
	ctx := context.Background()

	_, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "5"})
	require.NoError(t, err)

	resp, err := s.handleConfigure(ctx, mcp.CallToolRequest{}, map[string]interface{}{"angle": "rad"})
	require.NoError(t, err)
	assert.Equal(t, "RAD", resp.Angle)
	assert.Equal(t, domain.Radians, resp.Display.Angle)
	assert.Equal(t, "5", resp.Display.X, "angle change keeps the stack")
	assert.Equal(t, 1, *builds)
}

func TestHandleConfigure_Format(t *testing.T) {
	s, builds := newTestServer(t)
	ctx := context.Background()

	resp, err := s.handleConfigure(ctx, mcp.CallToolRequest{}, map[string]interface{}{"locale": "en-US"})
	require.NoError(t, err)
	assert.Equal(t, ".", resp.Decimal)
	assert.Equal(t, ",", resp.Grouping)
	assert.Equal(t, 2, *builds)

	press, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "1234.5 1 +"})
	require.NoError(t, err)
	assert.Equal(t, "1,235.5", press.Display.X)
}

func TestHandleConfigure_Rejected(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleConfigure(ctx, mcp.CallToolRequest{}, map[string]interface{}{"debug": true})
	assert.Error(t, err)

	_, err = s.handleConfigure(ctx, mcp.CallToolRequest{}, map[string]interface{}{"angle": "turns"})
	assert.Error(t, err)

	assert.Equal(t, "DEG", s.cfg.Angle, "a failed configure leaves the settings alone")
}

func TestHandleConfigure_Reset(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "1 enter 2 enter 3"})
	require.NoError(t, err)

	resp, err := s.handleConfigure(ctx, mcp.CallToolRequest{}, map[string]interface{}{"reset": true})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Display.Size)
	assert.Equal(t, "0", resp.Display.X)
}

func TestStackResource(t *testing.T) {
	s, _ := newTestServer(t)
	ctx := context.Background()

	_, err := s.handlePress(ctx, mcp.CallToolRequest{}, map[string]interface{}{"line": "7 3"})
	require.NoError(t, err)

	contents, err := s.handleStackResource(ctx, mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, StackURI, text.URI)

	var st StackResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &st))
	assert.Equal(t, []string{"3", "7"}, st.Stack)
}
