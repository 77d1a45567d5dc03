package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/rpn/pkg/domain"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
// Every output is one JSON object per line. Input lines may be a JSON string
// ("7 3 +"), an Input object ({"key":"enter"}), an array of Input objects, or
// raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	eof bool
}

// StackMessage is emitted for the stack view.
type StackMessage struct {
	Stack []string `json:"stack"`
}

// SystemMessage is emitted for help and input errors.
type SystemMessage struct {
	Message string `json:"message"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, d domain.Display) error {
	return h.Encoder.Encode(d)
}

func (h *JSONHandler) ShowStack(ctx context.Context, entries []string) error {
	if entries == nil {
		entries = []string{}
	}
	return h.Encoder.Encode(StackMessage{Stack: entries})
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(SystemMessage{Message: msg})
}

func (h *JSONHandler) Input(ctx context.Context) (Request, error) {
	for {
		if h.eof {
			return Request{}, io.EOF
		}
		text, err := h.Reader.ReadString('\n')
		if err == io.EOF {
			h.eof = true
		} else if err != nil {
			return Request{}, err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		clean, err := SanitizeInput(text)
		if err != nil {
			if err := h.SystemOutput(ctx, err.Error()); err != nil {
				return Request{}, err
			}
			continue
		}
		req, err := decodeJSONLine(clean)
		if err != nil {
			if err := h.SystemOutput(ctx, err.Error()); err != nil {
				return Request{}, err
			}
			continue
		}
		return req, nil
	}
}

func decodeJSONLine(text string) (Request, error) {
	switch text[0] {
	case '"':
		var line string
		if err := json.Unmarshal([]byte(text), &line); err != nil {
			return Request{}, fmt.Errorf("invalid JSON string: %w", err)
		}
		return parseCleanLine(line)
	case '{':
		var in domain.Input
		if err := json.Unmarshal([]byte(text), &in); err != nil {
			return Request{}, fmt.Errorf("invalid input object: %w", err)
		}
		return Request{Inputs: []domain.Input{in}}, nil
	case '[':
		var ins []domain.Input
		if err := json.Unmarshal([]byte(text), &ins); err != nil {
			return Request{}, fmt.Errorf("invalid input array: %w", err)
		}
		return Request{Inputs: ins}, nil
	}
	// Fallback: plain text
	return parseCleanLine(text)
}

func parseCleanLine(line string) (Request, error) {
	clean, err := SanitizeLine(line)
	if err != nil {
		return Request{}, err
	}
	return ParseLine(clean)
}
