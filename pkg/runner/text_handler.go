package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/rpn/pkg/domain"
)

// TextHandler implements the line-oriented terminal interface.
type TextHandler struct {
	source   io.Reader
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Display  DisplayRenderer
	Prompt   string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithStdin reads lines from os.Stdin.
func WithStdin() TextHandlerOption {
	return WithReader(os.Stdin)
}

// WithReader reads lines from r. Without a reader, input arrives only through FeedInput.
func WithReader(r io.Reader) TextHandlerOption {
	return func(h *TextHandler) {
		h.source = r
	}
}

// WithTextHandlerRenderer configures the renderer for help and system messages.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithDisplayRenderer replaces FormatDisplay.
func WithDisplayRenderer(renderer DisplayRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Display = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:    w,
		Display:   FormatDisplay,
		Prompt:    "> ",
		inputChan: make(chan inputResult, DefaultInputBufferSize),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.source != nil {
		h.Reader = bufio.NewReader(h.source)
	}
	return h
}

// FeedInput injects a line as if it had been typed. It blocks while the buffer is full.
func (h *TextHandler) FeedInput(text string, err error) {
	h.inputChan <- inputResult{text: text, err: err}
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		if h.Reader != nil {
			go h.pump()
		}
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff for non-fatal errors to prevent CPU spikes on persistent failure
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, d domain.Display) error {
	_, err := fmt.Fprintln(h.Writer, h.Display(d))
	return err
}

func (h *TextHandler) ShowStack(ctx context.Context, entries []string) error {
	_, err := fmt.Fprintf(h.Writer, "Stack:\n%s\n", FormatStack(entries))
	return err
}

func (h *TextHandler) Input(ctx context.Context) (Request, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		default:
			fmt.Fprint(h.Writer, h.Prompt)
		}

		select {
		case <-ctx.Done():
			return Request{}, ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return Request{}, io.EOF
			}
			if res.err != nil {
				return Request{}, res.err
			}

			clean, err := SanitizeLine(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			req, err := ParseLine(clean)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Type \"help\" for the key names.\n", err)
				continue
			}
			return req, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	output := msg
	if h.Renderer != nil {
		if rendered, err := h.Renderer(msg); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n"))
	return err
}
