package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/rpn/pkg/domain"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by KeyboardHandler.Start when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// keystrokes maps single bytes read in raw mode to keys.
var keystrokes = map[byte]domain.Key{
	',':  domain.KeySeparator,
	'.':  domain.KeySeparator,
	'\r': domain.KeyEnter,
	'\n': domain.KeyEnter,
	'f':  domain.KeyShift,
	0x7f: domain.KeyBackspace,
	0x08: domain.KeyBackspace,
	'd':  domain.KeyDrop,
	'w':  domain.KeySwap,
	'r':  domain.KeyDRG,
	'p':  domain.KeyPi,
	'e':  domain.KeyE,
	'+':  domain.OpKey(domain.OpAdd),
	'-':  domain.OpKey(domain.OpSub),
	'*':  domain.OpKey(domain.OpMul),
	'/':  domain.OpKey(domain.OpDiv),
	'%':  domain.OpKey(domain.OpPercent),
	'^':  domain.OpKey(domain.OpPower),
	'm':  domain.OpKey(domain.OpMod),
	'n':  domain.OpKey(domain.OpNegate),
	'i':  domain.OpKey(domain.OpInverse),
	'q':  domain.OpKey(domain.OpSqrt),
	's':  domain.OpKey(domain.OpSin),
	'c':  domain.OpKey(domain.OpCos),
	't':  domain.OpKey(domain.OpTan),
	'g':  domain.OpKey(domain.OpLog),
	'l':  domain.OpKey(domain.OpLn),
}

// KeyboardHelpText documents the raw keyboard layout.
const KeyboardHelpText = `0-9 digits   , or . separator   Enter enter   Backspace back
f shift   d drop   w swap   r drg   p pi   e e
+ - * / % ^ mod(m)   n +/-   i 1/x   q sqrt   s sin   c cos   t tan   g log   l ln
S stack   h help   Q or Ctrl+C quit`

// MapKeystroke translates one raw byte into a request.
func MapKeystroke(b byte) (Request, bool) {
	switch {
	case b >= '0' && b <= '9':
		return Request{Inputs: []domain.Input{{Key: domain.DigitKey(int(b - '0'))}}}, true
	case b == 0x03 || b == 0x04 || b == 'Q':
		return Request{Command: CommandQuit}, true
	case b == 'h' || b == '?':
		return Request{Command: CommandHelp}, true
	case b == 'S':
		return Request{Command: CommandStack}, true
	}
	if k, ok := keystrokes[b]; ok {
		return Request{Inputs: []domain.Input{{Key: k}}}, true
	}
	return Request{}, false
}

// KeyboardHandler reads single keystrokes from a terminal in raw mode,
// like the key capture of a desktop calculator.
type KeyboardHandler struct {
	In      *os.File
	Writer  io.Writer
	Display DisplayRenderer

	reader *bufio.Reader
	state  *term.State
}

// NewKeyboardHandler creates a handler reading from in (usually os.Stdin).
func NewKeyboardHandler(in *os.File, w io.Writer) *KeyboardHandler {
	if in == nil {
		in = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &KeyboardHandler{
		In:      in,
		Writer:  w,
		Display: FormatDisplay,
		reader:  bufio.NewReader(in),
	}
}

// Start switches the terminal into raw mode. Close must be called to restore it.
func (h *KeyboardHandler) Start() error {
	fd := int(h.In.Fd())
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	h.state = state
	return nil
}

// Close restores the terminal state saved by Start.
func (h *KeyboardHandler) Close() error {
	if h.state == nil {
		return nil
	}
	err := term.Restore(int(h.In.Fd()), h.state)
	h.state = nil
	return err
}

// Input ignores keystrokes without a meaning and returns on the next mapped one.
func (h *KeyboardHandler) Input(ctx context.Context) (Request, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Request{}, err
		}
		b, err := h.reader.ReadByte()
		if err != nil {
			return Request{}, err
		}
		if req, ok := MapKeystroke(b); ok {
			return req, nil
		}
	}
}

func (h *KeyboardHandler) Output(ctx context.Context, d domain.Display) error {
	// clear the screen and home the cursor before every redraw
	return h.write("\x1b[H\x1b[2J" + h.Display(d) + "\n")
}

func (h *KeyboardHandler) ShowStack(ctx context.Context, entries []string) error {
	return h.write("Stack:\n" + FormatStack(entries) + "\n")
}

func (h *KeyboardHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.write(msg + "\n")
}

// write converts line feeds, since raw mode disables output post-processing.
func (h *KeyboardHandler) write(s string) error {
	_, err := io.WriteString(h.Writer, strings.ReplaceAll(s, "\n", "\r\n"))
	return err
}
