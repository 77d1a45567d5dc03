package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/rpn/pkg/domain"
)

var commands = map[string]Command{
	"help":  CommandHelp,
	"?":     CommandHelp,
	"stack": CommandStack,
	"exit":  CommandQuit,
	"quit":  CommandQuit,
}

// ParseLine splits a line into calculator inputs. Tokens holding a digit that
// are not key names ("12", "-3,5", "1e6") become literals; everything else
// must name a key. A line made of a single command word yields that command.
func ParseLine(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 {
		if cmd, ok := commands[strings.ToLower(fields[0])]; ok {
			return Request{Command: cmd}, nil
		}
	}

	req := Request{Inputs: make([]domain.Input, 0, len(fields))}
	for _, tok := range fields {
		in, err := parseToken(tok)
		if err != nil {
			return Request{}, err
		}
		req.Inputs = append(req.Inputs, in)
	}
	return req, nil
}

func parseToken(tok string) (domain.Input, error) {
	k, err := domain.ParseKey(tok)
	if err == nil {
		if _, digit := k.Digit(); !digit {
			return domain.Input{Key: k}, nil
		}
	}
	if strings.ContainsAny(tok, "0123456789") {
		return domain.Input{Literal: tok}, nil
	}
	return domain.Input{}, fmt.Errorf("token %q: %w", tok, err)
}
