package domain

import (
	"fmt"
	"strings"
)

// AngleUnit selects how trigonometric arguments and results are interpreted.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
	Gradians
)

// Next returns the unit that follows u in the DEG -> RAD -> GRAD -> DEG cycle.
func (u AngleUnit) Next() AngleUnit {
	switch u {
	case Degrees:
		return Radians
	case Radians:
		return Gradians
	default:
		return Degrees
	}
}

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "RAD"
	case Gradians:
		return "GRAD"
	default:
		return "DEG"
	}
}

// ParseAngleUnit accepts DEG, RAD or GRAD (case-insensitive).
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEG", "":
		return Degrees, nil
	case "RAD":
		return Radians, nil
	case "GRAD":
		return Gradians, nil
	}
	return Degrees, fmt.Errorf("invalid angle unit %q", s)
}

func (u AngleUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *AngleUnit) UnmarshalText(b []byte) error {
	parsed, err := ParseAngleUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
