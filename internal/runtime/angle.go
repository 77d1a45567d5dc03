package runtime

import (
	"math"

	"github.com/aretw0/rpn/pkg/domain"
)

// toRadians converts an angle expressed in u.
func toRadians(angle float64, u domain.AngleUnit) float64 {
	switch u {
	case domain.Degrees:
		return angle * math.Pi / 180
	case domain.Gradians:
		return (angle * 360 / 400) * math.Pi / 180
	}
	return angle
}

// fromRadians converts radians into u.
func fromRadians(rad float64, u domain.AngleUnit) float64 {
	switch u {
	case domain.Degrees:
		return rad * 180 / math.Pi
	case domain.Gradians:
		return (rad * 180 / math.Pi) * 400 / 360
	}
	return rad
}

// convertAngle re-expresses angle, given in from, in to.
func convertAngle(angle float64, from, to domain.AngleUnit) float64 {
	if from == to {
		return angle
	}
	switch {
	case from == domain.Degrees && to == domain.Gradians:
		return angle * 400 / 360
	case from == domain.Gradians && to == domain.Degrees:
		return angle * 360 / 400
	}
	return fromRadians(toRadians(angle, from), to)
}

// quarterTurn is the size of a right angle in u, or 0 for radians, where
// multiples of a right angle are not exactly representable.
func quarterTurn(u domain.AngleUnit) float64 {
	switch u {
	case domain.Degrees:
		return 90
	case domain.Gradians:
		return 100
	}
	return 0
}

// quadrant reports which multiple of a right angle (mod 4) angle is, when it
// is an exact one.
func quadrant(angle float64, u domain.AngleUnit) (int, bool) {
	q := quarterTurn(u)
	if q == 0 || math.Mod(angle, q) != 0 {
		return 0, false
	}
	n := math.Mod(angle/q, 4)
	if n < 0 {
		n += 4
	}
	return int(n), true
}

var (
	sinQuadrant = [4]float64{0, 1, 0, -1}
	cosQuadrant = [4]float64{1, 0, -1, 0}
)

func sinIn(angle float64, u domain.AngleUnit) (float64, error) {
	if q, ok := quadrant(angle, u); ok {
		return sinQuadrant[q], nil
	}
	return math.Sin(toRadians(angle, u)), nil
}

func cosIn(angle float64, u domain.AngleUnit) (float64, error) {
	if q, ok := quadrant(angle, u); ok {
		return cosQuadrant[q], nil
	}
	return math.Cos(toRadians(angle, u)), nil
}

func tanIn(angle float64, u domain.AngleUnit) (float64, error) {
	if q, ok := quadrant(angle, u); ok {
		if q%2 == 1 {
			return 0, reason("tangent undefined at odd multiples of a right angle")
		}
		return 0, nil
	}
	rad := toRadians(angle, u)
	if math.Abs(math.Mod(rad, math.Pi)) == math.Pi/2 {
		return 0, reason("tangent undefined at odd multiples of a right angle")
	}
	return math.Tan(rad), nil
}

// inverseTrig applies an inverse function and expresses its result in the active unit.
func inverseTrig(f func(float64) float64) unaryFunc {
	return func(x float64, u domain.AngleUnit) (float64, error) {
		return fromRadians(f(x), u), nil
	}
}
