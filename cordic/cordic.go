package cordic

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/qcordic/register"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("cordic")

// Input bit limits. Registers carry two guard bits above the input.
const (
	MinInputBits = 3
	MaxInputBits = register.MaxBits - 2
)

// Result is the outcome of an arcsine approximation.
type Result struct {
	// Angle approximates asin(t / 2^b) in radians.
	Angle float64

	// Decisions holds d_i for i = 1 .. b. Angle can be rebuilt from it.
	Decisions []bool

	// Residual is the signed value left in the dirty ancilla. Classical
	// engines always report zero.
	Residual int64
}

// Engine approximates arcsine of a fixed point target t / 2^inputBits.
type Engine interface {
	Arcsin(t int64, inputBits uint) (res Result, err error)
}

// ApproximateArcsin evaluates t / 2^inputBits with a new Reversible engine.
func ApproximateArcsin(t int64, inputBits uint) (angle float64, decisions []bool, err error) {
	res, err := NewReversible().Arcsin(t, inputBits)
	if err != nil {
		return 0, nil, err
	}

	return res.Angle, res.Decisions, nil
}

// Angle rebuilds the rotation angle from a decision sequence. The result is
// identical to the angle accumulated by the engines.
func Angle(decisions []bool) (theta float64) {
	for j, d := range decisions {
		theta += step(j+1, d)
	}

	return theta
}

// step is the angle contributed by iteration i.
func step(i int, d bool) float64 {
	sign := 1.0
	if d {
		sign = -1.0
	}

	// The conversion keeps the product out of a fused multiply-add with the
	// caller's sum.
	return float64(2 * sign * math.Atan(math.Ldexp(1, -i)))
}

// validate checks the preconditions shared by all engines.
func validate(t int64, inputBits uint) error {
	if inputBits < MinInputBits || inputBits > MaxInputBits {
		return Error.New("invalid input bits: %d (want %d..%d)", inputBits, MinInputBits, MaxInputBits)
	}

	limit := int64(1) << inputBits
	if t < -limit || t > limit {
		return Error.New("target out of range: t=%d (want |t| <= %d)", t, limit)
	}

	return nil
}
