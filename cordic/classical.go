package cordic

import "math"

// Classical evaluates the same double rotation in float64 with exact scale
// factors. It is a reference for the reversible engine, not a replacement for
// math.Asin.
type Classical struct{}

// NewClassical returns a new classical engine.
func NewClassical() *Classical {
	return &Classical{}
}

// Arcsin implements Engine.
func (c *Classical) Arcsin(t int64, inputBits uint) (res Result, err error) {
	defer Error.WrapP(&err)

	err = validate(t, inputBits)
	if err != nil {
		return Result{}, err
	}

	x, y := 1.0, 0.0
	target := math.Ldexp(float64(t), -int(inputBits))

	res.Decisions = make([]bool, 0, inputBits)

	for i := 1; i <= int(inputBits); i++ {
		d := (x < 0) != (target-c.offset(x, y) < 0)
		res.Decisions = append(res.Decisions, d)

		u, v := &x, &y
		if d {
			u, v = &y, &x
		}

		k := math.Ldexp(1, -i)
		for range 2 {
			*u -= *v * k
			*v *= 1 + k*k
			*v += *u * k
		}

		res.Angle += step(i, d)
		target *= 1 + k*k
	}

	return res, nil
}

func (c *Classical) offset(x, y float64) float64 {
	if x < 0 {
		return 0
	}

	return y
}
