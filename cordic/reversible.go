package cordic

import (
	"github.com/calebcase/qcordic/register"
	"github.com/calebcase/qcordic/scaler"
)

// Reversible is the register level engine. Every step is a shifted add or an
// ancilla restoring scale, so no information is discarded. It is safe for
// concurrent use.
type Reversible struct {
	scaler *scaler.Scaler
}

// NewReversible returns a new reversible engine.
func NewReversible() *Reversible {
	return &Reversible{
		scaler: scaler.New(),
	}
}

// Arcsin implements Engine.
func (r *Reversible) Arcsin(t int64, inputBits uint) (res Result, err error) {
	defer Error.WrapP(&err)

	err = validate(t, inputBits)
	if err != nil {
		return Result{}, err
	}

	n := inputBits + 2

	f, err := register.NewField(n)
	if err != nil {
		return Result{}, err
	}

	x := f.FromInt(int64(1)<<inputBits - 1)
	y := register.Register(0)
	target := f.FromInt(t)
	a := scaler.Ancillas{}

	res.Decisions = make([]bool, 0, n-2)

	for i := uint(1); i <= n-2; i++ {
		d := r.decide(f, x, y, target)
		res.Decisions = append(res.Decisions, d)

		u, v := &x, &y
		if d {
			u, v = &y, &x
		}

		for range 2 {
			f.Add(u, v, i, true)

			err = r.scaler.Apply(f, v, &a, 2*i)
			if err != nil {
				return Result{}, err
			}

			f.Add(v, u, i, false)
		}

		res.Angle += step(int(i), d)

		err = r.scaler.Apply(f, &target, &a, 2*i)
		if err != nil {
			return Result{}, err
		}
	}

	res.Residual = f.Int(a.Dirty)

	return res, nil
}

// decide returns sign(x) XOR sign(t - (sign(x) ? 0 : y)).
func (r *Reversible) decide(f register.Field, x, y, t register.Register) bool {
	diff := t
	if !f.IsNeg(x) {
		diff = f.Sub(t, y)
	}

	return f.IsNeg(x) != f.IsNeg(diff)
}
