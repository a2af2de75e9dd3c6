package scaler

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/qcordic/fibonacci"
	"github.com/calebcase/qcordic/register"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("scaler")

// Ancillas is the scratch register pair used by a scaler.
type Ancillas struct {
	Clean register.Register
	Dirty register.Register
}

// Scaler scales registers by 1+2^-m. It owns the Fibonacci ladder shared by
// all of its calls and is safe for concurrent use.
type Scaler struct {
	ladder fibonacci.Table
}

// New returns a new scaler.
func New() *Scaler {
	return &Scaler{}
}

// Terms returns the number of correction terms K used for an n-bit field and
// shift m. K is negative when m is well past n, in which case no correction
// terms are applied.
func (s *Scaler) Terms(n, m uint) int {
	return 1 + 2*int(math.Ceil(math.Log(float64(n)/float64(m))/math.Log(math.Phi)))
}

// Scale sets x to approximately x·(1+2^-m) mod 2^n. The shift must satisfy
// 1 <= m < n.
func (s *Scaler) Scale(f register.Field, x *register.Register, a *Ancillas, m uint) (err error) {
	defer Error.WrapP(&err)

	if m == 0 || m >= f.Bits() {
		return Error.New("invalid shift: m=%d n=%d (want 1 <= m < n)", m, f.Bits())
	}

	s.apply(f, x, a, m)

	return nil
}

// Apply is Scale without the upper bound on m. Once 2^-m is below one unit in
// the last place the ladder reduces to sign fill corrections and still
// restores the clean ancilla.
func (s *Scaler) Apply(f register.Field, x *register.Register, a *Ancillas, m uint) (err error) {
	defer Error.WrapP(&err)

	if m == 0 {
		return Error.New("invalid shift: m=0")
	}

	s.apply(f, x, a, m)

	return nil
}

func (s *Scaler) apply(f register.Field, x *register.Register, a *Ancillas, m uint) {
	k := s.Terms(f.Bits(), m)

	f.Add(&a.Dirty, x, 0, false)
	f.Add(x, &a.Dirty, m, false)
	f.Add(&a.Clean, x, 0, false)

	for i := 0; i < k; i++ {
		s.correct(f, x, a, m, i, false)
	}

	f.Add(&a.Dirty, &a.Clean, 0, true)

	for i := k - 1; i >= 0; i-- {
		s.correct(f, x, a, m, i, true)
	}

	f.Add(&a.Clean, x, 0, true)
}

// correct applies ladder step i. Even steps update x from the clean ancilla,
// odd steps update the clean ancilla from x.
func (s *Scaler) correct(f register.Field, x *register.Register, a *Ancillas, m uint, i int, backward bool) {
	fi := s.ladder.At(i)
	shift := m * uint(fi)
	negate := fi%2 == 1
	if backward {
		negate = !negate
	}

	if i%2 == 0 {
		f.Add(x, &a.Clean, shift, negate)
	} else {
		f.Add(&a.Clean, x, shift, negate)
	}
}
