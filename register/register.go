package register

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("register")

// MaxBits is the widest field supported. The field modulus and the sign fill
// must both fit in a uint64.
const MaxBits = 63

// Register is the canonical representative of an n-bit two's complement
// value.
type Register = uint64

// Field describes an n-bit two's complement field.
type Field struct {
	bits uint
	mask uint64
	sign uint64
}

// NewField returns the field of the given width.
func NewField(bits uint) (f Field, err error) {
	if bits < 2 || bits > MaxBits {
		return Field{}, Error.New("invalid width: bits=%d (want 2..%d)", bits, MaxBits)
	}

	return Field{
		bits: bits,
		mask: 1<<bits - 1,
		sign: 1 << (bits - 1),
	}, nil
}

// Bits returns the width of the field.
func (f Field) Bits() uint {
	return f.bits
}

// Mask returns 2^n - 1, the largest register value.
func (f Field) Mask() Register {
	return f.mask
}

// Reduce returns v mod 2^n.
func (f Field) Reduce(v uint64) Register {
	return v & f.mask
}

// FromInt returns the register holding the signed value v.
func (f Field) FromInt(v int64) Register {
	return uint64(v) & f.mask
}

// Int returns the signed value of r.
func (f Field) Int(r Register) int64 {
	r &= f.mask
	if r&f.sign != 0 {
		return int64(r) - int64(f.mask) - 1
	}

	return int64(r)
}

// IsNeg reports whether the sign bit of r is set.
func (f Field) IsNeg(r Register) bool {
	return r&f.sign != 0
}

// Shift returns x shifted right by s bits with sign extension.
func (f Field) Shift(x Register, s uint) Register {
	x &= f.mask

	neg := f.IsNeg(x)

	if s >= f.bits {
		if neg {
			return f.mask
		}

		return 0
	}

	v := x >> s
	if neg {
		// Fill the s vacated high bits with ones.
		v |= f.mask &^ (f.mask >> s)
	}

	return v
}

// Add sets x to x ± (y >> s) and reduces both registers. y is otherwise left
// unchanged.
func (f Field) Add(x, y *Register, s uint, negate bool) {
	*x &= f.mask
	*y &= f.mask

	if negate {
		*x = (*x - f.Shift(*y, s)) & f.mask
	} else {
		*x = (*x + f.Shift(*y, s)) & f.mask
	}
}

// Sub returns (a - b) mod 2^n.
func (f Field) Sub(a, b Register) Register {
	return (a - b) & f.mask
}
