// Package cordic approximates arcsine with a double rotation CORDIC.
//
// The algorithm follows Mazenc, Merrheim and Muller, "Computing Functions
// cos^-1 and sin^-1 Using Cordic" (IEEE Transactions on Computers, 42(1),
// 1993), with a corrected decision rule.
//
// # Engines
//
// Two engines implement the same interface:
//
//	| Engine     | Arithmetic                        | Use                    |
//	|------------|-----------------------------------|------------------------|
//	| Reversible | n-bit registers, shifted adds,    | The computation itself |
//	|            | ancilla restoring scaler          |                        |
//	| Classical  | float64                           | Validation oracle      |
//	|------------|-----------------------------------|------------------------|
//
// # Iteration
//
// For a target t with b input bits the reversible engine uses n = b + 2 bit
// registers and runs iterations i = 1 .. n-2 starting from
//
//	x = 2^b - 1,  y = 0,  theta = 0
//
// Each iteration takes a decision
//
//	d = sign(x) XOR sign(t - (sign(x) ? 0 : y))
//
// selects the register pair (u, v) = d ? (y, x) : (x, y) and rotates it twice:
//
//	u -= v >> i
//	v *= 1 + 2^-2i
//	v += u >> i
//
// The target follows the scale of the rotated vector, t *= 1 + 2^-2i, and the
// angle accumulates theta += 2·(d ? -1 : +1)·atan(2^-i).
//
// Only the decisions depend on register contents, so theta can be rebuilt from
// the decision sequence alone (see Angle).
//
// # Accuracy
//
// The error against math.Asin shrinks with the number of input bits. It is
// largest near ±1 where arcsine is steep: across the full input range it stays
// below 4·2^(-b/2) for the reversible engine and below 4·2^-b for the
// classical one.
package cordic
