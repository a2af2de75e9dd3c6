// Package register provides fixed width two's complement registers with
// modular arithmetic.
//
// A register holds the canonical representative of an n-bit two's complement
// value, an integer in [0, 2^n). Every operation reduces its result modulo 2^n
// before returning, so registers never carry bits outside their field.
//
// # Layout
//
// The most significant bit of the field is the sign bit. For n = 8:
//
//	| 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 || Register | Signed |
//	|---|---------------------------||----------|--------|
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 ||        0 |      0 |
//	| 0 . 1 . 1 . 1 . 1 . 1 . 1 . 1 ||      127 |   +127 |
//	| 1 . 0 . 0 . 0 . 0 . 0 . 0 . 0 ||      128 |   -128 |
//	| 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 ||      255 |     -1 |
//	|---|---------------------------||----------|--------|
//
// # Shifting
//
// Right shifts copy the sign bit into the vacated high bits:
//
//	1010 >> 1 = 1101  (n = 4)
//
// Shifting by the field width or more leaves only the sign fill: 0 for
// non-negative values and 2^n - 1 for negative ones. A shift discards the low
// bits and is therefore not invertible on its own.
//
// # Shifted Add
//
// Add folds a shifted copy of one register into another:
//
//	x' = (x ± (y >> s)) mod 2^n
//	y' = y
//
// With y and s fixed the map x -> x' is a translation on Z/2^nZ. Applying Add
// again with the opposite sign restores x exactly, which is what makes the
// operation usable in a reversible circuit even though the shift is lossy.
package register
