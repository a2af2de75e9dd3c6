// Package scaler multiplies a register by 1+2^-m using only reversible
// shifted adds.
//
// A scaler works on one value register x and two ancilla registers. The clean
// ancilla is returned to exactly the value it held on entry. The dirty
// ancilla receives whatever residual the computation could not uncompute and
// must never be consulted for decisions.
//
// # Ladder
//
// The product is staged in five steps:
//
//	1. dirty += x;  x += dirty >> m;  clean += x
//	2. for i = 0 .. K-1:
//	     even i: x     -= or += clean >> m·F(i)
//	     odd i:  clean -= or += x     >> m·F(i)
//	   subtracting when F(i) is odd
//	3. dirty -= clean
//	4. step 2 in reverse order with the opposite signs
//	5. clean -= x
//
// F is the Fibonacci ladder from package fibonacci and
//
//	K = 1 + 2·ceil(log(n/m) / log(φ))
//
// Because consecutive shifts grow by roughly φ the correction terms fall below
// one unit in the last place after O(log(n/m)) steps.
//
// # Accuracy
//
// With both ancillas zero the result is exactly x + (x >> m). A dirty ancilla
// holding D leaks into the result through step 1. For every input the
// deviation from x + (x >> m) stays below 2^(n-m).
//
// Step 3 folds the clean value C into the dirty ancilla, so on return
//
//	dirty' = dirty - C + δ,  |δ| <= 2^(n-m)
//
// With a zero clean ancilla the dirty ancilla therefore drifts by at most
// 2^(n-m).
package scaler
