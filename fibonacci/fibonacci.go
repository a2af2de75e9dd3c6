// Package fibonacci provides a memoized table of Fibonacci numbers used as a
// shift ladder.
//
// The table is indexed from zero with F(0) = F(1) = 1:
//
//	i    | 0 | 1 | 2 | 3 | 4 | 5 |  6 |  7 | ...
//	F(i) | 1 | 1 | 2 | 3 | 5 | 8 | 13 | 21 | ...
//
// Entries grow by roughly the golden ratio, so a ladder of shifts m·F(i)
// reaches the width of an n-bit register after O(log(n/m)) steps.
package fibonacci

import (
	"fmt"
	"sync"
)

// Table is an append-only cache of Fibonacci numbers. Entries never change
// once computed. A Table is safe for concurrent use and the zero value is
// ready to use.
type Table struct {
	mu     sync.RWMutex
	values []uint64
}

// At returns F(i), extending the table if needed. It panics if i is
// negative.
func (t *Table) At(i int) uint64 {
	if i < 0 {
		panic(fmt.Sprintf("fibonacci: negative index %d", i))
	}

	t.mu.RLock()
	if i < len(t.values) {
		v := t.values[i]
		t.mu.RUnlock()

		return v
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.values) == 0 {
		t.values = append(t.values, 1, 1)
	}

	for len(t.values) <= i {
		n := len(t.values)
		t.values = append(t.values, t.values[n-1]+t.values[n-2])
	}

	return t.values[i]
}

// Len returns the number of memoized entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.values)
}
