package testhelp

import (
	"github.com/zeebo/mwc"
)

var (
	valRng  = mwc.Rand()
	permRng = mwc.Rand()
)

// Odds returns the first n odd numbers in ascending order.
func Odds(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = 2*i + 1
	}
	return x
}

// Evens returns the first n even numbers in ascending order.
func Evens(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = 2 * i
	}
	return x
}

func Iota(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = i
	}
	return x
}

// Run returns n ascending values spread over roughly [0, spread). Duplicates
// are likely when n is close to spread.
func Run(n int, spread uint64) []int {
	x := make([]int, n)
	v := 0
	for i := range x {
		v += int(valRng.Uint64n(spread/uint64(n+1) + 2))
		x[i] = v
	}
	return x
}

// Values returns n values drawn uniformly from [0, spread).
func Values(n int, spread uint64) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = int(valRng.Uint64n(spread))
	}
	return x
}

func Shuffle[E any](x []E) {
	for i := len(x) - 1; i > 0; i-- {
		j := int(permRng.Uint64n(uint64(i + 1)))
		x[i], x[j] = x[j], x[i]
	}
}

func Perm(n int) []int {
	x := Iota(n)
	Shuffle(x)
	return x
}

func Intn(n int) int { return int(valRng.Uint64n(uint64(n))) }

func Concat[E any](xs ...[]E) (out []E) {
	for _, x := range xs {
		out = append(out, x...)
	}
	return out
}
