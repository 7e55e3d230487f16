// Package util carries small generic helpers shared across packages.
package util

// Pair is an ordered pair of possibly differently typed values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

func NewPair[A, B any](fst A, snd B) Pair[A, B] {
	return Pair[A, B]{
		Fst: fst,
		Snd: snd,
	}
}
