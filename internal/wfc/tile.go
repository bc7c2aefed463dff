package wfc

import (
	"cmp"
	"fmt"
)

type tileKind uint8

const (
	// The zero kind is deliberately invalid so that a zero-value Tile
	// fails fast on first access instead of masquerading as definite.
	kindInvalid tileKind = iota
	kindDefinite
	kindIndefinite
)

// Tile is one grid cell's state: either a committed value (definite) or an
// ordered set of remaining candidate values (indefinite).
//
// INVARIANTS:
//   - A tile transitions Indefinite -> Definite at most once and never
//     back, except the engine's documented single-level rollback.
//   - An indefinite tile's candidate set only shrinks during propagation.
//   - An indefinite tile with an empty candidate set never legitimately
//     exists in the grid; an empty set signals a contradiction and is
//     handled inside Step before it is ever stored.
//
// Accessing the wrong variant (Value on an indefinite tile, States on a
// definite one) is a programming error and panics.
type Tile[T cmp.Ordered] struct {
	kind   tileKind
	value  T
	states Set[T]
}

// Definite returns a tile committed to v.
func Definite[T cmp.Ordered](v T) Tile[T] {
	return Tile[T]{kind: kindDefinite, value: v}
}

// Indefinite returns a tile holding the given candidate set.
func Indefinite[T cmp.Ordered](states Set[T]) Tile[T] {
	return Tile[T]{kind: kindIndefinite, states: states}
}

// IndefiniteOf is shorthand for Indefinite(NewSet(values...)).
func IndefiniteOf[T cmp.Ordered](values ...T) Tile[T] {
	return Indefinite(NewSet(values...))
}

// IsDefinite reports whether the tile is committed to a value.
func (t Tile[T]) IsDefinite() bool {
	return t.kind == kindDefinite
}

// IsIndefinite reports whether the tile still holds candidates.
func (t Tile[T]) IsIndefinite() bool {
	return t.kind == kindIndefinite
}

// Value returns the committed value.
// Panics if the tile is not definite.
func (t Tile[T]) Value() T {
	if t.kind != kindDefinite {
		panic(fmt.Sprintf("wfc: Value called on %s tile", t.kind))
	}
	return t.value
}

// States returns the candidate set.
// Panics if the tile is not indefinite.
func (t Tile[T]) States() Set[T] {
	if t.kind != kindIndefinite {
		panic(fmt.Sprintf("wfc: States called on %s tile", t.kind))
	}
	return t.states
}

func (k tileKind) String() string {
	switch k {
	case kindDefinite:
		return "definite"
	case kindIndefinite:
		return "indefinite"
	default:
		return "zero-value"
	}
}
