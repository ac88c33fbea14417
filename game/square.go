package game

import "fmt"

// Square addresses one cell of the board. File runs a-h (0-7) and Rank runs
// 1-8 (0-7). White pawns advance toward increasing rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for building a Square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < 8 && s.Rank >= 0 && s.Rank < 8
}

// Compare orders squares by (file, rank).
func (s Square) Compare(o Square) int {
	if s.File != o.File {
		return s.File - o.File
	}
	return s.Rank - o.Rank
}

func (s Square) offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// Neighbors returns the squares at Chebyshev distance 1, clipped to the
// board edge.
func (s Square) Neighbors() []Square {
	out := make([]Square, 0, 8)
	for _, d := range kingOffsets {
		if n := s.offset(d[0], d[1]); n.Valid() {
			out = append(out, n)
		}
	}
	return out
}

// String renders the square in algebraic notation, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}
