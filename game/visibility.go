package game

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// SquareSet is a set of board squares.
type SquareSet map[Square]struct{}

func (s SquareSet) add(sq Square) {
	s[sq] = struct{}{}
}

// Add inserts sq into the set.
func (s SquareSet) Add(sq Square) {
	s.add(sq)
}

// Contains reports membership of sq.
func (s SquareSet) Contains(sq Square) bool {
	_, ok := s[sq]
	return ok
}

// Squares lists the members ordered by (file, rank), so identical sets
// always list identically.
func (s SquareSet) Squares() []Square {
	sqs := maps.Keys(s)
	slices.SortFunc(sqs, Square.Compare)
	return sqs
}

// Clone returns an independent copy of the set.
func (s SquareSet) Clone() SquareSet {
	return maps.Clone(s)
}

// Visible computes player's fog-of-war view of b: for each of their live
// pieces, the squares it could move to or attack, the square it stands on,
// and the eight adjacent squares regardless of occupancy. The result is a
// pure function of the board, so recomputing after every accepted move
// cannot drift from it.
func Visible(b Board, player Player) SquareSet {
	set := make(SquareSet)
	for _, at := range b.Pieces(player) {
		reach, err := Moves(b, at)
		if err != nil {
			continue // Pieces only yields occupied squares
		}
		for sq := range reach {
			set.add(sq)
		}
		set.add(at)
		for _, n := range at.Neighbors() {
			set.add(n)
		}
	}
	return set
}
