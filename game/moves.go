package game

// Fixed offset tables. Sliders ray-cast along direction vectors instead.
var (
	knightOffsets = [8][2]int{
		{2, -1}, {2, 1}, {-2, -1}, {-2, 1},
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	}
	kingOffsets = [8][2]int{
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}}
)

// Moves returns every square the piece on from could move to or attack, as
// if movement were the only rule in effect: no turn-ownership check, no
// check safety. Friendly-occupied squares are included, because a unit sees
// its own pieces; the legality filter strips them for actual movement. An
// empty from is ErrEmptySquare rather than an empty set, so caller bugs
// surface instead of vanishing.
func Moves(b Board, from Square) (SquareSet, error) {
	if !from.Valid() {
		return nil, ErrOutOfBounds
	}
	p, ok := b.At(from)
	if !ok {
		return nil, ErrEmptySquare
	}
	set := make(SquareSet)
	switch p.Unit {
	case Pawn:
		pawnMoves(b, from, p, set)
	case Knight:
		jumps(from, knightOffsets, set)
	case Bishop:
		rays(b, from, bishopDirs, set)
	case Rook:
		rays(b, from, rookDirs, set)
	case Queen:
		rays(b, from, rookDirs, set)
		rays(b, from, bishopDirs, set)
	case King:
		jumps(from, kingOffsets, set)
	}
	return set, nil
}

// pawnMoves: one square forward when empty, two from the pawn's first move
// when both are empty, and diagonal-forward squares only when an enemy
// stands there. Direction depends on the owner.
func pawnMoves(b Board, from Square, p Piece, set SquareSet) {
	dir := p.Player.forward()
	for _, df := range []int{-1, 1} {
		diag := from.offset(df, dir)
		if enemy, ok := b.At(diag); ok && enemy.Player != p.Player {
			set.add(diag)
		}
	}
	step := from.offset(0, dir)
	if _, ok := b.At(step); ok || !step.Valid() {
		return
	}
	set.add(step)
	double := from.offset(0, 2*dir)
	if _, ok := b.At(double); !ok && double.Valid() && p.Moved == 0 {
		set.add(double)
	}
}

// jumps adds the in-bounds subset of fixed offsets, ignoring obstruction.
func jumps(from Square, offsets [8][2]int, set SquareSet) {
	for _, d := range offsets {
		if sq := from.offset(d[0], d[1]); sq.Valid() {
			set.add(sq)
		}
	}
}

// rays walks each direction one square at a time. A ray stops at and
// includes the first occupied square; the board edge stops it with no
// inclusion.
func rays(b Board, from Square, dirs [4][2]int, set SquareSet) {
	for _, d := range dirs {
		for sq := from.offset(d[0], d[1]); sq.Valid(); sq = sq.offset(d[0], d[1]) {
			set.add(sq)
			if _, occupied := b.At(sq); occupied {
				break
			}
		}
	}
}
