package game

// Board holds the location of every piece. It is a plain value: copying a
// Board yields an independent position, and the zero value is an empty
// board. Cells are addressed by Square and indexed file-major.
type Board struct {
	cells [8][8]Piece
}

// New returns a board in the standard chess starting position.
func New() Board {
	var b Board
	backRank := []Unit{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		b.Set(Sq(file, 0), Piece{Unit: backRank[file], Player: White})
		b.Set(Sq(file, 1), Piece{Unit: Pawn, Player: White})
		b.Set(Sq(file, 6), Piece{Unit: Pawn, Player: Black})
		b.Set(Sq(file, 7), Piece{Unit: backRank[file], Player: Black})
	}
	return b
}

// Scenario returns the named test board, used by the -scenario flag to set
// up single-player positions.
func Scenario(name string) (Board, bool) {
	switch name {
	case "castle":
		// King and rook in their home corner, for exercising the
		// castle gesture once compound moves exist.
		var b Board
		b.Set(Sq(0, 0), Piece{Unit: Rook, Player: White})
		b.Set(Sq(3, 0), Piece{Unit: King, Player: White})
		return b, true
	case "endgame":
		// Rook endgame, handy for watching fog open up across an
		// emptied board.
		var b Board
		b.Set(Sq(4, 0), Piece{Unit: King, Player: White})
		b.Set(Sq(0, 0), Piece{Unit: Rook, Player: White})
		b.Set(Sq(4, 7), Piece{Unit: King, Player: Black})
		b.Set(Sq(7, 7), Piece{Unit: Rook, Player: Black})
		return b, true
	}
	return Board{}, false
}

// At returns the piece on s. ok is false when the square is empty or off
// the board.
func (b *Board) At(s Square) (Piece, bool) {
	if !s.Valid() {
		return Piece{}, false
	}
	p := b.cells[s.File][s.Rank]
	return p, p.Unit != NoUnit
}

// Set places a piece on s, overwriting any occupant. Off-board squares are
// ignored; command paths validate bounds before mutating.
func (b *Board) Set(s Square, p Piece) {
	if s.Valid() {
		b.cells[s.File][s.Rank] = p
	}
}

// Clear empties s.
func (b *Board) Clear(s Square) {
	if s.Valid() {
		b.cells[s.File][s.Rank] = Piece{}
	}
}

// Move transfers the piece on from to to, capturing any occupant and
// bumping the piece's move counter. It does no rule checking; no-op when
// from is empty or either square is off the board.
func (b *Board) Move(from, to Square) {
	if !from.Valid() || !to.Valid() {
		return
	}
	p, ok := b.At(from)
	if !ok {
		return
	}
	p.Moved++
	b.Clear(from)
	b.Set(to, p)
}

// Pieces lists the squares occupied by player's units, ordered by
// (file, rank).
func (b *Board) Pieces(player Player) []Square {
	var out []Square
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := Sq(file, rank)
			if p, ok := b.At(sq); ok && p.Player == player {
				out = append(out, sq)
			}
		}
	}
	return out
}

// King locates player's king. ok is false once it has been captured.
func (b *Board) King(player Player) (Square, bool) {
	for _, sq := range b.Pieces(player) {
		if p, _ := b.At(sq); p.Unit == King {
			return sq, true
		}
	}
	return Square{}, false
}
