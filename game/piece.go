package game

// Unit enumerates the chess piece kinds. The zero value marks an empty
// board cell.
type Unit int

const (
	NoUnit Unit = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (u Unit) String() string {
	switch u {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Player denotes the two sides that can own units.
type Player int

const (
	White Player = iota
	Black
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == White {
		return Black
	}
	return White
}

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// forward is the rank direction this player's pawns advance in.
func (p Player) forward() int {
	if p == White {
		return 1
	}
	return -1
}

// Piece is a unit owned by a player. Moved counts how many times the piece
// has been moved; a pawn may double-step only while it is zero.
type Piece struct {
	Unit   Unit
	Player Player
	Moved  int
}

// Rune returns the filled unicode chess glyph for the unit; the owner is
// conveyed by draw color, as both glyph sets render poorly at small sizes.
func (p Piece) Rune() rune {
	switch p.Unit {
	case Pawn:
		return '♟'
	case Knight:
		return '♞'
	case Bishop:
		return '♝'
	case Rook:
		return '♜'
	case Queen:
		return '♛'
	case King:
		return '♚'
	}
	return ' '
}
