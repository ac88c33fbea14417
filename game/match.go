package game

// TurnState records whose move it is and how many moves have been accepted.
// The zero value is the start of a game: white to move, no moves played.
type TurnState struct {
	Active    Player
	MoveCount int
}

// Match owns the board and turn state for one game and keeps both players'
// visibility sets in step with the board. The visibility sets are caches of
// Visible over the current board, never touched any other way.
//
// A Match is not safe for concurrent use. Callers drive it from one
// goroutine, or hold a lock across each call so that a half-applied move is
// never observable.
type Match struct {
	board   Board
	turn    TurnState
	visible map[Player]SquareSet

	// single suppresses the turn toggle, for walking scenario boards
	// alone.
	single bool
}

// NewMatch starts a match from the standard starting position.
func NewMatch() *Match {
	return NewMatchWith(New())
}

// NewMatchWith starts a match from a prepared board, white to move.
func NewMatchWith(b Board) *Match {
	m := &Match{board: b}
	m.recompute()
	return m
}

// SetSinglePlayer toggles single-player mode: accepted moves no longer pass
// the turn, so one player can drive both sides of a scenario.
func (m *Match) SetSinglePlayer(on bool) {
	m.single = on
}

// Board returns a copy of the current position.
func (m *Match) Board() Board {
	return m.board
}

// At returns the piece on s, if any.
func (m *Match) At(s Square) (Piece, bool) {
	return m.board.At(s)
}

// ActivePlayer returns the player to move.
func (m *Match) ActivePlayer() Player {
	return m.turn.Active
}

// MoveCount returns the number of accepted moves so far.
func (m *Match) MoveCount() int {
	return m.turn.MoveCount
}

// Visible returns a copy of player's current visibility set. Renderers draw
// fog over every square outside it.
func (m *Match) Visible(player Player) SquareSet {
	return m.visible[player].Clone()
}

// LegalTargets returns the destinations the active player could legally
// move the piece on from to this turn. Empty when from holds nothing of
// theirs.
func (m *Match) LegalTargets(from Square) SquareSet {
	set := make(SquareSet)
	reach, err := Moves(m.board, from)
	if err != nil {
		return set
	}
	for sq := range reach {
		if Legal(m.board, m.turn, from, sq) == nil {
			set.add(sq)
		}
	}
	return set
}

// SubmitMove attempts from-to for the active player. On rejection it
// returns the sentinel reason and mutates nothing. On acceptance it applies
// the move, increments the move count, passes the turn, and recomputes both
// players' visibility: the mover's reach changed, and the moved piece may
// have revealed or blocked squares the opponent sees.
func (m *Match) SubmitMove(from, to Square) error {
	if err := Legal(m.board, m.turn, from, to); err != nil {
		return err
	}
	m.board.Move(from, to)
	m.turn.MoveCount++
	if !m.single {
		m.turn.Active = m.turn.Active.Other()
	}
	m.recompute()
	return nil
}

// Reset returns the match to the standard starting position with white to
// move and the move count at zero.
func (m *Match) Reset() {
	m.board = New()
	m.turn = TurnState{}
	m.recompute()
}

// CapturedKing reports the player whose king is gone. The core defines no
// terminal state; the shell watches this to announce the winner.
func (m *Match) CapturedKing() (Player, bool) {
	for _, p := range []Player{White, Black} {
		if _, ok := m.board.King(p); !ok {
			return p, true
		}
	}
	return White, false
}

func (m *Match) recompute() {
	m.visible = map[Player]SquareSet{
		White: Visible(m.board, White),
		Black: Visible(m.board, Black),
	}
}
