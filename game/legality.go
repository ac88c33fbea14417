package game

// Legal decides whether the active player may move the piece on from to to.
// A nil return means the move is allowed; otherwise the error is one of the
// package sentinels naming the first rule the move broke. Moves that leave
// the mover's own king capturable are allowed: losing the king is the win
// condition here, not check.
func Legal(b Board, turn TurnState, from, to Square) error {
	if !from.Valid() || !to.Valid() {
		return ErrOutOfBounds
	}
	p, ok := b.At(from)
	if !ok {
		return ErrEmptySquare
	}
	if p.Player != turn.Active {
		return ErrNotYourPiece
	}
	reach, err := Moves(b, from)
	if err != nil {
		return err
	}
	if !reach.Contains(to) {
		return ErrIllegalDestination
	}
	if dst, ok := b.At(to); ok && dst.Player == p.Player {
		return ErrFriendlyOccupied
	}
	return nil
}
