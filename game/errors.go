package game

import "errors"

// Sentinel errors returned by the move pipeline. All are non-fatal: a
// rejected move leaves the board and turn state untouched and the caller
// simply prompts again. Check them with errors.Is.
var (
	// ErrOutOfBounds indicates a coordinate off the 8x8 board. The input
	// layer is expected to clamp clicks before calling in; surfacing the
	// condition instead of clamping keeps its bugs visible.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrEmptySquare indicates a move or generation request from a square
	// with no piece on it.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrNotYourPiece indicates a move of a piece the active player does
	// not own.
	ErrNotYourPiece = errors.New("piece belongs to the other player")

	// ErrIllegalDestination indicates a destination the piece cannot reach,
	// including squares cut off by an obstruction.
	ErrIllegalDestination = errors.New("piece cannot reach destination")

	// ErrFriendlyOccupied indicates a destination held by a piece of the
	// same player.
	ErrFriendlyOccupied = errors.New("destination occupied by own piece")
)
