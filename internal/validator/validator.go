// Package validator is the thin composition layer described in spec.md
// §4.11: given a FEN and a UCI move, it sets up a board, applies the
// move if legal, and reports the resulting game state. It owns no
// state of its own and holds no reference to the boards it creates —
// each call is independent, matching the core's synchronous,
// no-persisted-state contract (spec.md §5, §6).
package validator

import (
	"fmt"

	"github.com/dkelso/chesscore/internal/board"
)

// Status is the outcome of validating a move.
type Status string

const (
	// StatusValid means the UCI move was legal and has been applied;
	// GameState and NewFEN are populated.
	StatusValid Status = "Valid"
	// StatusInvalid means the UCI move did not match any legal move in
	// the position; the board is left unmodified (there is none to
	// modify — Validate never returns a mutated board to the caller).
	StatusInvalid Status = "Invalid"
)

// GameState classifies the position reached after a valid move.
type GameState string

const (
	GameStateActive           GameState = "Active"
	GameStateCheckmate        GameState = "Checkmate"
	GameStateStalemate        GameState = "Stalemate"
	GameStateDraw50           GameState = "Draw50"
	GameStateDrawInsufficient GameState = "DrawInsufficient"
)

// Result is the outcome returned by Validate on success (Status ==
// StatusInvalid still returns a zero-value GameState and NewFEN, per
// spec.md's `{status: Invalid}` — no state change to report).
type Result struct {
	Status    Status
	GameState GameState
	NewFEN    string
}

// Validate sets up a board from fen, matches uci against the position's
// legal moves, applies it, and classifies the resulting state.
//
// A malformed fen is a SystemError, distinct from an Invalid move
// (spec.md §7): the caller is expected to treat the error return as a
// 400-equivalent at the HTTP boundary this package composes under, and
// treat a StatusInvalid Result as an ordinary rejection with no error.
func Validate(fen, uci string) (Result, error) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return Result{}, fmt.Errorf("validator: SystemError: %w", err)
	}

	m, err := board.ParseUCIMove(uci, b)
	if err != nil {
		return Result{Status: StatusInvalid}, nil
	}

	b.Make(m)

	return Result{
		Status:    StatusValid,
		GameState: classify(b),
		NewFEN:    b.ToFEN(),
	}, nil
}

// classify determines the game state of b using the ordered checks
// spec.md §4.11 specifies: terminal conditions before draws-by-rule,
// then draws-by-rule, then Active.
func classify(b *board.Board) GameState {
	switch {
	case b.IsCheckmate():
		return GameStateCheckmate
	case b.IsStalemate():
		return GameStateStalemate
	case b.HalfMoveClock >= 100:
		return GameStateDraw50
	case b.InsufficientMaterial():
		return GameStateDrawInsufficient
	default:
		return GameStateActive
	}
}
