// Package game drives a board through the select-then-drop interaction the
// window uses: pick up a piece, see its legal moves, drop it on a target.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hailam/chessboard/internal/board"
)

var (
	// ErrNotYourTurn is returned when selecting an empty square or a piece
	// of the side not to move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrIllegalMove is returned when dropping on a square that is not a
	// legal target of the selected piece.
	ErrIllegalMove = errors.New("illegal move")
)

// Store receives the position and move counters after every move.
// *storage.Storage satisfies it.
type Store interface {
	SavePosition(notation string) error
	RecordMove(capture, check bool) error
}

// Session owns the board for one game.
type Session struct {
	board *board.Board
	store Store

	selected board.Position
	moves    []board.Move

	history []board.Move
}

// NewSession loads notation into a fresh board. store may be nil.
func NewSession(notation string, store Store) *Session {
	s := &Session{
		board: board.NewBoard(),
		store: store,
	}
	s.Reset(notation)
	return s
}

// Reset loads a new position and forgets the selection and history.
func (s *Session) Reset(notation string) {
	s.board.SetState(notation)
	s.board.UpdateCheckState()
	s.history = nil
	s.Clear()
}

// Board returns the board. Callers must not mutate it.
func (s *Session) Board() *board.Board {
	return s.board
}

// Selected returns the selected square, or NoPosition.
func (s *Session) Selected() board.Position {
	return s.selected
}

// LegalMoves returns the legal moves of the selected piece.
func (s *Session) LegalMoves() []board.Move {
	return s.moves
}

// LastMove returns the most recent move and false if none was played.
func (s *Session) LastMove() (board.Move, bool) {
	if len(s.history) == 0 {
		return board.Move{}, false
	}
	return s.history[len(s.history)-1], true
}

// History returns the moves played since the last Reset.
func (s *Session) History() []board.Move {
	return append([]board.Move(nil), s.history...)
}

// Clear drops the current selection.
func (s *Session) Clear() {
	s.selected = board.NoPosition
	s.moves = nil
}

// Select picks up the piece on pos and computes its legal moves. For piece
// types without move generation the piece stays selected with no moves and
// the error wraps board.ErrUnsupported.
func (s *Session) Select(pos board.Position) error {
	s.Clear()

	piece, ok := s.board.PieceAt(pos)
	if !ok || piece.Color != s.board.SideToMove() {
		return fmt.Errorf("select %v: %w", pos, ErrNotYourTurn)
	}

	s.selected = pos
	moves, err := s.board.CalculateLegalMoves(pos, piece)
	s.moves = moves
	if err != nil {
		return fmt.Errorf("select %v %v: %w", piece.Type, pos, err)
	}
	return nil
}

// Drop plays the selected piece to pos. On success the turn passes and the
// check state is recomputed. The selection is cleared either way.
//
// A move the board can only apply partially is kept and returned together
// with an error wrapping board.ErrUnsupported.
func (s *Session) Drop(pos board.Position) (board.Move, error) {
	defer s.Clear()

	if s.selected == board.NoPosition {
		return board.Move{}, fmt.Errorf("drop on %v: nothing selected: %w", pos, ErrIllegalMove)
	}

	var move board.Move
	found := false
	for _, m := range s.moves {
		if m.To == pos {
			move, found = m, true
			break
		}
	}
	if !found {
		return board.Move{}, fmt.Errorf("drop %v on %v: %w", s.selected, pos, ErrIllegalMove)
	}

	moveErr := s.board.MakeMove(move)
	if moveErr != nil && !errors.Is(moveErr, board.ErrUnsupported) {
		return board.Move{}, moveErr
	}
	if moveErr != nil {
		log.Printf("Warning: partial move %v: %v", move, moveErr)
	}

	s.board.SwitchSides()
	s.board.UpdateCheckState()
	s.history = append(s.history, move)
	log.Printf("[MOVE] %v %s", move, s.Status())

	s.persist(move)
	return move, moveErr
}

// persist writes the new position and counters to the store.
func (s *Session) persist(move board.Move) {
	if s.store == nil {
		return
	}
	if err := s.store.SavePosition(s.board.Notation()); err != nil {
		log.Printf("Warning: failed to save position: %v", err)
	}
	if err := s.store.RecordMove(move.IsCapture(), s.board.InCheck()); err != nil {
		log.Printf("Warning: failed to record move: %v", err)
	}
}

// Status describes whose turn it is, e.g. "Black to move - check".
func (s *Session) Status() string {
	status := s.board.SideToMove().String() + " to move"
	if s.board.InCheck() {
		status += " - check"
	}
	return status
}
