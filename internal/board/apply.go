package board

import "fmt"

// MakeMove applies m to the board without checking legality. It neither
// switches sides nor recomputes the check state; callers follow it with
// SwitchSides and UpdateCheckState.
//
// Castle moves relocate only the king and en passant moves do not remove
// the captured pawn. Both are applied that way and then reported with
// ErrUnsupported so the gap is visible.
func (b *Board) MakeMove(m Move) error {
	piece, ok := b.squares[m.From]
	if !ok {
		return fmt.Errorf("make move %v: %w", m, ErrEmptySquare)
	}

	switch m.Kind {
	case Normal, Capture:
		b.relocate(m.From, m.To, piece)
	case Castle:
		b.relocate(m.From, m.To, piece)
		return fmt.Errorf("castle %v: rook not moved: %w", m, ErrUnsupported)
	case EnPassant:
		b.relocate(m.From, m.To, piece)
		return fmt.Errorf("en passant %v: captured pawn not removed: %w", m, ErrUnsupported)
	case Promotion, PromotionCapture:
		delete(b.squares, m.From)
		b.squares[m.To] = NewPiece(Queen, piece.Color)
	default:
		return fmt.Errorf("make move %v: unknown move kind %d", m, m.Kind)
	}
	return nil
}

// relocate moves piece from one square to another, replacing any occupant.
func (b *Board) relocate(from, to Position, piece Piece) {
	delete(b.squares, from)
	b.squares[to] = piece
}
