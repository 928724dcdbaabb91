package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CalculateLegalMoves returns the legal moves for piece standing on pos.
// A piece that does not belong to the side to move has no moves.
// Pawns and kings return ErrUnsupported.
func (b *Board) CalculateLegalMoves(pos Position, piece Piece) ([]Move, error) {
	if piece.Color != b.sideToMove {
		return nil, nil
	}

	switch piece.Type {
	case Rook:
		return b.CalculateRookMoves(pos), nil
	case Bishop:
		return b.CalculateBishopMoves(pos), nil
	case Knight:
		return b.CalculateKnightMoves(pos), nil
	case Queen:
		return b.CalculateQueenMoves(pos), nil
	case Pawn:
		return b.CalculatePawnMoves(pos)
	case King:
		return b.CalculateKingMoves(pos)
	default:
		return nil, fmt.Errorf("no moves for piece type %v", piece.Type)
	}
}

// CalculateRookMoves returns the legal rook moves from origin.
func (b *Board) CalculateRookMoves(origin Position) []Move {
	return b.filterMoves(origin, b.CalculateRookAttacks(origin, false))
}

// CalculateBishopMoves returns the legal bishop moves from origin.
func (b *Board) CalculateBishopMoves(origin Position) []Move {
	return b.filterMoves(origin, b.CalculateBishopAttacks(origin, false))
}

// CalculateKnightMoves returns the legal knight moves from origin.
func (b *Board) CalculateKnightMoves(origin Position) []Move {
	return b.filterMoves(origin, b.CalculateKnightAttacks(origin, false))
}

// CalculateQueenMoves returns the legal queen moves from origin.
func (b *Board) CalculateQueenMoves(origin Position) []Move {
	return b.filterMoves(origin, b.CalculateQueenAttacks(origin, false))
}

// CalculatePawnMoves is not implemented: pushes, double pushes, en passant
// and promotion are all missing.
func (b *Board) CalculatePawnMoves(origin Position) ([]Move, error) {
	return nil, ErrUnsupported
}

// CalculateKingMoves is not implemented, which also means castling is never
// generated.
func (b *Board) CalculateKingMoves(origin Position) ([]Move, error) {
	return nil, ErrUnsupported
}

// filterMoves turns attacked squares into moves, keeping only those that
// resolve a check and respect a pin.
func (b *Board) filterMoves(origin Position, targets []Position) []Move {
	if b.check.InCheck {
		if len(b.check.Threats) > 1 {
			// Only the king can answer a double check.
			return nil
		}
		threat := b.check.Threats[0]
		var resolving []Position
		for _, sq := range targets {
			if sq == threat || slices.Contains(b.check.BlockingSquares, sq) {
				resolving = append(resolving, sq)
			}
		}
		targets = resolving
	}

	if free, pinned := b.CheckForPins(origin); pinned {
		var onLine []Position
		for _, sq := range targets {
			if slices.Contains(free, sq) {
				onLine = append(onLine, sq)
			}
		}
		targets = onLine
	}

	moves := make([]Move, 0, len(targets))
	for _, sq := range targets {
		kind := Normal
		if _, occupied := b.squares[sq]; occupied {
			kind = Capture
		}
		moves = append(moves, NewMove(origin, sq, kind))
	}
	return moves
}
