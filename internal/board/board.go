package board

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupported is returned for rules the engine does not implement yet:
	// king moves, pawn moves, castling rook co-movement and en passant
	// pawn removal.
	ErrUnsupported = errors.New("not yet supported")

	// ErrEmptySquare is returned when a move starts from an empty square.
	ErrEmptySquare = errors.New("no piece on origin square")
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the notation castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// CheckState is the derived check information for the side to move.
// It is rebuilt from scratch by UpdateCheckState.
type CheckState struct {
	InCheck bool
	// Threats holds the squares of enemy pieces attacking the king.
	Threats []Position
	// BlockingSquares holds the empty squares between the king and a
	// sliding attacker.
	BlockingSquares []Position
}

// Board holds the game state. It is not safe for concurrent mutation.
type Board struct {
	squares map[Position]Piece

	sideToMove         Color
	castling           CastlingRights
	enPassant          Position
	enPassantAvailable bool
	halfMoveClock      int
	fullMoveNumber     int

	check CheckState
}

// NewBoard creates an empty board with White to move.
func NewBoard() *Board {
	b := &Board{}
	b.clear()
	return b
}

// clear resets the board to an empty state.
func (b *Board) clear() {
	b.squares = make(map[Position]Piece)
	b.sideToMove = White
	b.castling = NoCastling
	b.enPassant = NoPosition
	b.enPassantAvailable = false
	b.halfMoveClock = 0
	b.fullMoveNumber = 1
	b.check = CheckState{}
}

// GetBoard returns the occupancy map. The map is live: it reflects later
// moves, and writes to it change the board.
func (b *Board) GetBoard() map[Position]Piece {
	return b.squares
}

// PieceAt returns the piece at pos and whether the square is occupied.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	p, ok := b.squares[pos]
	return p, ok
}

// Place puts a piece on a square, replacing any occupant.
// Off-board positions are ignored.
func (b *Board) Place(pos Position, p Piece) {
	if !pos.InBounds() || p.Type == NoPieceType {
		return
	}
	b.squares[pos] = p
}

// Remove empties a square.
func (b *Board) Remove(pos Position) {
	delete(b.squares, pos)
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// SideToMove returns the color whose turn it is.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// SetSideToMove sets the color whose turn it is.
func (b *Board) SetSideToMove(c Color) {
	b.sideToMove = c
}

// CastlingRights returns the castling rights read from the notation.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// EnPassant returns the en passant target square and whether it is set.
func (b *Board) EnPassant() (Position, bool) {
	return b.enPassant, b.enPassantAvailable
}

// HalfMoveClock returns the half-move clock read from the notation.
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the full move counter.
func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// CheckState returns a copy of the check state computed by the last
// UpdateCheckState call.
func (b *Board) CheckState() CheckState {
	return CheckState{
		InCheck:         b.check.InCheck,
		Threats:         append([]Position(nil), b.check.Threats...),
		BlockingSquares: append([]Position(nil), b.check.BlockingSquares...),
	}
}

// InCheck returns true if the side to move was in check at the last
// UpdateCheckState call.
func (b *Board) InCheck() bool {
	return b.check.InCheck
}

// SwitchSides hands the turn to the other color. The en passant target
// expires and the full move counter advances after Black's turn.
func (b *Board) SwitchSides() {
	if b.sideToMove == Black {
		b.fullMoveNumber++
	}
	b.sideToMove = b.sideToMove.Other()
	b.enPassantAvailable = false
	b.enPassant = NoPosition
}

// colorAt returns the color of the piece on pos, or the side to move for
// an empty square.
func (b *Board) colorAt(pos Position) Color {
	if p, ok := b.squares[pos]; ok {
		return p.Color
	}
	return b.sideToMove
}

// String returns a visual representation of the board.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			if p, ok := b.squares[NewPosition(file, rank)]; ok {
				sb.WriteByte(p.Char())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	sb.WriteString("Side to move: " + b.sideToMove.String() + "\n")
	sb.WriteString("Castling: " + b.castling.String() + "\n")
	sb.WriteString("En passant: " + b.enPassantString() + "\n")
	return sb.String()
}

func (b *Board) enPassantString() string {
	if !b.enPassantAvailable {
		return "-"
	}
	return b.enPassant.String()
}
