package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// forward is the rank direction pawns of this color advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceType is a bit set of piece kinds. Single kinds are one bit each so
// that several kinds can be tested at once, e.g. Rook|Queen.
type PieceType uint8

const (
	Pawn PieceType = 1 << iota
	Rook
	Knight
	Bishop
	King
	Queen
)

// NoPieceType is the zero value; it never appears on the board.
const NoPieceType PieceType = 0

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case King:
		return "King"
	case Queen:
		return "Queen"
	default:
		return "None"
	}
}

// Char returns the notation character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	switch pt {
	case Pawn:
		return 'p'
	case Rook:
		return 'r'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case King:
		return 'k'
	case Queen:
		return 'q'
	default:
		return ' '
	}
}

// Piece is a colored piece. It carries no position: the board map key is
// where it stands.
type Piece struct {
	Type  PieceType
	Color Color
}

// NoPiece is the zero Piece.
var NoPiece = Piece{}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece{Type: pt, Color: c}
}

// Is reports whether the piece's type is in mask.
func (p Piece) Is(mask PieceType) bool {
	return p.Type&mask != 0
}

// IsA reports whether the piece has color c and a type in mask.
func (p Piece) IsA(c Color, mask PieceType) bool {
	return p.Color == c && p.Is(mask)
}

// Char returns the notation character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) Char() byte {
	ch := p.Type.Char()
	if p.Color == White && ch != ' ' {
		ch -= 'a' - 'A'
	}
	return ch
}

// String returns the notation character for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a notation character to a Piece.
func PieceFromChar(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 'a' - 'A'
	}

	var pt PieceType
	switch c {
	case 'P':
		pt = Pawn
	case 'R':
		pt = Rook
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'K':
		pt = King
	case 'Q':
		pt = Queen
	default:
		return NoPiece, false
	}
	return NewPiece(pt, color), true
}
