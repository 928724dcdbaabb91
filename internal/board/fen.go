package board

import (
	"strconv"
	"strings"
)

// StartNotation is the notation string for the starting position.
const StartNotation = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Reset loads the starting position.
func (b *Board) Reset() {
	b.SetState(StartNotation)
}

// SetState wipes the board and loads the position described by notation.
//
// The parser is lenient: characters it does not recognize are skipped and
// fields it cannot read keep their defaults. Callers that need validation
// must do it themselves.
func (b *Board) SetState(notation string) {
	b.clear()

	cursor := NewPosition(0, 7)
	i := 0
	for ; i < len(notation); i++ {
		c := notation[i]
		if c == ' ' {
			break // end of piece placement
		}
		switch {
		case c >= '1' && c <= '8':
			cursor.File += int(c - '0')
		case c == '/':
			cursor = NewPosition(0, cursor.Rank-1)
		default:
			p, ok := PieceFromChar(c)
			if !ok {
				continue
			}
			if cursor.InBounds() {
				b.squares[cursor] = p
			}
			cursor.File++
		}
	}

	b.parseFields(strings.Fields(notation[i:]))
}

// parseFields reads side to move, castling rights, en passant target and
// the two move counters, in that order.
func (b *Board) parseFields(fields []string) {
	if len(fields) > 0 && fields[0] == "b" {
		b.sideToMove = Black
	}

	if len(fields) > 1 {
		for _, c := range fields[1] {
			switch c {
			case 'K':
				b.castling |= WhiteKingSideCastle
			case 'Q':
				b.castling |= WhiteQueenSideCastle
			case 'k':
				b.castling |= BlackKingSideCastle
			case 'q':
				b.castling |= BlackQueenSideCastle
			}
		}
	}

	if len(fields) > 2 {
		if sq, ok := ParsePosition(fields[2]); ok {
			b.enPassant = sq
			b.enPassantAvailable = true
		}
	}

	if len(fields) > 3 {
		if n, err := strconv.Atoi(fields[3]); err == nil && n >= 0 {
			b.halfMoveClock = n
		}
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n > 0 {
			b.fullMoveNumber = n
		}
	}
}

// Notation returns the notation string for the current position.
func (b *Board) Notation() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p, ok := b.squares[NewPosition(file, rank)]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantString())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMoveNumber))

	return sb.String()
}
