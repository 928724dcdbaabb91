// Package board implements the chess board state and the rules that
// operate on it: notation parsing, attack and move generation, check and
// pin detection, and move application.
package board

import "fmt"

// Position is a board coordinate. File 0 is the a-file and rank 0 is the
// first rank, so a1 = {0, 0} and h8 = {7, 7}.
type Position struct {
	File int
	Rank int
}

// NoPosition is returned by lookups that found nothing.
var NoPosition = Position{File: -1, Rank: -1}

// NewPosition creates a position from a file and rank (0-indexed).
func NewPosition(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// Add returns the position translated by d.
func (p Position) Add(d Position) Position {
	return Position{File: p.File + d.File, Rank: p.Rank + d.Rank}
}

// Sub returns the vector from d to p.
func (p Position) Sub(d Position) Position {
	return Position{File: p.File - d.File, Rank: p.Rank - d.Rank}
}

// Advance translates p by dir in place and reports whether the result is
// still on the board.
func (p *Position) Advance(dir Position) bool {
	*p = p.Add(dir)
	return p.InBounds()
}

// InBounds returns true if the position is on the 8x8 board.
func (p Position) InBounds() bool {
	return p.File >= 0 && p.File <= 7 && p.Rank >= 0 && p.Rank <= 7
}

// Clamp reduces each axis to its sign, turning a delta between two
// aligned squares into the unit step that walks from one to the other.
func (p Position) Clamp() Position {
	return Position{File: sign(p.File), Rank: sign(p.Rank)}
}

// IsDiagonal reports whether a unit step moves along a diagonal.
func (p Position) IsDiagonal() bool {
	return p.File != 0 && p.Rank != 0
}

// String returns the algebraic notation for the position (e.g., "e4").
func (p Position) String() string {
	if !p.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.File, '1'+p.Rank)
}

// ParsePosition parses algebraic notation (e.g., "e4").
func ParsePosition(s string) (Position, bool) {
	if len(s) != 2 {
		return NoPosition, false
	}
	pos := Position{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !pos.InBounds() {
		return NoPosition, false
	}
	return pos, true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
