package board

// GetKingPosition returns the square of the king of color c, or NoPosition
// if that side has no king.
func (b *Board) GetKingPosition(c Color) Position {
	for pos, p := range b.squares {
		if p.IsA(c, King) {
			return pos
		}
	}
	return NoPosition
}

// GetSquaresBetween returns the squares strictly between start and end.
// The two squares must share a rank, file or diagonal; for other pairs the
// walk stops at the board edge.
func (b *Board) GetSquaresBetween(start, end Position) []Position {
	dir := end.Sub(start).Clamp()
	if dir == (Position{}) {
		return nil
	}
	var between []Position
	sq := start
	for sq.Advance(dir) && sq != end {
		between = append(between, sq)
	}
	return between
}

// UpdateCheckState recomputes the check state for the side to move. It must
// be called after SetState and after every MakeMove.
func (b *Board) UpdateCheckState() {
	b.check = CheckState{}

	us := b.sideToMove
	king := b.GetKingPosition(us)
	if king == NoPosition {
		return
	}
	them := us.Other()

	// Attacks are generated from the king's square with our own color, so
	// only enemy pieces are reported.
	probes := []struct {
		attacks []Position
		mask    PieceType
		sliding bool
	}{
		{b.stepAttacks(king, us, []Position{{-1, us.forward()}, {1, us.forward()}}, true), Pawn, false},
		{b.slidingAttacks(king, us, orthogonalDirs, true), Rook | Queen, true},
		{b.slidingAttacks(king, us, diagonalDirs, true), Bishop | Queen, true},
		{b.stepAttacks(king, us, knightOffsets, true), Knight, false},
	}

	for _, probe := range probes {
		for _, sq := range probe.attacks {
			if !b.squares[sq].IsA(them, probe.mask) {
				continue
			}
			b.check.InCheck = true
			b.check.Threats = append(b.check.Threats, sq)
			if probe.sliding {
				b.check.BlockingSquares = append(b.check.BlockingSquares, b.GetSquaresBetween(king, sq)...)
			}
		}
	}
}

// CheckForPins reports whether the piece on candidate is pinned to its own
// king. When pinned, free holds the empty squares on the pin line, which
// are the only squares the piece may move to.
//
// The line orientation is matched against the attacker only: a bishop on a
// file with an enemy rook behind it is reported as pinned.
func (b *Board) CheckForPins(candidate Position) (free []Position, pinned bool) {
	us := b.colorAt(candidate)
	king := b.GetKingPosition(us)
	if king == NoPosition || king == candidate {
		return nil, false
	}

	dir := candidate.Sub(king).Clamp()
	attackerMask := Rook | Queen
	if dir.IsDiagonal() {
		attackerMask = Bishop | Queen
	}

	passed := false
	sq := king
	for sq.Advance(dir) {
		if sq == candidate {
			passed = true
			continue
		}
		p, occupied := b.squares[sq]
		if !occupied {
			free = append(free, sq)
			continue
		}
		if !passed {
			return nil, false
		}
		if p.IsA(us.Other(), attackerMask) {
			return free, true
		}
		return nil, false
	}
	return nil, false
}
