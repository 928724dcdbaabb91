package board

// Direction sets for attack generation. Each entry is a unit step for
// sliding pieces or a full offset for stepping pieces.
var (
	orthogonalDirs = []Position{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalDirs   = []Position{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	knightOffsets  = []Position{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// CalculatePawnAttacks returns the two diagonal capture squares in front of
// origin. The forward direction comes from the color of the pawn on origin.
func (b *Board) CalculatePawnAttacks(origin Position, ignoreEmpty bool) []Position {
	us := b.colorAt(origin)
	fwd := us.forward()
	return b.stepAttacks(origin, us, []Position{{-1, fwd}, {1, fwd}}, ignoreEmpty)
}

// CalculateRookAttacks returns the squares a rook on origin attacks.
func (b *Board) CalculateRookAttacks(origin Position, ignoreEmpty bool) []Position {
	return b.slidingAttacks(origin, b.colorAt(origin), orthogonalDirs, ignoreEmpty)
}

// CalculateBishopAttacks returns the squares a bishop on origin attacks.
func (b *Board) CalculateBishopAttacks(origin Position, ignoreEmpty bool) []Position {
	return b.slidingAttacks(origin, b.colorAt(origin), diagonalDirs, ignoreEmpty)
}

// CalculateKnightAttacks returns the squares a knight on origin attacks.
func (b *Board) CalculateKnightAttacks(origin Position, ignoreEmpty bool) []Position {
	return b.stepAttacks(origin, b.colorAt(origin), knightOffsets, ignoreEmpty)
}

// CalculateQueenAttacks returns the rook attacks followed by the bishop
// attacks from origin.
func (b *Board) CalculateQueenAttacks(origin Position, ignoreEmpty bool) []Position {
	attacks := b.CalculateRookAttacks(origin, ignoreEmpty)
	return append(attacks, b.CalculateBishopAttacks(origin, ignoreEmpty)...)
}

// CalculateKingAttacks is not implemented.
func (b *Board) CalculateKingAttacks(origin Position, ignoreEmpty bool) ([]Position, error) {
	return nil, ErrUnsupported
}

// slidingAttacks walks each direction until the edge or the first occupied
// square. The blocker is included only when it is an enemy piece.
func (b *Board) slidingAttacks(origin Position, us Color, dirs []Position, ignoreEmpty bool) []Position {
	var attacks []Position
	for _, dir := range dirs {
		sq := origin
		for sq.Advance(dir) {
			p, occupied := b.squares[sq]
			if !occupied {
				if !ignoreEmpty {
					attacks = append(attacks, sq)
				}
				continue
			}
			if p.Color != us {
				attacks = append(attacks, sq)
			}
			break
		}
	}
	return attacks
}

// stepAttacks checks each offset from origin once.
func (b *Board) stepAttacks(origin Position, us Color, offsets []Position, ignoreEmpty bool) []Position {
	var attacks []Position
	for _, off := range offsets {
		sq := origin.Add(off)
		if !sq.InBounds() {
			continue
		}
		p, occupied := b.squares[sq]
		switch {
		case !occupied:
			if !ignoreEmpty {
				attacks = append(attacks, sq)
			}
		case p.Color != us:
			attacks = append(attacks, sq)
		}
	}
	return attacks
}
