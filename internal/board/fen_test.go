package board

import "testing"

// newTestBoard loads notation and computes the check state.
func newTestBoard(t *testing.T, notation string) *Board {
	t.Helper()
	b := NewBoard()
	b.SetState(notation)
	b.UpdateCheckState()
	return b
}

func TestStartPosition(t *testing.T) {
	b := NewBoard()
	b.Reset()

	if b.Len() != 32 {
		t.Fatalf("start position has %d pieces, want 32", b.Len())
	}

	counts := map[Color]int{}
	for _, p := range b.GetBoard() {
		counts[p.Color]++
	}
	if counts[White] != 16 || counts[Black] != 16 {
		t.Errorf("piece counts by color = %v, want 16 each", counts)
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, pt := range backRank {
		checks := []struct {
			pos   Position
			piece Piece
		}{
			{Position{file, 0}, NewPiece(pt, White)},
			{Position{file, 1}, NewPiece(Pawn, White)},
			{Position{file, 6}, NewPiece(Pawn, Black)},
			{Position{file, 7}, NewPiece(pt, Black)},
		}
		for _, c := range checks {
			got, ok := b.PieceAt(c.pos)
			if !ok || got != c.piece {
				t.Errorf("%v: got %v (occupied=%v), want %v", c.pos, got, ok, c.piece)
			}
		}
	}

	if b.SideToMove() != White {
		t.Error("expected White to move")
	}
	if b.CastlingRights() != AllCastling {
		t.Errorf("castling = %v, want KQkq", b.CastlingRights())
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("en passant should be unavailable")
	}
}

func TestNotationRoundTrip(t *testing.T) {
	tests := []string{
		StartNotation,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w Kq d6 0 3",
		"4k3/8/8/8/8/8/8/4K3 w - - 12 40",
	}
	for _, notation := range tests {
		t.Run(notation, func(t *testing.T) {
			b := NewBoard()
			b.SetState(notation)
			if got := b.Notation(); got != notation {
				t.Errorf("Notation() = %q, want %q", got, notation)
			}
		})
	}
}

func TestSetStateFields(t *testing.T) {
	b := NewBoard()
	b.SetState("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR b Kq d6 0 3")

	if b.SideToMove() != Black {
		t.Error("expected Black to move")
	}
	cr := b.CastlingRights()
	if !cr.CanCastle(White, true) || cr.CanCastle(White, false) ||
		cr.CanCastle(Black, true) || !cr.CanCastle(Black, false) {
		t.Errorf("castling = %v, want Kq", cr)
	}
	ep, ok := b.EnPassant()
	if !ok || ep != (Position{3, 5}) {
		t.Errorf("en passant = %v, %v; want d6", ep, ok)
	}
	if b.FullMoveNumber() != 3 {
		t.Errorf("full move number = %d, want 3", b.FullMoveNumber())
	}
}

func TestSetStateWipesBoard(t *testing.T) {
	b := NewBoard()
	b.Reset()
	b.SetState("8/8/8/8/8/8/8/4K3 w - - 0 1")

	if b.Len() != 1 {
		t.Fatalf("board has %d pieces after reload, want 1", b.Len())
	}
	if b.CastlingRights() != NoCastling {
		t.Errorf("castling rights survived reload: %v", b.CastlingRights())
	}
}

func TestSetStateLenient(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		pieces   int
		side     Color
	}{
		{"unknown letters skipped", "4kx3/8/8/8/8/8/8/4K3 w - - 0 1", 2, White},
		{"placement only", "4k3/8/8/8/8/8/8/4K3", 2, White},
		{"too many files", "rnbqkbnrr/8/8/8/8/8/8/4K3 b", 9, Black},
		{"too many ranks", "k7/8/8/8/8/8/8/8/K7 w", 1, White},
		{"empty", "", 0, White},
		{"garbage fields", "4k3/8/8/8/8/8/8/4K3 x ZZ j9 a b", 2, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.SetState(tt.notation)
			if b.Len() != tt.pieces {
				t.Errorf("got %d pieces, want %d", b.Len(), tt.pieces)
			}
			if b.SideToMove() != tt.side {
				t.Errorf("side to move = %v, want %v", b.SideToMove(), tt.side)
			}
			for pos := range b.GetBoard() {
				if !pos.InBounds() {
					t.Errorf("piece placed off board at %v", pos)
				}
			}
		})
	}
}

func TestSwitchSides(t *testing.T) {
	b := NewBoard()
	b.SetState("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")

	b.SwitchSides()
	if b.SideToMove() != Black {
		t.Error("expected Black after switch")
	}
	if _, ok := b.EnPassant(); ok {
		t.Error("en passant should expire after a switch")
	}
	if b.FullMoveNumber() != 3 {
		t.Errorf("full move number advanced after White: %d", b.FullMoveNumber())
	}

	b.SwitchSides()
	if b.FullMoveNumber() != 4 {
		t.Errorf("full move number = %d after Black, want 4", b.FullMoveNumber())
	}
}
