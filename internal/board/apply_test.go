package board

import (
	"errors"
	"testing"
)

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		move     Move
		want     Piece
		delta    int
		err      error
	}{
		{
			name:     "normal",
			notation: StartNotation,
			move:     NewMove(Position{6, 0}, Position{5, 2}, Normal),
			want:     NewPiece(Knight, White),
		},
		{
			name:     "capture",
			notation: "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1",
			move:     NewMove(Position{3, 0}, Position{3, 4}, Capture),
			want:     NewPiece(Rook, White),
			delta:    -1,
		},
		{
			name:     "promotion",
			notation: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:     NewMove(Position{0, 6}, Position{0, 7}, Promotion),
			want:     NewPiece(Queen, White),
		},
		{
			name:     "no legality check",
			notation: "1r2k3/8/8/8/8/8/8/4K3 b - - 0 1",
			move:     NewMove(Position{1, 7}, Position{0, 0}, Normal),
			want:     NewPiece(Rook, Black),
		},
		{
			name:     "black promotion capture",
			notation: "4k3/8/8/8/8/8/p7/1N2K3 b - - 0 1",
			move:     NewMove(Position{0, 1}, Position{1, 0}, PromotionCapture),
			want:     NewPiece(Queen, Black),
			delta:    -1,
		},
		{
			name:     "castle moves the king only",
			notation: "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			move:     NewMove(Position{4, 0}, Position{6, 0}, Castle),
			want:     NewPiece(King, White),
			err:      ErrUnsupported,
		},
		{
			name:     "en passant leaves the pawn",
			notation: "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move:     NewMove(Position{4, 4}, Position{3, 5}, EnPassant),
			want:     NewPiece(Pawn, White),
			err:      ErrUnsupported,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, tt.notation)
			before := b.Len()
			side := b.SideToMove()

			err := b.MakeMove(tt.move)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}

			if _, ok := b.PieceAt(tt.move.From); ok {
				t.Error("origin square still occupied")
			}
			if got, _ := b.PieceAt(tt.move.To); got != tt.want {
				t.Errorf("destination holds %v, want %v", got, tt.want)
			}
			if got := b.Len() - before; got != tt.delta {
				t.Errorf("piece count changed by %d, want %d", got, tt.delta)
			}
			if b.SideToMove() != side {
				t.Error("MakeMove switched sides")
			}
		})
	}
}

func TestMakeMoveEmptySquare(t *testing.T) {
	b := newTestBoard(t, StartNotation)
	before := b.Notation()

	err := b.MakeMove(NewMove(Position{4, 3}, Position{4, 4}, Normal))
	if !errors.Is(err, ErrEmptySquare) {
		t.Errorf("err = %v, want ErrEmptySquare", err)
	}
	if b.Notation() != before {
		t.Error("board changed after a failed move")
	}
}

func TestMakeMoveUnknownKind(t *testing.T) {
	b := newTestBoard(t, StartNotation)
	before := b.Notation()

	if err := b.MakeMove(NewMove(Position{6, 0}, Position{5, 2}, MoveKind(42))); err == nil {
		t.Error("expected error for unknown kind")
	}
	if b.Notation() != before {
		t.Error("board changed after a failed move")
	}
}

func TestMakeMoveDoesNotUpdateCheck(t *testing.T) {
	b := newTestBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err := b.MakeMove(NewMove(Position{0, 0}, Position{0, 7}, Normal)); err != nil {
		t.Fatal(err)
	}
	b.SwitchSides()
	if b.InCheck() {
		t.Fatal("check state changed before UpdateCheckState")
	}
	b.UpdateCheckState()
	if !b.InCheck() {
		t.Error("expected Black in check after Ra8")
	}
}
