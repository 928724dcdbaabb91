package board

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sortPositions orders squares a1, b1, ..., h8 so attack sets can be compared
// without depending on ray order.
func sortPositions(ps []Position) []Position {
	out := append([]Position(nil), ps...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].File < out[j].File
	})
	return out
}

func TestRookAttacksOpenBoard(t *testing.T) {
	b := NewBoard()
	origin := Position{3, 3}
	b.Place(origin, NewPiece(Rook, White))

	got := b.CalculateRookAttacks(origin, false)
	if len(got) != 14 {
		t.Fatalf("got %d attacked squares, want 14: %v", len(got), got)
	}

	var want []Position
	for i := 0; i < 8; i++ {
		if i != 3 {
			want = append(want, Position{3, i}, Position{i, 3})
		}
	}
	if diff := cmp.Diff(sortPositions(want), sortPositions(got)); diff != "" {
		t.Errorf("rook attacks mismatch (-want +got):\n%s", diff)
	}
}

func TestRookAttacksTruncatedByEnemy(t *testing.T) {
	b := NewBoard()
	origin := Position{3, 3}
	b.Place(origin, NewPiece(Rook, White))
	b.Place(Position{3, 6}, NewPiece(Knight, Black))

	got := b.CalculateRookAttacks(origin, false)
	if len(got) != 13 {
		t.Errorf("got %d attacked squares, want 13", len(got))
	}

	seen := map[Position]bool{}
	for _, sq := range got {
		seen[sq] = true
	}
	if !seen[Position{3, 6}] {
		t.Error("enemy blocker (3,6) should be attacked")
	}
	if seen[Position{3, 7}] {
		t.Error("(3,7) behind the blocker should not be attacked")
	}
}

func TestRookAttacksStopAtFriend(t *testing.T) {
	b := NewBoard()
	origin := Position{0, 0}
	b.Place(origin, NewPiece(Rook, White))
	b.Place(Position{0, 2}, NewPiece(Pawn, White))
	b.Place(Position{3, 0}, NewPiece(Pawn, Black))

	want := []Position{{0, 1}, {1, 0}, {2, 0}, {3, 0}}
	got := b.CalculateRookAttacks(origin, false)
	if diff := cmp.Diff(sortPositions(want), sortPositions(got)); diff != "" {
		t.Errorf("rook attacks mismatch (-want +got):\n%s", diff)
	}

	occupied := b.CalculateRookAttacks(origin, true)
	if diff := cmp.Diff([]Position{{3, 0}}, occupied); diff != "" {
		t.Errorf("ignoreEmpty attacks mismatch (-want +got):\n%s", diff)
	}
}

func TestBishopAttacks(t *testing.T) {
	b := NewBoard()
	origin := Position{2, 0} // c1
	b.Place(origin, NewPiece(Bishop, Black))
	b.Place(Position{4, 2}, NewPiece(Pawn, White)) // e3

	want := []Position{{1, 1}, {0, 2}, {3, 1}, {4, 2}}
	got := b.CalculateBishopAttacks(origin, false)
	if diff := cmp.Diff(sortPositions(want), sortPositions(got)); diff != "" {
		t.Errorf("bishop attacks mismatch (-want +got):\n%s", diff)
	}
}

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		name   string
		origin Position
		count  int
	}{
		{"corner", Position{0, 0}, 2},
		{"edge", Position{0, 3}, 4},
		{"center", Position{3, 3}, 8},
		{"near corner", Position{1, 1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.Place(tt.origin, NewPiece(Knight, White))
			got := b.CalculateKnightAttacks(tt.origin, false)
			if len(got) != tt.count {
				t.Errorf("got %d squares, want %d: %v", len(got), tt.count, got)
			}
			for _, sq := range got {
				if !sq.InBounds() {
					t.Errorf("off-board square %v", sq)
				}
			}
		})
	}
}

func TestPawnAttacksFollowColor(t *testing.T) {
	b := NewBoard()
	white := Position{4, 3}
	black := Position{1, 5}
	b.Place(white, NewPiece(Pawn, White))
	b.Place(black, NewPiece(Pawn, Black))

	if diff := cmp.Diff([]Position{{3, 4}, {5, 4}}, b.CalculatePawnAttacks(white, false)); diff != "" {
		t.Errorf("white pawn attacks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Position{{0, 4}, {2, 4}}, b.CalculatePawnAttacks(black, false)); diff != "" {
		t.Errorf("black pawn attacks mismatch (-want +got):\n%s", diff)
	}

	edge := Position{0, 1}
	b.Place(edge, NewPiece(Pawn, White))
	if got := b.CalculatePawnAttacks(edge, false); len(got) != 1 {
		t.Errorf("edge pawn attacks = %v, want one square", got)
	}
}

func TestQueenAttacksAreRookPlusBishop(t *testing.T) {
	b := newTestBoard(t, "r3k2r/8/8/3q4/8/2N2B2/8/R3K2R w KQkq - 0 1")
	origin := Position{3, 4} // d5

	want := append(b.CalculateRookAttacks(origin, false), b.CalculateBishopAttacks(origin, false)...)
	got := b.CalculateQueenAttacks(origin, false)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("queen attacks mismatch (-want +got):\n%s", diff)
	}
}

func TestKingAttacksUnsupported(t *testing.T) {
	b := newTestBoard(t, StartNotation)
	got, err := b.CalculateKingAttacks(Position{4, 0}, false)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
	if len(got) != 0 {
		t.Errorf("got squares %v", got)
	}
}
