package diagram

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/hailam/chessboard/internal/board"
)

// wellFormed decodes the whole document and counts elements by name.
func wellFormed(t *testing.T, data []byte) map[string]int {
	t.Helper()
	counts := map[string]int{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return counts
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v\n%s", err, data)
		}
		if se, ok := tok.(xml.StartElement); ok {
			counts[se.Name.Local]++
		}
	}
}

func TestWritePiece(t *testing.T) {
	types := []board.PieceType{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King}
	for _, pt := range types {
		for _, c := range []board.Color{board.White, board.Black} {
			p := board.NewPiece(pt, c)
			t.Run(p.String(), func(t *testing.T) {
				var buf bytes.Buffer
				if err := WritePiece(&buf, p, 80); err != nil {
					t.Fatal(err)
				}
				counts := wellFormed(t, buf.Bytes())
				if counts["svg"] != 1 {
					t.Errorf("got %d svg elements", counts["svg"])
				}
				if counts["text"] != 0 {
					t.Error("glyphs must not use text")
				}
				if !strings.Contains(buf.String(), `viewBox="0 0 100 100"`) {
					t.Error("missing viewBox")
				}
				fill := whiteFill
				if c == board.Black {
					fill = blackFill
				}
				if !strings.Contains(buf.String(), "fill:"+fill) {
					t.Errorf("missing %s fill", fill)
				}
			})
		}
	}
}

func TestWritePieceRejectsEmpty(t *testing.T) {
	if err := WritePiece(io.Discard, board.NoPiece, 80); err == nil {
		t.Error("expected error for empty piece")
	}
	if err := WritePiece(io.Discard, board.NewPiece(board.Pawn, board.White), 0); err == nil {
		t.Error("expected error for zero size")
	}
}

func TestWriteBoard(t *testing.T) {
	b := board.NewBoard()
	b.SetState("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err := b.MakeMove(board.NewMove(board.NewPosition(0, 0), board.NewPosition(0, 7), board.Normal)); err != nil {
		t.Fatal(err)
	}
	b.SwitchSides()
	b.UpdateCheckState()

	var buf bytes.Buffer
	WriteBoard(&buf, b, Options{
		SquareSize: 40,
		Highlights: []board.Position{{File: 1, Rank: 7}, board.NoPosition},
		Check:      true,
	})
	out := buf.String()
	counts := wellFormed(t, buf.Bytes())

	if counts["g"] != 3 {
		t.Errorf("got %d piece groups, want 3", counts["g"])
	}
	if counts["text"] != 16 {
		t.Errorf("got %d labels, want 16", counts["text"])
	}
	if !strings.Contains(out, `width="360"`) {
		t.Error("unexpected canvas width")
	}
	if !strings.Contains(out, checkStyle) {
		t.Error("check square not marked")
	}
	if strings.Count(out, highlightStyle) != 1 {
		t.Error("expected one highlight, off-board squares skipped")
	}
	if !strings.Contains(out, "<title>"+b.Notation()+"</title>") {
		t.Error("title should carry the notation")
	}
}

func TestWriteBoardFlipped(t *testing.T) {
	b := board.NewBoard()
	b.Place(board.NewPosition(0, 0), board.NewPiece(board.Rook, board.White))

	var normal, flipped bytes.Buffer
	WriteBoard(&normal, b, Options{SquareSize: 40})
	WriteBoard(&flipped, b, Options{SquareSize: 40, Flipped: true})

	// a1 sits bottom-left normally and top-right when flipped.
	if !strings.Contains(normal.String(), "translate(20,300)") {
		t.Error("a1 not drawn bottom-left")
	}
	if !strings.Contains(flipped.String(), "translate(300,20)") {
		t.Error("a1 not drawn top-right when flipped")
	}
}
