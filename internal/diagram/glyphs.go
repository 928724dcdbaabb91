// Package diagram draws pieces and boards as SVG. The piece glyphs are
// built from plain shapes only, so any SVG rasteriser can draw them.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessboard/internal/board"
)

// glyphUnits is the side of the square every glyph is drawn in.
const glyphUnits = 100

const (
	whiteFill = "#f8f8f8"
	blackFill = "#202020"
	outline   = "#101010"
)

// pieceStyle returns the fill and outline for a piece colour.
func pieceStyle(c board.Color) string {
	fill := whiteFill
	if c == board.Black {
		fill = blackFill
	}
	return fmt.Sprintf("fill:%s;stroke:%s;stroke-width:3;stroke-linejoin:round", fill, outline)
}

// WritePiece writes a standalone SVG document of size x size pixels showing
// the piece.
func WritePiece(w io.Writer, p board.Piece, size int) error {
	if p.Type == board.NoPieceType {
		return fmt.Errorf("write piece: empty piece")
	}
	if size <= 0 {
		return fmt.Errorf("write piece: size %d", size)
	}

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, glyphUnits, glyphUnits)
	drawPiece(canvas, p)
	canvas.End()
	return nil
}

// drawPiece draws p in glyph units at the origin.
func drawPiece(canvas *svg.SVG, p board.Piece) {
	style := pieceStyle(p.Color)

	switch p.Type {
	case board.Pawn:
		canvas.Polygon([]int{34, 40, 60, 66}, []int{80, 52, 52, 80}, style)
		canvas.Circle(50, 38, 14, style)
	case board.Rook:
		canvas.Rect(34, 40, 32, 40, style)
		canvas.Polygon(
			[]int{28, 28, 38, 38, 46, 46, 54, 54, 62, 62, 72, 72},
			[]int{42, 20, 20, 28, 28, 20, 20, 28, 28, 20, 20, 42},
			style)
	case board.Knight:
		canvas.Polygon(
			[]int{30, 36, 48, 40, 30, 22, 24, 38, 44, 42, 56, 70, 72},
			[]int{80, 60, 48, 48, 56, 50, 40, 24, 14, 24, 16, 36, 80},
			style)
		canvas.Circle(40, 32, 3, style)
	case board.Bishop:
		canvas.Polygon([]int{36, 44, 56, 64}, []int{80, 60, 60, 80}, style)
		canvas.Polygon([]int{50, 64, 60, 40, 36}, []int{16, 40, 60, 60, 40}, style)
		canvas.Circle(50, 14, 5, style)
	case board.Queen:
		canvas.Polygon(
			[]int{28, 22, 36, 40, 45, 50, 55, 60, 64, 78, 72},
			[]int{80, 30, 50, 24, 48, 18, 48, 24, 50, 30, 80},
			style)
		tips := [][2]int{{22, 30}, {40, 24}, {50, 18}, {60, 24}, {78, 30}}
		for _, tip := range tips {
			canvas.Circle(tip[0], tip[1], 5, style)
		}
	case board.King:
		canvas.Rect(46, 8, 8, 26, style)
		canvas.Rect(38, 14, 24, 8, style)
		canvas.Polygon([]int{30, 24, 36, 64, 76, 70}, []int{80, 44, 34, 34, 44, 80}, style)
	}

	// Shared base.
	canvas.Rect(22, 78, 56, 10, style)
}
