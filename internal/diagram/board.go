package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessboard/internal/board"
)

// Options controls WriteBoard.
type Options struct {
	// SquareSize is the edge of one square in pixels. Zero means 64.
	SquareSize int
	// Flipped draws the board from Black's side.
	Flipped bool
	// Highlights are tinted, e.g. the legal targets of a piece.
	Highlights []board.Position
	// Check marks the king of the side to move when it is in check.
	Check bool

	LightSquare string
	DarkSquare  string
}

const (
	defaultSquareSize = 64
	defaultLight      = "#f0d9b5"
	defaultDark       = "#b58863"
	highlightStyle    = "fill:#829769;fill-opacity:0.75"
	checkStyle        = "fill:#ff6464;fill-opacity:0.7"
)

func (o Options) withDefaults() Options {
	if o.SquareSize <= 0 {
		o.SquareSize = defaultSquareSize
	}
	if o.LightSquare == "" {
		o.LightSquare = defaultLight
	}
	if o.DarkSquare == "" {
		o.DarkSquare = defaultDark
	}
	return o
}

// WriteBoard writes an SVG diagram of b with file and rank labels in a
// margin around the squares.
func WriteBoard(w io.Writer, b *board.Board, opts Options) {
	opts = opts.withDefaults()
	sq := opts.SquareSize
	margin := sq / 2
	side := 8*sq + 2*margin

	canvas := svg.New(w)
	canvas.Start(side, side)
	canvas.Title(b.Notation())
	canvas.Rect(0, 0, side, side, "fill:#282c34")

	// origin returns the top-left pixel of a square.
	origin := func(pos board.Position) (int, int) {
		col, row := pos.File, 7-pos.Rank
		if opts.Flipped {
			col, row = 7-pos.File, pos.Rank
		}
		return margin + col*sq, margin + row*sq
	}

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pos := board.NewPosition(file, rank)
			x, y := origin(pos)
			fill := opts.DarkSquare
			if (file+rank)%2 == 1 {
				fill = opts.LightSquare
			}
			canvas.Rect(x, y, sq, sq, "fill:"+fill)
		}
	}

	if opts.Check && b.InCheck() {
		if king := b.GetKingPosition(b.SideToMove()); king.InBounds() {
			x, y := origin(king)
			canvas.Rect(x, y, sq, sq, checkStyle)
		}
	}

	for _, pos := range opts.Highlights {
		if !pos.InBounds() {
			continue
		}
		x, y := origin(pos)
		canvas.Circle(x+sq/2, y+sq/2, sq/6, highlightStyle)
	}

	scale := float64(sq) / glyphUnits
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pos := board.NewPosition(file, rank)
			p, ok := b.PieceAt(pos)
			if !ok {
				continue
			}
			x, y := origin(pos)
			canvas.Gtransform(fmt.Sprintf("translate(%d,%d) scale(%g)", x, y, scale))
			drawPiece(canvas, p)
			canvas.Gend()
		}
	}

	labelStyle := fmt.Sprintf("fill:#dcdcdc;font-size:%dpx;font-family:sans-serif;text-anchor:middle", sq/4)
	for i := 0; i < 8; i++ {
		x, _ := origin(board.NewPosition(i, 0))
		_, y := origin(board.NewPosition(0, i))
		canvas.Text(x+sq/2, side-margin/3, string(rune('a'+i)), labelStyle)
		canvas.Text(margin/2, y+sq/2+sq/10, string(rune('1'+i)), labelStyle)
	}

	canvas.End()
}
