// Command chessplay-diagram writes an SVG diagram of a position, optionally
// marking the legal targets of the piece on one square.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/diagram"
)

var (
	notation = flag.String("fen", board.StartNotation, "position in Forsyth-Edwards notation")
	square   = flag.String("square", "", "square whose legal moves are marked, e.g. g1")
	out      = flag.String("out", "", "output file (default stdout)")
	size     = flag.Int("size", 64, "square size in pixels")
	flip     = flag.Bool("flip", false, "draw the board from Black's side")
)

func main() {
	flag.Parse()

	b := board.NewBoard()
	b.SetState(*notation)
	b.UpdateCheckState()

	opts := diagram.Options{
		SquareSize: *size,
		Flipped:    *flip,
		Check:      true,
	}

	if *square != "" {
		targets, err := legalTargets(b, *square)
		if err != nil {
			log.Fatal(err)
		}
		opts.Highlights = targets
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal("could not create output file: ", err)
		}
		defer f.Close()
		w = f
	}

	diagram.WriteBoard(w, b, opts)
}

// legalTargets returns the destination squares of the piece on s.
// Unsupported piece types are reported and yield no targets.
func legalTargets(b *board.Board, s string) ([]board.Position, error) {
	pos, ok := board.ParsePosition(s)
	if !ok {
		return nil, fmt.Errorf("invalid square %q", s)
	}
	piece, ok := b.PieceAt(pos)
	if !ok {
		return nil, fmt.Errorf("square %s: %w", s, board.ErrEmptySquare)
	}

	moves, err := b.CalculateLegalMoves(pos, piece)
	if errors.Is(err, board.ErrUnsupported) {
		log.Printf("Warning: %v moves on %s: %v", piece.Type, s, err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	targets := make([]board.Position, 0, len(moves))
	for _, m := range moves {
		targets = append(targets, m.To)
	}
	log.Printf("%v on %s has %d legal moves", piece, s, len(targets))
	return targets, nil
}
