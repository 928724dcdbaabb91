package ui

import (
	"bytes"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/diagram"
)

// SpriteManager rasterises the diagram piece glyphs into images.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Logical square size
	scale       float64 // HiDPI scale factor
	renderScale float64 // Oversampling factor for smooth downscaling
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		scale:       1.0,
		renderScale: 2.0,
	}
	sm.loadPieces()
	return sm
}

// SetScale re-renders the sprites for a new HiDPI scale factor.
func (sm *SpriteManager) SetScale(scale float64) {
	sm.scale = scale
	for _, img := range sm.pieces {
		img.Deallocate()
	}
	sm.pieces = make(map[board.Piece]*ebiten.Image)
	sm.loadPieces()
}

var pieceTypes = []board.PieceType{board.Pawn, board.Rook, board.Knight, board.Bishop, board.Queen, board.King}

// loadPieces renders every piece glyph to an image.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.scale * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for _, pt := range pieceTypes {
			piece := board.NewPiece(pt, c)

			var buf bytes.Buffer
			if err := diagram.WritePiece(&buf, piece, renderSize); err != nil {
				log.Printf("Failed to draw piece %v: %v", piece, err)
				continue
			}

			icon, err := oksvg.ReadIconStream(&buf)
			if err != nil {
				log.Printf("Failed to parse SVG for %v: %v", piece, err)
				continue
			}
			icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

			rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
			scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
			raster := rasterx.NewDasher(renderSize, renderSize, scanner)
			icon.Draw(raster, 1.0)

			sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// DrawPieceAt draws a piece with its top-left corner at the given pixel
// coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
