package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// NewTheme converts the configured hex colours. The config must have
// passed Validate.
func NewTheme(t config.Theme) *Theme {
	return &Theme{
		LightSquare:    config.MustColor(t.LightSquare),
		DarkSquare:     config.MustColor(t.DarkSquare),
		SelectedSquare: config.MustColor(t.SelectedSquare),
		LegalMoveColor: config.MustColor(t.LegalMove),
		LastMoveColor:  config.MustColor(t.LastMove),
		CheckColor:     config.MustColor(t.Check),
		Background:     config.MustColor(t.Background),
		TextColor:      config.MustColor(t.Text),
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize int, theme *Theme) *Renderer {
	squareSize := boardSize / 8
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      theme,
		boardSize:  squareSize * 8,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	if scale == r.scale {
		return
	}
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped draws the board from Black's side when true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether Black is at the bottom.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the chess board squares.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := r.SquareToScreen(board.NewPosition(file, rank))

			c := r.theme.LightSquare
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			}

			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank
// numbers along the left edge, in the colour of the opposite square.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := labelFace(r.squareSize, r.scale)
	if face == nil {
		return
	}
	pad := float64(r.squareSize) / 20

	bottomRank, leftFile := 0, 0
	if r.flipped {
		bottomRank, leftFile = 7, 7
	}

	for i := 0; i < 8; i++ {
		// Files
		pos := board.NewPosition(i, bottomRank)
		x, y := r.SquareToScreen(pos)
		label := string(rune('a' + i))
		w, h := text.Measure(label, face, 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(x+r.squareSize))-w-pad*r.scale, float64(r.s(y+r.squareSize))-h-pad*r.scale)
		op.ColorScale.ScaleWithColor(r.labelColor(pos))
		text.Draw(screen, label, face, op)

		// Ranks
		pos = board.NewPosition(leftFile, i)
		x, y = r.SquareToScreen(pos)
		op = &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(x))+pad*r.scale, float64(r.s(y))+pad*r.scale)
		op.ColorScale.ScaleWithColor(r.labelColor(pos))
		text.Draw(screen, string(rune('1'+i)), face, op)
	}
}

func (r *Renderer) labelColor(pos board.Position) color.RGBA {
	if (pos.File+pos.Rank)%2 == 0 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// DrawHighlights draws the last move, the selection and the legal targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Position, legalMoves []board.Move, lastMove *board.Move, showTargets bool) {
	if lastMove != nil {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != board.NoPosition {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	if !showTargets {
		return
	}
	for _, m := range legalMoves {
		r.drawLegalMoveIndicator(screen, m)
	}
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingPos board.Position) {
	r.highlightSquare(screen, kingPos, r.theme.CheckColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, pos board.Position, c color.RGBA) {
	if !pos.InBounds() {
		return
	}
	x, y := r.SquareToScreen(pos)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// drawLegalMoveIndicator draws a dot on an empty target and a ring on a
// capture.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, m board.Move) {
	x, y := r.SquareToScreen(m.To)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2

	if m.IsCapture() {
		radius := r.s(r.squareSize) * 0.45
		vector.StrokeCircle(screen, cx, cy, radius, r.s(r.squareSize)*0.08, r.theme.LegalMoveColor, true)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, r.s(r.squareSize)*0.15, r.theme.LegalMoveColor, true)
}

// DrawPieces draws every piece except the one being dragged, offset by any
// running shake animation.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, dragSquare board.Position, anims *AnimationManager) {
	for pos, piece := range b.GetBoard() {
		if pos == dragSquare {
			continue
		}

		x, y := r.SquareToScreen(pos)
		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(pos)
			x += int(offsetX)
			y += int(offsetY)
		}

		r.sprites.DrawPieceAt(screen, piece, int(r.s(x)), int(r.s(y)))
	}
}

// DrawDraggedPiece draws the piece being dragged centred on the cursor.
// mouseX, mouseY are in logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}

	halfSize := int(r.s(r.squareSize)) / 2
	x := int(r.s(mouseX)) - halfSize
	y := int(r.s(mouseY)) - halfSize

	r.sprites.DrawPieceAt(screen, piece, x, y)
}

// DrawStatus draws a line of text in the bar under the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	face := statusFace(r.squareSize, r.scale)
	if face == nil {
		return
	}

	_, h := text.Measure(status, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.s(StatusPadding)), float64(r.s(r.boardSize))+(float64(r.s(StatusHeight))-h)/2)
	op.ColorScale.ScaleWithColor(r.theme.TextColor)
	text.Draw(screen, status, face, op)
}

// SquareToScreen converts a board square to the logical coordinates of its
// top-left corner.
func (r *Renderer) SquareToScreen(pos board.Position) (int, int) {
	col, row := pos.File, 7-pos.Rank
	if r.flipped {
		col, row = 7-pos.File, pos.Rank
	}
	return col * r.squareSize, row * r.squareSize
}

// ScreenToSquare converts logical coordinates to a board square, or
// NoPosition outside the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Position {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoPosition
	}
	col, row := x/r.squareSize, y/r.squareSize
	if r.flipped {
		return board.NewPosition(7-col, row)
	}
	return board.NewPosition(col, 7-row)
}

// BoardSize returns the board size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
