package ui

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
)

// UI Constants
const (
	StatusHeight  = 32 // Bar under the board
	StatusPadding = 10
)

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by the input handler.
var UIScale float64 = 1.0

// Game implements ebiten.Game interface.
type Game struct {
	cfg     *config.Config
	session *game.Session

	// UI state
	dragging   bool
	dragPiece  board.Piece
	dragSquare board.Position
	showHints  bool

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	feedback *FeedbackManager

	// HiDPI scaling
	scale float64
}

// NewGame creates the window state for notation. store may be nil, in which
// case nothing is persisted.
func NewGame(cfg *config.Config, store *storage.Storage, notation string) *Game {
	g := &Game{
		cfg:        cfg,
		storage:    store,
		dragSquare: board.NoPosition,
		renderer:   NewRenderer(cfg.BoardSize, NewTheme(cfg.Theme)),
		input:      NewInputHandler(),
		scale:      1.0,
	}

	// A nil *Storage must not end up inside the interface.
	var sessionStore game.Store
	if store != nil {
		sessionStore = store
	}
	g.session = game.NewSession(notation, sessionStore)

	g.loadPreferences()
	g.feedback = NewFeedbackManager(g.renderer.BoardSize(), g.renderer.SquareSize(), g.prefs.SoundEnabled)

	g.checkFirstLaunch()

	return g
}

// loadPreferences starts from the config and applies stored preferences
// over it once they exist.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	g.prefs.Flipped = g.cfg.Flipped
	g.prefs.ShowLegalMoves = g.cfg.ShowLegalMoves
	g.prefs.SoundEnabled = g.cfg.Sound

	if g.storage != nil {
		prefs, found, err := g.storage.LoadPreferences(g.prefs)
		switch {
		case err != nil:
			log.Printf("Warning: Failed to load preferences: %v", err)
		case found:
			g.prefs = prefs
		}
	}

	g.renderer.SetFlipped(g.prefs.Flipped)
	g.showHints = g.prefs.ShowLegalMoves
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Flipped = g.renderer.Flipped()
	g.prefs.ShowLegalMoves = g.showHints
	g.prefs.SoundEnabled = g.feedback.Audio().IsEnabled()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch greets the user once and records a first game.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}

	g.feedback.Toast("Welcome! N new game, F flip, H hints, S sound", ToastInfo)
	if err := g.storage.RecordNewGame(); err != nil {
		log.Printf("Warning: Failed to record new game: %v", err)
	}
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		log.Printf("Warning: Failed to mark first launch complete: %v", err)
	}
	g.savePreferences()
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	g.handleCommand(g.input.Command())
	g.handleBoardInput()
	g.updateCursor()

	return nil
}

// handleCommand runs a keyboard shortcut.
func (g *Game) handleCommand(cmd Command) {
	switch cmd {
	case CommandNewGame:
		g.NewGameAction()
	case CommandFlip:
		g.renderer.SetFlipped(!g.renderer.Flipped())
		g.savePreferences()
	case CommandToggleHints:
		g.showHints = !g.showHints
		if g.showHints {
			g.feedback.Toast("Legal move hints on", ToastInfo)
		} else {
			g.feedback.Toast("Legal move hints off", ToastInfo)
		}
		g.savePreferences()
	case CommandToggleSound:
		audio := g.feedback.Audio()
		audio.SetEnabled(!audio.IsEnabled())
		if audio.IsEnabled() {
			g.feedback.Toast("Sound on", ToastInfo)
		} else {
			g.feedback.Toast("Sound off", ToastInfo)
		}
		g.savePreferences()
	case CommandCancel:
		g.clearSelection()
	}
}

// updateCursor shows a pointer over pieces of the side to move.
func (g *Game) updateCursor() {
	mx, my := g.input.MousePosition()
	pos := g.renderer.ScreenToSquare(mx, my)

	b := g.session.Board()
	if piece, ok := b.PieceAt(pos); ok && piece.Color == b.SideToMove() || g.dragging {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	b := g.session.Board()
	if b.InCheck() {
		g.renderer.DrawCheck(screen, b.GetKingPosition(b.SideToMove()))
	}

	var lastMove *board.Move
	if m, ok := g.session.LastMove(); ok {
		lastMove = &m
	}
	g.renderer.DrawHighlights(screen, g.session.Selected(), g.session.LegalMoves(), lastMove, g.showHints)

	dragSquare := board.NoPosition
	if g.dragging {
		dragSquare = g.dragSquare
	}
	g.renderer.DrawPieces(screen, b, dragSquare, g.feedback.Animations())

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	g.feedback.Draw(screen, g.renderer, g.scale)

	g.renderer.DrawStatus(screen, g.session.Status())
}

// Layout returns the game's screen dimensions: the board plus the status
// bar, scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	UIScale = g.scale

	w, h := g.WindowSize()
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}

// WindowSize returns the logical window size.
func (g *Game) WindowSize() (int, int) {
	size := g.renderer.BoardSize()
	return size, size + StatusHeight
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		pos := g.renderer.ScreenToSquare(mx, my)
		if pos == board.NoPosition {
			g.clearSelection()
			return
		}

		b := g.session.Board()
		piece, ok := b.PieceAt(pos)

		// Clicking a target of the current selection plays the move.
		if selected := g.session.Selected(); selected != board.NoPosition && g.isTarget(pos) {
			g.drop(selected, pos)
			return
		}

		if ok && piece.Color == b.SideToMove() {
			g.selectSquare(pos)
			g.startDrag(pos, piece)
			return
		}

		if ok {
			g.feedback.OnInvalidMove(pos, pos, ReasonNotYourTurn)
		}
		g.clearSelection()
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
	}
}

// isTarget reports whether pos is a legal target of the selected piece.
func (g *Game) isTarget(pos board.Position) bool {
	for _, m := range g.session.LegalMoves() {
		if m.To == pos {
			return true
		}
	}
	return false
}

func (g *Game) selectSquare(pos board.Position) {
	err := g.session.Select(pos)
	if err == nil {
		return
	}
	if errors.Is(err, board.ErrUnsupported) {
		g.feedback.OnInvalidMove(pos, pos, ReasonUnsupported)
		return
	}
	log.Printf("Warning: select %v: %v", pos, err)
}

func (g *Game) clearSelection() {
	g.session.Clear()
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoPosition
}

func (g *Game) startDrag(pos board.Position, piece board.Piece) {
	g.dragging = true
	g.dragPiece = piece
	g.dragSquare = pos
}

// handleDragRelease drops the dragged piece. Releasing over the origin
// keeps the selection so the move can be finished with a second click.
func (g *Game) handleDragRelease(mx, my int) {
	from := g.dragSquare
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoPosition

	to := g.renderer.ScreenToSquare(mx, my)
	if to == from {
		return
	}
	if to == board.NoPosition {
		g.session.Clear()
		return
	}
	g.drop(from, to)
}

// drop plays the selection to pos and reports the outcome.
func (g *Game) drop(from, to board.Position) {
	g.dragging = false

	b := g.session.Board()
	blocked := false
	if piece, ok := b.PieceAt(to); ok && piece.Color == b.SideToMove() {
		blocked = true
	}

	move, err := g.session.Drop(to)
	switch {
	case err == nil:
	case errors.Is(err, board.ErrUnsupported):
		g.feedback.OnPartialMove(move)
	case blocked && errors.Is(err, game.ErrIllegalMove):
		g.feedback.OnInvalidMove(from, to, ReasonBlockedByOwnPiece)
		return
	default:
		g.feedback.OnInvalidMove(from, to, reasonFor(err))
		return
	}

	g.feedback.OnMoveMade(move.IsCapture())
	if b.InCheck() {
		g.feedback.OnCheck()
	}
}

// NewGameAction resets the board to the configured start position.
func (g *Game) NewGameAction() {
	g.clearSelection()
	g.session.Reset(g.cfg.StartNotation)

	if g.storage != nil {
		if err := g.storage.RecordNewGame(); err != nil {
			log.Printf("Warning: Failed to record new game: %v", err)
		}
		if err := g.storage.ClearPosition(); err != nil {
			log.Printf("Warning: Failed to clear saved position: %v", err)
		}
	}

	g.feedback.OnNewGame()
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.savePreferences()
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			log.Printf("Warning: Failed to close storage: %v", err)
		}
	}
}
