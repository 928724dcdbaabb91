package ui

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/exp/slices"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

// InvalidMoveReason represents why a move was rejected.
type InvalidMoveReason int

const (
	ReasonUnknown InvalidMoveReason = iota
	ReasonNotYourTurn
	ReasonIllegalMove
	ReasonBlockedByOwnPiece
	ReasonUnsupported
)

// reasonFor classifies a session error.
func reasonFor(err error) InvalidMoveReason {
	switch {
	case errors.Is(err, board.ErrUnsupported):
		return ReasonUnsupported
	case errors.Is(err, game.ErrNotYourTurn):
		return ReasonNotYourTurn
	case errors.Is(err, game.ErrIllegalMove):
		return ReasonIllegalMove
	default:
		return ReasonUnknown
	}
}

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// alpha fades the toast in and out over its first and last 200ms.
func (t *Toast) alpha() float64 {
	const fade = 0.2
	elapsed := time.Since(t.StartTime).Seconds()
	remaining := t.Duration.Seconds() - elapsed
	return math.Max(0, math.Min(1, math.Min(elapsed, remaining)/fade))
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts     []*Toast
	maxStack   int
	width      int // Logical width toasts are centred in
	squareSize int // Drives the font size
}

// NewToastManager creates a toast manager for a board of width pixels
// with squares of squareSize.
func NewToastManager(width, squareSize int) *ToastManager {
	return &ToastManager{
		maxStack:   3,
		width:      width,
		squareSize: squareSize,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	tm.toasts = slices.DeleteFunc(tm.toasts, func(t *Toast) bool {
		return time.Since(t.StartTime) >= t.Duration
	})
}

// toastColors returns background and text colours at the given opacity.
func toastColors(t ToastType, alpha float64) (bg, fg color.RGBA) {
	switch t {
	case ToastWarning:
		return color.RGBA{180, 140, 20, uint8(220 * alpha)}, color.RGBA{40, 30, 0, uint8(255 * alpha)}
	case ToastError:
		return color.RGBA{180, 50, 50, uint8(220 * alpha)}, color.RGBA{255, 255, 255, uint8(255 * alpha)}
	case ToastSuccess:
		return color.RGBA{50, 150, 50, uint8(220 * alpha)}, color.RGBA{255, 255, 255, uint8(255 * alpha)}
	default:
		return color.RGBA{50, 100, 150, uint8(220 * alpha)}, color.RGBA{255, 255, 255, uint8(255 * alpha)}
	}
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image, scale float64) {
	face := toastFace(tm.squareSize, scale)
	if face == nil {
		return
	}

	y := 40.0 * scale
	for _, t := range tm.toasts {
		bgColor, textColor := toastColors(t.Type, t.alpha())

		w, h := text.Measure(t.Message, face, 0)
		padding := 12.0 * scale
		boxW := w + padding*2
		boxH := h + padding*2
		x := float64(tm.width)*scale/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8*scale
	}
}

// effectKind selects how a square effect is drawn.
type effectKind int

const (
	effectShake effectKind = iota
	effectFlash
)

// effect is a short-lived animation attached to one square.
type effect struct {
	kind     effectKind
	square   board.Position
	start    time.Time
	duration time.Duration
	color    color.RGBA // flash only
}

// progress returns the elapsed fraction in [0, 1].
func (e *effect) progress() float64 {
	return math.Min(1, time.Since(e.start).Seconds()/e.duration.Seconds())
}

// AnimationManager runs the shake and flash effects.
type AnimationManager struct {
	effects []*effect
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartShake wiggles the piece on pos.
func (am *AnimationManager) StartShake(pos board.Position) {
	am.effects = append(am.effects, &effect{
		kind:     effectShake,
		square:   pos,
		start:    time.Now(),
		duration: 300 * time.Millisecond,
	})
}

// StartFlash tints pos with c, fading out.
func (am *AnimationManager) StartFlash(pos board.Position, c color.RGBA) {
	am.effects = append(am.effects, &effect{
		kind:     effectFlash,
		square:   pos,
		start:    time.Now(),
		duration: 400 * time.Millisecond,
		color:    c,
	})
}

// Update drops finished effects.
func (am *AnimationManager) Update() {
	am.effects = slices.DeleteFunc(am.effects, func(e *effect) bool {
		return e.progress() >= 1
	})
}

// GetShakeOffset returns the horizontal offset of a shaking piece on pos.
func (am *AnimationManager) GetShakeOffset(pos board.Position) (float64, float64) {
	const intensity = 8.0
	for _, e := range am.effects {
		if e.kind != effectShake || e.square != pos {
			continue
		}
		p := e.progress()
		// Damped sine
		return intensity * math.Exp(-5*p) * math.Sin(40*p), 0
	}
	return 0, 0
}

// DrawFlashes renders the flash overlays.
func (am *AnimationManager) DrawFlashes(screen *ebiten.Image, renderer *Renderer) {
	for _, e := range am.effects {
		if e.kind != effectFlash || !e.square.InBounds() {
			continue
		}
		c := e.color
		c.A = uint8(float64(c.A) * (1 - e.progress()))
		renderer.highlightSquare(screen, e.square, c)
	}
}

// FeedbackManager coordinates all feedback systems.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager(width, squareSize int, sound bool) *FeedbackManager {
	fm := &FeedbackManager{
		toasts:     NewToastManager(width, squareSize),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
	fm.audio.SetEnabled(sound)
	return fm
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, renderer *Renderer, scale float64) {
	fm.animations.DrawFlashes(screen, renderer)
	fm.toasts.Draw(screen, scale)
}

// Animations returns the animation manager for renderer integration.
func (fm *FeedbackManager) Animations() *AnimationManager {
	return fm.animations
}

// Toast shows a plain message.
func (fm *FeedbackManager) Toast(message string, toastType ToastType) {
	fm.toasts.Show(message, toastType, 2*time.Second)
}

// OnInvalidMove handles a rejected selection or drop.
func (fm *FeedbackManager) OnInvalidMove(from, to board.Position, reason InvalidMoveReason) {
	var message string
	switch reason {
	case ReasonNotYourTurn:
		message = "Not your turn"
	case ReasonBlockedByOwnPiece:
		message = "Square occupied by your piece"
	case ReasonIllegalMove:
		message = "Illegal move"
	case ReasonUnsupported:
		message = "Moves for this piece are not supported yet"
	default:
		message = "Invalid move"
	}

	fm.toasts.Show(message, ToastWarning, 2*time.Second)
	fm.animations.StartShake(from)
	if to != from {
		fm.animations.StartFlash(to, color.RGBA{255, 80, 80, 150})
	}
	fm.audio.Play(SoundInvalid)
}

// OnCheck handles a check event.
func (fm *FeedbackManager) OnCheck() {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
	fm.audio.Play(SoundCheck)
}

// OnMoveMade handles a successful move.
func (fm *FeedbackManager) OnMoveMade(isCapture bool) {
	if isCapture {
		fm.audio.Play(SoundCapture)
	} else {
		fm.audio.Play(SoundMove)
	}
}

// OnPartialMove reports a move the board applied only in part.
func (fm *FeedbackManager) OnPartialMove(m board.Move) {
	fm.toasts.Show(m.Kind.String()+" applied partially", ToastError, 3*time.Second)
}

// OnNewGame handles a reset to the start position.
func (fm *FeedbackManager) OnNewGame() {
	fm.toasts.Show("New game", ToastSuccess, 2*time.Second)
	fm.audio.Play(SoundNewGame)
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}
