package board

// MoveKind tags what a move does to the board.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Capture
	EnPassant
	Castle
	Promotion
	PromotionCapture
)

// String returns the move kind name.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case Capture:
		return "Capture"
	case EnPassant:
		return "EnPassant"
	case Castle:
		return "Castle"
	case Promotion:
		return "Promotion"
	case PromotionCapture:
		return "PromotionCapture"
	default:
		return "Unknown"
	}
}

// Move describes a transition from one square to another.
type Move struct {
	From Position
	To   Position
	Kind MoveKind
}

// NewMove creates a move of the given kind.
func NewMove(from, to Position, kind MoveKind) Move {
	return Move{From: from, To: to, Kind: kind}
}

// IsCapture returns true if the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant || m.Kind == PromotionCapture
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == Promotion || m.Kind == PromotionCapture
}

// String returns the move in long algebraic notation (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += "q"
	}
	return s
}
