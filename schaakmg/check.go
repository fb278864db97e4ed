package schaakmg

// Outcome classifies a finished game. NoOutcome means the game is still going.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	WhiteWins
	BlackWins
	Stalemate
)

// WinnerOutcome returns the outcome in which c has won.
func WinnerOutcome(c Color) Outcome {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner returns the winning side, if any.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return White, false
}

// IsOver reports whether o describes a finished game.
func (o Outcome) IsOver() bool { return o != NoOutcome }

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsChecked reports whether c's king is attacked. It asks the unfiltered generator whether
// any opposing move lands on the cached king square; going through the filtered generator
// here would recurse forever.
func (s *GameState) IsChecked(c Color) bool {
	king := s.kings[c]
	attacked := false
	s.pseudoMoves(c.Other(), func(m Move) bool {
		if m.To == king {
			attacked = true
			return false
		}
		return true
	})
	return attacked
}

// InCheck reports whether the side to move is checked.
func (s *GameState) InCheck() bool { return s.IsChecked(s.turn) }

// isSafe plays m on a private copy and reports whether the mover's king survives it.
func (s *GameState) isSafe(m Move) bool {
	next := s.WithMove(m)
	return !next.IsChecked(s.turn)
}

// Outcome derives the game result from scratch. A side to move without legal moves has lost
// when it is checked and is stalemated otherwise.
func (s *GameState) Outcome() Outcome {
	if s.HasLegalMoves() {
		return NoOutcome
	}
	if s.InCheck() {
		return WinnerOutcome(s.turn.Other())
	}
	return Stalemate
}

// InCheckmate reports whether the side to move is checkmated.
func (s *GameState) InCheckmate() bool { return s.InCheck() && !s.HasLegalMoves() }

// InStalemate reports whether the side to move is stalemated.
func (s *GameState) InStalemate() bool { return !s.InCheck() && !s.HasLegalMoves() }
