package schaakmg

import "golang.org/x/exp/slices"

// Apply plays a legal move in place. Playing a move that is not in LegalMoves is a
// programming error and panics.
func (s *GameState) Apply(m Move) {
	if !slices.Contains(s.LegalMoves(), m) {
		panic("schaakmg.Apply: illegal move applied: " + m.String())
	}
	s.perform(m)
}

// WithMove returns a copy of s with m played; s itself is untouched. m is not validated, so it
// must come from LegalMoves (or PseudoMoves when probing for checks).
func (s *GameState) WithMove(m Move) GameState {
	next := *s
	next.perform(m)
	return next
}

// perform moves the piece, overwriting whatever stood on the destination, keeps the king cache
// in step and hands the turn over.
func (s *GameState) perform(m Move) {
	moving := s.grid[m.From.Rank][m.From.File]
	if moving.Kind() == King {
		s.kings[moving.Color()] = m.To
	}
	s.grid[m.To.Rank][m.To.File] = moving
	s.grid[m.From.Rank][m.From.File] = NoPiece
	s.turn = s.turn.Other()
}
