package schaakmg

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(s *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := s.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := s.WithMove(m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(s *GameState, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range s.LegalMoves() {
		child := s.WithMove(m)
		div[m] = Perft(&child, depth-1)
	}
	return div
}
