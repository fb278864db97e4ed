package schaakmg

// Move generation walks the grid square by square. Moves are handed to a visitor as they are
// found; a visitor returning false stops the walk, which keeps "is there any legal move" and
// "is this king attacked" queries from generating more than they need.

// pawnRules returns the push direction and the start rank of c's pawns.
func pawnRules(c Color) (forward Offset, startRank int) {
	if c == White {
		return North, 1
	}
	return South, 6
}

// pseudoMoves visits every move of side c that obeys piece geometry, ignoring whether it
// leaves c's own king attacked. Squares are scanned a1..h8. It returns false if visit stopped
// the walk.
func (s *GameState) pseudoMoves(c Color, visit func(Move) bool) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := s.grid[rank][file]
			if p == NoPiece || p.Color() != c {
				continue
			}
			if !s.pieceMoves(Position{file, rank}, p, visit) {
				return false
			}
		}
	}
	return true
}

func (s *GameState) pieceMoves(from Position, p Piece, visit func(Move) bool) bool {
	c := p.Color()
	switch p.Kind() {
	case Pawn:
		return s.pawnMoves(from, c, visit)
	case Knight:
		return s.stepMoves(from, c, KnightJumps[:], visit)
	case Bishop:
		return s.slideMoves(from, c, DiagonalDirs[:], visit)
	case Rook:
		return s.slideMoves(from, c, CardinalDirs[:], visit)
	case Queen:
		return s.slideMoves(from, c, AllDirs[:], visit)
	case King:
		return s.stepMoves(from, c, AllDirs[:], visit)
	}
	return true
}

// pawnMoves covers the single push, the double push from the start rank and the two diagonal
// captures. There is no promotion and no en passant.
func (s *GameState) pawnMoves(from Position, c Color, visit func(Move) bool) bool {
	forward, startRank := pawnRules(c)

	one := from.Add(forward)
	if one.OnBoard() && s.PieceAt(one) == NoPiece {
		if !visit(Move{from, one}) {
			return false
		}
		two := one.Add(forward)
		if from.Rank == startRank && s.PieceAt(two) == NoPiece {
			if !visit(Move{from, two}) {
				return false
			}
		}
	}

	for _, side := range [2]Offset{West, East} {
		to := one.Add(side)
		target := s.PieceAt(to)
		if target != NoPiece && target.Color() != c {
			if !visit(Move{from, to}) {
				return false
			}
		}
	}
	return true
}

// stepMoves handles pieces with a fixed set of destinations (knight, king).
func (s *GameState) stepMoves(from Position, c Color, offsets []Offset, visit func(Move) bool) bool {
	for _, o := range offsets {
		to := from.Add(o)
		if !to.OnBoard() {
			continue
		}
		if target := s.PieceAt(to); target != NoPiece && target.Color() == c {
			continue
		}
		if !visit(Move{from, to}) {
			return false
		}
	}
	return true
}

// slideMoves walks outwards along each direction until the edge, a friendly piece, or the
// first enemy piece, which is included as a capture.
func (s *GameState) slideMoves(from Position, c Color, dirs []Offset, visit func(Move) bool) bool {
	for _, dir := range dirs {
		captured := false
		for dist := 1; ; dist++ {
			to := from.Add(dir.Scale(dist))
			if !to.OnBoard() || !s.traversable(c, to, &captured) {
				break
			}
			if !visit(Move{from, to}) {
				return false
			}
		}
	}
	return true
}

// traversable reports whether a slider of side c may land on to. The captured flag belongs to
// one direction: it is raised on the first enemy piece so the walk stops right after it.
func (s *GameState) traversable(c Color, to Position, captured *bool) bool {
	if *captured {
		return false
	}
	target := s.PieceAt(to)
	if target == NoPiece {
		return true
	}
	if target.Color() == c {
		return false
	}
	*captured = true
	return true
}

// PseudoMoves returns the moves of side c that obey piece geometry, including those that
// would leave c's king attacked.
func (s *GameState) PseudoMoves(c Color) []Move {
	out := make([]Move, 0, 64)
	s.pseudoMoves(c, func(m Move) bool {
		out = append(out, m)
		return true
	})
	return out
}

// legalMoves visits the legal moves of the side to move.
func (s *GameState) legalMoves(visit func(Move) bool) bool {
	return s.pseudoMoves(s.turn, func(m Move) bool {
		if !s.isSafe(m) {
			return true
		}
		return visit(m)
	})
}

// LegalMoves returns a fresh slice with every legal move of the side to move, in generation
// order. The slice is empty when the game is over.
func (s *GameState) LegalMoves() []Move { return s.LegalMovesInto(make([]Move, 0, 64)) }

// LegalMovesInto appends the legal moves of the side to move to dst.
func (s *GameState) LegalMovesInto(dst []Move) []Move {
	s.legalMoves(func(m Move) bool {
		dst = append(dst, m)
		return true
	})
	return dst
}

// HasLegalMoves reports whether the side to move has any legal move. It stops at the first one.
func (s *GameState) HasLegalMoves() bool {
	found := false
	s.legalMoves(func(Move) bool {
		found = true
		return false
	})
	return found
}
