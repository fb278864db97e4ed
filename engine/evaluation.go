package engine

import (
	"math"

	gm "schaakmaat/schaakmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = math.MaxInt32
	MinScore  int32 = math.MinInt32
	DrawScore int32 = 0
)

// Base material values, indexed by Kind. The king is never traded so it carries no material.
var pieceValues = [7]int32{
	gm.Pawn:   1,
	gm.Knight: 3,
	gm.Bishop: 3,
	gm.Rook:   5,
	gm.Queen:  9,
	gm.King:   0,
}

// PieceValue returns the signed material value of p: positive for White, negative for Black.
func PieceValue(p gm.Piece) int32 {
	if p == gm.NoPiece {
		return 0
	}
	v := pieceValues[p.Kind()]
	if p.Color() == gm.Black {
		return -v
	}
	return v
}

// OutcomeScore maps a finished game onto the score scale. An ongoing game scores DrawScore.
func OutcomeScore(o gm.Outcome) int32 {
	switch o {
	case gm.WhiteWins:
		return MaxScore
	case gm.BlackWins:
		return MinScore
	}
	return DrawScore
}

// Material sums the signed piece values over the grid. The side to move plays no part.
func Material(s *gm.GameState) int32 {
	var score int32
	s.ForEachPiece(func(_ gm.Position, p gm.Piece) {
		score += PieceValue(p)
	})
	return score
}

// Evaluate scores s from White's point of view. Finished games get the extremal scores (zero for
// stalemate); everything else is scored on material.
func Evaluate(s *gm.GameState) int32 {
	if o := s.Outcome(); o.IsOver() {
		return OutcomeScore(o)
	}
	return Material(s)
}
