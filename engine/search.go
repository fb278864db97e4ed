package engine

import (
	gm "schaakmaat/schaakmg"
)

// Result is the outcome of searching one position.
type Result struct {
	// Move is NullMove when the position is terminal or the depth is zero; callers must not apply
	// it.
	Move  gm.Move
	Score int32
	PV    PVLine
}

// HasMove reports whether the search produced a move to play.
func (r Result) HasMove() bool { return !r.Move.IsNull() }

// Searcher runs searches and counts their work. A Searcher is not safe for concurrent use;
// give every goroutine its own.
type Searcher struct {
	Stats Stats

	moveLists [][]gm.Move // one reusable move buffer per ply
}

// NewSearcher returns a Searcher with cleared statistics. The zero value is equally usable.
func NewSearcher() *Searcher { return &Searcher{} }

// BestMove searches s to depth plies with the full window.
func BestMove(s *gm.GameState, depth int) Result {
	var searcher Searcher
	return searcher.AlphaBeta(s, depth, MinScore, MaxScore)
}

// =============================================================================
// ALPHA-BETA
// =============================================================================

// AlphaBeta runs a fail-soft alpha-beta search. Moves are tried in generator order and only a
// strictly better score replaces the incumbent, so the first of several equal moves wins. For a
// full window the result equals that of Minimax at the same depth. s is never modified.
func (sr *Searcher) AlphaBeta(s *gm.GameState, depth int, alpha, beta int32) Result {
	var pvLine PVLine
	move, score := sr.alphabeta(s, depth, 0, alpha, beta, &pvLine)
	return Result{Move: move, Score: score, PV: pvLine}
}

func (sr *Searcher) alphabeta(s *gm.GameState, depth int, ply int, alpha, beta int32, pvLine *PVLine) (gm.Move, int32) {
	sr.Stats.Nodes++
	pvLine.Clear()

	if depth <= 0 {
		return gm.NullMove, sr.leaf(s)
	}
	moves := sr.generate(s, ply)
	if len(moves) == 0 {
		return gm.NullMove, sr.leaf(s)
	}

	mover := s.SideToMove()
	bestMove := gm.NullMove
	var bestScore int32
	var childPVLine PVLine

	for _, move := range moves {
		child := s.WithMove(move)
		_, score := sr.alphabeta(&child, depth-1, ply+1, alpha, beta, &childPVLine)

		if bestMove.IsNull() || improves(mover, score, bestScore) {
			bestMove, bestScore = move, score
			pvLine.Update(move, childPVLine)
			if mover == gm.White {
				alpha = max(alpha, score)
			} else {
				beta = min(beta, score)
			}
		}
		if alpha >= beta {
			sr.Stats.Cutoffs++
			break
		}
	}
	return bestMove, bestScore
}

// =============================================================================
// MINIMAX
// =============================================================================

// Minimax searches every move to depth without pruning. It picks the same move and score as
// AlphaBeta over the full window and exists to check it.
func (sr *Searcher) Minimax(s *gm.GameState, depth int) Result {
	var pvLine PVLine
	move, score := sr.minimax(s, depth, 0, &pvLine)
	return Result{Move: move, Score: score, PV: pvLine}
}

func (sr *Searcher) minimax(s *gm.GameState, depth int, ply int, pvLine *PVLine) (gm.Move, int32) {
	sr.Stats.Nodes++
	pvLine.Clear()

	if depth <= 0 {
		return gm.NullMove, sr.leaf(s)
	}
	moves := sr.generate(s, ply)
	if len(moves) == 0 {
		return gm.NullMove, sr.leaf(s)
	}

	mover := s.SideToMove()
	bestMove := gm.NullMove
	var bestScore int32
	var childPVLine PVLine

	for _, move := range moves {
		child := s.WithMove(move)
		_, score := sr.minimax(&child, depth-1, ply+1, &childPVLine)
		if bestMove.IsNull() || improves(mover, score, bestScore) {
			bestMove, bestScore = move, score
			pvLine.Update(move, childPVLine)
		}
	}
	return bestMove, bestScore
}

// =============================================================================
// HELPERS
// =============================================================================

// improves reports whether score is strictly better than best for mover. White maximizes.
func improves(mover gm.Color, score, best int32) bool {
	if mover == gm.White {
		return score > best
	}
	return score < best
}

func (sr *Searcher) leaf(s *gm.GameState) int32 {
	sr.Stats.Leaves++
	return Evaluate(s)
}

// generate fills the move buffer reserved for ply. Deeper plies use other buffers, so the
// returned slice stays valid while the caller recurses.
func (sr *Searcher) generate(s *gm.GameState, ply int) []gm.Move {
	for len(sr.moveLists) <= ply {
		sr.moveLists = append(sr.moveLists, make([]gm.Move, 0, 64))
	}
	moves := s.LegalMovesInto(sr.moveLists[ply][:0])
	sr.moveLists[ply] = moves
	return moves
}
