package schaakmg_test

import (
	"math/rand"
	"sort"
	"testing"

	"schaakmaat/schaakmg"
)

func mustFEN(t testing.TB, fen string) schaakmg.GameState {
	t.Helper()
	s, err := schaakmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return s
}

func sq(t testing.TB, name string) schaakmg.Position {
	t.Helper()
	p, err := schaakmg.ParsePosition(name)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", name, err)
	}
	return p
}

func mv(t testing.TB, text string) schaakmg.Move {
	t.Helper()
	m, err := schaakmg.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

// moveStrings returns the moves in coordinate notation, sorted.
func moveStrings(moves []schaakmg.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// movesFrom keeps the moves that start on from.
func movesFrom(moves []schaakmg.Move, from schaakmg.Position) []schaakmg.Move {
	var out []schaakmg.Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// randomPlayout plays uniformly random legal moves from the initial position. visit sees every
// position reached, including the first; returning false ends the playout.
func randomPlayout(seed int64, plies int, visit func(ply int, s *schaakmg.GameState) bool) {
	rng := rand.New(rand.NewSource(seed))
	s := schaakmg.NewGame()
	for ply := 0; ply <= plies; ply++ {
		if !visit(ply, &s) {
			return
		}
		moves := s.LegalMoves()
		if len(moves) == 0 {
			return
		}
		s.Apply(moves[rng.Intn(len(moves))])
	}
}
