package schaakmg_test

import (
	"testing"

	"schaakmaat/schaakmg"
)

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	s := schaakmg.NewGame()
	moves := s.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("initial legal moves: got %d want 20: %v", len(moves), moveStrings(moves))
	}
	var pawns, knights int
	for _, m := range moves {
		switch s.PieceAt(m.From).Kind() {
		case schaakmg.Pawn:
			pawns++
		case schaakmg.Knight:
			knights++
		default:
			t.Fatalf("unexpected mover for %v", m)
		}
	}
	if pawns != 16 || knights != 4 {
		t.Fatalf("by piece: pawns=%d knights=%d", pawns, knights)
	}
}

func TestLegalMovesAreFresh(t *testing.T) {
	s := schaakmg.NewGame()
	a := s.LegalMoves()
	a[0] = schaakmg.NullMove
	b := s.LegalMoves()
	if b[0].IsNull() {
		t.Fatalf("second call observed a mutation of the first slice")
	}
}

func TestPawnMoves(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"single and double push", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e2", []string{"e2e3", "e2e4"}},
		{"double push blocked", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e2e3"}},
		{"single push blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", nil},
		{"captures enemy only", "4k3/8/8/8/8/3p1N2/4P3/4K3 w - - 0 1", "e2", []string{"e2d3", "e2e3", "e2e4"}},
		{"no double push off the start rank", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", []string{"e3e4"}},
		{"black pushes down the board", "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1", "e7", []string{"e7e5", "e7e6"}},
		{"black captures diagonally", "4k3/8/4p3/3P1P2/8/8/8/4K3 b - - 0 1", "e6", []string{"e6d5", "e6e5", "e6f5"}},
		{"no promotion on the last rank", "4P3/8/8/8/8/8/8/k3K3 w - - 0 1", "e8", nil},
		{"edge file captures one way", "4k3/8/8/8/8/1p6/P7/4K3 w - - 0 1", "a2", []string{"a2a3", "a2a4", "a2b3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustFEN(t, tc.fen)
			got := moveStrings(movesFrom(s.LegalMoves(), sq(t, tc.from)))
			if !equalStrings(got, tc.want) {
				t.Fatalf("moves from %s: got %v want %v", tc.from, got, tc.want)
			}
		})
	}
}

func TestPieceMoveCounts(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		from string
		want int
	}{
		{"knight in the corner", "k7/8/8/8/8/8/8/N3K3 w - - 0 1", "a1", 2},
		{"knight in the centre", "k7/8/8/8/3N4/8/8/7K w - - 0 1", "d4", 8},
		{"bishop on an open board", "k7/8/8/8/3B4/8/8/7K w - - 0 1", "d4", 13},
		{"rook on an open board", "k7/8/8/8/3R4/8/8/7K w - - 0 1", "d4", 14},
		{"queen on an open board", "k7/8/8/8/3Q4/8/8/7K w - - 0 1", "d4", 27},
		{"king in the centre", "k7/8/8/8/3K4/8/8/8 w - - 0 1", "d4", 8},
		{"rook stops on a capture", "k7/8/3p4/8/3R4/8/8/7K w - - 0 1", "d4", 12},
		{"rook stops before a friend", "k7/8/3P4/8/3R4/8/8/7K w - - 0 1", "d4", 11},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustFEN(t, tc.fen)
			got := movesFrom(s.LegalMoves(), sq(t, tc.from))
			if len(got) != tc.want {
				t.Fatalf("moves from %s: got %d want %d: %v", tc.from, len(got), tc.want, moveStrings(got))
			}
		})
	}
}

func TestSliderCaptureFlagIsPerDirection(t *testing.T) {
	// Captures to the north (d6) and to the west (b4) must not cut the other rays short.
	s := mustFEN(t, "k7/8/3p4/8/1p1R4/8/8/7K w - - 0 1")
	got := moveStrings(movesFrom(s.LegalMoves(), sq(t, "d4")))
	want := []string{
		"d4b4", "d4c4", "d4d1", "d4d2", "d4d3", "d4d5", "d4d6",
		"d4e4", "d4f4", "d4g4", "d4h4",
	}
	if !equalStrings(got, want) {
		t.Fatalf("rook moves: got %v want %v", got, want)
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	s := mustFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	moves := s.LegalMoves()
	if n := len(movesFrom(moves, sq(t, "e2"))); n != 0 {
		t.Fatalf("pinned bishop has %d moves", n)
	}
	if len(moves) != 4 {
		t.Fatalf("legal moves: got %v want the four king steps", moveStrings(moves))
	}
	// The pseudo-legal generator still sees the bishop's geometry.
	if n := len(movesFrom(s.PseudoMoves(schaakmg.White), sq(t, "e2"))); n == 0 {
		t.Fatalf("pseudo-legal generator produced no bishop moves")
	}
}

func TestCheckMustBeAnswered(t *testing.T) {
	// The rook on a1 checks along the first rank; stepping to f1 stays on the same line.
	s := mustFEN(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	if !s.InCheck() {
		t.Fatalf("expected White to be in check")
	}
	got := moveStrings(s.LegalMoves())
	want := []string{"e1d2", "e1e2", "e1f2"}
	if !equalStrings(got, want) {
		t.Fatalf("check evasions: got %v want %v", got, want)
	}
}

func TestHasLegalMovesAgreesWithLegalMoves(t *testing.T) {
	fens := []string{
		schaakmg.FENStartPos,
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"7k/5K2/6Q1/8/8/8/8/8 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3",
	}
	for _, fen := range fens {
		s := mustFEN(t, fen)
		if s.HasLegalMoves() != (len(s.LegalMoves()) > 0) {
			t.Fatalf("%s: HasLegalMoves disagrees with LegalMoves", fen)
		}
	}
}

func TestLegalMovesNeverExposeOwnKing(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		randomPlayout(seed, 80, func(ply int, s *schaakmg.GameState) bool {
			mover := s.SideToMove()
			for _, m := range s.LegalMoves() {
				next := s.WithMove(m)
				if next.IsChecked(mover) {
					t.Fatalf("seed %d ply %d: %v leaves %s in check\n%s", seed, ply, m, mover, s)
				}
				if err := next.Validate(); err != nil {
					t.Fatalf("seed %d ply %d: %v breaks the king cache: %v", seed, ply, m, err)
				}
			}
			return true
		})
	}
}
