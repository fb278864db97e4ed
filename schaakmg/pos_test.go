package schaakmg_test

import (
	"errors"
	"testing"

	"schaakmaat/schaakmg"
)

func TestOffsetArithmetic(t *testing.T) {
	e4 := schaakmg.Pos(4, 3)
	c6 := schaakmg.Pos(2, 5)

	d := c6.Sub(e4)
	if d != (schaakmg.Offset{DFile: -2, DRank: 2}) {
		t.Fatalf("c6-e4: got %+v", d)
	}
	if got := e4.Add(d); got != c6 {
		t.Fatalf("e4+(c6-e4): got %v want %v", got, c6)
	}
	if got := c6.Minus(d); got != e4 {
		t.Fatalf("c6-(c6-e4): got %v want %v", got, e4)
	}
	if got := schaakmg.NorthWest.Scale(2); got != d {
		t.Fatalf("NorthWest*2: got %+v want %+v", got, d)
	}
	if got := schaakmg.North.Add(schaakmg.East); got != schaakmg.NorthEast {
		t.Fatalf("North+East: got %+v", got)
	}
	if got := schaakmg.SouthWest.Neg(); got != schaakmg.NorthEast {
		t.Fatalf("-SouthWest: got %+v", got)
	}
}

func TestDirectionSets(t *testing.T) {
	for _, dirs := range [][]schaakmg.Offset{schaakmg.CardinalDirs[:], schaakmg.DiagonalDirs[:], schaakmg.AllDirs[:]} {
		seen := map[schaakmg.Offset]bool{}
		for _, d := range dirs {
			if seen[d] {
				t.Fatalf("duplicate direction %+v", d)
			}
			seen[d] = true
			if d.DFile < -1 || d.DFile > 1 || d.DRank < -1 || d.DRank > 1 || d == (schaakmg.Offset{}) {
				t.Fatalf("not a unit direction: %+v", d)
			}
		}
	}
	for _, j := range schaakmg.KnightJumps {
		a, b := j.DFile*j.DFile, j.DRank*j.DRank
		if a+b != 5 {
			t.Fatalf("not a knight leap: %+v", j)
		}
	}
}

func TestOnBoard(t *testing.T) {
	cases := []struct {
		p    schaakmg.Position
		want bool
	}{
		{schaakmg.Pos(0, 0), true},
		{schaakmg.Pos(7, 7), true},
		{schaakmg.Pos(-1, 3), false},
		{schaakmg.Pos(3, 8), false},
		{schaakmg.Pos(8, 0), false},
		{schaakmg.Pos(0, -1), false},
	}
	for _, tc := range cases {
		if got := tc.p.OnBoard(); got != tc.want {
			t.Errorf("%+v.OnBoard(): got %v want %v", tc.p, got, tc.want)
		}
	}
}

func TestPositionText(t *testing.T) {
	for _, name := range []string{"a1", "h8", "e4", "c7"} {
		p, err := schaakmg.ParsePosition(name)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", name, err)
		}
		if p.String() != name {
			t.Fatalf("round trip %q: got %q", name, p.String())
		}
	}
	if p, _ := schaakmg.ParsePosition("e4"); p != schaakmg.Pos(4, 3) {
		t.Fatalf("e4 parsed as %+v", p)
	}
	for _, bad := range []string{"", "i1", "a9", "a", "e44"} {
		if _, err := schaakmg.ParsePosition(bad); !errors.Is(err, schaakmg.ErrInvalidSquare) {
			t.Errorf("ParsePosition(%q): expected ErrInvalidSquare, got %v", bad, err)
		}
	}
}

func TestMoveText(t *testing.T) {
	m, err := schaakmg.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if m != schaakmg.NewMove(schaakmg.Pos(4, 1), schaakmg.Pos(4, 3)) {
		t.Fatalf("e2e4 parsed as %+v", m)
	}
	if m.String() != "e2e4" {
		t.Fatalf("String: got %q", m.String())
	}
	if nm, err := schaakmg.ParseMove("0000"); err != nil || !nm.IsNull() {
		t.Fatalf("0000: got %v, %v", nm, err)
	}
	if schaakmg.NullMove.String() != "0000" {
		t.Fatalf("NullMove prints as %q", schaakmg.NullMove.String())
	}
	for _, bad := range []string{"e7e8q", "e2", "z2e4", "e2e9"} {
		if _, err := schaakmg.ParseMove(bad); !errors.Is(err, schaakmg.ErrInvalidMove) {
			t.Errorf("ParseMove(%q): expected ErrInvalidMove, got %v", bad, err)
		}
	}
}
