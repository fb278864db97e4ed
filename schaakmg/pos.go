package schaakmg

import "fmt"

// Position is a square on the board. File 0..7 maps to a..h and Rank 0..7 maps to 1..8,
// so rank 0 is White's back rank.
type Position struct {
	File int
	Rank int
}

// Offset is a displacement between two positions.
type Offset struct {
	DFile int
	DRank int
}

// Compass directions, seen from White's side of the board.
var (
	North     = Offset{0, 1}
	NorthEast = Offset{1, 1}
	East      = Offset{1, 0}
	SouthEast = Offset{1, -1}
	South     = Offset{0, -1}
	SouthWest = Offset{-1, -1}
	West      = Offset{-1, 0}
	NorthWest = Offset{-1, 1}
)

var (
	CardinalDirs = [4]Offset{North, East, South, West}
	DiagonalDirs = [4]Offset{NorthEast, SouthEast, SouthWest, NorthWest}
	AllDirs      = [8]Offset{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

	KnightJumps = [8]Offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)

// Pos builds a Position from file and rank indices.
func Pos(file, rank int) Position { return Position{File: file, Rank: rank} }

// Add returns p shifted by o.
func (p Position) Add(o Offset) Position { return Position{p.File + o.DFile, p.Rank + o.DRank} }

// Minus returns p shifted by the negation of o.
func (p Position) Minus(o Offset) Position { return Position{p.File - o.DFile, p.Rank - o.DRank} }

// Sub returns the offset that leads from q to p.
func (p Position) Sub(q Position) Offset { return Offset{p.File - q.File, p.Rank - q.Rank} }

// OnBoard reports whether both coordinates lie in [0, 8).
func (p Position) OnBoard() bool {
	return 0 <= p.File && p.File < 8 && 0 <= p.Rank && p.Rank < 8
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return string([]byte{'a' + byte(p.File), '1' + byte(p.Rank)})
}

// ParsePosition converts an algebraic square name ("a1".."h8") into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Position{int(file - 'a'), int(rank - '1')}, nil
}

// Add returns the sum of two offsets.
func (o Offset) Add(q Offset) Offset { return Offset{o.DFile + q.DFile, o.DRank + q.DRank} }

// Neg returns the opposite offset.
func (o Offset) Neg() Offset { return Offset{-o.DFile, -o.DRank} }

// Scale multiplies the offset by n.
func (o Offset) Scale(n int) Offset { return Offset{o.DFile * n, o.DRank * n} }
