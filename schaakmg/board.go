package schaakmg

import (
	"fmt"
	"strings"
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind is a colorless piece type.
type Kind uint8

const (
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece is a colored piece. The low three bits hold the Kind and bit 3 is set for Black,
// so the zero value is an empty square.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Knight)
	WhiteBishop = Piece(Bishop)
	WhiteRook   = Piece(Rook)
	WhiteQueen  = Piece(Queen)
	WhiteKing   = Piece(King)

	BlackPawn   = Piece(Pawn) | 8
	BlackKnight = Piece(Knight) | 8
	BlackBishop = Piece(Bishop) | 8
	BlackRook   = Piece(Rook) | 8
	BlackQueen  = Piece(Queen) | 8
	BlackKing   = Piece(King) | 8
)

// MakePiece combines a side and a kind.
func MakePiece(c Color, k Kind) Piece { return Piece(k) | Piece(c)<<3 }

// Kind returns the colorless type of the piece.
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3 & 1) }

// Letter returns the FEN letter of the piece, upper case for White.
func (p Piece) Letter() byte {
	var c byte
	switch p.Kind() {
	case Pawn:
		c = 'p'
	case Knight:
		c = 'n'
	case Bishop:
		c = 'b'
	case Rook:
		c = 'r'
	case Queen:
		c = 'q'
	case King:
		c = 'k'
	default:
		return '.'
	}
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return c
}

func (p Piece) String() string {
	if p == NoPiece {
		return "NoPiece"
	}
	return p.Color().String() + p.Kind().String()
}

// Grid holds the 64 cells of a board, indexed [rank][file].
type Grid [8][8]Piece

// GameState is a complete position: the grid, the side to move and the location of both kings.
// It holds no pointers, so plain assignment yields an independent copy.
type GameState struct {
	grid  Grid
	turn  Color
	kings [2]Position // indexed by Color
}

// NewGame returns the standard initial position with White to move.
func NewGame() GameState {
	back := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	var g Grid
	for file, k := range back {
		g[0][file] = MakePiece(White, k)
		g[1][file] = WhitePawn
		g[6][file] = BlackPawn
		g[7][file] = MakePiece(Black, k)
	}
	return GameState{
		grid:  g,
		turn:  White,
		kings: [2]Position{Pos(4, 0), Pos(4, 7)},
	}
}

// NewGameState builds a state from a literal grid. kings[White] and kings[Black] must name
// squares holding that side's king; anything else is a programming error and panics.
func NewGameState(grid Grid, turn Color, kings [2]Position) GameState {
	s := GameState{grid: grid, turn: turn, kings: kings}
	if err := s.Validate(); err != nil {
		panic("schaakmg.NewGameState: " + err.Error())
	}
	return s
}

// Validate checks that the king cache agrees with the grid.
func (s *GameState) Validate() error {
	for _, c := range [2]Color{White, Black} {
		k := s.kings[c]
		if !k.OnBoard() {
			return fmt.Errorf("%s king cached off the board at %v", c, k)
		}
		if got := s.PieceAt(k); got != MakePiece(c, King) {
			return fmt.Errorf("%s king cached on %v but square holds %v", c, k, got)
		}
	}
	return nil
}

// PieceAt returns the piece on p, or NoPiece when p is empty or off the board.
func (s *GameState) PieceAt(p Position) Piece {
	if !p.OnBoard() {
		return NoPiece
	}
	return s.grid[p.Rank][p.File]
}

// SideToMove reports which side is to play.
func (s *GameState) SideToMove() Color { return s.turn }

// KingPosition returns the cached square of c's king.
func (s *GameState) KingPosition(c Color) Position { return s.kings[c] }

// Grid returns a copy of the board cells.
func (s *GameState) Grid() Grid { return s.grid }

// ForEachPiece visits occupied squares in a1..h8 order.
func (s *GameState) ForEachPiece(fn func(Position, Piece)) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if p := s.grid[rank][file]; p != NoPiece {
				fn(Position{file, rank}, p)
			}
		}
	}
}

// String renders the board from White's point of view, rank 8 at the top.
func (s *GameState) String() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString(" |")
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(s.grid[rank][file].Letter())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move\n", s.turn)
	return sb.String()
}
