package schaakmg

import (
	"fmt"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// ParseFEN reads piece placement and side to move. Castling rights, the en passant square and
// the move clocks are accepted for compatibility but ignored, since none of them are modelled.
// Each side must have exactly one king so the king cache can be filled.
func ParseFEN(fen string) (GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return GameState{}, fmt.Errorf("%w: need placement and side to move", ErrInvalidFEN)
	}

	var s GameState
	var kingCount [2]int

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return GameState{}, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return GameState{}, fmt.Errorf("%w: empty rank description", ErrInvalidFEN)
		}
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromChar(ch)
			if p == NoPiece {
				return GameState{}, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return GameState{}, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			s.grid[rank][file] = p
			if p.Kind() == King {
				kingCount[p.Color()]++
				s.kings[p.Color()] = Position{file, rank}
			}
			file++
		}
		if file != 8 {
			return GameState{}, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, rank+1)
		}
	}

	switch fields[1] {
	case "w":
		s.turn = White
	case "b":
		s.turn = Black
	default:
		return GameState{}, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	for _, c := range [2]Color{White, Black} {
		if kingCount[c] != 1 {
			return GameState{}, fmt.Errorf("%w: %s has %d kings", ErrInvalidFEN, c, kingCount[c])
		}
	}
	return s, nil
}

// MustParseFEN is ParseFEN that panics on invalid input.
func MustParseFEN(fen string) GameState {
	s, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// ToFEN writes placement and side to move. The remaining fields are fixed at "- - 0 1".
func (s *GameState) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := s.grid[rank][file]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if s.turn == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
