package schaakmg

import (
	"fmt"
	"strings"
)

// Move is an ordered (from, to) pair. Captures are implied by the occupant of To when the move
// is applied; no other metadata is carried.
type Move struct {
	From Position
	To   Position
}

// NullMove is the zero Move (a1a1). It is never legal and stands for "no move".
var NullMove Move

// NewMove constructs a Move.
func NewMove(from, to Position) Move { return Move{From: from, To: to} }

// IsNull reports whether m is the NullMove.
func (m Move) IsNull() bool { return m == NullMove }

// String produces coordinate notation, e.g. "e2e4". NullMove prints as "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove converts coordinate notation (e2e4) into a Move. A fifth promotion letter is
// rejected because promotion is not part of the rules modelled here.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "0000" {
		return NullMove, nil
	}
	if len(s) != 4 {
		return NullMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParsePosition(s[0:2])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	to, err := ParsePosition(s[2:4])
	if err != nil {
		return NullMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	return Move{from, to}, nil
}

// MustParseMove is ParseMove that panics on invalid input.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}
