package engine

import (
	"fmt"
	"strings"

	gm "schaakmaat/schaakmg"
)

// PVLine holds the principal variation found below a node, first move first.
type PVLine struct {
	Moves []gm.Move
}

func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

// Update makes move followed by child the new line.
func (pv *PVLine) Update(move gm.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// GetPVMove returns the first move of the line, or NullMove when it is empty.
func (pv *PVLine) GetPVMove() gm.Move {
	if len(pv.Moves) == 0 {
		return gm.NullMove
	}
	return pv.Moves[0]
}

func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// FormatScore renders a White-relative score for UCI info lines, seen from pov. The extremal
// scores are forced wins, reported in moves when plies is the length of the line that reaches
// them.
func FormatScore(score int32, plies int, pov gm.Color) string {
	sign := int64(1)
	if pov == gm.Black {
		sign = -1
	}
	switch score {
	case MaxScore:
		return fmt.Sprintf("mate %d", sign*int64((plies+1)/2))
	case MinScore:
		return fmt.Sprintf("mate %d", -sign*int64((plies+1)/2))
	}
	return fmt.Sprintf("cp %d", sign*int64(score)*100)
}
