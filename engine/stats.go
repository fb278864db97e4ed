package engine

import "fmt"

// Stats counts the work done by one search.
type Stats struct {
	Nodes   uint64 // positions visited, leaves included
	Leaves  uint64 // positions scored by Evaluate
	Cutoffs uint64 // move loops abandoned once alpha >= beta
}

func (s *Stats) Reset() { *s = Stats{} }

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Leaves += other.Leaves
	s.Cutoffs += other.Cutoffs
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes %d leaves %d cutoffs %d", s.Nodes, s.Leaves, s.Cutoffs)
}
