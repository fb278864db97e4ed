package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"schaakmaat/engine"
	gm "schaakmaat/schaakmg"
)

func main() {
	depth := flag.Int("depth", 3, "search depth in plies for both sides")
	fen := flag.String("fen", gm.FENStartPos, "starting position")
	maxPlies := flag.Int("maxplies", 200, "stop after this many plies (0 = no limit)")
	quiet := flag.Bool("quiet", false, "print only the moves, not the board after each one")
	flag.Parse()

	state, err := gm.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}
	if *depth < 1 {
		log.Fatalf("depth must be at least 1, got %d", *depth)
	}

	fmt.Print(state.String())

	searcher := engine.NewSearcher()
	ply := 0
	for *maxPlies == 0 || ply < *maxPlies {
		searcher.Stats.Reset()
		start := time.Now()
		res := searcher.AlphaBeta(&state, *depth, engine.MinScore, engine.MaxScore)
		if !res.HasMove() {
			break
		}
		mover := state.SideToMove()
		state.Apply(res.Move)
		ply++

		fmt.Printf("%d. %s %v  score %s  %v  %v\n", ply, mover, res.Move,
			engine.FormatScore(res.Score, len(res.PV.Moves), mover), searcher.Stats, time.Since(start))
		if !*quiet {
			fmt.Print(state.String())
		}
	}

	switch o := state.Outcome(); o {
	case gm.WhiteWins, gm.BlackWins:
		winner, _ := o.Winner()
		fmt.Printf("%s wins!\n", winner)
	case gm.Stalemate:
		fmt.Println("it's a stalemate!")
	default:
		fmt.Printf("stopped after %d plies, material %d\n", ply, engine.Material(&state))
	}
}
