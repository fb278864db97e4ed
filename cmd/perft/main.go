package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	gm "schaakmaat/schaakmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Cross-check the count with goosemg and dragontoothmg (only meaningful while no promotion is reachable)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	if *repeat < 1 {
		*repeat = 1
	}

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		printDivide(&board, *depth)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += gm.Perft(&board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	verified := true
	if *verify {
		verified = verifyCounts(&board, *depth, totalNodes/uint64(*repeat))
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}

	if !verified {
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func printDivide(board *gm.GameState, depth int) {
	div := gm.PerftDivide(board, depth)
	counts := make(map[string]uint64, len(div))
	var sum uint64
	for m, n := range div {
		counts[m.String()] = n
		sum += n
	}
	// Sort moves for stable output
	keys := maps.Keys(counts)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, counts[k])
	}
	fmt.Printf("Total: %d\n", sum)
}

// verifyCounts recomputes the count with two independent generators. Both play full chess, so
// they only agree with this package while castling, en passant and promotion stay out of reach.
func verifyCounts(board *gm.GameState, depth int, nodes uint64) bool {
	fen := board.ToFEN()
	ok := true

	gb, err := goose.ParseFEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goosemg ParseFEN error: %v\n", err)
		return false
	}
	if n := goose.Perft(gb, depth); n != nodes {
		fmt.Printf("verify goosemg: MISMATCH %d (ours %d)\n", n, nodes)
		ok = false
	} else {
		fmt.Printf("verify goosemg: ok %d\n", n)
	}

	db := dragontoothmg.ParseFen(fen)
	if n := dragontoothPerft(&db, depth); n != nodes {
		fmt.Printf("verify dragontoothmg: MISMATCH %d (ours %d)\n", n, nodes)
		ok = false
	} else {
		fmt.Printf("verify dragontoothmg: ok %d\n", n)
	}
	return ok
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}
