package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/sync/errgroup"

	"schaakmaat/engine"
	gm "schaakmaat/schaakmg"
)

// Built-in suite: forced mates for White of increasing length.
var puzzles = []struct {
	name string
	fen  string
}{
	{"mate-in-one", "r1b2rk1/pppp2p1/8/3qPN1Q/8/8/P5PP/b1B2R1K w - - 0 1"},
	{"mate-in-two", "3r2rk/p4p1p/3p1Pp1/3R4/2p1B2Q/8/1q4PP/4R1K1 w - - 0 1"},
	{"mate-in-three", "r1bq1n1r/pp3QpB/2p1pb2/5R2/2pPk3/8/PPP3PP/R5K1 w - - 0 1"},
}

type job struct {
	name  string
	board gm.GameState
	run   int
}

type result struct {
	job
	res     engine.Result
	stats   engine.Stats
	elapsed time.Duration
}

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 3, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run per position")
	fenFlag := flag.String("fen", "", "FEN to search (empty = built-in mate puzzles)")
	workersFlag := flag.Int("workers", runtime.NumCPU(), "number of concurrent searches")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag < 0 {
		log.Fatalf("depth must not be negative, got %d", *depthFlag)
	}
	if *workersFlag <= 0 {
		log.Fatalf("workers must be positive, got %d", *workersFlag)
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	var jobs []job
	if *fenFlag != "" {
		board, err := gm.ParseFEN(*fenFlag)
		if err != nil {
			log.Fatalf("bad -fen: %v", err)
		}
		for i := 0; i < *repeatFlag; i++ {
			jobs = append(jobs, job{name: "fen", board: board, run: i + 1})
		}
	} else {
		for _, p := range puzzles {
			board := gm.MustParseFEN(p.fen)
			for i := 0; i < *repeatFlag; i++ {
				jobs = append(jobs, job{name: p.name, board: board, run: i + 1})
			}
		}
	}

	fmt.Printf("searchbench: positions=%d depth=%d repeat=%d workers=%d\n",
		len(jobs)/max(*repeatFlag, 1), *depthFlag, *repeatFlag, *workersFlag)

	startAll := time.Now()
	results, err := runJobs(context.Background(), jobs, *depthFlag, *workersFlag)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	totalElapsed := time.Since(startAll)

	var total engine.Stats
	for _, r := range results {
		total.Add(r.stats)
		fmt.Printf("%s run %d: bestmove %v score %s pv %s  %v  time=%v\n",
			r.name, r.run, r.res.Move,
			engine.FormatScore(r.res.Score, len(r.res.PV.Moves), r.board.SideToMove()),
			r.res.PV, r.stats, r.elapsed)
	}
	fmt.Printf("total: %v  time: %v\n", total, totalElapsed)

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}

// runJobs fans the searches out over workers goroutines. Every worker owns its Searcher and
// every job carries its own copy of the board. Results come back in job order.
func runJobs(ctx context.Context, jobs []job, depth, workers int) ([]result, error) {
	g, ctx := errgroup.WithContext(ctx)

	indexes := make(chan int)
	results := make([]result, len(jobs))

	g.Go(func() error {
		defer close(indexes)
		for i := range jobs {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			searcher := engine.NewSearcher()
			for i := range indexes {
				j := jobs[i]
				searcher.Stats.Reset()
				start := time.Now()
				res := searcher.AlphaBeta(&j.board, depth, engine.MinScore, engine.MaxScore)
				results[i] = result{job: j, res: res, stats: searcher.Stats, elapsed: time.Since(start)}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
