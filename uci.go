package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"schaakmaat/engine"
	gm "schaakmaat/schaakmg"
)

// Depth used by "go" without a depth option; there is no clock to budget against.
const defaultDepth = 4

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	board := gm.NewGame() // the game board
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name Schaakmaat")
			fmt.Fprintln(out, "id author Schaakmaat developers")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			board = gm.NewGame()
		case "quit":
			return
		case "eval":
			fmt.Fprintf(out, "info string eval %d material %d outcome %s\n",
				engine.Evaluate(&board), engine.Material(&board), board.Outcome())
		case "d":
			fmt.Fprint(out, board.String())
			fmt.Fprintf(out, "Fen: %s\n", board.ToFEN())
		case "go":
			depth, ok := parseGo(tokens[1:], out)
			if !ok {
				continue
			}
			searchAndReport(&board, depth, out)
		case "position":
			next, ok := parsePosition(tokens[1:], out)
			if !ok {
				continue
			}
			board = next
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
}

// parseGo reads the depth option. Clock options are accepted and skipped.
func parseGo(args []string, out io.Writer) (int, bool) {
	depth := defaultDepth
	for i := 0; i < len(args); i++ {
		token := strings.ToLower(args[i])
		switch token {
		case "infinite":
			continue
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes":
			if i+1 >= len(args) {
				fmt.Fprintln(out, "info string Malformed go command option", token)
				return 0, false
			}
			i++
		case "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(out, "info string Malformed go command option depth")
				return 0, false
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil || d < 0 {
				fmt.Fprintln(out, "info string Malformed go command option; could not convert depth")
				return 0, false
			}
			depth = d
		default:
			fmt.Fprintln(out, "info string Unknown go subcommand", token)
		}
	}
	return depth, true
}

func searchAndReport(board *gm.GameState, depth int, out io.Writer) {
	var searcher engine.Searcher
	res := searcher.AlphaBeta(board, depth, engine.MinScore, engine.MaxScore)
	fmt.Fprintf(out, "info depth %d score %s nodes %d pv %s\n",
		depth,
		engine.FormatScore(res.Score, len(res.PV.Moves), board.SideToMove()),
		searcher.Stats.Nodes,
		res.PV.String())
	fmt.Fprintln(out, "bestmove", res.Move)
}

// parsePosition handles "startpos|fen <fields> [moves <m1> ...]". On any error the current
// position is kept and false is returned.
func parsePosition(args []string, out io.Writer) (gm.GameState, bool) {
	if len(args) == 0 {
		fmt.Fprintln(out, "info string Malformed position command")
		return gm.GameState{}, false
	}

	var board gm.GameState
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		board = gm.NewGame()
	case "fen":
		i := 0
		for i < len(rest) && strings.ToLower(rest[i]) != "moves" {
			i++
		}
		if i == 0 {
			fmt.Fprintln(out, "info string Invalid fen position")
			return gm.GameState{}, false
		}
		var err error
		board, err = gm.ParseFEN(strings.Join(rest[:i], " "))
		if err != nil {
			fmt.Fprintln(out, "info string", err)
			return gm.GameState{}, false
		}
		rest = rest[i:]
	default:
		fmt.Fprintln(out, "info string Invalid position subcommand")
		return gm.GameState{}, false
	}

	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return board, true
	}
	for _, moveStr := range rest[1:] {
		move, err := gm.ParseMove(moveStr)
		if err != nil {
			fmt.Fprintln(out, "info string", err)
			return gm.GameState{}, false
		}
		if !slices.Contains(board.LegalMoves(), move) {
			fmt.Fprintln(out, "info string Move", moveStr, "not found for position", board.ToFEN())
			return gm.GameState{}, false
		}
		board.Apply(move)
	}
	return board, true
}
