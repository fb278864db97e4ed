package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// runStep runs one stage of the benchmark suite, echoes everything it printed and returns its
// exit status. A command that cannot be started counts as status 1.
func runStep(name string, args ...string) int {
	step := exec.Command(name, args...)
	step.Env = os.Environ()
	var output bytes.Buffer
	step.Stdout = &output
	step.Stderr = &output
	err := step.Run()
	fmt.Print(output.String())
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchrun: %s: %v\n", name, err)
		return 1
	}
	return 0
}

func main() {
	// Run all benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/benchrun
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := runStep("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, depth := range []string{"3", "4", "5"} {
		runStep("go", "run", "./cmd/perft", "-depth", depth, "-label", "Initial")
	}
	runStep("go", "run", "./cmd/perft", "-fen", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"-depth", "2", "-label", "Endgame", "-verify")

	fmt.Println("\nSearch Performance:")
	code = runStep("go", "run", "./cmd/searchbench", "-depth", "3")
	os.Exit(code)
}
