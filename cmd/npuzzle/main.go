// Command npuzzle loads a sliding-puzzle board from an optional description
// file (or scrambles a demo board when no file is given), prints the board
// and its hint panel, and solves it with budget-bounded A*.
//
// Board description format: first line N, then N lines of N integers.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/hint"
	"github.com/katalvlaran/npuzzle/solve"
)

// Demo parameters used when no board file is supplied.
const (
	demoSize     = 4
	demoScramble = 60
	solveBudget  = 5 * time.Second
)

func main() {
	cmd := &cli.Command{
		Name:      "npuzzle",
		Usage:     "solve an N×N sliding-tile puzzle with A*",
		ArgsUsage: "[board-file]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return run(cmd.Args().First())
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "npuzzle:", err)
		os.Exit(1)
	}
}

// run loads (or scrambles) the board, prints the hint panel, and solves.
func run(path string) error {
	b, err := loadBoard(path)
	if err != nil {
		return err
	}

	fmt.Println(b)
	fmt.Println()

	if err = printPanel(b); err != nil {
		return err
	}

	return solveBoard(b)
}

// loadBoard parses the description file at path, or scrambles the demo
// board when path is empty. The demo scramble is time-seeded: the library
// takes an explicit RNG, and a fresh puzzle per invocation is the point of
// the demo.
func loadBoard(path string) (*board.Board, error) {
	if path == "" {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		return board.Scramble(demoSize, demoScramble, rng)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return board.Parse(f)
}

// printPanel prints the current heuristic, each legal neighbor's heuristic,
// and the engine's suggested move, in the style of a display side panel.
func printPanel(b *board.Board) error {
	panel, err := hint.NewAdvisor(solve.WithTimeLimit(time.Second)).Advise(b)
	if err != nil {
		return err
	}

	fmt.Printf("h: %d\n", panel.Current)
	for _, mv := range []board.Move{board.MoveUp, board.MoveDown, board.MoveLeft, board.MoveRight} {
		h, ok := panel.Neighbor[mv]
		if !ok {
			fmt.Printf("%-5s: -\n", mv)

			continue
		}
		marker := ""
		if panel.HasBest && panel.Best == mv {
			marker = "  <- best"
		}
		fmt.Printf("%-5s: h=%d%s\n", mv, h, marker)
	}
	fmt.Println()

	return nil
}

// solveBoard runs A* under the demo budget and prints the outcome.
func solveBoard(b *board.Board) error {
	res, err := solve.AStar(b, solve.WithTimeLimit(solveBudget))
	if err != nil {
		return err
	}

	if !res.Found {
		fmt.Printf("no solution within %v (%d nodes expanded); try a larger budget\n",
			solveBudget, res.Expanded)

		return nil
	}

	fmt.Printf("solved in %d moves (%d nodes expanded, %v):\n",
		len(res.Moves), res.Expanded, res.Elapsed.Round(time.Millisecond))
	for i, mv := range res.Moves {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(mv)
	}
	fmt.Println()

	return nil
}
