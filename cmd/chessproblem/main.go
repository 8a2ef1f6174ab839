// chessproblem solves mate-in-N, self-mate-in-N and help-mate-in-N
// problems read from a problem definition file.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/augurmate/chessproblem/internal/board"
	"github.com/augurmate/chessproblem/internal/problem"
	"github.com/augurmate/chessproblem/internal/search"
)

const programVersion = "0.1.0"

var (
	verbose      = flag.Bool("v", false, "log search progress")
	version      = flag.Bool("version", false, "print the version and exit")
	maxSolutions = flag.Uint64("n", 2, "print at most this many solutions (0 means all)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: chessproblem [-v] [-n X] problem-file\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chessproblem version %s\n", programVersion)
		os.Exit(0)
	}

	setupLogging()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	fc, err := loadFileConfig(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("load problem file")
		os.Exit(1)
	}

	var solutionNum atomic.Uint64
	var firstMoves []string
	cb := search.Callbacks{
		// The search's output mutex (internal/search) already serializes
		// every call into this closure, so appending to firstMoves needs
		// no lock of its own.
		Output: func(pos *board.Position) bool {
			n := solutionNum.Add(1)
			history := pos.RenderHistory()
			firstMoves = append(firstMoves, history[0])
			printSolution(n, pos, fc.Mode)
			if *maxSolutions != 0 && n >= *maxSolutions {
				return false
			}
			return true
		},
	}
	if *verbose {
		cb.ProgressMove = func(m board.Move, pos *board.Position) bool {
			log.Debug().Str("move", pos.Render(m)).Int("depth", pos.MoveStackLen()).Msg("try")
			return true
		}
	}

	p, err := buildProblem(fc, cb)
	if err != nil {
		log.Error().Err(err).Msg("invalid problem")
		os.Exit(1)
	}

	n := problem.Solve(p)
	distinctFirstMoves := lo.Uniq(firstMoves)
	log.Info().
		Uint64("solutions", n).
		Int("distinct_first_moves", len(distinctFirstMoves)).
		Msg("search complete")

	if n != 1 {
		os.Exit(1)
	}
}

// printSolution prints the move stack's first move (mate/selfmate,
// where only the attacker's opening move is the "solution") or the
// full line (help-mate, where the whole cooperative sequence matters).
func printSolution(n uint64, pos *board.Position, mode string) {
	history := pos.RenderHistory()
	if mode != "helpmate" {
		fmt.Printf("Solution %d: %s\n", n, history[0])
		return
	}
	fmt.Printf("Solution %d:", n)
	for _, m := range history {
		fmt.Printf(" %s", m)
	}
	fmt.Println()
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
