// Command tsumesolve is a batch tsumeshogi solver: it reads one or more
// positions (SFEN strings, file paths, or "-" for stdin), solves each with
// the DFPN kernel, and prints the mating line in the requested notation.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/komadai/tsumedfpn/internal/cache"
	"github.com/komadai/tsumedfpn/internal/dfpn"
	"github.com/komadai/tsumedfpn/internal/notation"
	"github.com/komadai/tsumedfpn/internal/shogi"
	"github.com/komadai/tsumedfpn/internal/solver"
)

func main() {
	os.Exit(run())
}

// run holds the whole CLI body so that deferred cleanup (closing the puzzle
// cache's database) executes before the process exits; os.Exit in main would
// skip it.
func run() int {
	inputFormat := flag.String("input-format", "sfen", "input format: sfen|csa|kif")
	outputFormat := flag.String("output-format", "usi", "output format: usi|csa|kifu")
	timeout := flag.Duration("timeout", 0, "time budget per position, 0 = unbounded")
	table := flag.String("table", "hashmap", "transposition table: hashmap|vec|badger")
	cachePath := flag.String("cache", "", "path to a badger puzzle-solution cache (optional)")
	verbose := flag.Bool("verbose", false, "log solve duration and table occupancy to stderr")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "tsumesolve: at least one input (SFEN string, file path, or -) is required")
		return 2
	}

	var puzzleCache *cache.Cache
	if *cachePath != "" {
		c, err := cache.Open(*cachePath)
		if err != nil {
			log.Printf("tsumesolve: opening cache: %v", err)
			return 1
		}
		defer c.Close()
		puzzleCache = c
	}

	// Ctrl-C cancels the in-flight solve through the same context the
	// per-position timeout uses; the kernel's cooperative poll observes
	// either and unwinds cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exit := 0
	for _, input := range inputs {
		if err := solveOne(ctx, input, *inputFormat, *outputFormat, *table, *timeout, puzzleCache, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "tsumesolve: %s: %v\n", input, err)
			exit = 1
		}
		if ctx.Err() != nil {
			break
		}
	}
	return exit
}

func solveOne(ctx context.Context, input, inputFormat, outputFormat, table string, timeout time.Duration, puzzleCache *cache.Cache, verbose bool) error {
	raw, err := readInput(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	pos, err := parsePosition(raw, inputFormat)
	if err != nil {
		return fmt.Errorf("parsing position: %w", err)
	}
	sfen := notation.FormatSFEN(pos)

	if puzzleCache != nil {
		if entry, ok := puzzleCache.Lookup(sfen); ok {
			printResult(input, entry.Moves, entry.Solved)
			return nil
		}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	line, tbl, solveErr := solveWithTable(ctx, pos, table)
	elapsed := time.Since(start)
	if solveErr != nil {
		return solveErr
	}

	if verbose {
		logSolveStats(input, elapsed, tbl)
	}

	formatted := formatLine(pos, line, outputFormat)
	printResult(input, formatted, len(line) > 0)

	if puzzleCache != nil {
		puzzleCache.Store(sfen, cache.Entry{
			Moves:    notation.FormatUSISequence(line),
			Solved:   len(line) > 0,
			Duration: elapsed,
		})
	}
	return nil
}

// sizedTable is satisfied by transposition tables that can report how many
// distinct positions they currently hold, which is only meaningful for
// HashMapTable (VecTable's slot count is fixed and BadgerTable's occupancy
// requires a disk scan not worth paying for here).
type sizedTable interface {
	Len() int
}

func solveWithTable(ctx context.Context, pos *shogi.Position, table string) ([]shogi.Move, dfpn.Table, error) {
	adapted := solver.NewPosition(pos)
	switch table {
	case "hashmap":
		tbl := dfpn.NewHashMapTable(0)
		line, err := solver.Solve(ctx, adapted, tbl)
		return line, tbl, err
	case "vec":
		tbl := dfpn.NewVecTable(dfpn.DefaultVecTableBits)
		line, err := solver.RequireExactTable(ctx, adapted, tbl)
		return line, tbl, err
	case "badger":
		dir, err := cache.GetDatabaseDir()
		if err != nil {
			return nil, nil, err
		}
		tbl, err := dfpn.OpenBadgerTable(dir)
		if err != nil {
			return nil, nil, err
		}
		defer tbl.Close()
		line, err := solver.RequireExactTable(ctx, adapted, tbl)
		return line, tbl, err
	default:
		return nil, nil, fmt.Errorf("unknown table kind %q", table)
	}
}

// logSolveStats prints a human-readable solve summary to stderr under
// -verbose: elapsed wall time and, for tables that can report it, how many
// distinct positions ended up in the transposition table.
func logSolveStats(input string, elapsed time.Duration, tbl dfpn.Table) {
	if sized, ok := tbl.(sizedTable); ok {
		log.Printf("tsumesolve: %s: solved in %s, %s positions in table", input, elapsed, humanize.Comma(int64(sized.Len())))
		return
	}
	log.Printf("tsumesolve: %s: solved in %s", input, elapsed)
}

func readInput(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		return string(data), err
	}
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		data, err := os.ReadFile(input)
		return string(data), err
	}
	return input, nil
}

func parsePosition(raw, format string) (*shogi.Position, error) {
	switch format {
	case "sfen":
		return notation.ParseSFEN(strings.TrimSpace(raw))
	case "csa":
		return notation.ParseCSA(raw)
	case "kif":
		return notation.ParseKIF(raw)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func formatLine(pos *shogi.Position, line []shogi.Move, format string) []string {
	switch format {
	case "csa":
		return notation.FormatCSASequence(pos, line)
	case "kifu":
		return notation.FormatKIFUSequence(pos, line)
	default:
		return notation.FormatUSISequence(line)
	}
}

func printResult(input string, moves []string, solved bool) {
	if !solved {
		fmt.Printf("%s: no mate found\n", input)
		return
	}
	fmt.Printf("%s: %s\n", input, strings.Join(moves, " "))
}
