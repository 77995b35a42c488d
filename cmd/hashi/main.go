// Command hashi solves Hashiwokakero puzzles using
// github.com/ricbit/constraint/pkg/constraint, grounded on
// Consensys-gnark/cmd's cobra layout (one file per command, flag vars
// declared alongside their command, PersistentFlags wired in init).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ricbit/constraint/pkg/constraint"
	"github.com/ricbit/constraint/pkg/constraintlog"
	"github.com/ricbit/constraint/pkg/hashi"
	"github.com/ricbit/constraint/internal/batch"
)

var (
	fOutputPath string
	fLogLevel   string
	fWorkers    int
)

var rootCmd = &cobra.Command{
	Use:   "hashi [puzzle]",
	Short: "Solve a Hashiwokakero puzzle",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSolve,
}

var solveManyCmd = &cobra.Command{
	Use:   "solve-many [puzzle...]",
	Short: "Solve several Hashiwokakero puzzles concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSolveMany,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fLogLevel, "log-level", "info", "log level: trace, debug, info, warn, error, disabled")
	rootCmd.Flags().StringVar(&fOutputPath, "output", "", "path for the solved .dot file (default: <puzzle>.dot)")

	solveManyCmd.Flags().IntVar(&fWorkers, "workers", 0, "max concurrent solves (default: number of CPUs)")
	rootCmd.AddCommand(solveManyCmd)
}

func setLogLevel() error {
	level, err := zerolog.ParseLevel(fLogLevel)
	if err != nil {
		return fmt.Errorf("hashi: %w", err)
	}
	constraintlog.SetLevel(level)
	return nil
}

func solveOne(path, outputPath string) error {
	var r *os.File
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p, err := hashi.Parse(r)
	if err != nil {
		return err
	}

	m := constraint.NewModel()
	if err := p.Build(m); err != nil {
		return err
	}

	s := constraint.NewSolver(m, constraint.WithLogger(constraintlog.Logger()))
	outcome, err := s.Solve(context.Background())
	if err != nil {
		return err
	}
	if outcome != constraint.Solved {
		return fmt.Errorf("hashi: %s is %s", path, outcome)
	}

	if outputPath == "" {
		outputPath = defaultDotPath(path, "hashi")
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	return hashi.WriteDot(out, p, s)
}

func defaultDotPath(inputPath, fallback string) string {
	if inputPath == "" {
		return fallback + ".dot"
	}
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".dot"
}

func runSolve(cmd *cobra.Command, args []string) error {
	if err := setLogLevel(); err != nil {
		return err
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	return solveOne(path, fOutputPath)
}

func runSolveMany(cmd *cobra.Command, args []string) error {
	if err := setLogLevel(); err != nil {
		return err
	}
	jobs := make([]batch.Job, len(args))
	for i, path := range args {
		path := path
		jobs[i] = batch.Job{
			Path: path,
			Solve: func(ctx context.Context) error {
				return solveOne(path, "")
			},
		}
	}

	results := batch.Run(cmd.Context(), jobs, fWorkers)
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		fmt.Printf("%s: solved\n", r.Path)
	}
	if failed > 0 {
		return fmt.Errorf("hashi: %d of %d puzzles failed", failed, len(results))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
