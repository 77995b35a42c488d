// Package batch runs independent puzzle solves concurrently. It does
// not parallelize a single search — that stays a sequential
// depth-first walk inside pkg/constraint — it bounds how many
// independent Solve calls run at once across a batch of input files,
// adapted from the worker-pool shape of
// gitrdm/gokanlogic's internal/parallel.WorkerPool (maxWorkers
// defaulting to the number of CPU cores) onto
// golang.org/x/sync/errgroup, in the style of
// Consensys-gnark/constraint's parallel serialization and
// vancomm-minesweeper-server/cmd/mines' server shutdown group.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one independent unit of work submitted to Run: a puzzle
// identified by Path, solved by calling Solve.
type Job struct {
	Path  string
	Solve func(ctx context.Context) error
}

// Result is the outcome of running a single Job.
type Result struct {
	Path string
	Err  error
}

// Run executes every job in jobs, bounded to at most maxWorkers
// concurrent Solve calls. If maxWorkers is 0 or negative it defaults
// to runtime.NumCPU(), matching WorkerPool's default. Run does not
// stop early on the first error: every job gets a Result, in the same
// order as jobs, so a batch front-end can report every failure rather
// than only the first one.
func Run(ctx context.Context, jobs []Job, maxWorkers int) []Result {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	results := make([]Result, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxWorkers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			results[i] = Result{Path: job.Path, Err: job.Solve(gCtx)}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
