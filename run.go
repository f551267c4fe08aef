package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// Default directories used when neither flags, env nor config set them.
const (
	defaultInputDir  = "/Data-structures_algorithm/hw_01/sample_inputs/"
	defaultOutputDir = "/Data-structures_algorithm/hw_01/sample_results/"
)

// Options is the fully resolved configuration of one run.
type Options struct {
	InputDir    string
	OutputDir   string
	GitSubdir   string
	Filters     scanFilters
	Threads     int
	Interactive bool
	DryRun      bool
	Clipboard   bool
	ReportPath  string
}

// runEnv carries the side-effecting collaborators of a run.
type runEnv struct {
	log       *zap.SugaredLogger
	out       io.Writer
	find      finderFunc
	clipboard clipboardWriter
	now       func() time.Time
}

// run scans the input directory and converts every selected file. A returned
// error means the run could not start; per-file failures are only counted.
func run(opts Options, env runEnv) (Summary, error) {
	inputDir, cleanup, err := resolveInputDir(opts.InputDir, opts.GitSubdir, env.log)
	if err != nil {
		return Summary{}, err
	}
	defer cleanup()

	pairs, err := scanInputDir(inputDir, opts.OutputDir, opts.Filters, env.log)
	if err != nil {
		return Summary{}, err
	}
	env.log.Debugw("input scanned", "dir", inputDir, "files", len(pairs))

	if opts.Interactive {
		pairs, err = selectPairs(pairs, env.find)
		if err != nil {
			if errors.Is(err, errSelectionAborted) {
				fmt.Fprintln(env.out, "Interactive selection aborted.")
				return Summary{}, nil
			}
			return Summary{}, err
		}
	}

	if opts.DryRun {
		fmt.Fprint(env.out, printPlan(pairs))
		return Summary{TotalFiles: len(pairs)}, nil
	}

	if err := ensureOutputDir(opts.OutputDir); err != nil {
		return Summary{}, err
	}

	results := convertAll(pairs, opts.Threads, env.log)
	summary := summarize(results)

	if opts.ReportPath != "" {
		now := time.Now
		if env.now != nil {
			now = env.now
		}
		if err := writeReport(opts.ReportPath, buildReport(opts, results, now())); err != nil {
			env.log.Errorw("could not write report", "path", opts.ReportPath, "error", err)
		}
	}

	emit := func(s string) { fmt.Fprint(env.out, s) }
	if err := deliverSummary(formatSummary(summary), opts.Clipboard, env.clipboard, emit); err != nil {
		env.log.Warnw("summary not copied", "error", err)
	}
	return summary, nil
}
