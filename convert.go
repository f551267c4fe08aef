package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// convertFile runs parse, collect and write for a single pair. The input handle
// stays open until the results are written and is closed on every return path.
// A read error leaves no results file behind.
func convertFile(pair FilePair) FileResult {
	res := FileResult{Pair: pair}

	in, err := os.Open(pair.InputPath)
	if err != nil {
		res.Err = fmt.Errorf("error opening input file %s: %w", pair.InputPath, err)
		return res
	}
	defer in.Close()

	collector := newIntCollector()
	res.Accepted, res.Skipped, err = collectLines(in, collector)
	if err != nil {
		res.Err = fmt.Errorf("error reading input file %s: %w", pair.InputPath, err)
		return res
	}

	res.Unique, res.Err = writeResults(pair.OutputPath, collector.All())
	return res
}

// convertAll converts every pair, spreading the work over numWorkers goroutines.
// Results are returned in the order of pairs.
func convertAll(pairs []FilePair, numWorkers int, log *zap.SugaredLogger) []FileResult {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(pairs) {
		numWorkers = len(pairs)
	}

	results := make([]FileResult, len(pairs))
	if numWorkers <= 1 {
		for i, p := range pairs {
			results[i] = convertFile(p)
			logResult(log, results[i])
		}
		return results
	}

	log.Debugw("using worker pool", "workers", numWorkers)
	jobs := make(chan int, len(pairs))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go convertWorker(pairs, results, jobs, &wg, log)
	}
	for i := range pairs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// convertWorker drains job indexes; each index is written by exactly one worker.
func convertWorker(pairs []FilePair, results []FileResult, jobs <-chan int, wg *sync.WaitGroup, log *zap.SugaredLogger) {
	defer wg.Done()
	for i := range jobs {
		results[i] = convertFile(pairs[i])
		logResult(log, results[i])
	}
}

func logResult(log *zap.SugaredLogger, r FileResult) {
	if r.Err != nil {
		log.Errorw("file conversion failed", "input", r.Pair.InputPath, "error", r.Err)
		return
	}
	log.Infow("file converted",
		"input", r.Pair.InputPath,
		"output", r.Pair.OutputPath,
		"unique", r.Unique,
		"skipped", r.Skipped,
	)
}
