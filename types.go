package main

// FilePair associates one scanned input file with the results file derived from it.
type FilePair struct {
	InputPath  string
	OutputPath string
	Size       int64
}

// FileResult holds the outcome of converting a single FilePair.
type FileResult struct {
	Pair     FilePair
	Accepted int   // Lines that parsed as in-range integers (duplicates included)
	Unique   int   // Distinct values written to the output file
	Skipped  int   // Lines rejected by the parser
	Err      error // Set when the file could not be read or written
}

// Summary holds aggregated information about the run.
type Summary struct {
	TotalFiles   int
	FailedFiles  int
	TotalValues  int
	SkippedLines int
}

// summarize folds per-file results into a Summary.
func summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		s.TotalFiles++
		if r.Err != nil {
			s.FailedFiles++
			continue
		}
		s.TotalValues += r.Unique
		s.SkippedLines += r.Skipped
	}
	return s
}
