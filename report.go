package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RunReport is the manifest written by --report.
type RunReport struct {
	GeneratedAt time.Time    `yaml:"generated_at"`
	InputDir    string       `yaml:"input_dir"`
	OutputDir   string       `yaml:"output_dir"`
	Summary     ReportTotals `yaml:"summary"`
	Files       []ReportFile `yaml:"files"`
}

// ReportTotals mirrors Summary with yaml keys.
type ReportTotals struct {
	Files        int `yaml:"files"`
	Failed       int `yaml:"failed"`
	Values       int `yaml:"values"`
	SkippedLines int `yaml:"skipped_lines"`
}

// ReportFile describes one converted (or failed) input file.
type ReportFile struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Accepted int    `yaml:"accepted"`
	Unique   int    `yaml:"unique"`
	Skipped  int    `yaml:"skipped"`
	Error    string `yaml:"error,omitempty"`
}

func buildReport(opts Options, results []FileResult, now time.Time) RunReport {
	s := summarize(results)
	report := RunReport{
		GeneratedAt: now.UTC(),
		InputDir:    opts.InputDir,
		OutputDir:   opts.OutputDir,
		Summary: ReportTotals{
			Files:        s.TotalFiles,
			Failed:       s.FailedFiles,
			Values:       s.TotalValues,
			SkippedLines: s.SkippedLines,
		},
		Files: make([]ReportFile, 0, len(results)),
	}
	for _, r := range results {
		f := ReportFile{
			Input:    r.Pair.InputPath,
			Output:   r.Pair.OutputPath,
			Accepted: r.Accepted,
			Unique:   r.Unique,
			Skipped:  r.Skipped,
		}
		if r.Err != nil {
			f.Error = r.Err.Error()
		}
		report.Files = append(report.Files, f)
	}
	return report
}

// writeReport marshals report as YAML to path.
func writeReport(path string, report RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing report %s: %w", path, err)
	}
	return nil
}

