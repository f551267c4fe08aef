package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
	"go.uber.org/zap"
)

// resultSuffix is appended to the input file name to build the output file name.
const resultSuffix = "_results.txt"

var errInputDir = errors.New("input directory unavailable")

// scanFilters narrows down which input files are converted. The zero value keeps
// every regular file.
type scanFilters struct {
	Include          []string
	Exclude          []string
	SkipHidden       bool
	RespectGitignore bool
	MaxSizeBytes     int64
}

// scanInputDir lists the regular files directly inside dir and pairs each one
// with its results file under outputDir. Subdirectories are not descended into.
func scanInputDir(dir, outputDir string, filters scanFilters, log *zap.SugaredLogger) ([]FilePair, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errInputDir, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", errInputDir, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errInputDir, dir, err)
	}
	// Stable order: lexical
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var ignoreMatcher gitignore.IgnoreMatcher
	if filters.RespectGitignore {
		gitIgnorePath := filepath.Join(dir, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			matcher, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				log.Warnw("could not parse .gitignore", "path", gitIgnorePath, "error", err)
			} else {
				ignoreMatcher = matcher
			}
		}
	}

	var pairs []FilePair
	for _, d := range entries {
		path := filepath.Join(dir, d.Name())
		info, err := os.Stat(path) // follows symlinks to regular files
		if err != nil {
			log.Warnw("could not stat entry", "path", path, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		keep, err := keepFile(d.Name(), info, filters)
		if err != nil {
			return nil, err
		}
		if !keep {
			log.Debugw("skipping file due to filters", "path", path)
			continue
		}
		if ignoreMatcher != nil && ignoreMatcher.Match(path, false) {
			log.Debugw("skipping gitignored file", "path", path)
			continue
		}

		pairs = append(pairs, FilePair{
			InputPath:  path,
			OutputPath: outputPathFor(outputDir, d.Name()),
			Size:       info.Size(),
		})
	}
	return pairs, nil
}

// outputPathFor derives <outputDir>/<name>_results.txt.
func outputPathFor(outputDir, name string) string {
	return filepath.Join(outputDir, name+resultSuffix)
}

// ensureOutputDir creates the output directory and its parents if absent.
func ensureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating output directory %s: %w", dir, err)
	}
	return nil
}

// keepFile applies the name and size filters to a single file.
func keepFile(name string, info fs.FileInfo, filters scanFilters) (bool, error) {
	if filters.SkipHidden && isHidden(name) {
		return false, nil
	}

	excluded, err := matchesAnyPattern(name, filters.Exclude)
	if err != nil {
		return false, fmt.Errorf("exclude pattern error: %w", err)
	}
	if excluded {
		return false, nil
	}

	if len(filters.Include) > 0 {
		included, err := matchesAnyPattern(name, filters.Include)
		if err != nil {
			return false, fmt.Errorf("include pattern error: %w", err)
		}
		if !included {
			return false, nil
		}
	}

	if filters.MaxSizeBytes > 0 && info.Size() > filters.MaxSizeBytes {
		return false, nil
	}
	return true, nil
}

// parsePatterns splits a comma-separated string of patterns into a slice.
func parsePatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(patterns, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// matchesAnyPattern checks if the given name matches any of the provided glob patterns.
func matchesAnyPattern(name string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// isHidden checks if a file name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}
