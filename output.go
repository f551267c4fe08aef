package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"sort"
	"strconv"
	"strings"
)

// writeResults creates (or truncates) path and writes one value per line.
// It returns the number of values written.
func writeResults(path string, values iter.Seq[int]) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("error creating output file %s: %w", path, err)
	}
	n, err := writeValues(f, values)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("error writing output file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("error closing output file %s: %w", path, err)
	}
	return n, nil
}

// writeValues writes values to w, each followed by the platform line terminator.
func writeValues(w io.Writer, values iter.Seq[int]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for v := range values {
		if _, err := bw.WriteString(strconv.Itoa(v) + lineTerminator); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// printPlan generates the listing shown by --dry-run.
func printPlan(pairs []FilePair) string {
	var builder strings.Builder
	sorted := make([]FilePair, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool { // Sort by path for consistent output
		return sorted[i].InputPath < sorted[j].InputPath
	})

	for _, p := range sorted {
		builder.WriteString(fmt.Sprintf("%s -> %s (%d bytes)\n", p.InputPath, p.OutputPath, p.Size))
	}
	builder.WriteString(fmt.Sprintf("%d file(s) would be converted.\n", len(sorted)))
	return builder.String()
}
