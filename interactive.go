package main

import (
	"errors"
	"fmt"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// errSelectionAborted is returned when the user leaves the picker without choosing.
var errSelectionAborted = errors.New("interactive selection aborted")

// finderFunc matches fuzzyfinder.FindMulti so the picker can be swapped in tests.
type finderFunc func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) ([]int, error)

// selectPairs lets the user pick which scanned files get converted. An empty
// scan yields an empty selection without opening the picker.
func selectPairs(pairs []FilePair, find finderFunc) ([]FilePair, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	idx, err := find(
		pairs,
		func(i int) string {
			return filepath.Base(pairs[i].InputPath)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 { // No selection yet
				return "Select input files to convert. Press Tab to multi-select, Enter to confirm."
			}
			p := pairs[i]
			return fmt.Sprintf("Input: %s\nOutput: %s\nSize: %d bytes", p.InputPath, p.OutputPath, p.Size)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) { // User pressed Esc or Ctrl+C
			return nil, errSelectionAborted
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]FilePair, len(idx))
	for i, index := range idx {
		selected[i] = pairs[index]
	}
	return selected, nil
}
