package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// formatSummary renders the end-of-run summary block.
func formatSummary(s Summary) string {
	var b strings.Builder
	b.WriteString("--- Summary ---\n")
	b.WriteString(fmt.Sprintf("Files converted: %d\n", s.TotalFiles-s.FailedFiles))
	b.WriteString(fmt.Sprintf("Values written: %d\n", s.TotalValues))
	b.WriteString(fmt.Sprintf("Lines skipped: %d\n", s.SkippedLines))
	if s.FailedFiles > 0 {
		b.WriteString(fmt.Sprintf("Files failed: %d\n", s.FailedFiles))
	}
	return b.String()
}

// clipboardWriter matches clipboard.WriteAll.
type clipboardWriter func(text string) error

// deliverSummary prints the summary or copies it to the clipboard, falling back to
// printing when the clipboard is unavailable.
func deliverSummary(text string, toClipboard bool, copyFn clipboardWriter, emit func(string)) error {
	if !toClipboard {
		emit(text)
		return nil
	}
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	if err := copyFn(text); err != nil {
		emit(text)
		return fmt.Errorf("error writing to clipboard: %w", err)
	}
	emit("Summary copied to clipboard.\n")
	return nil
}
