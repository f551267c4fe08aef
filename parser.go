package main

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

const (
	minValue = -1023
	maxValue = 1023
)

// leadingSpace is the whitespace a C-style integer parse skips before the digits.
const leadingSpace = " \t\n\v\f\r"

// parseLine returns the integer held by line, or false if the line is not a
// valid token. Spaces and tabs are trimmed from both ends and any other leading
// whitespace is skipped; the remaining text must be a complete base-10 integer
// (optional leading '+' or '-') within [minValue, maxValue]. Trailing whitespace
// other than space and tab invalidates the token.
func parseLine(line string) (int, bool) {
	token := strings.Trim(line, " \t")
	if token == "" {
		return 0, false
	}
	token = strings.TrimLeft(token, leadingSpace)
	// Atoi is base 10 only and rejects trailing garbage, underscores and overflow.
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	if v < minValue || v > maxValue {
		return 0, false
	}
	return v, true
}

// collectLines reads r line by line and feeds every valid token into c.
// It returns the number of accepted and skipped lines.
func collectLines(r io.Reader, c *intCollector) (accepted, skipped int, err error) {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return accepted, skipped, readErr
		}
		// A trailing empty read at EOF is not a line.
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if v, ok := parseLine(line); ok {
				c.Add(v)
				accepted++
			} else {
				skipped++
			}
		}
		if readErr != nil {
			return accepted, skipped, nil
		}
	}
}
