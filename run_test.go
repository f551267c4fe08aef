package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func testEnv(out *bytes.Buffer) runEnv {
	return runEnv{
		log: zap.NewNop().Sugar(),
		out: out,
		find: func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) ([]int, error) {
			return nil, errors.New("finder not expected")
		},
		clipboard: func(string) error { return errors.New("clipboard not expected") },
		now:       func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) },
	}
}

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "nested", "results")
	writeFile(t, filepath.Join(in, "a.txt"), "5\n -3 \n1024\nabc\n-1023\n5\n")
	writeFile(t, filepath.Join(in, "b.txt"), "+5\n\t0\n")

	var stdout bytes.Buffer
	summary, err := run(Options{InputDir: in, OutputDir: out, Threads: 1}, testEnv(&stdout))
	require.NoError(t, err)

	assert.Equal(t, Summary{TotalFiles: 2, TotalValues: 5, SkippedLines: 2}, summary)
	assert.Equal(t, lines("-1023", "-3", "5"), readString(t, filepath.Join(out, "a.txt_results.txt")))
	assert.Equal(t, lines("0", "5"), readString(t, filepath.Join(out, "b.txt_results.txt")))
	assert.Contains(t, stdout.String(), "Files converted: 2")
}

func TestRunMissingInputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results")

	var stdout bytes.Buffer
	_, err := run(Options{InputDir: filepath.Join(t.TempDir(), "missing"), OutputDir: out}, testEnv(&stdout))
	require.ErrorIs(t, err, errInputDir)
	assert.NoDirExists(t, out)
}

func TestRunEmptyInputDirCreatesOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results")

	var stdout bytes.Buffer
	summary, err := run(Options{InputDir: t.TempDir(), OutputDir: out}, testEnv(&stdout))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.DirExists(t, out)
}

func TestRunDryRun(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "results")
	writeFile(t, filepath.Join(in, "a.txt"), "1\n")

	var stdout bytes.Buffer
	summary, err := run(Options{InputDir: in, OutputDir: out, DryRun: true}, testEnv(&stdout))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalFiles)
	assert.Contains(t, stdout.String(), filepath.Join(out, "a.txt_results.txt"))
	assert.NoDirExists(t, out)
}

func TestRunInteractive(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "a.txt"), "1\n")
	writeFile(t, filepath.Join(in, "b.txt"), "2\n")

	var stdout bytes.Buffer
	env := testEnv(&stdout)
	env.find = func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) ([]int, error) {
		require.Equal(t, "b.txt", itemFunc(1))
		return []int{1}, nil
	}

	summary, err := run(Options{InputDir: in, OutputDir: out, Interactive: true}, env)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalFiles)
	assert.FileExists(t, filepath.Join(out, "b.txt_results.txt"))
	assert.NoFileExists(t, filepath.Join(out, "a.txt_results.txt"))
}

func TestRunInteractiveAbort(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "results")
	writeFile(t, filepath.Join(in, "a.txt"), "1\n")

	var stdout bytes.Buffer
	env := testEnv(&stdout)
	env.find = func(slice interface{}, itemFunc func(i int) string, opts ...fuzzyfinder.Option) ([]int, error) {
		return nil, fuzzyfinder.ErrAbort
	}

	_, err := run(Options{InputDir: in, OutputDir: out, Interactive: true}, env)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "aborted")
	assert.NoDirExists(t, out)
}

func TestRunReport(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	reportPath := filepath.Join(t.TempDir(), "report.yml")
	writeFile(t, filepath.Join(in, "a.txt"), "2\n2\nx\n1\n")

	var stdout bytes.Buffer
	_, err := run(Options{InputDir: in, OutputDir: out, ReportPath: reportPath}, testEnv(&stdout))
	require.NoError(t, err)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report RunReport
	require.NoError(t, yaml.Unmarshal(data, &report))

	assert.True(t, report.GeneratedAt.Equal(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, ReportTotals{Files: 1, Values: 2, SkippedLines: 1}, report.Summary)
	require.Len(t, report.Files, 1)
	assert.Equal(t, ReportFile{
		Input:    filepath.Join(in, "a.txt"),
		Output:   filepath.Join(out, "a.txt_results.txt"),
		Accepted: 3,
		Unique:   2,
		Skipped:  1,
	}, report.Files[0])
}

func TestRunClipboard(t *testing.T) {
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "a.txt"), "1\n")

	var copied string
	var stdout bytes.Buffer
	env := testEnv(&stdout)
	env.clipboard = func(text string) error {
		copied = text
		return nil
	}

	_, err := run(Options{InputDir: in, OutputDir: t.TempDir(), Clipboard: true}, env)
	require.NoError(t, err)
	assert.Contains(t, copied, "Values written: 1")
	assert.Equal(t, "Summary copied to clipboard.\n", stdout.String())
}

func TestRunInteractiveEmptyInputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results")

	var stdout bytes.Buffer
	summary, err := run(Options{InputDir: t.TempDir(), OutputDir: out, Interactive: true}, testEnv(&stdout))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, summary)
	assert.DirExists(t, out)
}
