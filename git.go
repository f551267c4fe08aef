package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// isGitURL checks if the input string looks like a Git repository URL.
// Prioritizes .git suffix or git@ prefix.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") ||
		strings.HasPrefix(input, "git@") // Common SSH format
}

// cloneGitRepo shallow-clones url into a temporary directory and returns its path.
// The caller owns the directory and must remove it.
func cloneGitRepo(url string, log *zap.SugaredLogger) (string, error) {
	tempDir, err := os.MkdirTemp("", "uniqint-git-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	log.Infow("cloning git repository", "url", url, "dir", tempDir)
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1, // only the working tree is scanned
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("failed to clone repository '%s': %w", url, err)
	}
	return tempDir, nil
}

// resolveInputDir turns the configured input into a local directory. For Git URLs
// it clones the repository and returns a cleanup func that removes the clone.
func resolveInputDir(input, subdir string, log *zap.SugaredLogger) (string, func(), error) {
	if !isGitURL(input) {
		return input, func() {}, nil
	}
	tempDir, err := cloneGitRepo(input, log)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", errInputDir, err)
	}
	cleanup := func() {
		log.Debugw("cleaning up temporary directory", "dir", tempDir)
		_ = os.RemoveAll(tempDir)
	}
	dir, err := joinWithin(tempDir, subdir)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %w", errInputDir, err)
	}
	return dir, cleanup, nil
}

// joinWithin joins subdir onto root and rejects results outside root.
func joinWithin(root, subdir string) (string, error) {
	if filepath.IsAbs(subdir) || strings.HasPrefix(filepath.ToSlash(subdir), "/") {
		return "", fmt.Errorf("git subdir %q must be relative", subdir)
	}
	dir := filepath.Join(root, filepath.FromSlash(subdir))
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("git subdir %q escapes the repository", subdir)
	}
	return dir, nil
}
