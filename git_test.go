package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsGitURL(t *testing.T) {
	assert.True(t, isGitURL("https://example.com/org/inputs.git"))
	assert.True(t, isGitURL("git@example.com:org/inputs"))
	assert.False(t, isGitURL("/Data-structures_algorithm/hw_01/sample_inputs/"))
}

func TestResolveInputDirLocal(t *testing.T) {
	dir, cleanup, err := resolveInputDir("/tmp/inputs", "ignored", zap.NewNop().Sugar())
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, "/tmp/inputs", dir)
}

func TestJoinWithin(t *testing.T) {
	root := filepath.Join(t.TempDir(), "clone")

	tests := []struct {
		name    string
		subdir  string
		want    string
		wantErr bool
	}{
		{name: "empty", subdir: "", want: root},
		{name: "nested", subdir: "hw_01/sample_inputs", want: filepath.Join(root, "hw_01", "sample_inputs")},
		{name: "dot dot inside", subdir: "a/../b", want: filepath.Join(root, "b")},
		{name: "parent", subdir: "..", wantErr: true},
		{name: "grandparent", subdir: "../..", wantErr: true},
		{name: "sneaky", subdir: "a/../../etc", wantErr: true},
		{name: "absolute", subdir: "/etc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := joinWithin(root, tt.subdir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
