// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package vcs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/octocat/hello-world.git", "hello-world"},
		{"https://github.com/octocat/hello-world", "hello-world"},
		{"git@host:team/project.git", "project"},
		{"https://example.com/deep/path/repo/", "repo"},
		{"", "repository"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, RepoName(tt.url))
		})
	}
}

func TestFetch_ClearsExistingDestination(t *testing.T) {
	destBase := t.TempDir()
	stale := filepath.Join(destBase, "hello-world", "repo", "stale.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	// The clone itself fails (invalid URL), but the stale checkout must
	// already be gone: a fetch always starts from a clean destination.
	_, err := Fetch(context.Background(), "https://invalid.invalid/octocat/hello-world.git", destBase)
	assert.ErrorIs(t, err, ErrClone)
	assert.NoFileExists(t, stale)
}
