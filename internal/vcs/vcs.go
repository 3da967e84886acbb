// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package vcs fetches repositories for analysis. A fetch always starts
// from a clean checkout: any existing clone at the destination is removed
// first.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// ErrClone is returned when cloning the repository fails.
var ErrClone = errors.New("clone failed")

// RepoName derives the repository name from a clone URL: the last path
// segment with any ".git" suffix stripped.
func RepoName(url string) string {
	name := path.Base(strings.TrimSuffix(strings.TrimRight(url, "/"), ".git"))
	if name == "." || name == "/" || name == "" {
		return "repository"
	}
	return name
}

// Fetch clones url under destBase/<name>/repo and returns the checkout
// path. The destination is removed before cloning, so re-analyzing a
// repository never sees stale files.
func Fetch(ctx context.Context, url, destBase string) (string, error) {
	repoPath := filepath.Join(destBase, RepoName(url), "repo")

	if err := os.RemoveAll(repoPath); err != nil {
		return "", fmt.Errorf("%w: clearing %s: %v", ErrClone, repoPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(repoPath), 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrClone, filepath.Dir(repoPath), err)
	}

	_, err := gogit.PlainCloneContext(ctx, repoPath, false, &gogit.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrClone, url, err)
	}

	return repoPath, nil
}
