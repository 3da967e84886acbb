// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tree builds the structural view of a checked-out repository: a
// mapping from each directory to the sorted filenames inside it, plus
// README discovery.
package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/petar-djukic/codebase-genius/pkg/types"
)

// ErrNoRoot is returned when the repository root does not exist or is not
// a directory.
var ErrNoRoot = errors.New("repository root not found")

// excludedDirs are housekeeping directories never descended into: VCS
// metadata, dependency installations, and bytecode caches. The set is a
// build constant, not per-call configuration.
var excludedDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
}

// Excluded reports whether a directory basename is in the housekeeping
// exclusion set. Shared with the symbol extractor so both walks see the
// same repository.
func Excluded(base string) bool {
	return excludedDirs[base]
}

// readmeCandidates are checked in order; the first that exists wins.
var readmeCandidates = []string{"README.md", "README.rst", "README"}

// Build walks the repository rooted at root and returns its tree. Keys are
// directory paths relative to root ("." for the root itself), values are
// lexicographically sorted filenames. Traversal is read-only; a missing
// root is a configuration error, not an empty tree.
func Build(root string) (types.RepoTree, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoRoot, root)
	}

	t := types.RepoTree{}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries we cannot stat.
		}
		if !d.IsDir() {
			return nil
		}
		if Excluded(d.Name()) && path != root {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil
		}

		var files []string
		for _, e := range entries {
			if !e.IsDir() {
				files = append(files, e.Name())
			}
		}
		sort.Strings(files)
		if files == nil {
			files = []string{}
		}
		t[filepath.ToSlash(rel)] = files
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return t, nil
}

// Snapshot builds the full repository snapshot for a run.
func Snapshot(root string) (*types.RepositorySnapshot, error) {
	t, err := Build(root)
	if err != nil {
		return nil, err
	}
	return &types.RepositorySnapshot{RootPath: root, Tree: t}, nil
}

// Readme returns the repository's README content, trying README.md,
// README.rst, and README in that order. Returns the empty string when no
// candidate exists or the file cannot be read; a missing README is normal,
// not an error.
func Readme(root string) string {
	for _, name := range readmeCandidates {
		b, err := os.ReadFile(filepath.Join(root, name))
		if err == nil {
			return string(b)
		}
	}
	return ""
}
