// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package symbols extracts top-level function and class names from Python
// source files using a line-oriented textual heuristic.
//
// The heuristic is not a parser: a trimmed line starting with "def "
// yields a function name, one starting with "class " yields a class name.
// Nested and indented definitions are reported exactly like top-level
// ones, multi-line signatures are not handled, and a keyword at the start
// of a string or comment line can mis-extract.
package symbols

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codebase-genius/internal/tree"
	"github.com/petar-djukic/codebase-genius/pkg/types"
)

const sourceExt = ".py"

// Extract scans every *.py file under root and returns one record per
// file, in traversal order. Files with no definitions still get a record
// with empty lists. A single unreadable file never aborts the batch: its
// record is kept with empty lists, and undecodable bytes are substituted
// rather than rejected.
func Extract(root string) (types.AnalysisResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", tree.ErrNoRoot, root)
	}

	var result types.AnalysisResult

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if tree.Excluded(d.Name()) && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != sourceExt {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		record := types.FileSymbolRecord{
			FilePath:  filepath.ToSlash(rel),
			Functions: []string{},
			Classes:   []string{},
		}

		content, readErr := os.ReadFile(path)
		if readErr == nil {
			record.Functions, record.Classes = ScanSource(string(content))
		}
		// Unreadable file: keep the record with empty lists.

		result = append(result, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return result, nil
}

// ScanSource applies the line heuristic to one file's content and returns
// the function and class names found, in source order. Invalid UTF-8 is
// replaced character-by-character before scanning.
func ScanSource(content string) (functions, classes []string) {
	functions = []string{}
	classes = []string{}

	content = strings.ToValidUTF8(content, "�")

	for _, line := range strings.Split(content, "\n") {
		s := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(s, "def "):
			if name := defName(s); name != "" {
				functions = append(functions, name)
			}
		case strings.HasPrefix(s, "class "):
			if name := className(s); name != "" {
				classes = append(classes, name)
			}
		}
	}
	return functions, classes
}

// defName extracts the name from a "def " line: everything between the
// keyword and the first parenthesis.
func defName(s string) string {
	head, _, _ := strings.Cut(s, "(")
	return strings.TrimSpace(strings.TrimPrefix(head, "def "))
}

// className extracts the name from a "class " line: everything between
// the keyword and the first parenthesis or colon.
func className(s string) string {
	head, _, _ := strings.Cut(s, "(")
	head = strings.TrimPrefix(head, "class ")
	return strings.Trim(head, ": \t")
}
