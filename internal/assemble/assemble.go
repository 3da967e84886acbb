// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package assemble merges the structural outputs (file tree, symbol
// inventory, graph artifact path) into one Markdown document. It is the
// fallback guarantor of output: it must succeed for any combination of
// empty or partial inputs, including total generative-stage failure.
package assemble

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codebase-genius/pkg/types"
)

// treeCharBudget bounds the serialized file tree so the document stays
// readable for very large repositories.
const treeCharBudget = 5000

const documentFile = "docs.md"

// Input carries everything the assembler combines. Draft may be nil; the
// structural sections never depend on it.
type Input struct {
	RepoName string
	Tree     types.RepoTree
	Analysis types.AnalysisResult
	Graph    types.GraphArtifact
	Draft    *types.SynthesisDraft
}

// Write renders the document and writes it to outDir/docs.md, returning
// the artifact. Only an unwritable output directory fails; content-wise
// the assembler always produces a non-empty document.
func Write(in Input, outDir string) (*types.DocumentationArtifact, error) {
	markdown := Render(in)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(outDir, documentFile)
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	return &types.DocumentationArtifact{Path: path, Markdown: markdown}, nil
}

// Render builds the Markdown text. Structural sections come first and are
// deterministic for a given snapshot; generative sections are appended
// only when their text is non-empty.
func Render(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Documentation\n\n", in.RepoName)
	b.WriteString("## Repository Overview\n\n")
	b.WriteString("### File Tree\n```\n")
	b.WriteString(treeJSON(in.Tree))
	b.WriteString("\n```\n\n## Code Analysis Summary\n")

	for _, record := range in.Analysis {
		fmt.Fprintf(&b, "### %s\n", record.FilePath)
		fmt.Fprintf(&b, "- Functions: %s\n", strings.Join(record.Functions, ", "))
		fmt.Fprintf(&b, "- Classes: %s\n\n", strings.Join(record.Classes, ", "))
	}

	fmt.Fprintf(&b, "## Diagrams\n\nCCG diagram located at `%s`\n", in.Graph.Path())

	if in.Draft != nil {
		if in.Draft.ReadmeSummary != "" {
			fmt.Fprintf(&b, "\n## Project Summary\n\n%s\n", in.Draft.ReadmeSummary)
		}
		if in.Draft.FinalDocument != "" {
			fmt.Fprintf(&b, "\n## Generated Documentation\n\n%s\n", in.Draft.FinalDocument)
		}
	}

	return b.String()
}

// treeJSON serializes the tree as indented JSON, truncated to the size
// budget. json.Marshal sorts map keys, which keeps the section stable
// across runs on an unchanged repository.
func treeJSON(tree types.RepoTree) string {
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", tree)
	}
	s := string(out)
	if len(s) > treeCharBudget {
		s = s[:treeCharBudget]
	}
	return s
}
