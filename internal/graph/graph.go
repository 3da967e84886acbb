// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package graph serializes the extracted symbol inventory into a Graphviz
// description and best-effort renders it to an image.
//
// The graph is nodes-only: it visualizes extracted function symbols, not
// call relationships, since no call data is computed. Equal names from
// different files collapse into a single node; the graph is over symbol
// names, not fully-qualified identities.
package graph

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codebase-genius/pkg/types"
)

const (
	// DefaultRenderer is the Graphviz binary invoked to rasterize the
	// description.
	DefaultRenderer = "dot"

	descriptionFile = "ccg.dot"
	imageFile       = "ccg.png"
)

// Compose builds the node set from the analysis result, writes the DOT
// description under outDir, and attempts to render it with rendererBin.
//
// Rendering is best effort: a missing binary, nonzero exit, or I/O error
// leaves Rendered false with only the description path set. Both outcomes
// are valid graph artifacts. Failing to write the description itself is a
// real error, since the description path must always exist.
func Compose(analysis types.AnalysisResult, outDir, rendererBin string) (types.GraphArtifact, error) {
	if rendererBin == "" {
		rendererBin = DefaultRenderer
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return types.GraphArtifact{}, fmt.Errorf("creating output dir: %w", err)
	}

	dotPath := filepath.Join(outDir, descriptionFile)
	pngPath := filepath.Join(outDir, imageFile)

	if err := os.WriteFile(dotPath, []byte(Describe(analysis)), 0o644); err != nil {
		return types.GraphArtifact{}, fmt.Errorf("writing graph description: %w", err)
	}

	artifact := types.GraphArtifact{DescriptionPath: dotPath}

	if err := exec.Command(rendererBin, "-Tpng", dotPath, "-o", pngPath).Run(); err != nil {
		return artifact, nil // Degrade to the unrendered description.
	}

	artifact.ImagePath = pngPath
	artifact.Rendered = true
	return artifact, nil
}

// Describe serializes the node set to DOT. Nodes are the union of all
// function names across all records, first-seen order, one ellipse vertex
// declaration each.
func Describe(analysis types.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("digraph CCG {\n")
	for _, name := range Nodes(analysis) {
		fmt.Fprintf(&b, "  %q [shape=ellipse];\n", name)
	}
	b.WriteString("}\n")
	return b.String()
}

// Nodes returns the deduplicated function names across all records,
// preserving first-seen order so the description is deterministic for a
// given traversal.
func Nodes(analysis types.AnalysisResult) []string {
	seen := make(map[string]bool)
	var nodes []string
	for _, record := range analysis {
		for _, fn := range record.Functions {
			if !seen[fn] {
				seen[fn] = true
				nodes = append(nodes, fn)
			}
		}
	}
	return nodes
}
