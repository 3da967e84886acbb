// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codebase-genius/pkg/types"
)

func TestNodes_UnionAcrossRecords(t *testing.T) {
	analysis := types.AnalysisResult{
		{FilePath: "a.py", Functions: []string{"alpha", "beta"}, Classes: []string{"A"}},
		{FilePath: "b.py", Functions: []string{"gamma"}, Classes: []string{}},
	}

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, Nodes(analysis))
}

func TestNodes_DuplicateNamesCollapse(t *testing.T) {
	// Same function name in two files becomes one node: the graph is
	// over symbol names, not qualified identities.
	analysis := types.AnalysisResult{
		{FilePath: "a.py", Functions: []string{"run"}, Classes: []string{}},
		{FilePath: "b.py", Functions: []string{"run", "stop"}, Classes: []string{}},
	}

	assert.Equal(t, []string{"run", "stop"}, Nodes(analysis))
}

func TestNodes_ClassesExcluded(t *testing.T) {
	analysis := types.AnalysisResult{
		{FilePath: "a.py", Functions: []string{}, Classes: []string{"OnlyClass"}},
	}

	assert.Empty(t, Nodes(analysis))
}

func TestDescribe_SingleNodeDeclaration(t *testing.T) {
	analysis := types.AnalysisResult{
		{FilePath: "a.py", Functions: []string{"foo"}, Classes: []string{"Bar"}},
	}

	desc := Describe(analysis)
	assert.Equal(t, "digraph CCG {\n  \"foo\" [shape=ellipse];\n}\n", desc)
}

func TestCompose_WritesDescription(t *testing.T) {
	outDir := t.TempDir()
	analysis := types.AnalysisResult{
		{FilePath: "a.py", Functions: []string{"foo"}, Classes: []string{}},
	}

	artifact, err := Compose(analysis, outDir, "definitely-not-a-renderer")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "ccg.dot"), artifact.DescriptionPath)
	content, err := os.ReadFile(artifact.DescriptionPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"foo" [shape=ellipse];`)
}

func TestCompose_RendererFailureDegrades(t *testing.T) {
	outDir := t.TempDir()
	analysis := types.AnalysisResult{
		{FilePath: "a.py", Functions: []string{"foo"}, Classes: []string{}},
	}

	artifact, err := Compose(analysis, outDir, "definitely-not-a-renderer")
	require.NoError(t, err)

	assert.False(t, artifact.Rendered)
	assert.Empty(t, artifact.ImagePath)
	assert.Equal(t, artifact.DescriptionPath, artifact.Path())
}

func TestCompose_CreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")

	artifact, err := Compose(types.AnalysisResult{}, outDir, "definitely-not-a-renderer")
	require.NoError(t, err)

	assert.FileExists(t, artifact.DescriptionPath)
}
