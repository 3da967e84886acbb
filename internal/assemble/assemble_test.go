// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package assemble

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/codebase-genius/pkg/types"
)

func sampleInput() Input {
	return Input{
		RepoName: "myrepo",
		Tree: types.RepoTree{
			".":   {"README.md"},
			"src": {"a.py", "b.py"},
		},
		Analysis: types.AnalysisResult{
			{FilePath: "src/a.py", Functions: []string{"foo", "bar"}, Classes: []string{"Widget"}},
			{FilePath: "src/b.py", Functions: []string{}, Classes: []string{}},
		},
		Graph: types.GraphArtifact{DescriptionPath: "outputs/myrepo/ccg.dot"},
	}
}

func TestRender_StructuralSections(t *testing.T) {
	md := Render(sampleInput())

	assert.True(t, strings.HasPrefix(md, "# myrepo Documentation\n"))
	assert.Contains(t, md, "### File Tree")
	assert.Contains(t, md, `"src"`)
	assert.Contains(t, md, "### src/a.py")
	assert.Contains(t, md, "- Functions: foo, bar")
	assert.Contains(t, md, "- Classes: Widget")
	assert.Contains(t, md, "CCG diagram located at `outputs/myrepo/ccg.dot`")
}

func TestRender_NonEmptyWithoutDraft(t *testing.T) {
	in := sampleInput()
	in.Draft = nil

	md := Render(in)

	assert.NotEmpty(t, md)
	assert.Contains(t, md, "# myrepo Documentation")
}

func TestRender_NonEmptyWhenAllStagesFailed(t *testing.T) {
	in := sampleInput()
	in.Draft = &types.SynthesisDraft{
		PerFileExplanations: map[string]string{},
		StageErrors:         []string{"readme summary: not configured"},
	}

	md := Render(in)

	assert.Contains(t, md, "# myrepo Documentation")
	assert.Contains(t, md, "### File Tree")
	assert.NotContains(t, md, "## Project Summary")
	assert.NotContains(t, md, "## Generated Documentation")
}

func TestRender_EnrichedByDraft(t *testing.T) {
	in := sampleInput()
	in.Draft = &types.SynthesisDraft{
		ReadmeSummary: "A fine project.",
		FinalDocument: "Full generated docs.",
	}

	md := Render(in)

	assert.Contains(t, md, "## Project Summary\n\nA fine project.")
	assert.Contains(t, md, "## Generated Documentation\n\nFull generated docs.")
}

func TestRender_TreeTruncatedToBudget(t *testing.T) {
	in := sampleInput()
	in.Tree = types.RepoTree{}
	for i := 0; i < 2000; i++ {
		in.Tree[strings.Repeat("d", 10)+string(rune('a'+i%26))+"/"+strings.Repeat("x", i%40)] = []string{"file.py"}
	}

	md := Render(in)

	start := strings.Index(md, "```\n") + len("```\n")
	end := strings.Index(md[start:], "\n```")
	require.Greater(t, end, 0)
	assert.LessOrEqual(t, end, treeCharBudget)
}

func TestRender_Deterministic(t *testing.T) {
	in := sampleInput()
	assert.Equal(t, Render(in), Render(in))
}

func TestWrite_ProducesDocsFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "myrepo")

	doc, err := Write(sampleInput(), outDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "docs.md"), doc.Path)
	content, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, doc.Markdown, string(content))
}

func TestWrite_OverwritesPriorRun(t *testing.T) {
	outDir := t.TempDir()

	first, err := Write(sampleInput(), outDir)
	require.NoError(t, err)
	second, err := Write(sampleInput(), outDir)
	require.NoError(t, err)

	assert.Equal(t, first.Markdown, second.Markdown)
	assert.Equal(t, first.Path, second.Path)
}
