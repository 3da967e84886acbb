// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package synthesis runs the three-stage generative pipeline: README
// summarization, per-file explanation, and final synthesis. Each stage is
// independently callable and independently fallible; the final stage
// consumes the textual results of the prior two, not live service calls,
// so a failed stage can be retried on its own in a later run.
package synthesis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codebase-genius/internal/llm"
	"github.com/petar-djukic/codebase-genius/pkg/types"
)

// maxFileChars bounds per-file prompt size. Content beyond the budget is
// dropped from the prompt, not from the analysis.
const maxFileChars = 3000

// SourceFile is one file's content prepared for the explanation stage.
type SourceFile struct {
	Name    string // Path relative to the repository root
	Content string
}

// Input carries everything the three stages consume.
type Input struct {
	RepoName   string
	ReadmeText string // Empty when the repository has no README; still summarized.
	Files      []SourceFile
}

// SummarizeReadme runs stage 1: summarize the README. It runs even when
// readmeText is empty; prompting the generator with empty content is
// accepted behavior.
func SummarizeReadme(ctx context.Context, gen llm.Generator, repoName, readmeText string) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("%w: no generator", llm.ErrNotConfigured)
	}

	prompt, err := renderPrompt("readme_summary.tmpl", readmePromptData{
		RepoName:   repoName,
		ReadmeText: readmeText,
	})
	if err != nil {
		return "", err
	}

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ExplainFile runs stage 2 for one file: a concise natural-language
// explanation. Content is truncated to the character budget before the
// prompt is built.
func ExplainFile(ctx context.Context, gen llm.Generator, fileName, content string) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("%w: no generator", llm.ErrNotConfigured)
	}

	if len(content) > maxFileChars {
		content = content[:maxFileChars]
	}

	prompt, err := renderPrompt("file_explain.tmpl", filePromptData{
		FileName: fileName,
		Content:  content,
	})
	if err != nil {
		return "", err
	}

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SynthesizeFinal runs stage 3: merge the README summary and the
// concatenated per-file explanations into one Markdown document. It is a
// pure function of the prior stages' texts and runs even when both are
// empty.
func SynthesizeFinal(ctx context.Context, gen llm.Generator, repoName, summary, analysisText string) (string, error) {
	if gen == nil {
		return "", fmt.Errorf("%w: no generator", llm.ErrNotConfigured)
	}

	prompt, err := renderPrompt("final_doc.tmpl", finalPromptData{
		RepoName:     repoName,
		Summary:      summary,
		AnalysisText: analysisText,
	})
	if err != nil {
		return "", err
	}

	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// RunAll executes the three stages in order and never returns an error:
// a failed stage leaves its draft field empty and is recorded in
// StageErrors, and later stages still run with whatever texts exist. The
// per-file stage stops early only when the backend is unconfigured, since
// every remaining call would fail the same way.
func RunAll(ctx context.Context, gen llm.Generator, in Input) *types.SynthesisDraft {
	draft := &types.SynthesisDraft{
		PerFileExplanations: map[string]string{},
	}

	// Stage 1: README summarization.
	summary, err := SummarizeReadme(ctx, gen, in.RepoName, in.ReadmeText)
	if err != nil {
		draft.StageErrors = append(draft.StageErrors, fmt.Sprintf("readme summary: %v", err))
	} else {
		draft.ReadmeSummary = summary
	}

	// Stage 2: per-file explanations.
	for _, f := range in.Files {
		explanation, err := ExplainFile(ctx, gen, f.Name, f.Content)
		if err != nil {
			draft.StageErrors = append(draft.StageErrors, fmt.Sprintf("explain %s: %v", f.Name, err))
			if errors.Is(err, llm.ErrNotConfigured) {
				break
			}
			continue
		}
		draft.PerFileExplanations[f.Name] = explanation
	}

	// Stage 3: final synthesis over the textual results of 1 and 2.
	final, err := SynthesizeFinal(ctx, gen, in.RepoName, draft.ReadmeSummary, ConcatExplanations(in.Files, draft.PerFileExplanations))
	if err != nil {
		draft.StageErrors = append(draft.StageErrors, fmt.Sprintf("final synthesis: %v", err))
	} else {
		draft.FinalDocument = final
	}

	return draft
}

// ConcatExplanations joins the per-file explanations in input file order,
// each under its file name, for the final synthesis prompt.
func ConcatExplanations(files []SourceFile, explanations map[string]string) string {
	var b strings.Builder
	for _, f := range files {
		text, ok := explanations[f.Name]
		if !ok || text == "" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n%s\n\n", f.Name, text)
	}
	return b.String()
}

// LoadSources reads the content of each analyzed file for the explanation
// stage. Unreadable files are skipped; the stage is best effort.
func LoadSources(root string, analysis types.AnalysisResult) []SourceFile {
	var files []SourceFile
	for _, record := range analysis {
		b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(record.FilePath)))
		if err != nil {
			continue
		}
		files = append(files, SourceFile{Name: record.FilePath, Content: string(b)})
	}
	return files
}
