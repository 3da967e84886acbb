// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pipeline wires the analysis and synthesis stages into one
// synchronous run: snapshot the tree, extract symbols, compose the graph,
// run best-effort generative synthesis, assemble the document, then save
// and notify as side channels.
//
// A run is single-threaded and restartable as a whole: every stage
// recomputes its output from the repository content, and re-running
// overwrites prior artifacts. Two concurrent runs against the same output
// directory would race; serializing them is the caller's responsibility.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/petar-djukic/codebase-genius/internal/assemble"
	"github.com/petar-djukic/codebase-genius/internal/graph"
	"github.com/petar-djukic/codebase-genius/internal/llm"
	"github.com/petar-djukic/codebase-genius/internal/notify"
	"github.com/petar-djukic/codebase-genius/internal/store"
	"github.com/petar-djukic/codebase-genius/internal/symbols"
	"github.com/petar-djukic/codebase-genius/internal/synthesis"
	"github.com/petar-djukic/codebase-genius/internal/tree"
	"github.com/petar-djukic/codebase-genius/pkg/types"
)

// Deps holds injected dependencies for the runner. Generator, Store, and
// Notifier may be nil/disabled; the run degrades to structural output.
type Deps struct {
	Generator   llm.Generator    // nil when generation is unconfigured
	Store       *store.Store     // nil disables persistence
	Notifier    *notify.Notifier // nil disables email
	RepoName    string
	WorkDir     string // Checked-out repository root
	OutDir      string // Per-repository output directory
	RendererBin string // Graphviz binary (default "dot")
}

// RunResult holds the outcome of a Runner.Run invocation.
type RunResult struct {
	RepoName      string              `json:"repo_name"`
	DocPath       string              `json:"doc_path"`
	Graph         types.GraphArtifact `json:"graph"`
	FileCount     int                 `json:"file_count"`
	FunctionCount int                 `json:"function_count"`
	ClassCount    int                 `json:"class_count"`
	StageErrors   []string            `json:"stage_errors,omitempty"`
	Stored        bool                `json:"stored"`
	Notified      bool                `json:"notified"`
}

// AnalysisRecord is what gets persisted per completed run.
type AnalysisRecord struct {
	Repo          string    `bson:"repo" json:"repo"`
	FileCount     int       `bson:"file_count" json:"file_count"`
	FunctionCount int       `bson:"function_count" json:"function_count"`
	ClassCount    int       `bson:"class_count" json:"class_count"`
	DocPath       string    `bson:"doc_path" json:"doc_path"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Runner orchestrates one documentation run.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run executes the full pipeline. Only structural failures (missing
// repository root, unwritable output directory) return an error; every
// generative or collaborator failure is recorded in the result and the
// document is still produced.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{RepoName: r.deps.RepoName}

	// Step 1: Snapshot the repository tree.
	snapshot, err := tree.Snapshot(r.deps.WorkDir)
	if err != nil {
		return result, fmt.Errorf("building tree: %w", err)
	}

	// Step 2: Extract the symbol inventory.
	analysis, err := symbols.Extract(r.deps.WorkDir)
	if err != nil {
		return result, fmt.Errorf("extracting symbols: %w", err)
	}
	result.FileCount = len(analysis)
	for _, record := range analysis {
		result.FunctionCount += len(record.Functions)
		result.ClassCount += len(record.Classes)
	}

	// Step 3: Compose and best-effort render the symbol graph.
	artifact, err := graph.Compose(analysis, r.deps.OutDir, r.deps.RendererBin)
	if err != nil {
		return result, fmt.Errorf("composing graph: %w", err)
	}
	result.Graph = artifact

	// Step 4: Generative synthesis. Never aborts the run.
	draft := synthesis.RunAll(ctx, r.deps.Generator, synthesis.Input{
		RepoName:   r.deps.RepoName,
		ReadmeText: tree.Readme(r.deps.WorkDir),
		Files:      synthesis.LoadSources(r.deps.WorkDir, analysis),
	})
	result.StageErrors = draft.StageErrors

	// Step 5: Assemble the document. Must succeed regardless of step 4.
	doc, err := assemble.Write(assemble.Input{
		RepoName: r.deps.RepoName,
		Tree:     snapshot.Tree,
		Analysis: analysis,
		Graph:    artifact,
		Draft:    draft,
	}, r.deps.OutDir)
	if err != nil {
		return result, fmt.Errorf("assembling document: %w", err)
	}
	result.DocPath = doc.Path

	// Step 6: Persist the run record (best effort).
	if r.deps.Store != nil {
		result.Stored = r.deps.Store.Save(ctx, store.AnalysesCollection, AnalysisRecord{
			Repo:          r.deps.RepoName,
			FileCount:     result.FileCount,
			FunctionCount: result.FunctionCount,
			ClassCount:    result.ClassCount,
			DocPath:       doc.Path,
			CreatedAt:     time.Now().UTC(),
		})
	}

	// Step 7: Email the document (best effort).
	if r.deps.Notifier != nil {
		subject := fmt.Sprintf("Documentation ready: %s", r.deps.RepoName)
		body := fmt.Sprintf("Analysis of %s finished: %d files, %d functions, %d classes.\nDocument: %s\n",
			r.deps.RepoName, result.FileCount, result.FunctionCount, result.ClassCount, doc.Path)
		result.Notified = r.deps.Notifier.Send(subject, body, doc.Path)
	}

	return result, nil
}
