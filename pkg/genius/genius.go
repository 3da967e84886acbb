// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package genius defines the public interface for codebase-genius, a
// repository documentation generator combining structural analysis with
// generative synthesis.
package genius

import (
	"context"
	"errors"

	"github.com/petar-djukic/codebase-genius/pkg/types"
)

// Error types for the Genius API.
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Provider selects the generation backend.
const (
	ProviderGemini  = "gemini"
	ProviderBedrock = "bedrock"
)

// Config configures a Genius instance. Exactly one of RepoURL or WorkDir
// is required. Generation, storage, and email settings are all optional;
// missing configuration degrades the corresponding stage instead of
// failing the run.
type Config struct {
	RepoURL    string // Clone URL; fetched into OutputRoot/<name>/repo
	WorkDir    string // Existing checkout to analyze in place
	OutputRoot string // Root of per-repository output dirs (default "outputs")

	Provider     string // "gemini" (default) or "bedrock"
	Model        string // Backend model ID (backend default when empty)
	GeminiAPIKey string // Gemini credential; empty disables generation
	Region       string // AWS region (bedrock only)
	Profile      string // AWS credential profile (bedrock only, optional)

	MongoURI string // Storage collaborator; empty disables persistence

	SenderEmail    string // Notification sender; empty disables email
	SenderPassword string
	SenderName     string
	NotifyTo       string
	SMTPHost       string
	SMTPPort       int

	RendererBin string // Graphviz binary (default "dot")
}

// Result holds the outcome of a Genius.Run invocation.
type Result struct {
	RepoName      string              // Repository the run analyzed
	WorkDir       string              // Checkout that was analyzed
	DocPath       string              // Assembled Markdown document
	Graph         types.GraphArtifact // Graph description and optional image
	FileCount     int                 // Source files scanned
	FunctionCount int                 // Functions extracted
	ClassCount    int                 // Classes extracted
	StageErrors   []string            // Failed generative stages, if any
	Stored        bool                // Run record persisted
	Notified      bool                // Notification email delivered
}

// Genius runs the documentation pipeline against a repository.
type Genius interface {
	// Run fetches the repository if a URL was configured, then executes
	// the full pipeline: tree snapshot, symbol extraction, graph
	// composition, generative synthesis, document assembly, persistence,
	// and notification. A completed run always yields a document file;
	// generative enrichment is best effort.
	Run(ctx context.Context) (*Result, error)
}
