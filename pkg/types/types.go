// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the shared data model for the documentation
// pipeline: the repository snapshot, per-file symbol records, graph and
// synthesis artifacts, and the final documentation artifact.
package types

// RepoTree maps each directory (relative to the repository root, "." for
// the root itself) to the sorted list of filenames directly inside it.
type RepoTree map[string][]string

// RepositorySnapshot is the structural view of a checked-out repository,
// built once per run and immutable afterwards.
type RepositorySnapshot struct {
	RootPath string   `json:"root_path"`
	Tree     RepoTree `json:"tree"`
}

// FileSymbolRecord is the flat symbol inventory of one source file.
// Functions and Classes are always non-nil; a file with no definitions
// carries empty lists, not a missing record.
type FileSymbolRecord struct {
	FilePath  string   `json:"file"`
	Functions []string `json:"functions"`
	Classes   []string `json:"classes"`
}

// AnalysisResult is the full set of symbol records for a run, in traversal
// order. Ordering is not guaranteed stable across filesystems.
type AnalysisResult []FileSymbolRecord

// GraphArtifact describes the serialized symbol graph. DescriptionPath is
// always set once the graph has been composed; ImagePath is set only when
// the external renderer succeeded. Rendered is the authoritative flag;
// callers must not infer success from path extensions.
type GraphArtifact struct {
	DescriptionPath string `json:"description_path"`
	ImagePath       string `json:"image_path,omitempty"`
	Rendered        bool   `json:"rendered"`
}

// Path returns the artifact path a document should reference: the rendered
// image when available, otherwise the raw description.
func (g GraphArtifact) Path() string {
	if g.Rendered {
		return g.ImagePath
	}
	return g.DescriptionPath
}

// SynthesisDraft holds the textual outputs of the three generative stages.
// Each stage is independently fallible; a failed stage leaves its field
// empty without aborting later stages.
type SynthesisDraft struct {
	ReadmeSummary       string            `json:"readme_summary"`
	PerFileExplanations map[string]string `json:"per_file_explanations"`
	FinalDocument       string            `json:"final_document"`
	StageErrors         []string          `json:"stage_errors,omitempty"`
}

// DocumentationArtifact is the assembled Markdown document and where it
// was written.
type DocumentationArtifact struct {
	Path     string `json:"path"`
	Markdown string `json:"-"`
}
