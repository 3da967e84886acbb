// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package synthesis

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// readmePromptData feeds the README summarization template.
type readmePromptData struct {
	RepoName   string
	ReadmeText string
}

// filePromptData feeds the per-file explanation template.
type filePromptData struct {
	FileName string
	Content  string
}

// finalPromptData feeds the final synthesis template.
type finalPromptData struct {
	RepoName     string
	Summary      string
	AnalysisText string
}

// renderPrompt executes one of the embedded prompt templates.
func renderPrompt(name string, data any) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
