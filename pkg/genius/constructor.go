// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package genius

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petar-djukic/codebase-genius/internal/llm"
	"github.com/petar-djukic/codebase-genius/internal/notify"
	"github.com/petar-djukic/codebase-genius/internal/pipeline"
	"github.com/petar-djukic/codebase-genius/internal/store"
	"github.com/petar-djukic/codebase-genius/internal/vcs"
)

const defaultOutputRoot = "outputs"

// New validates the config and returns a ready-to-use Genius. Generation
// credentials are checked but a missing credential is not a constructor
// error: it yields a degraded instance whose generative stages report
// themselves as unconfigured while the structural pipeline still runs.
func New(cfg Config) (Genius, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	generator, err := buildGenerator(cfg)
	if err != nil {
		return nil, err
	}

	return &geniusRunner{
		cfg:       cfg,
		generator: generator,
		store:     store.New(cfg.MongoURI),
		notifier: notify.New(notify.Config{
			Sender:   cfg.SenderEmail,
			Password: cfg.SenderPassword,
			Name:     cfg.SenderName,
			To:       cfg.NotifyTo,
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
		}),
	}, nil
}

// geniusRunner adapts the internal pipeline to the public Genius interface.
type geniusRunner struct {
	cfg       Config
	generator llm.Generator
	store     *store.Store
	notifier  *notify.Notifier
}

func (g *geniusRunner) Run(ctx context.Context) (*Result, error) {
	workDir := g.cfg.WorkDir
	repoName := ""

	if g.cfg.RepoURL != "" {
		repoName = vcs.RepoName(g.cfg.RepoURL)
		fetched, err := vcs.Fetch(ctx, g.cfg.RepoURL, g.cfg.OutputRoot)
		if err != nil {
			return nil, err
		}
		workDir = fetched
	} else {
		abs, err := filepath.Abs(workDir)
		if err == nil {
			workDir = abs
		}
		repoName = filepath.Base(workDir)
	}

	runner := pipeline.NewRunner(pipeline.Deps{
		Generator:   g.generator,
		Store:       g.store,
		Notifier:    g.notifier,
		RepoName:    repoName,
		WorkDir:     workDir,
		OutDir:      filepath.Join(g.cfg.OutputRoot, repoName),
		RendererBin: g.cfg.RendererBin,
	})

	ir, err := runner.Run(ctx)
	if ir == nil {
		return &Result{}, err
	}
	return &Result{
		RepoName:      ir.RepoName,
		WorkDir:       workDir,
		DocPath:       ir.DocPath,
		Graph:         ir.Graph,
		FileCount:     ir.FileCount,
		FunctionCount: ir.FunctionCount,
		ClassCount:    ir.ClassCount,
		StageErrors:   ir.StageErrors,
		Stored:        ir.Stored,
		Notified:      ir.Notified,
	}, err
}

// buildGenerator constructs the configured generation backend. An absent
// credential returns a nil generator, not an error; an unknown provider
// is a config error.
func buildGenerator(cfg Config) (llm.Generator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return nil, nil // Treat construction failure as unconfigured.
		}
		return client, nil
	case ProviderBedrock:
		if cfg.Model == "" || cfg.Region == "" {
			return nil, nil
		}
		client, err := llm.NewBedrockClient(context.Background(), llm.BedrockConfig{
			ModelID: cfg.Model,
			Region:  cfg.Region,
			Profile: cfg.Profile,
		})
		if err != nil {
			return nil, nil
		}
		return client, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// validateConfig checks that required fields are present and consistent.
func validateConfig(cfg Config) error {
	if cfg.RepoURL == "" && cfg.WorkDir == "" {
		return fmt.Errorf("one of RepoURL or WorkDir is required")
	}
	if cfg.RepoURL != "" && cfg.WorkDir != "" {
		return fmt.Errorf("RepoURL and WorkDir are mutually exclusive")
	}
	if cfg.WorkDir != "" {
		if info, err := os.Stat(cfg.WorkDir); err != nil || !info.IsDir() {
			return fmt.Errorf("WorkDir %q does not exist or is not a directory", cfg.WorkDir)
		}
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = defaultOutputRoot
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderGemini
	}
}
