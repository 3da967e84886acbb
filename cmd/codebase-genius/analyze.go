// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/codebase-genius/pkg/genius"
)

// newAnalyzeCmd creates the "analyze" command.
func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a repository and generate documentation",
		Long:  "Analyze clones or opens a repository, extracts its file tree and symbol inventory, composes a symbol graph, and assembles Markdown documentation enriched by the generative backend when configured.",
		RunE:  runAnalyze,
	}

	cmd.Flags().StringP("repo-url", "r", "", "Repository clone URL")
	cmd.Flags().StringP("workdir", "w", "", "Existing checkout to analyze in place")

	return cmd
}

// runAnalyze executes the documentation pipeline.
func runAnalyze(cmd *cobra.Command, args []string) error {
	repoURL, _ := cmd.Flags().GetString("repo-url")
	workDir, _ := cmd.Flags().GetString("workdir")

	g, err := genius.New(buildConfig(repoURL, workDir))
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := g.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if result != nil {
			printResult(result)
		}
		return err
	}

	printResult(result)
	return nil
}

// buildConfig assembles the facade config from flags, viper settings, and
// credential environment variables.
func buildConfig(repoURL, workDir string) genius.Config {
	return genius.Config{
		RepoURL:        repoURL,
		WorkDir:        workDir,
		OutputRoot:     viper.GetString("output"),
		Provider:       viper.GetString("provider"),
		Model:          viper.GetString("model"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		Region:         viper.GetString("region"),
		MongoURI:       os.Getenv("MONGO_DB_URI"),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("SENDER_PASSWORD"),
		SenderName:     os.Getenv("SENDER_NAME"),
		RendererBin:    viper.GetString("renderer"),
	}
}

// printResult outputs the result as JSON to stdout.
func printResult(result *genius.Result) {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
