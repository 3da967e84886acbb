// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command codebase-genius analyzes a source repository and produces
// layered Markdown documentation from its structure, optionally enriched
// by a generative backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	// Credentials (GEMINI_API_KEY, MONGO_DB_URI, SENDER_*) come from the
	// environment; a local .env is honored when present.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "codebase-genius",
		Short: "Repository documentation generator",
		Long:  "codebase-genius ingests a repository, extracts its structure, and synthesizes Markdown documentation with optional generative enrichment.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("output", "outputs", "Output root directory")
	rootCmd.PersistentFlags().String("provider", "gemini", "Generation backend (gemini or bedrock)")
	rootCmd.PersistentFlags().String("model", "", "Generation model ID")
	rootCmd.PersistentFlags().String("region", "", "AWS region (bedrock provider)")
	rootCmd.PersistentFlags().String("renderer", "dot", "Graphviz binary for diagram rendering")

	// Bind flags to viper.
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("model", rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("renderer", rootCmd.PersistentFlags().Lookup("renderer"))

	// Env vars: CODEBASE_GENIUS_OUTPUT, CODEBASE_GENIUS_MODEL, etc.
	viper.SetEnvPrefix("CODEBASE_GENIUS")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".codebase-genius")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print codebase-genius version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("codebase-genius %s\n", version)
		},
	}
}
