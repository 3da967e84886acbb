// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/petar-djukic/codebase-genius/internal/store"
)

// newHistoryCmd creates the "history" command, listing persisted analysis
// records from the storage collaborator.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past analysis runs",
		Long:  "History queries the configured storage backend for prior analysis records, optionally filtered by repository name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _ := cmd.Flags().GetString("repo")

			s := store.New(os.Getenv("MONGO_DB_URI"))
			if !s.Enabled() {
				fmt.Fprintln(os.Stderr, "storage not configured: set MONGO_DB_URI")
				return nil
			}

			var filter any
			if repo != "" {
				filter = bson.M{"repo": repo}
			}

			records := s.Query(context.Background(), store.AnalysesCollection, filter)
			if len(records) == 0 {
				fmt.Println("no analysis records found")
				return nil
			}

			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling records: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().String("repo", "", "Filter by repository name")

	return cmd
}
