// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package llm provides the text generation collaborator behind the
// synthesis stages. Two backends are supported: Gemini (the default) and
// AWS Bedrock. Both satisfy Generator, and both distinguish "not
// configured" from "the call failed" so callers can decide whether a
// retry makes sense.
package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates required generation credentials or settings
// are absent. The stage should be skipped, not retried.
var ErrNotConfigured = errors.New("generation backend not configured")

// ErrGeneration indicates a configured backend failed at call time
// (network, auth rejection, rate limit). Retrying may succeed.
var ErrGeneration = errors.New("generation call failed")

// Generator produces text from a prompt. The empty string is a valid
// degenerate success, not an error.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
