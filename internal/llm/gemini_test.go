// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGeminiClient_MissingKeyNotConfigured(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewGeminiClient_DefaultModel(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "test-key", "")
	if err != nil {
		t.Skipf("genai client unavailable in this environment: %v", err)
	}
	assert.Equal(t, DefaultGeminiModel, client.model)
}
