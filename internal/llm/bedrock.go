// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

const defaultMaxTokens = 4096

// BedrockAPI abstracts the Bedrock Converse call for testing.
type BedrockAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockConfig configures the Bedrock generation backend.
type BedrockConfig struct {
	ModelID   string // Bedrock model ID (required)
	Region    string // AWS region (required)
	Profile   string // AWS credential profile (optional, default chain if empty)
	MaxTokens int    // Max tokens for the response (default 4096)
}

// BedrockClient wraps the AWS Bedrock runtime for text generation. Calls
// are synchronous Converse requests; this is a batch tool and does not
// stream.
type BedrockClient struct {
	api       BedrockAPI
	modelID   string
	maxTokens int
}

// NewBedrockClient creates a Bedrock-backed generator using the standard
// AWS credential chain. Missing model or region is a configuration error.
func NewBedrockClient(ctx context.Context, cfg BedrockConfig) (*BedrockClient, error) {
	if cfg.ModelID == "" {
		return nil, fmt.Errorf("%w: Bedrock model ID is required", ErrNotConfigured)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: AWS region is required", ErrNotConfigured)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS config: %v", ErrNotConfigured, err)
	}

	return NewBedrockClientWithAPI(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

// NewBedrockClientWithAPI creates a client with a pre-configured API
// implementation. Used for testing with mock clients.
func NewBedrockClientWithAPI(api BedrockAPI, cfg BedrockConfig) *BedrockClient {
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	return &BedrockClient{api: api, modelID: cfg.ModelID, maxTokens: maxTokens}
}

// Generate sends the prompt as a single user message and returns the
// response text.
func (c *BedrockClient) Generate(ctx context.Context, prompt string) (string, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		Messages: []brtypes.Message{
			{
				Role: brtypes.ConversationRoleUser,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: prompt},
				},
			},
		},
		InferenceConfig: &brtypes.InferenceConfiguration{
			MaxTokens: aws.Int32(int32(c.maxTokens)),
		},
	}

	output, err := c.api.Converse(ctx, input)
	if err != nil {
		return "", c.classifyError(err)
	}

	msg, ok := output.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", nil
	}
	for _, block := range msg.Value.Content {
		if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
			return text.Value, nil
		}
	}
	return "", nil
}

// classifyError separates credential problems (configuration) from call
// failures (transient).
func (c *BedrockClient) classifyError(err error) error {
	var accessDenied *brtypes.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return fmt.Errorf("%w: credential or permission issue: %v", ErrNotConfigured, err)
	}

	var notFound *brtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: model not found: %s", ErrNotConfigured, c.modelID)
	}

	return fmt.Errorf("%w: %v", ErrGeneration, err)
}
