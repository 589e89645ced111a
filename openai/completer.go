// Package openai implements grantqa.Completer using the OpenAI chat
// completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/fwojciec/grantqa"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model used for fallback answers.
const DefaultModel = goopenai.GPT3Dot5Turbo

// Ensure Completer implements grantqa.Completer at compile time.
var _ grantqa.Completer = (*Completer)(nil)

// Completer implements grantqa.Completer using OpenAI.
type Completer struct {
	client *goopenai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *goopenai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete asks the model a single-turn question.
func (c *Completer) Complete(ctx context.Context, question string) (string, error) {
	if c.client == nil {
		return "", grantqa.Errorf(grantqa.EINTERNAL, "openai client not configured")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, question))
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", grantqa.Errorf(grantqa.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for a question.
func BuildRequest(model, question string) goopenai.ChatCompletionRequest {
	return goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: grantqa.SystemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: question},
		},
		MaxTokens: grantqa.MaxCompletionTokens,
	}
}
