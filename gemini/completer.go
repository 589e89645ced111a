// Package gemini implements grantqa.Completer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/grantqa"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for fallback answers.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements grantqa.Completer at compile time.
var _ grantqa.Completer = (*Completer)(nil)

// Completer implements grantqa.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete asks the model a single-turn question.
func (c *Completer) Complete(ctx context.Context, question string) (string, error) {
	if c.client == nil {
		return "", grantqa.Errorf(grantqa.EINTERNAL, "gemini client not configured")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: question}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", grantqa.Errorf(grantqa.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: grantqa.SystemPrompt}},
		},
		MaxOutputTokens: grantqa.MaxCompletionTokens,
	}
}
