package grantqa

import (
	"context"
	"strings"
)

// MaxCompletionTokens bounds the length of generated answers.
const MaxCompletionTokens = 500

// SystemPrompt instructs completion backends how to answer grant questions.
const SystemPrompt = "You are a helpful assistant specializing in Web3 and DeFi grants. " +
	"When asked about grants, provide specific information about available grants, " +
	"including their names, organizations, and direct links when possible. " +
	"Format your response in a clear, structured way. " +
	`For any links, format them as HTML anchor tags like this: <a href="URL" target="_blank">URL</a>`

// Fixed answers returned when the completion backend cannot help.
const (
	NoAnswerMessage    = "Sorry, I couldn't find specific grant information for your query."
	UnavailableMessage = "Sorry, I couldn't find grant information and the AI assistant is currently unavailable."
)

// Completer generates a free-text answer to a question using an LLM.
type Completer interface {
	// Complete sends the question with SystemPrompt to the model and returns
	// the generated text.
	Complete(ctx context.Context, question string) (string, error)
}

// Completion is the outcome of a single fallback attempt.
type Completion struct {
	Text string
	Err  error
}

// Answer collapses the completion into the text shown to the user.
func (c Completion) Answer() string {
	if c.Err != nil {
		return UnavailableMessage
	}
	if c.Text == "" {
		return NoAnswerMessage
	}
	return c.Text
}

// Fallback answers questions the grant store could not.
type Fallback struct {
	completer Completer
}

// NewFallback creates a new Fallback over the given completer.
func NewFallback(completer Completer) *Fallback {
	return &Fallback{completer: completer}
}

// Complete asks the completer once and records the outcome.
func (f *Fallback) Complete(ctx context.Context, question string) Completion {
	if f.completer == nil {
		return Completion{Err: Errorf(EINTERNAL, "no completer configured")}
	}

	text, err := f.completer.Complete(ctx, question)
	if err != nil {
		return Completion{Err: err}
	}
	return Completion{Text: strings.TrimSpace(text)}
}
