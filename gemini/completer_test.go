package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/grantqa"
	"github.com/fwojciec/grantqa/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, grantqa.SystemPrompt, config.SystemInstruction.Parts[0].Text)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, `target="_blank"`)
}

func TestBuildConfig_BoundsOutputTokens(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	assert.EqualValues(t, 500, config.MaxOutputTokens)
}

func TestCompleter_Complete_ReturnsErrorWithoutClient(t *testing.T) {
	t.Parallel()

	completer := gemini.NewCompleter(nil, "")

	_, err := completer.Complete(context.Background(), "what is this?")

	require.Error(t, err)
	assert.Equal(t, grantqa.EINTERNAL, grantqa.ErrorCode(err))
}

func TestCompleter_Complete_ReturnsCandidateText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "Try the Ethereum Foundation ESP."}]}}]}`))
	}))
	defer server.Close()

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)

	answer, err := gemini.NewCompleter(client, "").Complete(ctx, "asdkjasdlkj")

	require.NoError(t, err)
	assert.Equal(t, "Try the Ethereum Foundation ESP.", answer)
}

func TestCompleter_Complete_ReturnsErrorOnAPIFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "bad request", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	require.NoError(t, err)

	_, err = gemini.NewCompleter(client, "").Complete(ctx, "q")

	require.Error(t, err)
}
