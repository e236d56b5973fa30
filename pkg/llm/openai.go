package llm

import (
	"bytes"
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1/"
	OpenAIBaseURL = "https://api.openai.com/v1/"
)

// OpenAIClient talks to any OpenAI-compatible API. Groq is used through its
// compatibility endpoint.
type OpenAIClient struct {
	client   *openai.Client
	provider string
}

func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	return newOpenAICompatibleClient("openai", apiKey, baseURL)
}

func NewGroqClient(apiKey string) *OpenAIClient {
	return newOpenAICompatibleClient("groq", apiKey, GroqBaseURL)
}

func newOpenAICompatibleClient(provider, apiKey, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = OpenAIBaseURL
	}
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	return &OpenAIClient{
		client:   &client,
		provider: provider,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(1),
	}

	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	if req.ReasoningEffort != "" {
		params.ReasoningEffort = shared.ReasoningEffort(req.ReasoningEffort)
	}

	if req.JSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", newUpstreamError(c.provider, err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Transcribe(ctx context.Context, req TranscriptionRequest) (string, error) {
	params := openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(req.Audio.Data), req.Audio.Filename, req.Audio.ContentType),
		Model: openai.AudioModel(req.Model),
	}

	if req.Language != "" {
		params.Language = openai.String(req.Language)
	}

	resp, err := c.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", newUpstreamError(c.provider, err)
	}

	return resp.Text, nil
}
