package llm

import "context"

// CompletionRequest is one non-streaming chat turn: a system instruction and a
// single user message.
type CompletionRequest struct {
	Model           string
	System          string
	User            string
	Temperature     float64
	MaxTokens       int
	ReasoningEffort string
	JSON            bool
}

type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type Audio struct {
	Filename    string
	ContentType string
	Data        []byte
}

type TranscriptionRequest struct {
	Model    string
	Language string
	Audio    Audio
}

type Transcriber interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)
}
