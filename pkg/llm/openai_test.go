package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func chatCompletionBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "qwen/qwen3-32b",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]interface{}{"role": "assistant", "content": content},
			},
		},
	}
}

func TestOpenAIComplete(t *testing.T) {
	var (
		seen       map[string]interface{}
		path, auth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path, auth = r.URL.Path, r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&seen)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionBody(`{"clusters":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL+"/")

	content, err := client.Complete(context.Background(), CompletionRequest{
		Model:           "qwen/qwen3-32b",
		System:          "respond with JSON",
		User:            "RESPONSES:\n0. a",
		Temperature:     0,
		MaxTokens:       8192,
		ReasoningEffort: "none",
		JSON:            true,
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, `{"clusters":[]}`, content)
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "Bearer test-key", auth)

	assert.Equal(t, "qwen/qwen3-32b", seen["model"])
	assert.Equal(t, float64(0), seen["temperature"])
	assert.Equal(t, float64(1), seen["top_p"])
	assert.Equal(t, float64(8192), seen["max_completion_tokens"])
	assert.Equal(t, "none", seen["reasoning_effort"])
	assert.Equal(t, map[string]interface{}{"type": "json_object"}, seen["response_format"])

	messages := seen["messages"].([]interface{})
	assert.Equal(t, 2, len(messages))
	assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
	assert.Equal(t, "RESPONSES:\n0. a", messages[1].(map[string]interface{})["content"])
}

func TestOpenAICompleteOmitsOptionalFields(t *testing.T) {
	var seen map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&seen)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionBody("{}"))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL+"/")

	_, err := client.Complete(context.Background(), CompletionRequest{Model: "gpt-4o-mini"})

	assert.Equal(t, nil, err)
	_, hasEffort := seen["reasoning_effort"]
	_, hasFormat := seen["response_format"]
	_, hasMax := seen["max_completion_tokens"]
	assert.Equal(t, false, hasEffort)
	assert.Equal(t, false, hasFormat)
	assert.Equal(t, false, hasMax)
}

func TestOpenAICompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := chatCompletionBody("")
		body["choices"] = []map[string]interface{}{}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL+"/")

	content, err := client.Complete(context.Background(), CompletionRequest{Model: "qwen/qwen3-32b"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "", content)
}

func TestOpenAICompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	client := NewOpenAIClient("bad-key", srv.URL+"/")

	_, err := client.Complete(context.Background(), CompletionRequest{Model: "qwen/qwen3-32b"})

	upErr, ok := AsUpstreamError(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, http.StatusUnauthorized, upErr.Status)
	assert.Equal(t, http.StatusUnauthorized, upErr.HTTPStatus())
	assert.NotEqual(t, "", upErr.Message)
}

func TestOpenAITranscribe(t *testing.T) {
	var path, filename, data, model, language string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "no file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		raw, _ := io.ReadAll(file)

		filename, data = header.Filename, string(raw)
		model, language = r.FormValue("model"), r.FormValue("language")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"text": "today we talk about plants"})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL+"/")

	text, err := client.Transcribe(context.Background(), TranscriptionRequest{
		Model:    "whisper-large-v3-turbo",
		Language: "en",
		Audio: Audio{
			Filename:    "lesson.webm",
			ContentType: "audio/webm",
			Data:        []byte("fake-audio"),
		},
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "today we talk about plants", text)
	assert.Equal(t, "/audio/transcriptions", path)
	assert.Equal(t, "lesson.webm", filename)
	assert.Equal(t, "fake-audio", data)
	assert.Equal(t, "whisper-large-v3-turbo", model)
	assert.Equal(t, "en", language)
}

func TestOpenAITranscribeUpstreamError(t *testing.T) {
	const raw = `{"error":{"message":"file too large","type":"invalid_request_error"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		io.WriteString(w, raw)
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", srv.URL+"/")

	_, err := client.Transcribe(context.Background(), TranscriptionRequest{
		Model: "whisper-large-v3-turbo",
		Audio: Audio{Filename: "a.webm", ContentType: "audio/webm", Data: []byte("x")},
	})

	upErr, ok := AsUpstreamError(err)
	assert.Equal(t, true, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, upErr.Status)
	assert.Equal(t, raw, string(upErr.Body))
}
