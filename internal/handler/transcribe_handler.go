package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kwen1510/Realtime-clustering/pkg/llm"
)

const (
	defaultAudioFilename    = "audio.webm"
	defaultAudioContentType = "audio/webm"
)

type TranscribeHandler struct {
	transcriber llm.Transcriber
	model       string
	language    string
}

func NewTranscribeHandler(transcriber llm.Transcriber, model, language string) *TranscribeHandler {
	return &TranscribeHandler{transcriber: transcriber, model: model, language: language}
}

func (h *TranscribeHandler) PostTranscribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file required (field name: audio)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("error opening uploaded audio", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file required (field name: audio)"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("error reading uploaded audio", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file required (field name: audio)"})
		return
	}

	audio := llm.Audio{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}
	if audio.Filename == "" {
		audio.Filename = defaultAudioFilename
	}
	if audio.ContentType == "" {
		audio.ContentType = defaultAudioContentType
	}

	text, err := h.transcriber.Transcribe(c.Request.Context(), llm.TranscriptionRequest{
		Model:    h.model,
		Language: h.language,
		Audio:    audio,
	})
	if err != nil {
		status, msg := http.StatusInternalServerError, "Transcription call failed."
		upErr, ok := llm.AsUpstreamError(err)
		if ok {
			status = upErr.HTTPStatus()
			if upErr.Message != "" {
				msg = upErr.Message
			}
		}
		slog.Error("error transcribing audio", "error", err, "bytes", len(data), "status", status)

		// Provider error bodies are relayed unchanged.
		if ok && len(upErr.Body) > 0 && json.Valid(upErr.Body) {
			c.Data(status, "application/json; charset=utf-8", upErr.Body)
			return
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, TranscriptResponse{Transcript: text})
}
