// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openexpo/booth-feedback/genai"
	"github.com/openexpo/booth-feedback/metrics"
	"github.com/openexpo/booth-feedback/middleware"
	"github.com/openexpo/booth-feedback/models"
)

type AudioHandler struct {
	client     *genai.Client
	summarizer genai.Summarizer
}

func NewAudioHandler(client *genai.Client, summarizer genai.Summarizer) *AudioHandler {
	return &AudioHandler{client: client, summarizer: summarizer}
}

// emptyTranscriptPlaceholder is embedded in the response body when the API
// returned no usable transcript. STT problems are reported in-band so the
// visitor can still submit typed feedback; see ProcessAudio.
const emptyTranscriptPlaceholder = "(no speech recognized)"

// ProcessAudio handles POST /api/process_audio
//
// Failure handling is deliberately asymmetric. A failed API exchange (bad
// key, quota, upstream outage) fails the whole request with 500 because the
// follow-up summarization call would fail the same way. But a transcription
// that merely comes back empty, or a summarization that fails after a good
// transcript, degrades to placeholder text inside a 200 response: a partial
// result still lets the visitor review and submit their feedback.
func (h *AudioHandler) ProcessAudio(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessAudioRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.AudioData == "" || req.MimeType == "" || strings.TrimSpace(req.BoothID) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Missing required fields: audio_data, mime_type and booth_id are required", "")
		return
	}

	transcript, err := h.client.TranscribeAudio(r.Context(), req.AudioData, req.MimeType)
	metrics.RecordGenAICall("transcribe", err)

	if err != nil {
		if errors.Is(err, genai.ErrNoAPIKey) {
			middleware.ErrorResponse(w, http.StatusInternalServerError,
				"Generative AI is not configured on the server", err.Error())
			return
		}

		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 0 {
			// 2xx but no text: nothing was said, or nothing was recognized.
			slog.Warn("transcription returned no text", "booth_id", req.BoothID)
			middleware.JSONResponse(w, http.StatusOK, models.ProcessAudioResponse{
				STTText:     emptyTranscriptPlaceholder,
				SummaryText: "",
			})
			return
		}

		slog.Error("transcription failed", "error", err, "booth_id", req.BoothID)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Speech-to-text failed", errDetail(err))
		return
	}

	summary, err := h.summarizer.Summarize(r.Context(), transcript)
	metrics.RecordGenAICall("summarize", err)
	if err != nil {
		// The transcript is good; report the summary failure in-band.
		slog.Warn("summarization failed", "error", err, "booth_id", req.BoothID)
		summary = "Summary unavailable: " + errDetail(err)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProcessAudioResponse{
		STTText:     transcript,
		SummaryText: summary,
	})
}

// Summarize handles POST /api/summarize
// Pure-summarization path: unlike ProcessAudio there is no partial result
// worth returning, so any external failure is a hard 500.
func (h *AudioHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummarizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required", "")
		return
	}

	result, err := h.client.SummarizeStructured(r.Context(), req.Text, req.VisitorAttribute, req.BoothID)
	metrics.RecordGenAICall("summarize", err)
	if err != nil {
		if errors.Is(err, genai.ErrNoAPIKey) {
			middleware.ErrorResponse(w, http.StatusInternalServerError,
				"Generative AI is not configured on the server", err.Error())
			return
		}
		slog.Error("summarization failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			"Summarization failed", errDetail(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummarizeResponse{
		SummaryText: result.Summary,
		PraiseRatio: result.PraiseRatio,
		AdviceRatio: result.AdviceRatio,
	})
}

// errDetail extracts the short user-visible detail string for an external
// failure: the parsed API message when available, the error text otherwise.
func errDetail(err error) string {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
