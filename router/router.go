// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/openexpo/booth-feedback/cliparse"
	"github.com/openexpo/booth-feedback/genai"
	"github.com/openexpo/booth-feedback/handlers"
	"github.com/openexpo/booth-feedback/metrics"
	"github.com/openexpo/booth-feedback/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, client *genai.Client, summarizer genai.Summarizer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)
	audioHandler := handlers.NewAudioHandler(client, summarizer)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", metrics.Handler())

	// Feedback retrieval and submission
	mux.HandleFunc("GET /api/feedback/{email}", middleware.WithLogging(feedbackHandler.GetFeedback))
	mux.HandleFunc("POST /api/submit_feedback", middleware.WithLogging(feedbackHandler.SubmitFeedback))

	// Audio processing and summarization (external AI)
	mux.HandleFunc("POST /api/process_audio", middleware.WithLogging(audioHandler.ProcessAudio))
	mux.HandleFunc("POST /api/summarize", middleware.WithLogging(audioHandler.Summarize))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("booth-feedback API v1"))
	})

	return mux
}
