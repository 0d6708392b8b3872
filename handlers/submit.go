// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/openexpo/booth-feedback/middleware"
	"github.com/openexpo/booth-feedback/models"
)

// SubmitFeedback handles POST /api/submit_feedback
// Appends one session row. There is no deduplication: resubmitting the same
// payload stores a second row.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	boothID := models.NormalizeKey(req.BoothID)
	visitorAttribute := models.NormalizeKey(req.VisitorAttribute)
	rawText := strings.TrimSpace(req.RawText)

	if boothID == "" || rawText == "" || visitorAttribute == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			"Missing required fields: booth_id, raw_text and visitor_attribute are required", "")
		return
	}

	summaryText := strings.TrimSpace(req.SummaryText)
	isProcessed := summaryText != ""

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while storing feedback", err.Error())
		return
	}
	defer tx.Rollback()

	var insertedID int64
	err = tx.QueryRowContext(r.Context(), `
		INSERT INTO sessions (booth_id, praise_ratio, advice_ratio, raw_text, visitor_attribute, summary_text, is_processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, boothID, float64(req.PraiseRatio), float64(req.AdviceRatio),
		rawText, visitorAttribute, summaryText, isProcessed).Scan(&insertedID)

	if err != nil {
		slog.Error("failed to insert session", "error", err, "booth_id", boothID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while storing feedback", err.Error())
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit session insert", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while storing feedback", err.Error())
		return
	}

	slog.Info("feedback stored", "booth_id", boothID, "session_id", insertedID, "is_processed", isProcessed)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitFeedbackResponse{
		Status:     "success",
		InsertedID: insertedID,
		Message:    "Feedback stored",
	})
}
