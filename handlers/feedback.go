// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/openexpo/booth-feedback/cliparse"
	"github.com/openexpo/booth-feedback/middleware"
	"github.com/openexpo/booth-feedback/models"
)

type FeedbackHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewFeedbackHandler(db *sql.DB, cfg cliparse.Config) *FeedbackHandler {
	return &FeedbackHandler{db: db, cfg: cfg}
}

const noStudentMessage = "No feedback data yet: this team has not presented. " +
	"Give a presentation and collect feedback first."

const noSessionsMessage = "No feedback has been recorded for this booth yet."

// GetFeedback handles GET /api/feedback/{email}
// Resolves the student's booth by email and returns the booth's full
// feedback history with scores and team context.
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	email := models.NormalizeKey(r.PathValue("email"))
	if email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required", "")
		return
	}

	ctx := r.Context()

	// Resolve the student. Legacy rows may be stored unnormalized, so the
	// stored value is normalized inside the query as well.
	var student models.Student
	err := h.db.QueryRowContext(ctx, `
		SELECT email, full_name, team_name, booth_id
		FROM students
		WHERE TRIM(LOWER(email)) = $1
	`, email).Scan(&student.Email, &student.FullName, &student.TeamName, &student.BoothID)

	if err == sql.ErrNoRows {
		// Deliberately not the generic error envelope: the frontend shows
		// this message verbatim, and score must be an explicit null.
		middleware.JSONResponse(w, http.StatusNotFound, models.NoFeedbackResponse{
			Message: noStudentMessage,
			Score:   nil,
		})
		return
	}
	if err != nil {
		slog.Error("failed to query student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while looking up student", err.Error())
		return
	}

	boothID := models.NormalizeKey(student.BoothID)

	// Full session history for the booth, most recent first. No pagination:
	// a booth accumulates at most a few hundred sessions per event.
	rows, err := h.db.QueryContext(ctx, `
		SELECT raw_text, summary_text, visitor_attribute, is_processed, praise_ratio, advice_ratio
		FROM sessions
		WHERE TRIM(LOWER(booth_id)) = $1
		ORDER BY id DESC
	`, boothID)
	if err != nil {
		slog.Error("failed to query sessions", "error", err, "booth_id", boothID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while loading feedback", err.Error())
		return
	}
	defer rows.Close()

	feedbacks := []models.Feedback{}
	processedFlags := []bool{}
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.RawText, &fb.SummaryText, &fb.VisitorAttribute,
			&fb.IsProcessed, &fb.PraiseRatio, &fb.AdviceRatio); err != nil {
			slog.Error("failed to scan session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while loading feedback", err.Error())
			return
		}
		fb.Score = SessionScore(fb.IsProcessed)
		feedbacks = append(feedbacks, fb)
		processedFlags = append(processedFlags, fb.IsProcessed)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read sessions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while loading feedback", err.Error())
		return
	}

	// Team members, flagging the querying student
	memberRows, err := h.db.QueryContext(ctx, `
		SELECT full_name, email
		FROM students
		WHERE team_name = $1
		ORDER BY full_name
	`, student.TeamName)
	if err != nil {
		slog.Error("failed to query team members", "error", err, "team", student.TeamName)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while loading team", err.Error())
		return
	}
	defer memberRows.Close()

	members := []models.TeamMember{}
	for memberRows.Next() {
		var m models.TeamMember
		if err := memberRows.Scan(&m.Name, &m.Email); err != nil {
			slog.Error("failed to scan team member", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while loading team", err.Error())
			return
		}
		m.IsCurrentUser = models.NormalizeKey(m.Email) == email
		members = append(members, m)
	}
	if err := memberRows.Err(); err != nil {
		slog.Error("failed to read team members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while loading team", err.Error())
		return
	}

	// Population-wide comparison metric
	var totalTeams int
	err = h.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT team_name) FROM students
	`).Scan(&totalTeams)
	if err != nil {
		slog.Error("failed to count teams", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error while counting teams", err.Error())
		return
	}

	response := models.FeedbackResponse{
		TeamName:        student.TeamName,
		BoothID:         boothID,
		TotalCount:      len(feedbacks),
		TotalTeamsCount: totalTeams,
		AverageScore:    AverageScore(processedFlags),
		TeamMembers:     members,
		Feedbacks:       feedbacks,
	}
	if len(feedbacks) == 0 {
		response.Message = noSessionsMessage
	}

	slog.Info("feedback retrieved", "booth_id", boothID, "sessions", len(feedbacks))

	middleware.JSONResponse(w, http.StatusOK, response)
}
