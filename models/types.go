// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Summary strategy constants
const (
	StrategyModel    = "model"
	StrategyTruncate = "truncate"
)

// Request types

type SubmitFeedbackRequest struct {
	BoothID          string `json:"booth_id"`
	RawText          string `json:"raw_text"`
	VisitorAttribute string `json:"visitor_attribute"`
	SummaryText      string `json:"summary_text"`
	PraiseRatio      Ratio  `json:"praise_ratio"`
	AdviceRatio      Ratio  `json:"advice_ratio"`
}

type ProcessAudioRequest struct {
	AudioData string `json:"audio_data"`
	MimeType  string `json:"mime_type"`
	BoothID   string `json:"booth_id"`
}

type SummarizeRequest struct {
	Text             string `json:"text"`
	VisitorAttribute string `json:"visitor_attribute"`
	BoothID          string `json:"booth_id"`
}

// Response types

type SubmitFeedbackResponse struct {
	Status     string `json:"status"`
	InsertedID int64  `json:"inserted_id"`
	Message    string `json:"message"`
}

type ProcessAudioResponse struct {
	STTText     string `json:"stt_text"`
	SummaryText string `json:"summary_text"`
}

type SummarizeResponse struct {
	SummaryText string  `json:"summary_text"`
	PraiseRatio float64 `json:"praise_ratio"`
	AdviceRatio float64 `json:"advice_ratio"`
}

type FeedbackResponse struct {
	TeamName        string       `json:"team_name"`
	BoothID         string       `json:"booth_id"`
	TotalCount      int          `json:"total_count"`
	TotalTeamsCount int          `json:"total_teams_count"`
	AverageScore    *int         `json:"average_score"`
	Message         string       `json:"message,omitempty"`
	TeamMembers     []TeamMember `json:"team_members"`
	Feedbacks       []Feedback   `json:"feedbacks"`
}

type TeamMember struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	IsCurrentUser bool   `json:"is_current_user"`
}

type Feedback struct {
	RawText          string  `json:"raw_text"`
	SummaryText      string  `json:"summary_text"`
	VisitorAttribute string  `json:"visitor_attribute"`
	Score            int     `json:"score"`
	IsProcessed      bool    `json:"is_processed"`
	PraiseRatio      float64 `json:"praise_ratio"`
	AdviceRatio      float64 `json:"advice_ratio"`
}

// NoFeedbackResponse is the 404 body for an email with no student record.
// Score is always null; the message explains that no presentation has
// happened yet rather than reporting a generic lookup failure.
type NoFeedbackResponse struct {
	Message string `json:"message"`
	Score   *int   `json:"score"`
}

// Domain types

type Student struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	TeamName string `json:"team_name"`
	BoothID  string `json:"booth_id"`
}

// Error response

type ErrorResponse struct {
	Message     string `json:"message"`
	ErrorDetail string `json:"error_detail,omitempty"`
}
