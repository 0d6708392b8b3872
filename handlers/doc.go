// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the booth feedback API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - FeedbackHandler: feedback retrieval/aggregation and submission (*sql.DB + Config)
  - AudioHandler: audio transcription and text summarization (*genai.Client + Summarizer)

	feedbackHandler := handlers.NewFeedbackHandler(db, cfg)
	audioHandler := handlers.NewAudioHandler(client, summarizer)

# Feedback Flow

	POST /api/process_audio   → ProcessAudio (speech → transcript + summary)
	POST /api/submit_feedback → SubmitFeedback (one session row, no dedup)
	GET  /api/feedback/{email} → GetFeedback (per-booth aggregation)
	POST /api/summarize       → Summarize (text → summary + ratios)

GetFeedback resolves the student by normalized email, then returns the full
session history for the student's booth (most recent first), the team member
list with the querying student flagged, the distinct team count, and the
booth's average score.

# Scores

score.go derives display scores from processing status: 85 for a session
with a summary, 50 without, averaged per booth and rounded. An empty booth
has a null average.

# Error Handling

All failures are written through middleware.ErrorResponse as
{message, error_detail?}. Validation problems map to 400, an unknown student
email to 404 (with a "no presentation yet" message and null score), database
and configuration failures to 500. External AI failures follow the
asymmetry documented on ProcessAudio: total API failures are 500s, partial
failures degrade to placeholder text in a 200.
*/
package handlers
