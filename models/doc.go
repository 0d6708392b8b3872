// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitFeedbackRequest: booth_id, raw_text, visitor_attribute, optional summary/ratios
  - ProcessAudioRequest: audio_data (base64), mime_type, booth_id
  - SummarizeRequest: text, optional visitor_attribute and booth_id

# Response Types

Types for JSON responses:

  - FeedbackResponse: full per-booth aggregation for a student
  - SubmitFeedbackResponse: status, inserted_id, message
  - ProcessAudioResponse: stt_text, summary_text
  - SummarizeResponse: summary_text, praise_ratio, advice_ratio
  - NoFeedbackResponse: 404 body with null score
  - ErrorResponse: message, error_detail

# Domain Types

Internal data structures:

  - Student: one student row (email, name, team, booth)
  - TeamMember, Feedback: rows of the aggregation response

# Ratio

Ratio is a float64 that unmarshals from either a JSON number or a numeric
string, because the legacy form client submits ratios as strings. A
non-numeric value is a decode error, which handlers surface as HTTP 400.

# Normalization

NormalizeKey lowercases and trims identifying keys. It is applied on insert
and on lookup so that "Team@X.com " and "team@x.com" resolve identically.
*/
package models
