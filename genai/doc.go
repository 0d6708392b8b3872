// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package genai is the client for the external generative-AI API.

# Client

The client is constructed once at startup and shared by all handlers:

	client := genai.NewClient(cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAIBaseURL)

It speaks the generateContent REST surface: text prompts for generation, and
base64 audio with a MIME type (inline_data parts) for transcription. Every
call is bounded by a 30 second timeout and is made exactly once - no retries.

# Errors

Three failure shapes, checked in this order:

  - ErrNoAPIKey: no key configured. Returned before any network I/O.
  - *APIError with StatusCode set: the API returned non-2xx. Message is the
    parsed {"error":{"message":...}} body when present, otherwise a truncated
    raw body.
  - *APIError{Message: "empty response"}: 2xx with no usable candidate text.

# Summarization

Two summary strategies are kept deliberately (historical revisions used both):

  - ModelSummarizer: asks the model for a one-sentence summary.
  - TruncateSummarizer: first 30 characters of the transcript. Display
    heuristic only.

NewSummarizer selects one by configured name.

SummarizeStructured is the richer review-style call used by the summarize
endpoint: it prompts for JSON with praise/advice ratios and bullet sections,
and degrades to the raw model text with 5/5 ratios when the model ignores
the JSON instruction.
*/
package genai
