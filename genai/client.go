// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"

	// requestTimeout bounds every call to the API. There are no retries:
	// one failed attempt is surfaced to the caller as-is.
	requestTimeout = 30 * time.Second

	// maxErrorBody limits how much of an unstructured error body is kept.
	maxErrorBody = 200
)

// ErrNoAPIKey is returned before any network attempt when the client was
// constructed without an API key.
var ErrNoAPIKey = errors.New("generative AI API key is not configured")

// APIError describes a failed API call: a non-2xx status, or a 2xx response
// that carried no usable text.
type APIError struct {
	StatusCode int    // 0 when the HTTP exchange itself succeeded
	Message    string // parsed error message, truncated raw body, or "empty response"
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return "generative AI error: " + e.Message
	}
	return fmt.Sprintf("generative AI error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Client calls a generateContent-style generative AI endpoint.
// It never retries and never persists anything.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client. model and baseURL may be empty to use defaults;
// an empty apiKey is allowed and makes every call fail with ErrNoAPIKey.
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Wire types for the generateContent request/response

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateText sends a text prompt and returns the generated text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []requestPart{{Text: prompt}})
}

const transcribePrompt = "Transcribe the spoken feedback in this audio recording verbatim. " +
	"Respond with the transcript text only, no commentary."

// TranscribeAudio sends base64-encoded audio with its MIME type and returns
// the transcript.
func (c *Client) TranscribeAudio(ctx context.Context, audioBase64, mimeType string) (string, error) {
	parts := []requestPart{
		{Text: transcribePrompt},
		{InlineData: &inlineData{MimeType: mimeType, Data: audioBase64}},
	}
	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []requestPart) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: parts}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("generative AI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.apiError(resp)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	text := candidateText(decoded)
	if text == "" {
		return "", &APIError{Message: "empty response"}
	}
	return text, nil
}

// apiError builds an APIError from a non-2xx response. A structured
// {"error":{"message":...}} body wins; otherwise the raw body is truncated.
func (c *Client) apiError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body apiErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: body.Error.Message}
	}

	msg := strings.TrimSpace(string(raw))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody] + "..."
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

func candidateText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String())
}
