package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openexpo/booth-feedback/genai"
	"github.com/openexpo/booth-feedback/models"
)

// upstreamResponse scripts one reply from the fake generative AI server.
type upstreamResponse struct {
	status int
	body   string
}

// fakeUpstream serves the scripted responses in order, repeating the last
// one when the script runs out.
func fakeUpstream(t *testing.T, script ...upstreamResponse) *httptest.Server {
	t.Helper()

	call := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := script[call]
		if call < len(script)-1 {
			call++
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		w.Write([]byte(resp.body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func textBody(text string) string {
	quoted, _ := json.Marshal(text)
	return `{"candidates":[{"content":{"parts":[{"text":` + string(quoted) + `}]}}]}`
}

func postJSON(t *testing.T, handle http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handle(w, req)
	return w
}

const validAudioBody = `{"audio_data":"QUJDRA==","mime_type":"audio/webm","booth_id":"b1"}`

func TestProcessAudio(t *testing.T) {
	srv := fakeUpstream(t, upstreamResponse{http.StatusOK, textBody("the visitor liked the demo a lot")})
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.TruncateSummarizer{})

	w := postJSON(t, handler.ProcessAudio, "/api/process_audio", validAudioBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.ProcessAudioResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.STTText != "the visitor liked the demo a lot" {
		t.Errorf("Unexpected stt_text: %q", resp.STTText)
	}
	// Truncate strategy: first 30 runes of the transcript
	if resp.SummaryText != "the visitor liked the demo a l" {
		t.Errorf("Unexpected summary_text: %q", resp.SummaryText)
	}
}

func TestProcessAudioMissingFields(t *testing.T) {
	srv := fakeUpstream(t, upstreamResponse{http.StatusOK, textBody("unused")})
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.TruncateSummarizer{})

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{oops`},
		{name: "missing audio_data", body: `{"mime_type":"audio/webm","booth_id":"b1"}`},
		{name: "missing mime_type", body: `{"audio_data":"QUJD","booth_id":"b1"}`},
		{name: "missing booth_id", body: `{"audio_data":"QUJD","mime_type":"audio/webm"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler.ProcessAudio, "/api/process_audio", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d. Body: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestProcessAudioNoAPIKey(t *testing.T) {
	client := genai.NewClient("", "", "")
	handler := NewAudioHandler(client, genai.TruncateSummarizer{})

	w := postJSON(t, handler.ProcessAudio, "/api/process_audio", validAudioBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500 without API key, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not configured") {
		t.Errorf("Expected configuration error message, got %s", w.Body.String())
	}
}

func TestProcessAudioAPIErrorIsTotalFailure(t *testing.T) {
	srv := fakeUpstream(t, upstreamResponse{http.StatusForbidden, `{"error":{"message":"invalid key"}}`})
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.TruncateSummarizer{})

	w := postJSON(t, handler.ProcessAudio, "/api/process_audio", validAudioBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ErrorDetail != "invalid key" {
		t.Errorf("Expected parsed API message in error_detail, got %q", resp.ErrorDetail)
	}
}

func TestProcessAudioEmptyTranscriptDegrades(t *testing.T) {
	srv := fakeUpstream(t, upstreamResponse{http.StatusOK, `{"candidates":[]}`})
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.TruncateSummarizer{})

	w := postJSON(t, handler.ProcessAudio, "/api/process_audio", validAudioBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for empty transcript, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.ProcessAudioResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.STTText != "(no speech recognized)" {
		t.Errorf("Expected placeholder stt_text, got %q", resp.STTText)
	}
	if resp.SummaryText != "" {
		t.Errorf("Expected empty summary for empty transcript, got %q", resp.SummaryText)
	}
}

func TestProcessAudioSummaryFailureDegrades(t *testing.T) {
	// Transcription succeeds, model summarization then fails
	srv := fakeUpstream(t,
		upstreamResponse{http.StatusOK, textBody("a perfectly good transcript")},
		upstreamResponse{http.StatusTooManyRequests, `{"error":{"message":"quota exceeded"}}`},
	)
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.ModelSummarizer{Client: client})

	w := postJSON(t, handler.ProcessAudio, "/api/process_audio", validAudioBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 with degraded summary, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.ProcessAudioResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.STTText != "a perfectly good transcript" {
		t.Errorf("Expected real transcript, got %q", resp.STTText)
	}
	if !strings.Contains(resp.SummaryText, "Summary unavailable") ||
		!strings.Contains(resp.SummaryText, "quota exceeded") {
		t.Errorf("Expected embedded summary failure, got %q", resp.SummaryText)
	}
}

func TestSummarize(t *testing.T) {
	modelJSON := `{"ratio_good": 6, "ratio_advice": 4, "summary": [{"title": "Strengths", "items": ["clear demo"]}]}`
	srv := fakeUpstream(t, upstreamResponse{http.StatusOK, textBody(modelJSON)})
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.ModelSummarizer{Client: client})

	w := postJSON(t, handler.Summarize, "/api/summarize", `{"text":"the demo was clear","visitor_attribute":"student","booth_id":"b1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var resp models.SummarizeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.PraiseRatio != 6 || resp.AdviceRatio != 4 {
		t.Errorf("Expected ratios 6/4, got %v/%v", resp.PraiseRatio, resp.AdviceRatio)
	}
	if !strings.Contains(resp.SummaryText, "clear demo") {
		t.Errorf("Unexpected summary: %q", resp.SummaryText)
	}
}

func TestSummarizeMissingText(t *testing.T) {
	client := genai.NewClient("test-key", "", "")
	handler := NewAudioHandler(client, genai.ModelSummarizer{Client: client})

	w := postJSON(t, handler.Summarize, "/api/summarize", `{"text":"  "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestSummarizeExternalFailureIsHard500(t *testing.T) {
	srv := fakeUpstream(t, upstreamResponse{http.StatusForbidden, `{"error":{"message":"invalid key"}}`})
	client := genai.NewClient("test-key", "", srv.URL)
	handler := NewAudioHandler(client, genai.ModelSummarizer{Client: client})

	w := postJSON(t, handler.Summarize, "/api/summarize", `{"text":"some feedback"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d. Body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid key") {
		t.Errorf("Expected API detail in envelope, got %s", w.Body.String())
	}
}
