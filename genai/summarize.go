// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Summarizer produces a short summary for a feedback transcript. Two
// strategies exist because historical revisions of this service disagreed:
// some called the model, some truncated the transcript. Both are kept as
// named strategies selected by configuration.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

const summaryPrompt = `Summarize the following booth feedback in one short sentence.
Respond with the summary only, no preamble.

Feedback:
%s`

// ModelSummarizer asks the generative model for a summary.
type ModelSummarizer struct {
	Client *Client
}

func (s ModelSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	return s.Client.GenerateText(ctx, fmt.Sprintf(summaryPrompt, transcript))
}

// truncateLimit is the display length used by the truncation strategy.
const truncateLimit = 30

// TruncateSummarizer derives a display string from the transcript itself.
// This is a display heuristic, not a real summary; nothing else may depend
// on its exact shape.
type TruncateSummarizer struct{}

func (TruncateSummarizer) Summarize(_ context.Context, transcript string) (string, error) {
	runes := []rune(strings.TrimSpace(transcript))
	if len(runes) <= truncateLimit {
		return string(runes), nil
	}
	return string(runes[:truncateLimit]), nil
}

// NewSummarizer selects a strategy by name ("model" or "truncate").
func NewSummarizer(strategy string, client *Client) (Summarizer, error) {
	switch strategy {
	case "", "model":
		return ModelSummarizer{Client: client}, nil
	case "truncate":
		return TruncateSummarizer{}, nil
	default:
		return nil, fmt.Errorf("unknown summary strategy %q", strategy)
	}
}

// StructuredSummary is the result of the review-style summarization used by
// the summarize endpoint: a formatted summary plus praise/advice ratios on a
// 0-10 scale.
type StructuredSummary struct {
	Summary     string
	PraiseRatio float64
	AdviceRatio float64
}

const reviewPromptFormat = `You are an expert reviewer of event booth presentations.
Analyze the visitor feedback below and respond with JSON only, no markdown fences
or commentary, matching this structure:

{"ratio_good": <integer 0-10>, "ratio_advice": <integer 0-10>, "summary": [{"title": <string>, "items": [<string>, ...]}, ...]}

ratio_good rates how much of the feedback is praise; ratio_advice rates how much
is improvement advice. The two should sum to roughly 10. Each summary section
has a short title and concrete bullet items.

- Visitor attribute: %s
- Booth: %s
- Feedback text:
---
%s
---`

type reviewResult struct {
	RatioGood   float64 `json:"ratio_good"`
	RatioAdvice float64 `json:"ratio_advice"`
	Summary     []struct {
		Title string   `json:"title"`
		Items []string `json:"items"`
	} `json:"summary"`
}

// SummarizeStructured runs the review prompt over raw feedback text. When
// the model responds with something that is not the requested JSON, the raw
// text is kept as the summary and the ratios fall back to an even 5/5 split
// rather than failing the request.
func (c *Client) SummarizeStructured(ctx context.Context, text, visitorAttribute, boothID string) (StructuredSummary, error) {
	if visitorAttribute == "" {
		visitorAttribute = "general_visitor"
	}
	if boothID == "" {
		boothID = "N/A"
	}

	raw, err := c.GenerateText(ctx, fmt.Sprintf(reviewPromptFormat, visitorAttribute, boothID, text))
	if err != nil {
		return StructuredSummary{}, err
	}

	var parsed reviewResult
	if err := json.Unmarshal([]byte(stripJSONFences(raw)), &parsed); err != nil {
		return StructuredSummary{Summary: raw, PraiseRatio: 5, AdviceRatio: 5}, nil
	}

	var sb strings.Builder
	for _, section := range parsed.Summary {
		title := section.Title
		if title == "" {
			title = "Summary"
		}
		fmt.Fprintf(&sb, "**%s**:\n", title)
		for _, item := range section.Items {
			fmt.Fprintf(&sb, "- %s\n", item)
		}
		sb.WriteString("\n")
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		summary = raw
	}

	return StructuredSummary{
		Summary:     summary,
		PraiseRatio: parsed.RatioGood,
		AdviceRatio: parsed.RatioAdvice,
	}, nil
}

// stripJSONFences removes a markdown code fence the model sometimes wraps
// around its JSON despite instructions.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
