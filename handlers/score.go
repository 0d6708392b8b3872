// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "math"

// Display scores derived from processing status. Not a quality measure:
// a processed session (summary present) simply ranks above an unprocessed one.
const (
	ScoreProcessed   = 85
	ScoreUnprocessed = 50
)

// SessionScore returns the per-session display score.
func SessionScore(isProcessed bool) int {
	if isProcessed {
		return ScoreProcessed
	}
	return ScoreUnprocessed
}

// AverageScore computes the booth-wide average over per-session scores,
// rounded to the nearest integer. Nil when there are no sessions: an empty
// booth has no score, not a zero score.
func AverageScore(processedFlags []bool) *int {
	if len(processedFlags) == 0 {
		return nil
	}

	sum := 0
	for _, processed := range processedFlags {
		sum += SessionScore(processed)
	}

	avg := int(math.Round(float64(sum) / float64(len(processedFlags))))
	return &avg
}
