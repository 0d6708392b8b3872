// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "strings"

// NormalizeKey lowercases and trims an identifying key (student email, booth
// ID, visitor attribute). Rows are stored normalized and lookups normalize
// both sides, so the operation must be idempotent.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
