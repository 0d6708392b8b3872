// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ratio is a praise/advice rating on a nominal 0-10 scale. Browser form
// clients send it as a JSON number, older form clients as a numeric string,
// so it accepts both. Absent or null values decode to 0.
type Ratio float64

func (r *Ratio) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*r = 0
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*r = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("ratio must be numeric, got %q", str)
		}
		*r = Ratio(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("ratio must be numeric, got %s", s)
	}
	*r = Ratio(f)
	return nil
}
