package handlers

import "testing"

func TestSessionScore(t *testing.T) {
	if got := SessionScore(true); got != 85 {
		t.Errorf("Expected 85 for processed session, got %d", got)
	}
	if got := SessionScore(false); got != 50 {
		t.Errorf("Expected 50 for unprocessed session, got %d", got)
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  *int
	}{
		{name: "no sessions", flags: nil, want: nil},
		{name: "single unprocessed", flags: []bool{false}, want: intPtr(50)},
		{name: "single processed", flags: []bool{true}, want: intPtr(85)},
		// (85 + 50) / 2 = 67.5, rounds up
		{name: "mixed pair rounds to nearest", flags: []bool{true, false}, want: intPtr(68)},
		// (85 + 50 + 50) / 3 = 61.67
		{name: "one processed of three", flags: []bool{true, false, false}, want: intPtr(62)},
		{name: "all processed", flags: []bool{true, true, true}, want: intPtr(85)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageScore(tt.flags)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Expected %v, got %v", ptrStr(tt.want), ptrStr(got))
			}
			if got != nil && *got != *tt.want {
				t.Errorf("Expected %d, got %d", *tt.want, *got)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func ptrStr(v *int) interface{} {
	if v == nil {
		return "nil"
	}
	return *v
}
