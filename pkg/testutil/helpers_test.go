package testutil

import "testing"

func TestScript(t *testing.T) {
	tests := []struct {
		name     string
		answers  []string
		expected string
	}{
		{name: "No answers", answers: nil, expected: ""},
		{name: "Single answer", answers: []string{"5"}, expected: "5\n"},
		{name: "Full calculation", answers: []string{"10000", "1000", "7", "10", "5"}, expected: "10000\n1000\n7\n10\n5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Script(tt.answers...); got != tt.expected {
				t.Errorf("Script(%v) = %q, expected %q", tt.answers, got, tt.expected)
			}
		})
	}
}

func TestRequireContains(t *testing.T) {
	RequireContains(t, "End Portfolio Value: $33,487.96", "End Portfolio Value", "$33,487.96")
}
