package domain

import "testing"

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"wc-pending", "Pending payment"},
		{"wc-processing", "Processing"},
		{"wc-on-hold", "On hold"},
		{"wc-completed", "Completed"},
		{"wc-cancelled", "Cancelled"},
		{"wc-refunded", "Refunded"},
		{"wc-failed", "Failed"},
		// unknown codes pass through unchanged
		{"wc-checkout-draft", "wc-checkout-draft"},
		{"trash", "trash"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.code); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
