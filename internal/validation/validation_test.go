package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestParseIndex_EmptyAndWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tab", "\t"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseIndex(tc.input, 100)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrIndexEmpty) {
				t.Errorf("error = %v, want ErrIndexEmpty", err)
			}
		})
	}
}

func TestParseIndex_NotInteger(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"letters", "abc"},
		{"trailing garbage", "12abc"},
		{"float", "3.5"},
		{"hex", "0x10"},
		{"overflows int", "99999999999999999999999"},
		{"inner space", "1 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseIndex(tc.input, 0)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrIndexNotInteger) {
				t.Errorf("error = %v, want ErrIndexNotInteger", err)
			}
		})
	}
}

func TestParseIndex_NotIntegerQuotesInput(t *testing.T) {
	_, err := ParseIndex(" abc ", 0)
	if err == nil || !strings.Contains(err.Error(), `"abc"`) {
		t.Errorf("error = %v, want message quoting trimmed input", err)
	}
}

func TestParseIndex_Negative(t *testing.T) {
	_, err := ParseIndex("-1", 100)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrIndexNegative) {
		t.Errorf("error = %v, want ErrIndexNegative", err)
	}
}

func TestParseIndex_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"zero", "0", 0},
		{"one", "1", 1},
		{"ten", "10", 10},
		{"plus sign", "+5", 5},
		{"leading zeros", "007", 7},
		{"trimmed", "  12\n", 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIndex(tc.input, 100)
			if err != nil {
				t.Fatalf("ParseIndex() err = %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseIndex(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseIndex_MaxBoundaries(t *testing.T) {
	// Exactly max
	got, err := ParseIndex("100", 100)
	if err != nil {
		t.Fatalf("max boundary: err = %v", err)
	}
	if got != 100 {
		t.Errorf("max boundary: got %d", got)
	}
	// One over max
	_, err = ParseIndex("101", 100)
	if err == nil || !errors.Is(err, ErrIndexTooLarge) {
		t.Errorf("over max: err = %v, want ErrIndexTooLarge", err)
	}
	// Non-positive max disables the bound
	got, err = ParseIndex("5000000", 0)
	if err != nil {
		t.Fatalf("unbounded: err = %v", err)
	}
	if got != 5000000 {
		t.Errorf("unbounded: got %d", got)
	}
}
