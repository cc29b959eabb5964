package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrIndexEmpty is returned when the index argument is empty or whitespace-only after trim.
var ErrIndexEmpty = errors.New("index is required")

// ErrIndexNotInteger is returned when the index is not a base-10 integer that fits in an int.
var ErrIndexNotInteger = errors.New("index is not an integer")

// ErrIndexNegative is returned when the index is below zero.
var ErrIndexNegative = errors.New("index must not be negative")

// ErrIndexTooLarge is returned when the index exceeds the configured maximum.
var ErrIndexTooLarge = errors.New("index too large")

// ParseIndex trims the input and parses it as a base-10 sequence length.
// 0 and 1 are accepted; max <= 0 disables the upper bound.
func ParseIndex(input string, max int) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrIndexEmpty
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrIndexNotInteger, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrIndexNegative, n)
	}
	if max > 0 && n > max {
		return 0, fmt.Errorf("%w: %d exceeds maximum %d", ErrIndexTooLarge, n, max)
	}
	return n, nil
}
