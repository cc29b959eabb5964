package main

import "testing"

// TestCoverageGaps_IntentionallyUntested documents why cmd/fibseq has no unit tests.
// Run with -v to see skip reason.
func TestCoverageGaps_IntentionallyUntested(t *testing.T) {
	t.Skip("main.go is wiring-only; Run is tested in internal/cli against in-memory stdout/stderr")
}
