package transfer_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oams-ph/transfer-api/internal/domain/transfer"
)

var transferNoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{2}$`)

func TestFormatTransferNo_Shape(t *testing.T) {
	at := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	got := transfer.FormatTransferNo(at, 7)
	assert.Equal(t, "2026-08-30-07", got)
	assert.Regexp(t, transferNoPattern, got)
}

// Single-digit counters are zero-padded to two digits.
func TestFormatTransferNo_ZeroPadding(t *testing.T) {
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-02-01", transfer.FormatTransferNo(at, 1))
}

// The counter never rolls over: values past 99 widen the suffix instead of
// being truncated.
func TestFormatTransferNo_LargeCounterNotTruncated(t *testing.T) {
	at := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30-123", transfer.FormatTransferNo(at, 123))
}

// Same day, consecutive counters: numbers differ only by the suffix.
func TestFormatTransferNo_SameDaySequence(t *testing.T) {
	at := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08-30-41", transfer.FormatTransferNo(at, 41))
	assert.Equal(t, "2026-08-30-42", transfer.FormatTransferNo(at, 42))
}
