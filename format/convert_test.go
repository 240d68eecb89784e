package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two hours one minute", "7265000", "121"},
		{"under a minute truncates", "59999", "0"},
		{"exactly one minute", "60000", "1"},
		{"empty input", "", ""},
		{"garbage input", "abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Minutes(tt.input))
		})
	}
}

func TestHoursMinutes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hours and minutes", "7265000", "2h 1m"},
		{"under an hour", "2040000", "34m"},
		{"exactly one hour", "3600000", "1h 0m"},
		{"zero", "0", "0m"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HoursMinutes(tt.input))
		})
	}
}

func TestTrackLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"long track", "7265000", "121:05"},
		{"seconds zero-padded", "185000", "3:05"},
		{"under a minute", "42000", "0:42"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TrackLength(tt.input))
		})
	}
}

func TestRatingPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"typical score", "8.5", "85%"},
		{"whole score", "7", "70%"},
		{"rounding up", "6.55", "66%"},
		{"perfect score", "10", "100%"},
		{"empty input yields no percent sign", "", ""},
		{"garbage input", "n/a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RatingPercent(tt.input))
		})
	}
}

func TestByteSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"gigabytes", "1610612736", "1.5GiB"},
		{"megabytes", "734003200", "700MiB"},
		{"bytes", "512", "512B"},
		{"empty input", "", ""},
		{"negative input", "-1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ByteSize(tt.input))
		})
	}
}

func TestLocalTime(t *testing.T) {
	// Exact rendering depends on the local zone; pin down shape and
	// the absent-input contract instead.
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, LocalTime("1577880000"))
	assert.Empty(t, LocalTime(""))
	assert.Empty(t, LocalTime("not-a-timestamp"))
	assert.Empty(t, LocalTime("0"))
}

func TestOrZero(t *testing.T) {
	assert.Equal(t, "0", OrZero(""))
	assert.Equal(t, "0", OrZero("  "))
	assert.Equal(t, "24", OrZero("24"))
}
