// Package format converts raw Plex attribute values into the strings
// written to CSV output.
//
// Every converter follows the same contract: an empty or unparseable
// input yields an empty output. Converters never return errors and never
// substitute placeholder values for absent fields.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Minutes converts a millisecond duration attribute to a whole minute
// count, truncating.
func Minutes(ms string) string {
	v, ok := parseInt(ms)
	if !ok {
		return ""
	}
	return strconv.FormatInt(v/60000, 10)
}

// HoursMinutes converts a millisecond duration attribute to "2h 1m",
// or "34m" when under an hour.
func HoursMinutes(ms string) string {
	v, ok := parseInt(ms)
	if !ok {
		return ""
	}
	total := v / 60000
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// TrackLength converts a millisecond duration attribute to "M:SS" with
// the seconds zero-padded.
func TrackLength(ms string) string {
	v, ok := parseInt(ms)
	if !ok {
		return ""
	}
	total := v / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// RatingPercent converts a 0-10 score attribute to a whole percentage,
// e.g. "8.5" becomes "85%".
func RatingPercent(score string) string {
	score = strings.TrimSpace(score)
	if score == "" {
		return ""
	}
	v, err := strconv.ParseFloat(score, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(math.Round(v*10), 'f', -1, 64) + "%"
}

// ByteSize converts a byte count attribute to a binary-unit string such
// as "1.5GiB".
func ByteSize(b string) string {
	v, ok := parseInt(b)
	if !ok || v < 0 {
		return ""
	}
	// humanize emits "1.5 GiB"; the output format has no space.
	return strings.ReplaceAll(humanize.IBytes(uint64(v)), " ", "")
}

// LocalTime converts a unix epoch attribute to a local date-time string.
func LocalTime(epoch string) string {
	v, ok := parseInt(epoch)
	if !ok || v <= 0 {
		return ""
	}
	return time.Unix(v, 0).Format("2006-01-02 15:04:05")
}

// OrZero returns "0" when the value is empty. Used for episode and
// season counts, which the output schema reports as literal zeroes
// rather than blanks.
func OrZero(v string) string {
	if strings.TrimSpace(v) == "" {
		return "0"
	}
	return v
}

func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
