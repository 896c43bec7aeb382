package parser

import (
	"strconv"
	"strings"
	"time"
)

//timestampLayouts are tried in order against a candidate timestamp string
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
}

//syslogLayout covers the classic "Mon DD HH:MM:SS" prefix which carries
//no year of its own
const syslogLayout = "Jan _2 15:04:05"

//ParseTimestamp makes a best-effort attempt at understanding a loosely
//formatted timestamp. It recognizes ISO-8601-looking strings, unix epoch
//values in seconds or milliseconds, and syslog style prefixes. The second
//return value reports whether parsing succeeded; ParseTimestamp never fails
//in a way the caller must handle.
func ParseTimestamp(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	// unix epoch, possibly with a fractional part
	if epoch, ok := parseEpoch(text); ok {
		return epoch, true
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts.Unix(), true
		}
	}

	// syslog timestamps omit the year; assume the current one
	if ts, err := time.Parse(syslogLayout, text); err == nil {
		now := time.Now()
		ts = ts.AddDate(now.Year(), 0, 0)
		return ts.Unix(), true
	}

	return 0, false
}

func parseEpoch(text string) (int64, bool) {
	intPart := text
	if idx := strings.Index(text, "."); idx >= 0 {
		intPart = text[:idx]
	}
	if intPart == "" {
		return 0, false
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	value, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, false
	}

	// thirteen digits is epoch milliseconds
	if len(intPart) >= 13 {
		return value / 1000, true
	}
	// anything shorter than nine digits is too ambiguous to call an epoch
	if len(intPart) < 9 {
		return 0, false
	}
	return value, true
}
