// Package parser turns loosely structured network-traffic log text into
// Messages. Format detection and per-line extraction are tolerant by
// design: a line that cannot be understood is skipped, never an error.
package parser

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/redwire/wiretalk/pkg/data"
)

//Results holds the outcome of parsing one body of input text
type Results struct {
	Messages  []*data.Message
	Schema    *Schema
	LineCount int
	Skipped   int
}

//SplitLines breaks raw input into lines, tolerating both CRLF and LF
//separators.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

//ParseText parses a whole body of raw log text. See ParseLines.
func ParseText(text string, logger *log.Logger) *Results {
	return ParseLines(SplitLines(text), logger, nil)
}

//ParseLines runs format detection over the input and then applies the
//extraction cascade to every non-empty, non-comment line. Lines that
//defeat every strategy are counted and skipped. The optional progress
//callback fires once per input line; parse errors never reach the caller.
func ParseLines(lines []string, logger *log.Logger, progress func()) *Results {
	results := &Results{
		Schema:    DetectTabularSchema(lines),
		LineCount: len(lines),
	}

	if results.Schema != nil && logger != nil {
		logger.WithFields(log.Fields{
			"delimiter":  string(results.Schema.Delimiter),
			"has_header": results.Schema.HasHeader,
		}).Debug("detected delimited tabular input")
	}

	skipHeader := results.Schema != nil && results.Schema.HasHeader

	for _, line := range lines {
		if progress != nil {
			progress()
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// the header row describes the data; it is not a record itself
		if skipHeader {
			skipHeader = false
			continue
		}

		msg := Extract(line, results.Schema)
		if msg == nil {
			results.Skipped++
			continue
		}
		results.Messages = append(results.Messages, msg)
	}

	if logger != nil && results.Skipped > 0 {
		logger.WithFields(log.Fields{
			"skipped": results.Skipped,
			"total":   results.LineCount,
		}).Debug("skipped unparseable lines")
	}

	return results
}
