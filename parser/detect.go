package parser

import (
	"strings"

	"github.com/redwire/wiretalk/util"
)

//ColumnRole identifies what a tabular column contributes to a Message
type ColumnRole int

const (
	ColumnIgnore ColumnRole = iota
	ColumnSource
	ColumnDestination
	ColumnPayload
	ColumnTimestamp
	ColumnSrcPort
	ColumnDstPort
	ColumnProtocol
)

//Schema describes a detected delimited-tabular layout: which delimiter
//splits the fields and what each column index contributes.
type Schema struct {
	Delimiter rune
	Columns   map[int]ColumnRole
	//HasHeader is true when the first line of input is a header row and
	//must not be extracted as a Message
	HasHeader bool
}

//header synonym sets, consulted case-insensitively
var (
	sourceHeaders = []string{
		"src", "source", "src_ip", "source_ip", "srcip", "client",
		"client_ip", "saddr", "from", "sender",
	}
	destinationHeaders = []string{
		"dst", "dest", "destination", "dst_ip", "destination_ip", "dstip",
		"server", "server_ip", "daddr", "to", "receiver",
	}
	payloadHeaders   = []string{"data", "payload", "message", "body", "content", "msg", "info"}
	timestampHeaders = []string{"ts", "time", "timestamp", "date", "datetime"}
	srcPortHeaders   = []string{"sport", "src_port", "srcport", "source_port", "spt"}
	dstPortHeaders   = []string{"dport", "dst_port", "dstport", "destination_port", "dpt"}
	protocolHeaders  = []string{"proto", "protocol"}
)

//candidateDelimiters are voted on by occurrence count; tab takes priority
//whenever it is present at all
var candidateDelimiters = []rune{',', '|', ';'}

//DetectTabularSchema inspects the input lines and decides whether they form
//a delimited table. It returns nil when no delimiter dominates or no
//plausible source/destination columns are found, in which case the caller
//must rely on per-line heuristics instead.
func DetectTabularSchema(lines []string) *Schema {
	first := firstNonEmptyLine(lines)
	if first == "" {
		return nil
	}

	delimiter, ok := pickDelimiter(first)
	if !ok {
		return nil
	}

	fields := splitDelimited(first, delimiter)

	if schema := matchHeaderRow(fields, delimiter); schema != nil {
		return schema
	}

	return inferPositionalSchema(lines, delimiter)
}

func firstNonEmptyLine(lines []string) string {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return ""
}

//pickDelimiter selects the delimiter with the highest occurrence count in
//the line. A tab wins outright if one is present.
func pickDelimiter(line string) (rune, bool) {
	if strings.ContainsRune(line, '\t') {
		return '\t', true
	}

	best := rune(0)
	bestCount := 0
	for _, delim := range candidateDelimiters {
		count := strings.Count(line, string(delim))
		if count > bestCount {
			best = delim
			bestCount = count
		}
	}
	if bestCount == 0 {
		return 0, false
	}
	return best, true
}

//matchHeaderRow maps header fields onto column roles using the synonym
//sets. A schema is only returned when both a source and a destination
//column were recognized.
func matchHeaderRow(fields []string, delimiter rune) *Schema {
	columns := make(map[int]ColumnRole)
	haveSource := false
	haveDestination := false

	for idx, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		switch {
		case util.StringInSlice(name, sourceHeaders) && !haveSource:
			columns[idx] = ColumnSource
			haveSource = true
		case util.StringInSlice(name, destinationHeaders) && !haveDestination:
			columns[idx] = ColumnDestination
			haveDestination = true
		case util.StringInSlice(name, payloadHeaders):
			columns[idx] = ColumnPayload
		case util.StringInSlice(name, timestampHeaders):
			columns[idx] = ColumnTimestamp
		case util.StringInSlice(name, srcPortHeaders):
			columns[idx] = ColumnSrcPort
		case util.StringInSlice(name, dstPortHeaders):
			columns[idx] = ColumnDstPort
		case util.StringInSlice(name, protocolHeaders):
			columns[idx] = ColumnProtocol
		}
	}

	if !haveSource || !haveDestination {
		return nil
	}
	return &Schema{Delimiter: delimiter, Columns: columns, HasHeader: true}
}

//positionalScanRows bounds how many rows are examined when falling back to
//positional column inference
const positionalScanRows = 10

//inferPositionalSchema scans the first few rows and picks the first two
//columns whose values look like addresses as source and destination.
func inferPositionalSchema(lines []string, delimiter rune) *Schema {
	addressHits := make(map[int]int)
	maxColumns := 0
	scanned := 0

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if scanned >= positionalScanRows {
			break
		}
		scanned++

		fields := splitDelimited(line, delimiter)
		if len(fields) > maxColumns {
			maxColumns = len(fields)
		}
		for idx, field := range fields {
			if looksLikeAddress(field) {
				addressHits[idx]++
			}
		}
	}

	columns := make(map[int]ColumnRole)
	assigned := 0
	for idx := 0; idx < maxColumns && assigned < 2; idx++ {
		if addressHits[idx] == 0 {
			continue
		}
		if assigned == 0 {
			columns[idx] = ColumnSource
		} else {
			columns[idx] = ColumnDestination
		}
		assigned++
	}

	if assigned < 2 {
		return nil
	}
	return &Schema{Delimiter: delimiter, Columns: columns}
}

//splitDelimited splits a row on the delimiter while respecting quoted
//fields. A delimiter inside quotes is literal and a doubled quote inside a
//quoted field is an escaped quote character.
func splitDelimited(line string, delimiter rune) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, current.String())
	return fields
}
