package parser

import (
	"regexp"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/redwire/wiretalk/pkg/data"
)

//candidate JSON field names, consulted in priority order; the first
//present key wins
var (
	jsonSourceKeys      = []string{"src", "source", "src_ip", "source_ip", "client", "saddr", "from"}
	jsonDestinationKeys = []string{"dst", "dest", "destination", "dst_ip", "destination_ip", "server", "daddr", "to"}
	jsonPayloadKeys     = []string{"data", "payload", "message", "body", "content", "msg"}
	jsonSrcPortKeys     = []string{"sport", "src_port", "srcPort", "source_port"}
	jsonDstPortKeys     = []string{"dport", "dst_port", "dstPort", "destination_port"}
	jsonTimestampKeys   = []string{"ts", "time", "timestamp", "date"}
	jsonProtocolKeys    = []string{"proto", "protocol"}
)

//key=value token matchers; these are stateless compiled patterns, every
//call scans the line from the start
var (
	kvSourcePattern      = regexp.MustCompile(`(?i)\b(?:src|source|client|saddr|from)\s*=\s*([^\s|,;=]+)`)
	kvDestinationPattern = regexp.MustCompile(`(?i)\b(?:dst|dest|destination|server|daddr|to)\s*=\s*([^\s|,;=]+)`)
	// the payload value runs until a clearly delimited next token, a pipe,
	// or the end of the line
	kvPayloadPattern = regexp.MustCompile(`(?i)\b(?:data|payload|msg|message)\s*=\s*(.*?)(?:\s+[A-Za-z_]+\s*=|\s*\||$)`)
	kvSrcPortPattern     = regexp.MustCompile(`(?i)\b(?:sport|spt|src_port)\s*=\s*(\d{1,5})`)
	kvDstPortPattern     = regexp.MustCompile(`(?i)\b(?:dport|dpt|dst_port)\s*=\s*(\d{1,5})`)
	kvProtocolPattern    = regexp.MustCompile(`(?i)\b(?:proto|protocol)\s*=\s*([^\s|,;=]+)`)
	kvTimestampPattern   = regexp.MustCompile(`(?i)\b(?:ts|time|timestamp)\s*=\s*([^\s|,;=]+)`)
)

//arrowMarkers are directional separators between two endpoints; longer
//markers are matched first so "-->" is not mistaken for "--" + ">"
var arrowMarkers = []string{"-->", "->", "=>", "→", "⇒", "↔"}

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

//Extract attempts to pull a Message out of one line of raw text using an
//ordered cascade of format-specific strategies: JSON object, tabular row
//(when a schema was detected), key=value tokens, arrow notation, and
//finally a generic scan for the first two address-like substrings. The
//first successful strategy wins. Extract never fails; a line that defeats
//every strategy yields nil.
func Extract(line string, schema *Schema) *data.Message {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	if msg := extractJSON(trimmed, line); msg != nil {
		return msg
	}
	if schema != nil {
		if msg := extractTabular(trimmed, line, schema); msg != nil {
			return msg
		}
	}
	if msg := extractKeyValue(trimmed, line); msg != nil {
		return msg
	}
	if msg := extractArrow(trimmed, line); msg != nil {
		return msg
	}
	return extractGeneric(trimmed, line)
}

//extractJSON handles lines holding a single JSON object. Malformed JSON is
//not an error; the line simply falls through to the next strategy.
func extractJSON(trimmed, raw string) *data.Message {
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil
	}

	var fields map[string]interface{}
	if err := jsonConfig.Unmarshal([]byte(trimmed), &fields); err != nil {
		return nil
	}

	source, _ := firstString(fields, jsonSourceKeys)
	destination, _ := firstString(fields, jsonDestinationKeys)
	if source == "" || destination == "" {
		return nil
	}

	msg := newMessage(source, destination, raw)
	msg.Payload, _ = firstString(fields, jsonPayloadKeys)
	msg.Protocol, _ = firstString(fields, jsonProtocolKeys)

	if port, ok := firstInt(fields, jsonSrcPortKeys); ok && msg.SrcPort == 0 {
		msg.SrcPort = port
	}
	if port, ok := firstInt(fields, jsonDstPortKeys); ok && msg.DstPort == 0 {
		msg.DstPort = port
	}
	if tsText, ok := firstString(fields, jsonTimestampKeys); ok {
		setTimestamp(msg, tsText)
	}
	return msg
}

//firstString consults an ordered list of candidate keys against a generic
//string-keyed mapping; the first present key wins. Numeric values are
//rendered to text so that `"sport": 1234` style fields are still usable.
func firstString(fields map[string]interface{}, keys []string) (string, bool) {
	for _, key := range keys {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		switch typed := value.(type) {
		case string:
			if typed != "" {
				return typed, true
			}
		case float64:
			return strconv.FormatFloat(typed, 'f', -1, 64), true
		}
	}
	return "", false
}

func firstInt(fields map[string]interface{}, keys []string) (int, bool) {
	text, ok := firstString(fields, keys)
	if !ok {
		return 0, false
	}
	port, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || port < 0 || port > 65535 {
		return 0, false
	}
	return port, true
}

//extractTabular maps the columns of a delimited row onto a Message using
//the detected schema. Rows missing a source or destination column fall
//through to the later strategies.
func extractTabular(trimmed, raw string, schema *Schema) *data.Message {
	fields := splitDelimited(trimmed, schema.Delimiter)

	var source, destination, payload, tsText, protocol string
	var srcPort, dstPort int

	for idx, role := range schema.Columns {
		if idx >= len(fields) {
			continue
		}
		value := strings.TrimSpace(fields[idx])
		switch role {
		case ColumnSource:
			source = value
		case ColumnDestination:
			destination = value
		case ColumnPayload:
			payload = value
		case ColumnTimestamp:
			tsText = value
		case ColumnSrcPort:
			srcPort, _ = parsePort(value)
		case ColumnDstPort:
			dstPort, _ = parsePort(value)
		case ColumnProtocol:
			protocol = value
		}
	}

	if source == "" || destination == "" {
		return nil
	}

	msg := newMessage(source, destination, raw)
	msg.Payload = payload
	msg.Protocol = protocol
	if srcPort != 0 {
		msg.SrcPort = srcPort
	}
	if dstPort != 0 {
		msg.DstPort = dstPort
	}
	if tsText != "" {
		setTimestamp(msg, tsText)
	}
	return msg
}

//extractKeyValue searches for SRC=/DST= style tokens anywhere in the line,
//independent of field order or separator.
func extractKeyValue(trimmed, raw string) *data.Message {
	sourceMatch := kvSourcePattern.FindStringSubmatch(trimmed)
	destinationMatch := kvDestinationPattern.FindStringSubmatch(trimmed)
	if sourceMatch == nil || destinationMatch == nil {
		return nil
	}

	msg := newMessage(sourceMatch[1], destinationMatch[1], raw)

	if m := kvPayloadPattern.FindStringSubmatch(trimmed); m != nil {
		msg.Payload = strings.TrimSpace(m[1])
	}
	if m := kvSrcPortPattern.FindStringSubmatch(trimmed); m != nil && msg.SrcPort == 0 {
		msg.SrcPort, _ = parsePort(m[1])
	}
	if m := kvDstPortPattern.FindStringSubmatch(trimmed); m != nil && msg.DstPort == 0 {
		msg.DstPort, _ = parsePort(m[1])
	}
	if m := kvProtocolPattern.FindStringSubmatch(trimmed); m != nil {
		msg.Protocol = m[1]
	}
	if m := kvTimestampPattern.FindStringSubmatch(trimmed); m != nil {
		setTimestamp(msg, m[1])
	}
	return msg
}

//extractArrow handles "1.2.3.4:80 -> 5.6.7.8 payload" style notation.
//Everything after the destination token becomes the payload.
func extractArrow(trimmed, raw string) *data.Message {
	marker := ""
	markerIdx := -1
	for _, candidate := range arrowMarkers {
		if idx := strings.Index(trimmed, candidate); idx > 0 {
			marker = candidate
			markerIdx = idx
			break
		}
	}
	if markerIdx < 0 {
		return nil
	}

	left := strings.Fields(trimmed[:markerIdx])
	right := strings.Fields(trimmed[markerIdx+len(marker):])
	if len(left) == 0 || len(right) == 0 {
		return nil
	}

	sourceToken := left[len(left)-1]
	destinationToken := right[0]
	if !looksLikeAddress(sourceToken) || !looksLikeAddress(destinationToken) {
		return nil
	}

	msg := newMessage(sourceToken, destinationToken, raw)
	msg.Payload = strings.Join(right[1:], " ")

	// a leading token before the source may be a timestamp
	if len(left) > 1 {
		prefix := strings.Join(left[:len(left)-1], " ")
		setTimestamp(msg, prefix)
	}
	return msg
}

//extractGeneric is the last-resort strategy: the first two address-like
//substrings in left-to-right order become source and destination and the
//whole line is kept as the payload.
func extractGeneric(trimmed, raw string) *data.Message {
	addresses := findAddresses(trimmed, 2)
	if len(addresses) < 2 {
		return nil
	}

	msg := newMessage(addresses[0], addresses[1], raw)
	msg.Payload = trimmed
	return msg
}

//newMessage builds a Message from endpoint tokens, splitting any embedded
//port suffixes off of the identifiers.
func newMessage(sourceToken, destinationToken, raw string) *data.Message {
	source, srcPort := SplitAddrPort(sourceToken)
	destination, dstPort := SplitAddrPort(destinationToken)

	return &data.Message{
		Source:      source,
		Destination: destination,
		SrcPort:     srcPort,
		DstPort:     dstPort,
		RawLine:     raw,
	}
}

//setTimestamp records the raw timestamp text and, when the text can be
//understood, the parsed epoch value.
func setTimestamp(msg *data.Message, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	msg.TimeText = text
	if epoch, ok := ParseTimestamp(text); ok {
		msg.Timestamp = epoch
	}
}
