package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONLine(t *testing.T) {
	msg := Extract(`{"src":"10.0.0.1","dst":"10.0.0.2","data":"GET /"}`, nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "10.0.0.1", msg.Source)
	assert.Equal(t, "10.0.0.2", msg.Destination)
	assert.Equal(t, "GET /", msg.Payload)
}

func TestExtractJSONSynonymsAndPorts(t *testing.T) {
	msg := Extract(`{"source_ip":"1.1.1.1","destination_ip":"2.2.2.2","sport":1234,"dport":80,"proto":"udp","message":"hi","ts":1700000000}`, nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "1.1.1.1", msg.Source)
	assert.Equal(t, "2.2.2.2", msg.Destination)
	assert.Equal(t, 1234, msg.SrcPort)
	assert.Equal(t, 80, msg.DstPort)
	assert.Equal(t, "udp", msg.Protocol)
	assert.Equal(t, "hi", msg.Payload)
	assert.Equal(t, int64(1700000000), msg.Timestamp)
}

func TestExtractMalformedJSONFallsThrough(t *testing.T) {
	// broken JSON containing two addresses still yields a message via the
	// generic strategy rather than an error
	msg := Extract(`{"src":"10.0.0.1","dst":"10.0.0.2"`, nil)
	assert.NotNil(t, msg, "malformed JSON should fall through, not fail")
	assert.Equal(t, "10.0.0.1", msg.Source)
	assert.Equal(t, "10.0.0.2", msg.Destination)
}

func TestExtractArrowNotation(t *testing.T) {
	msg := Extract("10.0.0.1:1234 -> 10.0.0.2:80 hello", nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "10.0.0.1", msg.Source)
	assert.Equal(t, 1234, msg.SrcPort)
	assert.Equal(t, "10.0.0.2", msg.Destination)
	assert.Equal(t, 80, msg.DstPort)
	assert.Equal(t, "hello", msg.Payload)
}

func TestExtractArrowGlyph(t *testing.T) {
	msg := Extract("2024-01-02 15:04:05 192.168.1.5 → 8.8.8.8 dns query", nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "192.168.1.5", msg.Source)
	assert.Equal(t, "8.8.8.8", msg.Destination)
	assert.Equal(t, "dns query", msg.Payload)
	assert.NotZero(t, msg.Timestamp, "leading timestamp should be recognized")
}

func TestExtractKeyValueTokens(t *testing.T) {
	msg := Extract("kernel: IN=eth0 SRC=192.168.1.10 DST=93.184.216.34 PROTO=TCP SPT=51000 DPT=443", nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "192.168.1.10", msg.Source)
	assert.Equal(t, "93.184.216.34", msg.Destination)
	assert.Equal(t, "TCP", msg.Protocol)
	assert.Equal(t, 51000, msg.SrcPort)
	assert.Equal(t, 443, msg.DstPort)
}

func TestExtractKeyValuePayloadBoundary(t *testing.T) {
	msg := Extract("src=10.0.0.1 dst=10.0.0.2 data=hello world proto=udp", nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "hello world", msg.Payload, "payload runs until the next clearly delimited token")
	assert.Equal(t, "udp", msg.Protocol)
}

func TestExtractTabularRow(t *testing.T) {
	schema := DetectTabularSchema([]string{"src,dst,data"})
	assert.NotNil(t, schema)

	msg := Extract("1.1.1.1,2.2.2.2,ping", schema)
	assert.NotNil(t, msg)
	assert.Equal(t, "1.1.1.1", msg.Source)
	assert.Equal(t, "2.2.2.2", msg.Destination)
	assert.Equal(t, "ping", msg.Payload)
}

func TestExtractTabularQuotedDelimiter(t *testing.T) {
	schema := DetectTabularSchema([]string{"src,dst,data"})
	assert.NotNil(t, schema)

	msg := Extract(`1.1.1.1,2.2.2.2,"GET /a,b,c"`, schema)
	assert.NotNil(t, msg)
	assert.Equal(t, "GET /a,b,c", msg.Payload, "quoted commas are literal")
}

func TestExtractGenericFallback(t *testing.T) {
	msg := Extract("weird log: saw 172.16.0.9 talking to 203.0.113.7 today", nil)
	assert.NotNil(t, msg)
	assert.Equal(t, "172.16.0.9", msg.Source)
	assert.Equal(t, "203.0.113.7", msg.Destination)
	assert.Equal(t, "weird log: saw 172.16.0.9 talking to 203.0.113.7 today", msg.Payload)
}

func TestExtractNeverErrors(t *testing.T) {
	hopeless := []string{
		"",
		"   ",
		"no addresses here",
		"{}",
		`{"unrelated":"fields"}`,
		"1.2.3.4 only one address",
		"-> -> ->",
		"\x00\x01 binary garbage",
	}

	for _, line := range hopeless {
		assert.Nil(t, Extract(line, nil), fmt.Sprintf("line %q should be skipped, not fail", line))
	}
}

func TestExtractedMessagesAlwaysHaveEndpoints(t *testing.T) {
	lines := []string{
		`{"src":"a1.local","dst":"b2.local"}`,
		"1.1.1.1 -> 2.2.2.2",
		"src=x1 dst=y2",
		"between 3.3.3.3 and 4.4.4.4",
	}
	for _, line := range lines {
		msg := Extract(line, nil)
		assert.NotNil(t, msg, line)
		assert.NotEmpty(t, msg.Source, line)
		assert.NotEmpty(t, msg.Destination, line)
	}
}

func TestExtractSelfLoopRetained(t *testing.T) {
	msg := Extract("127.0.0.1 -> 127.0.0.1 local chatter", nil)
	assert.NotNil(t, msg, "loopback self traffic is a legitimate record")
	assert.Equal(t, msg.Source, msg.Destination)
}
