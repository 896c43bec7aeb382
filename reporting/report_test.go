package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/pkg/data"
)

func testMessages() []*data.Message {
	return []*data.Message{
		{Source: "192.168.1.5", Destination: "10.0.0.1", Payload: "hello", RawLine: "x"},
		{Source: "10.0.0.1", Destination: "192.168.1.5", Payload: "hi back", RawLine: "y"},
		{Source: "192.168.1.5", Destination: "8.8.8.8", Payload: "lookup", RawLine: "z"},
	}
}

func TestGetConversationsWriter(t *testing.T) {
	convs := conversation.Build(testMessages())

	w, err := getConversationsWriter(convs.Conversations)
	assert.Nil(t, err)
	assert.Contains(t, w, "<td>10.0.0.1</td>")
	assert.Contains(t, w, "<td>2</td>", "busiest pair should show both directions merged")
	assert.Contains(t, w, `href="transcript-0.html"`, "busiest pair should link to its transcript page")
}

func TestGetTranscriptWriter(t *testing.T) {
	messages := testMessages()
	parties := conversation.ResolveParties(messages)
	assert.NotNil(t, parties)

	convs := conversation.Build(messages)
	conv := convs.Conversation(data.Pair{Src: parties.A, Dst: parties.B}.CanonicalKey())
	assert.NotNil(t, conv)

	w, err := getTranscriptWriter(parties, conv.Messages)
	assert.Nil(t, err)
	assert.Contains(t, w, `class="bubble left"`, "party A's messages sit on the left")
	assert.Contains(t, w, `class="bubble right"`)
	assert.Contains(t, w, "hello")
	assert.Contains(t, w, "hi back")
}

func TestGetDiagramWriter(t *testing.T) {
	convs := conversation.Build(testMessages())

	w, err := getDiagramWriter(convs)
	assert.Nil(t, err)
	assert.Contains(t, w, "<svg")
	assert.Contains(t, w, "192.168.1.5")
	assert.Contains(t, w, "<line")
}

func TestGetDiagramWriterEmpty(t *testing.T) {
	convs := conversation.Build(nil)

	w, err := getDiagramWriter(convs)
	assert.Nil(t, err)
	assert.Contains(t, w, "No conversations")
}
