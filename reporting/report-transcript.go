package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/pkg/data"
	"github.com/redwire/wiretalk/reporting/templates"
)

// transcriptPageCap bounds how many per-conversation transcript pages the
// report carries
const transcriptPageCap = 25

// transcriptPageName returns the report file holding conversation idx's
// transcript, or "" when the conversation is past the page cap
func transcriptPageName(idx int) string {
	if idx >= transcriptPageCap {
		return ""
	}
	return fmt.Sprintf("transcript-%d.html", idx)
}

// printTranscript writes the primary conversation's transcript page plus one
// page per conversation up to the page cap
func printTranscript(outFolder string, runID string, parties *conversation.Parties, convs *conversation.Results) error {
	title := "Transcript"
	var messages []*data.Message

	if parties != nil {
		if conv := convs.Conversation(data.Pair{Src: parties.A, Dst: parties.B}.CanonicalKey()); conv != nil {
			title = "Transcript: " + parties.A + " and " + parties.B
			messages = conv.Messages
		}
	}

	if err := writeTranscriptPage(outFolder, "transcript.html", title, runID, parties, messages); err != nil {
		return err
	}

	for idx, conv := range convs.Conversations {
		pageName := transcriptPageName(idx)
		if pageName == "" {
			break
		}

		// party A of a single conversation is the sender of its first message
		convParties := &conversation.Parties{A: conv.Messages[0].Source, B: conv.EndpointB}
		if convParties.A == conv.EndpointB {
			convParties.B = conv.EndpointA
		}

		pageTitle := "Transcript: " + convParties.A + " and " + convParties.B
		if err := writeTranscriptPage(outFolder, pageName, pageTitle, runID, convParties, conv.Messages); err != nil {
			return err
		}
	}
	return nil
}

func writeTranscriptPage(outFolder string, fileName string, title string, runID string, parties *conversation.Parties, messages []*data.Message) error {
	w, err := getTranscriptWriter(parties, messages)
	if err != nil {
		return err
	}

	return writePage(outFolder, fileName, templates.TranscriptTempl, &templates.ReportingInfo{
		Title:  title,
		RunID:  runID,
		Writer: template.HTML(w),
	})
}

// getTranscriptWriter renders the conversation's messages as left/right
// aligned chat bubbles; party A's messages sit on the left
func getTranscriptWriter(parties *conversation.Parties, messages []*data.Message) (string, error) {
	tmpl := `<div class="bubble {{.Side}}"><div class="meta">{{.Sender}} at {{.Time}}</div>{{.Payload}}</div>` + "\n"

	out, err := template.New("transcript").Parse(tmpl)
	if err != nil {
		return "", err
	}

	w := new(bytes.Buffer)

	for _, msg := range messages {
		side := "left"
		if msg.Source != parties.A {
			side = "right"
		}

		timeText := msg.TimeText
		if msg.Timestamp != 0 {
			timeText = time.Unix(msg.Timestamp, 0).UTC().Format("2006-01-02 15:04:05")
		}

		row := struct {
			Side    string
			Sender  string
			Time    string
			Payload string
		}{
			Side:    side,
			Sender:  msg.Source,
			Time:    timeText,
			Payload: msg.Payload,
		}
		if err := out.Execute(w, row); err != nil {
			return "", err
		}
	}
	return w.String(), nil
}
