package reporting

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/reporting/templates"
)

func printConversations(outFolder string, runID string, convs *conversation.Results) error {
	w, err := getConversationsWriter(convs.Conversations)
	if err != nil {
		return err
	}

	return writePage(outFolder, "conversations.html", templates.ConversationsTempl, &templates.ReportingInfo{
		Title:  "Conversations",
		RunID:  runID,
		Writer: template.HTML(w),
	})
}

func getConversationsWriter(convs []*conversation.Conversation) (string, error) {
	tmpl := "<tr><td>{{.EndpointA}}</td><td>{{.EndpointB}}</td><td>{{.MessageCount}}</td>" +
		"<td>{{.Protocols}}</td><td>{{.Ports}}</td>" +
		"<td>{{if .Href}}<a href=\"{{.Href}}\">view</a>{{end}}</td></tr>\n"

	out, err := template.New("conversations").Parse(tmpl)
	if err != nil {
		return "", err
	}

	w := new(bytes.Buffer)

	for idx, conv := range convs {
		var ports []string
		for _, port := range conv.Ports.Items() {
			ports = append(ports, strconv.Itoa(port))
		}
		row := struct {
			EndpointA    string
			EndpointB    string
			MessageCount int
			Protocols    string
			Ports        string
			Href         string
		}{
			EndpointA:    conv.EndpointA,
			EndpointB:    conv.EndpointB,
			MessageCount: conv.MessageCount,
			Protocols:    strings.Join(conv.Protocols.Items(), " "),
			Ports:        strings.Join(ports, " "),
			Href:         transcriptPageName(idx),
		}
		if err := out.Execute(w, row); err != nil {
			return "", err
		}
	}
	return w.String(), nil
}
