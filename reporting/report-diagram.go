package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/pkg/data"
	"github.com/redwire/wiretalk/reporting/templates"
)

const (
	diagramSize   = 700
	diagramRadius = 260
	nodeRadius    = 6
)

// printDiagram lays the endpoints out on a circle and draws one line per
// conversation, weighted by message count
func printDiagram(outFolder string, runID string, convs *conversation.Results) error {
	w, err := getDiagramWriter(convs)
	if err != nil {
		return err
	}

	return writePage(outFolder, "diagram.html", templates.DiagramTempl, &templates.ReportingInfo{
		Title:  "Diagram",
		RunID:  runID,
		Writer: template.HTML(w),
	})
}

func getDiagramWriter(convs *conversation.Results) (string, error) {
	endpoints := make(data.StringSet)
	maxCount := 1
	for _, conv := range convs.Conversations {
		endpoints.Insert(conv.EndpointA)
		endpoints.Insert(conv.EndpointB)
		if conv.MessageCount > maxCount {
			maxCount = conv.MessageCount
		}
	}

	names := endpoints.Items()
	if len(names) == 0 {
		return "<p>No conversations to draw.</p>", nil
	}

	type point struct{ X, Y float64 }
	center := float64(diagramSize) / 2
	positions := make(map[string]point, len(names))
	for idx, name := range names {
		angle := 2 * math.Pi * float64(idx) / float64(len(names))
		positions[name] = point{
			X: center + diagramRadius*math.Cos(angle),
			Y: center + diagramRadius*math.Sin(angle),
		}
	}

	w := new(bytes.Buffer)
	fmt.Fprintf(w, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		diagramSize, diagramSize)

	for _, conv := range convs.Conversations {
		a := positions[conv.EndpointA]
		b := positions[conv.EndpointB]
		width := 1 + 4*float64(conv.MessageCount)/float64(maxCount)
		if conv.EndpointA == conv.EndpointB {
			// self loop, drawn as a small circle beside the node
			fmt.Fprintf(w,
				`<circle cx="%.1f" cy="%.1f" r="%d" fill="none" stroke="#c62828" stroke-width="%.1f"/>`+"\n",
				a.X, a.Y-2*nodeRadius, 2*nodeRadius, width)
			continue
		}
		fmt.Fprintf(w,
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#c62828" stroke-width="%.1f">`+
				`<title>%s (%d messages)</title></line>`+"\n",
			a.X, a.Y, b.X, b.Y, width,
			template.HTMLEscapeString(conv.Key), conv.MessageCount)
	}

	for _, name := range names {
		pos := positions[name]
		anchor := "start"
		offset := float64(2 * nodeRadius)
		if pos.X < center {
			anchor = "end"
			offset = -offset
		}
		fmt.Fprintf(w,
			`<circle cx="%.1f" cy="%.1f" r="%d" fill="#333"/>`+"\n",
			pos.X, pos.Y, nodeRadius)
		fmt.Fprintf(w,
			`<text x="%.1f" y="%.1f" font-size="12" text-anchor="%s">%s</text>`+"\n",
			pos.X+offset, pos.Y, anchor, template.HTMLEscapeString(name))
	}

	w.WriteString("</svg>\n")
	return w.String(), nil
}
