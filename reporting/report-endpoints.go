package reporting

import (
	"bytes"
	"html/template"

	"github.com/redwire/wiretalk/parser"
	"github.com/redwire/wiretalk/pkg/classify"
	"github.com/redwire/wiretalk/pkg/data"
	"github.com/redwire/wiretalk/pkg/enrich"
	"github.com/redwire/wiretalk/reporting/templates"
)

// printEndpoints classifies endpoints locally only; report generation
// never performs network lookups
func printEndpoints(outFolder string, runID string, results *parser.Results) error {
	seen := make(data.StringSet)
	for _, msg := range results.Messages {
		seen.Insert(msg.Source)
		seen.Insert(msg.Destination)
	}

	var rows []enrich.Result
	for _, id := range seen.Items() {
		local := classify.Classify(id, "", "")
		rows = append(rows, enrich.Result{
			Identifier: id,
			Scope:      string(local.Scope),
			Role:       string(local.Role),
		})
	}

	w, err := getEndpointsWriter(rows)
	if err != nil {
		return err
	}

	return writePage(outFolder, "endpoints.html", templates.EndpointsTempl, &templates.ReportingInfo{
		Title:  "Endpoints",
		RunID:  runID,
		Writer: template.HTML(w),
	})
}

func getEndpointsWriter(rows []enrich.Result) (string, error) {
	tmpl := "<tr><td>{{.Identifier}}</td><td>{{.Scope}}</td><td>{{.Role}}</td>" +
		"<td>{{.Hostname}}</td><td>{{.Organization}}</td><td>{{.Country}}</td><td>{{.City}}</td></tr>\n"

	out, err := template.New("endpoints").Parse(tmpl)
	if err != nil {
		return "", err
	}

	w := new(bytes.Buffer)

	for _, row := range rows {
		if err := out.Execute(w, row); err != nil {
			return "", err
		}
	}
	return w.String(), nil
}
