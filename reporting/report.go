package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"

	"github.com/redwire/wiretalk/parser"
	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/reporting/templates"
	"github.com/redwire/wiretalk/resources"
)

// PrintHTML renders the parse results as a browsable html report in the
// requested directory, or "wiretalk-report" when none is given. The report
// is opened in the default browser on success unless openBrowser is false.
func PrintHTML(results *parser.Results, dir string, openBrowser bool, res *resources.Resources) error {
	if dir == "" {
		dir = "wiretalk-report"
	}

	//while the directory exists, append the next counter
	outFolder := dir
	counter := 1
	for _, err := os.Stat(outFolder); err == nil; _, err = os.Stat(outFolder) {
		outFolder = dir + strconv.Itoa(counter)
		counter++
	}

	if err := os.MkdirAll(outFolder, 0755); err != nil {
		return err
	}

	runID := uuid.New().String()
	convs := conversation.Build(results.Messages)
	parties := conversation.ResolveParties(results.Messages)

	if err := ioutil.WriteFile(filepath.Join(outFolder, "style.css"), templates.CSStempl, 0644); err != nil {
		return err
	}

	if err := printSummary(outFolder, runID, results, convs); err != nil {
		return err
	}
	if err := printConversations(outFolder, runID, convs); err != nil {
		return err
	}
	if err := printTranscript(outFolder, runID, parties, convs); err != nil {
		return err
	}
	if err := printEndpoints(outFolder, runID, results); err != nil {
		return err
	}
	if err := printDiagram(outFolder, runID, convs); err != nil {
		return err
	}

	res.Log.WithFields(log.Fields{
		"directory": outFolder,
		"run_id":    runID,
	}).Info("Wrote html report")

	fmt.Println("[-] Wrote outputs, check " + outFolder + " for files")
	if openBrowser {
		open.Run(filepath.Join(outFolder, "index.html"))
	}
	return nil
}

// writePage executes one of the package templates into the named report file
func writePage(outFolder string, fileName string, templ string, info *templates.ReportingInfo) error {
	f, err := os.Create(filepath.Join(outFolder, fileName))
	if err != nil {
		return err
	}
	defer f.Close()

	out, err := template.New(fileName).Parse(templ)
	if err != nil {
		return err
	}
	return out.Execute(f, info)
}

func printSummary(outFolder string, runID string, results *parser.Results, convs *conversation.Results) error {
	tmpl := "<tr><td>{{index . 0}}</td><td>{{index . 1}}</td></tr>\n"

	out, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return err
	}

	rows := [][]string{
		{"Lines examined", strconv.Itoa(results.LineCount)},
		{"Messages extracted", strconv.Itoa(len(results.Messages))},
		{"Lines skipped", strconv.Itoa(results.Skipped)},
		{"Conversations", strconv.Itoa(len(convs.Conversations))},
		{"Directed links", strconv.Itoa(len(convs.DirectedLinks))},
	}

	w := new(bytes.Buffer)
	w.WriteString("<table>\n")
	for _, row := range rows {
		if err := out.Execute(w, row); err != nil {
			return err
		}
	}
	w.WriteString("</table>\n")

	return writePage(outFolder, "index.html", templates.Hometempl, &templates.ReportingInfo{
		Title:  "Summary",
		RunID:  runID,
		Writer: template.HTML(w.String()),
	})
}
