package commands

import (
	"encoding/csv"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/redwire/wiretalk/pkg/classify"
	"github.com/redwire/wiretalk/pkg/data"
	"github.com/redwire/wiretalk/pkg/enrich"
	"github.com/redwire/wiretalk/util"
)

func init() {
	command := cli.Command{
		Name:  "show-endpoints",
		Usage: "Print every endpoint seen in the given log files with its classification",
		UsageText: "wiretalk show-endpoints [command-options] <files/dirs>\n\n" +
			"With --enrich, public endpoints are resolved against the configured\n" +
			"geolocation service; private address space never leaves the machine.",
		Flags: []cli.Flag{
			humanFlag,
			configFlag,
			limitFlag,
			noLimitFlag,
			enrichFlag,
		},
		Action: showEndpoints,
	}

	bootstrapCommands(command)
}

func showEndpoints(c *cli.Context) error {
	results, res, err := parseInputs(c)
	if err != nil {
		return err
	}

	seen := make(data.StringSet)
	for _, msg := range results.Messages {
		seen.Insert(msg.Source)
		seen.Insert(msg.Destination)
	}
	identifiers := seen.Items()

	var rows []enrich.Result
	if c.Bool("enrich") {
		enricher := enrich.NewEnricher(&res.Config.S.Enrich, &res.Config.R.Enrich, res.Log)
		rows = enricher.Enrich(identifiers)
		enrich.SortByIdentifier(rows)
	} else {
		for _, id := range identifiers {
			local := classify.Classify(id, "", "")
			rows = append(rows, enrich.Result{
				Identifier: id,
				Scope:      string(local.Scope),
				Role:       string(local.Role),
			})
		}
	}

	if !c.Bool("no-limit") {
		rows = rows[:util.Min(c.Int("limit"), len(rows))]
	}

	if c.Bool("human-readable") {
		return showEndpointsHuman(rows)
	}
	return showEndpointsCsv(rows)
}

func endpointRow(result enrich.Result) []string {
	return []string{
		result.Identifier, result.Scope, result.Role,
		result.Hostname, result.Organization, result.Country, result.City,
	}
}

func showEndpointsCsv(rows []enrich.Result) error {
	csvWriter := csv.NewWriter(os.Stdout)
	csvWriter.Write([]string{"Identifier", "Scope", "Role", "Hostname", "Organization", "Country", "City"})
	for _, result := range rows {
		csvWriter.Write(endpointRow(result))
	}
	csvWriter.Flush()
	return nil
}

func showEndpointsHuman(rows []enrich.Result) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Identifier", "Scope", "Role", "Hostname", "Organization", "Country", "City"})
	for _, result := range rows {
		table.Append(endpointRow(result))
	}
	table.Render()
	return nil
}
