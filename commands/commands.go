package commands

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/redwire/wiretalk/parser"
	"github.com/redwire/wiretalk/parser/files"
	"github.com/redwire/wiretalk/resources"
	"github.com/urfave/cli"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "specify a config file to be used",
		Value: "",
	}

	humanFlag = cli.BoolFlag{
		Name:  "human-readable, H",
		Usage: "print a formatted table instead of csv",
	}

	limitFlag = cli.IntFlag{
		Name:  "limit, l",
		Usage: "limit the number of rows printed",
		Value: 1000,
	}

	noLimitFlag = cli.BoolFlag{
		Name:  "no-limit",
		Usage: "print all rows",
	}

	dirFlag = cli.StringFlag{
		Name:  "directory, dir",
		Usage: "specify the output directory for the report",
		Value: "wiretalk-report",
	}

	enrichFlag = cli.BoolFlag{
		Name:  "enrich, e",
		Usage: "resolve public endpoints against the geolocation service",
	}

	allCommands []cli.Command
)

// bootstrapCommands simply adds a given command to the allCommands array
func bootstrapCommands(commands ...cli.Command) {
	for _, command := range commands {
		command.Before = func(c *cli.Context) error {
			//Get access to the configured thread count
			runtime.GOMAXPROCS(runtime.NumCPU())
			return nil
		}
		allCommands = append(allCommands, command)
	}
}

// Commands provides all of the defined commands to the front end
func Commands() []cli.Command {
	return allCommands
}

// parseInputs loads the resource bundle and parses every log file named
// by the command's arguments. Used by all of the show commands.
func parseInputs(c *cli.Context) (*parser.Results, *resources.Resources, error) {
	res := resources.InitResources(c.String("config"))

	if c.NArg() == 0 {
		return nil, res, cli.NewExitError("Specify one or more log files or directories", -1)
	}

	logFiles := files.GatherLogFiles(c.Args(), res.Log)
	if len(logFiles) == 0 {
		return nil, res, cli.NewExitError("No parseable log files found", -1)
	}

	lines := files.ReadAllLines(logFiles, res.Log)
	lines = capLines(lines, res)
	results := parser.ParseLines(lines, res.Log, nil)

	if len(results.Messages) == 0 {
		return nil, res, cli.NewExitError(
			fmt.Sprintf("No messages could be parsed from %d lines", results.LineCount), -1,
		)
	}
	return results, res, nil
}

// capLines enforces the configured input line limit
func capLines(lines []string, res *resources.Resources) []string {
	maxLines := res.Config.S.Parser.MaxLines
	if maxLines > 0 && len(lines) > maxLines {
		res.Log.WithFields(log.Fields{
			"lines": len(lines),
			"limit": maxLines,
		}).Warn("Input truncated to the configured line limit")
		lines = lines[:maxLines]
	}
	return lines
}
