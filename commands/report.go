package commands

import (
	"github.com/urfave/cli"

	"github.com/redwire/wiretalk/reporting"
)

func init() {
	command := cli.Command{

		Name:  "html-report",
		Usage: "Create an html report for the given log files",
		UsageText: "wiretalk html-report [command-options] <files/dirs>\n\n" +
			"The report contains the parse summary, conversation table, the\n" +
			"busiest conversation's transcript, endpoint classifications, and\n" +
			"an svg conversation diagram.",
		Flags: []cli.Flag{
			configFlag,
			dirFlag,
			cli.BoolFlag{
				Name:  "no-browser",
				Usage: "do not open the report in the default browser",
			},
		},
		Action: func(c *cli.Context) error {
			results, res, err := parseInputs(c)
			if err != nil {
				return err
			}
			err = reporting.PrintHTML(results, c.String("directory"), !c.Bool("no-browser"), res)
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}
