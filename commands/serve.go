package commands

import (
	"github.com/urfave/cli"

	"github.com/redwire/wiretalk/resources"
	"github.com/redwire/wiretalk/server"
)

func init() {
	command := cli.Command{
		Name:  "serve",
		Usage: "Run the http api server",
		UsageText: "wiretalk serve [command-options]\n\n" +
			"Exposes POST /api/parse, GET /api/lookup/{identifier}, and\n" +
			"GET /api/health on the configured bind address.",
		Flags: []cli.Flag{
			configFlag,
			cli.StringFlag{
				Name:  "bind, b",
				Usage: "override the configured bind address",
				Value: "",
			},
		},
		Action: func(c *cli.Context) error {
			res := resources.InitResources(c.String("config"))
			if bind := c.String("bind"); bind != "" {
				res.Config.S.Server.BindAddress = bind
			}

			err := server.New(res).ListenAndServe()
			if err != nil {
				return cli.NewExitError(err.Error(), -1)
			}
			return nil
		},
	}
	bootstrapCommands(command)
}
