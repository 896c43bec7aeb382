package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/redwire/wiretalk/commands"
	"github.com/redwire/wiretalk/config"
	"github.com/urfave/cli"
)

// Entry point of wiretalk
func main() {
	app := cli.NewApp()
	app.Name = "wiretalk"
	app.Usage = "Turn raw network logs into readable conversations."
	app.Version = config.Version
	cli.VersionPrinter = commands.GetVersionPrinter()

	// Define commands used with this application
	app.Commands = commands.Commands()

	runtime.GOMAXPROCS(runtime.NumCPU())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
