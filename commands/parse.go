package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"

	"github.com/redwire/wiretalk/parser"
	"github.com/redwire/wiretalk/parser/files"
	"github.com/redwire/wiretalk/resources"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	command := cli.Command{
		Name:  "parse",
		Usage: "Parse log files and print the extracted messages as json lines",
		UsageText: "wiretalk parse [command-options] [files/dirs]\n\n" +
			"Reads from stdin when no files are given.\n" +
			"Each input line is matched against the json, tabular, key-value,\n" +
			"and arrow formats in turn, falling back to a generic address scan.",
		Flags: []cli.Flag{
			configFlag,
		},
		Action: parseLogs,
	}

	bootstrapCommands(command)
}

func parseLogs(c *cli.Context) error {
	res := resources.InitResources(c.String("config"))

	var lines []string
	if c.NArg() == 0 {
		// no file arguments; read log text from stdin
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
	} else {
		logFiles := files.GatherLogFiles(c.Args(), res.Log)
		if len(logFiles) == 0 {
			return cli.NewExitError("No parseable log files found", -1)
		}
		lines = files.ReadAllLines(logFiles, res.Log)
	}
	lines = capLines(lines, res)

	runID := uuid.New().String()
	res.Log.WithFields(log.Fields{
		"run_id": runID,
		"lines":  len(lines),
	}).Info("Starting parse run")

	// progress bar for large inputs
	p := mpb.New(mpb.WithWidth(20))
	bar := p.AddBar(int64(len(lines)),
		mpb.PrependDecorators(
			decor.Name("\t[-] Parsing logs:", decor.WC{W: 30, C: decor.DidentRight}),
			decor.CountersNoUnit(" %d / %d ", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	results := parser.ParseLines(lines, res.Log, func() {
		bar.IncrBy(1)
	})
	p.Wait()

	for _, message := range results.Messages {
		out, err := json.Marshal(message)
		if err != nil {
			return cli.NewExitError(err.Error(), -1)
		}
		fmt.Fprintln(os.Stdout, string(out))
	}

	fmt.Fprintf(os.Stderr, "\t[+] Parsed %d messages from %d lines (%d skipped)\n",
		len(results.Messages), results.LineCount, results.Skipped)
	return nil
}
