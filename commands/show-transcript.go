package commands

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/pkg/data"
	"github.com/redwire/wiretalk/util"
)

func init() {
	command := cli.Command{
		Name:  "show-transcript",
		Usage: "Print the busiest conversation as a directional transcript",
		UsageText: "wiretalk show-transcript [command-options] <files/dirs>\n\n" +
			"The two endpoints exchanging the most messages become the transcript\n" +
			"parties; party A is the sender of the pair's first message.",
		Flags: []cli.Flag{
			humanFlag,
			configFlag,
			limitFlag,
			noLimitFlag,
		},
		Action: showTranscript,
	}

	bootstrapCommands(command)
}

func showTranscript(c *cli.Context) error {
	results, _, err := parseInputs(c)
	if err != nil {
		return err
	}

	parties := conversation.ResolveParties(results.Messages)
	if parties == nil {
		return cli.NewExitError("No conversation could be resolved", -1)
	}

	built := conversation.Build(results.Messages)
	conv := built.Conversation(data.Pair{Src: parties.A, Dst: parties.B}.CanonicalKey())
	if conv == nil {
		return cli.NewExitError("No conversation could be resolved", -1)
	}

	messages := conv.Messages
	if !c.Bool("no-limit") {
		messages = messages[:util.Min(c.Int("limit"), len(messages))]
	}

	if c.Bool("human-readable") {
		return showTranscriptHuman(parties, messages)
	}
	return showTranscriptCsv(parties, messages)
}

func transcriptDirection(parties *conversation.Parties, msg *data.Message) string {
	if msg.Source == parties.A {
		return fmt.Sprintf("%s -> %s", parties.A, parties.B)
	}
	return fmt.Sprintf("%s -> %s", parties.B, parties.A)
}

func showTranscriptCsv(parties *conversation.Parties, messages []*data.Message) error {
	csvWriter := csv.NewWriter(os.Stdout)
	csvWriter.Write([]string{"Time", "Direction", "Protocol", "Payload"})
	for _, msg := range messages {
		csvWriter.Write([]string{
			t(msg.Timestamp, msg.TimeText),
			transcriptDirection(parties, msg),
			msg.Protocol,
			msg.Payload,
		})
	}
	csvWriter.Flush()
	return nil
}

func showTranscriptHuman(parties *conversation.Parties, messages []*data.Message) error {
	fmt.Fprintf(os.Stdout, "Transcript: %s <-> %s\n\n", parties.A, parties.B)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Time", "Direction", "Protocol", "Payload"})
	table.SetColWidth(60)
	for _, msg := range messages {
		table.Append([]string{
			t(msg.Timestamp, msg.TimeText),
			transcriptDirection(parties, msg),
			msg.Protocol,
			msg.Payload,
		})
	}
	table.Render()
	return nil
}
