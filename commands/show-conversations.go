package commands

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/redwire/wiretalk/pkg/conversation"
	"github.com/redwire/wiretalk/util"
)

func init() {
	command := cli.Command{
		Name:  "show-conversations",
		Usage: "Print the conversations grouped from the given log files",
		UsageText: "wiretalk show-conversations [command-options] <files/dirs>\n\n" +
			"Conversations pair messages between two endpoints regardless of\n" +
			"direction and are sorted by message count, busiest first.",
		Flags: []cli.Flag{
			humanFlag,
			configFlag,
			limitFlag,
			noLimitFlag,
		},
		Action: showConversations,
	}

	bootstrapCommands(command)
}

func showConversations(c *cli.Context) error {
	results, _, err := parseInputs(c)
	if err != nil {
		return err
	}

	convs := conversation.Build(results.Messages).Conversations
	if !c.Bool("no-limit") {
		convs = convs[:util.Min(c.Int("limit"), len(convs))]
	}

	if c.Bool("human-readable") {
		return showConversationsHuman(convs)
	}
	return showConversationsCsv(convs)
}

func conversationRow(conv *conversation.Conversation) []string {
	var ports []string
	for _, port := range conv.Ports.Items() {
		ports = append(ports, strconv.Itoa(port))
	}
	return []string{
		conv.EndpointA, conv.EndpointB, i(int64(conv.MessageCount)),
		strings.Join(conv.Protocols.Items(), " "),
		strings.Join(ports, " "),
	}
}

func showConversationsCsv(convs []*conversation.Conversation) error {
	csvWriter := csv.NewWriter(os.Stdout)
	csvWriter.Write([]string{"Endpoint A", "Endpoint B", "Messages", "Protocols", "Ports"})
	for _, conv := range convs {
		csvWriter.Write(conversationRow(conv))
	}
	csvWriter.Flush()
	return nil
}

func showConversationsHuman(convs []*conversation.Conversation) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Endpoint A", "Endpoint B", "Messages", "Protocols", "Ports"})
	for _, conv := range convs {
		table.Append(conversationRow(conv))
	}
	table.Render()
	return nil
}
