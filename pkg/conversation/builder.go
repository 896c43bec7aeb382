// Package conversation folds extracted Messages into per-endpoint-pair
// aggregates: an undirected conversation rollup for "A and B regardless of
// direction" views and directed links for graph rendering.
package conversation

import (
	"sort"

	"github.com/redwire/wiretalk/pkg/data"
)

//Conversation aggregates every Message sharing one canonical (unordered)
//endpoint pair key.
type Conversation struct {
	Key          string         `json:"key"`
	EndpointA    string         `json:"endpoint_a"`
	EndpointB    string         `json:"endpoint_b"`
	MessageCount int            `json:"message_count"`
	Ports        data.IntSet    `json:"ports"`
	Protocols    data.StringSet `json:"protocols"`

	//Messages holds the conversation's messages in input order
	Messages []*data.Message `json:"-"`
}

//DirectedLink aggregates the Messages flowing in one direction between a
//pair of endpoints. A->B and B->A are distinct links.
type DirectedLink struct {
	Key          string `json:"key"`
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	MessageCount int    `json:"message_count"`
}

//Results is the builder's output: conversations and directed links sorted
//by descending message count (ties broken by first-seen order) plus the
//unique endpoints in first-seen order.
type Results struct {
	Conversations []*Conversation `json:"conversations"`
	DirectedLinks []*DirectedLink `json:"directed_links"`
	Nodes         []string        `json:"nodes"`

	conversationIndex map[string]*Conversation
	linkIndex         map[string]*DirectedLink
}

//Conversation looks up a conversation by its canonical key.
func (r *Results) Conversation(key string) *Conversation {
	return r.conversationIndex[key]
}

//DirectedLink looks up a directed link by its directional key.
func (r *Results) DirectedLink(key string) *DirectedLink {
	return r.linkIndex[key]
}

//Build folds a message sequence into conversation and link aggregates with
//a single left-to-right pass. Messages with identical source and
//destination are retained as one-node conversations; loopback chatter is
//legitimate traffic. An empty message sequence yields empty collections,
//never an error.
func Build(messages []*data.Message) *Results {
	results := &Results{
		conversationIndex: make(map[string]*Conversation),
		linkIndex:         make(map[string]*DirectedLink),
	}
	seenNodes := make(map[string]struct{})

	for _, msg := range messages {
		pair := msg.Pair()

		canonKey := pair.CanonicalKey()
		conv, ok := results.conversationIndex[canonKey]
		if !ok {
			endpointA, endpointB := pair.Ordered()
			conv = &Conversation{
				Key:       canonKey,
				EndpointA: endpointA,
				EndpointB: endpointB,
				Ports:     make(data.IntSet),
				Protocols: make(data.StringSet),
			}
			results.conversationIndex[canonKey] = conv
			results.Conversations = append(results.Conversations, conv)
		}
		conv.MessageCount++
		conv.Messages = append(conv.Messages, msg)
		if msg.SrcPort != 0 {
			conv.Ports.Insert(msg.SrcPort)
		}
		if msg.DstPort != 0 {
			conv.Ports.Insert(msg.DstPort)
		}
		if msg.Protocol != "" {
			conv.Protocols.Insert(msg.Protocol)
		}

		linkKey := pair.MapKey()
		link, ok := results.linkIndex[linkKey]
		if !ok {
			link = &DirectedLink{
				Key:         linkKey,
				Source:      msg.Source,
				Destination: msg.Destination,
			}
			results.linkIndex[linkKey] = link
			results.DirectedLinks = append(results.DirectedLinks, link)
		}
		link.MessageCount++

		for _, node := range []string{msg.Source, msg.Destination} {
			if _, ok := seenNodes[node]; !ok {
				seenNodes[node] = struct{}{}
				results.Nodes = append(results.Nodes, node)
			}
		}
	}

	// slices were appended in first-seen order, so a stable sort leaves
	// ties in that order
	sort.SliceStable(results.Conversations, func(i, j int) bool {
		return results.Conversations[i].MessageCount > results.Conversations[j].MessageCount
	})
	sort.SliceStable(results.DirectedLinks, func(i, j int) bool {
		return results.DirectedLinks[i].MessageCount > results.DirectedLinks[j].MessageCount
	})

	return results
}
