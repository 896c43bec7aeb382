package conversation

import "github.com/redwire/wiretalk/pkg/data"

//Parties names the two primary endpoints of a message set. Party A is the
//endpoint which first appears as a source within the winning pair.
type Parties struct {
	A string `json:"party_a"`
	B string `json:"party_b"`
}

//ResolveParties picks the two primary endpoints for single-conversation
//views: the unordered pair with the highest co-occurrence count wins, ties
//going to the pair encountered first in input order. Returns nil when no
//messages were extracted at all.
func ResolveParties(messages []*data.Message) *Parties {
	if len(messages) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var keyOrder []string

	for _, msg := range messages {
		key := msg.Pair().CanonicalKey()
		if _, ok := counts[key]; !ok {
			keyOrder = append(keyOrder, key)
		}
		counts[key]++
	}

	winner := keyOrder[0]
	for _, key := range keyOrder[1:] {
		if counts[key] > counts[winner] {
			winner = key
		}
	}

	// Party A is the source of the first message belonging to the winning
	// pair, in either direction
	for _, msg := range messages {
		if msg.Pair().CanonicalKey() != winner {
			continue
		}
		return &Parties{A: msg.Source, B: msg.Destination}
	}

	// unreachable: the winning key came from the message list
	return nil
}
