package data

//Message is a single observed datagram/record pulled out of one log line.
//A Message is immutable once constructed; the builder and resolver only
//ever read from it.
type Message struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	SrcPort     int    `json:"src_port,omitempty"`
	DstPort     int    `json:"dst_port,omitempty"`
	Protocol    string `json:"protocol,omitempty"`
	Payload     string `json:"payload,omitempty"`

	//Timestamp holds the parsed epoch value when TimeText could be
	//understood, 0 otherwise. TimeText always preserves the raw text.
	Timestamp int64  `json:"timestamp,omitempty"`
	TimeText  string `json:"time_text,omitempty"`

	//RawLine preserves the original input line for display and debugging
	RawLine string `json:"raw_line"`
}

//Pair returns the source/destination endpoint pair of the message.
func (m *Message) Pair() Pair {
	return Pair{Src: m.Source, Dst: m.Destination}
}
