package websocket

import "encoding/json"

// Message defines the structure for websocket messages.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// NewAnnouncementMessage builds the wire form of an announcement event.
func NewAnnouncementMessage(text string) []byte {
	data, _ := json.Marshal(Message{Event: "announcement", Payload: text})
	return data
}

// NewStatsMessage builds the wire form of a system stats event.
func NewStatsMessage(payload interface{}) []byte {
	data, _ := json.Marshal(Message{Event: "system.stats", Payload: payload})
	return data
}
