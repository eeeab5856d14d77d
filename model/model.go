package model

// Message is the frame exchanged with clients in both directions. Msg carries
// a rendered line for terminal clients.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg,omitempty"`
}
