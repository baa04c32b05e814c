package domain

// ClientMessage is what a renderer sends over the websocket.
type ClientMessage struct {
	Type string `json:"type"` // "drop_disc", "reset" or "state"
	// nil when the message carries no column
	Column *int   `json:"column,omitempty"`
	Token  string `json:"token,omitempty"`
}

type ServerMessage struct {
	Type    string    `json:"type"` // "state" or "error"
	Message string    `json:"message,omitempty"`
	State   *Snapshot `json:"state,omitempty"`
}
