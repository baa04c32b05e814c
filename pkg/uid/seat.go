package uid

import "github.com/google/uuid"

// GenerateSeatID returns a random identifier for one claim of a seat.
// A seat claimed again later gets a new ID, which invalidates older tokens.
func GenerateSeatID() string {
	return uuid.NewString()
}

// GenerateConnectionID names one websocket connection.
func GenerateConnectionID() string {
	return uuid.NewString()
}
