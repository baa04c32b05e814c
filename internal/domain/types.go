package domain

import (
	"encoding/json"
	"strings"
)

// PlayerID identifies who owns a cell. Empty marks a free cell.
type PlayerID int

const (
	Empty  PlayerID = 0
	Red    PlayerID = 1
	Yellow PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

func (p PlayerID) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	}
	return ""
}

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (p PlayerID) IsPlayer() bool {
	return p == Red || p == Yellow
}

// ParsePlayer accepts "red" or "yellow" in any case.
func ParsePlayer(s string) (PlayerID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return Red, nil
	case "yellow":
		return Yellow, nil
	}
	return Empty, ErrInvalidPlayer
}

// an empty cell is encoded as null so renderers can test it like a missing disc
func (p PlayerID) MarshalJSON() ([]byte, error) {
	if !p.IsPlayer() {
		return []byte("null"), nil
	}
	return json.Marshal(p.String())
}

func (p *PlayerID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Empty
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*p = Empty
		return nil
	}
	parsed, err := ParsePlayer(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusDraw       GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is over"
	ErrInvalidPlayer Error = "invalid player"
	ErrNotYourTurn   Error = "not your turn"
	ErrSeatRequired  Error = "seat token required"
	ErrSeatTaken     Error = "seat is already taken"
)
