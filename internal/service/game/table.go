package game

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/pkg/auth"
	"github.com/iamasit07/connect-four/pkg/uid"
)

type Mode string

const (
	// anyone at the table may move for whoever's turn it is
	ModeHotseat Mode = "hotseat"
	// a move must carry the seat token of the player to move
	ModeSeated Mode = "seated"
)

// Subscriber receives a snapshot after every accepted change. Publish is
// called in change order and must not call back into the table's mutating
// methods.
type Subscriber interface {
	Publish(state domain.Snapshot)
}

type SeatAuthority interface {
	IssueSeatToken(seat, seatID string) (string, error)
	ValidateSeatToken(token string) (*auth.SeatClaims, error)
}

type Seat struct {
	Player     domain.PlayerID `json:"player"`
	Device     string          `json:"device,omitempty"`
	ClaimedAt  time.Time       `json:"claimedAt"`
	LastActive time.Time       `json:"lastActive"`
	id         string
}

// Table hosts the single engine and serializes every call into it.
type Table struct {
	mu          sync.Mutex
	publishMu   sync.Mutex // keeps subscribers in change order once mu is released
	engine      *domain.Engine
	mode        Mode
	authority   SeatAuthority
	seats       map[domain.PlayerID]*Seat
	subscribers []Subscriber
	now         func() time.Time
}

func NewTable(mode Mode, authority SeatAuthority) *Table {
	return &Table{
		engine:    domain.NewEngine(),
		mode:      mode,
		authority: authority,
		seats:     make(map[domain.PlayerID]*Seat),
		now:       time.Now,
	}
}

func (t *Table) Mode() Mode {
	return t.mode
}

func (t *Table) Subscribe(s Subscriber) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subscribers = append(t.subscribers, s)
}

func (t *Table) State() domain.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.engine.State()
}

// DropDisc plays column for the player to move. On rejection the returned
// snapshot is the unchanged state.
func (t *Table) DropDisc(token string, column int) (domain.Snapshot, error) {
	t.mu.Lock()

	var seat *Seat
	if t.mode == ModeSeated {
		var err error
		seat, err = t.seatForTokenLocked(token)
		if err != nil {
			defer t.mu.Unlock()
			return t.engine.State(), err
		}
		current := t.engine.State()
		if current.Status == domain.StatusInProgress && current.CurrentPlayer != seat.Player {
			defer t.mu.Unlock()
			return current, domain.ErrNotYourTurn
		}
	}

	move, err := t.engine.DropDisc(column)
	snap := t.engine.State()
	if err != nil {
		t.mu.Unlock()
		return snap, err
	}
	// the waiting seat is part of the game too, so both count as active
	if seat != nil {
		now := t.now()
		for _, held := range t.seats {
			held.LastActive = now
		}
	}

	switch snap.Status {
	case domain.StatusWon:
		log.Printf("[TABLE] %s wins with column %d (red %d, yellow %d)",
			move.Player, move.Column, snap.Scores.Red, snap.Scores.Yellow)
	case domain.StatusDraw:
		log.Printf("[TABLE] Board full after %d moves, game drawn", snap.MoveCount)
	}

	t.publishAndUnlock(snap)
	return snap, nil
}

// Reset starts a new game. Seated tables accept any valid seat token.
func (t *Table) Reset(token string) (domain.Snapshot, error) {
	t.mu.Lock()

	if t.mode == ModeSeated {
		seat, err := t.seatForTokenLocked(token)
		if err != nil {
			defer t.mu.Unlock()
			return t.engine.State(), err
		}
		seat.LastActive = t.now()
	}

	t.engine.Reset()
	snap := t.engine.State()
	log.Printf("[TABLE] New game started (red %d, yellow %d)", snap.Scores.Red, snap.Scores.Yellow)

	t.publishAndUnlock(snap)
	return snap, nil
}

// ClaimSeat hands out the seat token for player if nobody holds the seat.
func (t *Table) ClaimSeat(player domain.PlayerID, device string) (string, error) {
	if !player.IsPlayer() {
		return "", domain.ErrInvalidPlayer
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, taken := t.seats[player]; taken {
		return "", domain.ErrSeatTaken
	}

	seatID := uid.GenerateSeatID()
	token, err := t.authority.IssueSeatToken(player.String(), seatID)
	if err != nil {
		return "", err
	}

	now := t.now()
	t.seats[player] = &Seat{
		Player:     player,
		Device:     device,
		ClaimedAt:  now,
		LastActive: now,
		id:         seatID,
	}
	log.Printf("[TABLE] %s seat claimed by %s", player, device)
	return token, nil
}

// ReleaseSeat frees the seat the token was issued for.
func (t *Table) ReleaseSeat(token string) (domain.PlayerID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seat, err := t.seatForTokenLocked(token)
	if err != nil {
		return domain.Empty, err
	}
	delete(t.seats, seat.Player)
	log.Printf("[TABLE] %s seat released", seat.Player)
	return seat.Player, nil
}

// ReleaseIdleSeats frees every seat whose holder has not acted for maxIdle
// and returns how many were freed.
func (t *Table) ReleaseIdleSeats(maxIdle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	count := 0
	for player, seat := range t.seats {
		if now.Sub(seat.LastActive) > maxIdle {
			delete(t.seats, player)
			count++
		}
	}
	return count
}

// Seats lists the claimed seats, red first.
func (t *Table) Seats() []Seat {
	t.mu.Lock()
	defer t.mu.Unlock()

	seats := make([]Seat, 0, len(t.seats))
	for _, seat := range t.seats {
		seats = append(seats, *seat)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].Player < seats[j].Player })
	return seats
}

func (t *Table) seatForTokenLocked(token string) (*Seat, error) {
	if token == "" {
		return nil, domain.ErrSeatRequired
	}

	claims, err := t.authority.ValidateSeatToken(token)
	if err != nil {
		log.Printf("[TABLE] Rejected seat token: %v", err)
		return nil, domain.ErrSeatRequired
	}

	player, err := domain.ParsePlayer(claims.Seat)
	if err != nil {
		return nil, domain.ErrSeatRequired
	}

	// a released or reclaimed seat has a new id, so old tokens stop working
	seat, ok := t.seats[player]
	if !ok || seat.id != claims.SeatID {
		return nil, domain.ErrSeatRequired
	}
	return seat, nil
}

// publishAndUnlock must be called with t.mu held. publishMu is taken before
// mu is released so a later change cannot overtake this one.
func (t *Table) publishAndUnlock(snap domain.Snapshot) {
	subscribers := make([]Subscriber, len(t.subscribers))
	copy(subscribers, t.subscribers)

	t.publishMu.Lock()
	t.mu.Unlock()
	defer t.publishMu.Unlock()

	for _, s := range subscribers {
		s.Publish(snap)
	}
}
