package domain

// Move is an accepted drop.
type Move struct {
	Row    int      `json:"row"`
	Column int      `json:"column"`
	Player PlayerID `json:"player"`
}

// Scores holds the win count per player. It survives Reset.
type Scores struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
}

func (s Scores) Of(player PlayerID) int {
	switch player {
	case Red:
		return s.Red
	case Yellow:
		return s.Yellow
	}
	return 0
}

func (s *Scores) increment(player PlayerID) {
	switch player {
	case Red:
		s.Red++
	case Yellow:
		s.Yellow++
	}
}

// Snapshot is a detached copy of the engine state for renderers.
type Snapshot struct {
	Board         Board      `json:"board"`
	CurrentPlayer PlayerID   `json:"currentPlayer"`
	Status        GameStatus `json:"status"`
	Winner        PlayerID   `json:"winner"`
	Scores        Scores     `json:"scores"`
	LastMove      *Move      `json:"lastMove"`
	MoveCount     int        `json:"moveCount"`
}

// Engine owns the board, turn, status and scoreboard of one game table.
// It is not safe for concurrent use.
type Engine struct {
	board         Board
	currentPlayer PlayerID
	status        GameStatus
	winner        PlayerID
	scores        Scores
	lastMove      *Move
	moveCount     int
}

func NewEngine() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// DropDisc drops the current player's disc into column. A rejected drop
// returns ErrGameOver, ErrInvalidColumn or ErrColumnFull and leaves every
// field untouched, including the turn.
func (e *Engine) DropDisc(column int) (Move, error) {
	if e.status != StatusInProgress {
		return Move{}, ErrGameOver
	}

	board, row, err := e.board.DropDisc(column, e.currentPlayer)
	if err != nil {
		return Move{}, err
	}

	player := e.currentPlayer
	e.board = board
	e.moveCount++
	move := Move{Row: row, Column: column, Player: player}
	e.lastMove = &move

	// win must be checked before draw: a winning last cell is a win
	if CheckWin(e.board, row, column, player) {
		e.status = StatusWon
		e.winner = player
		e.scores.increment(player)
		return move, nil
	}

	if e.board.IsFull() {
		e.status = StatusDraw
		return move, nil
	}

	e.currentPlayer = player.Opponent()
	return move, nil
}

// Reset clears the board for a new game. Red always starts; scores are kept.
func (e *Engine) Reset() {
	e.board = NewBoard()
	e.currentPlayer = Red
	e.status = StatusInProgress
	e.winner = Empty
	e.lastMove = nil
	e.moveCount = 0
}

func (e *Engine) State() Snapshot {
	s := Snapshot{
		Board:         e.board,
		CurrentPlayer: e.currentPlayer,
		Status:        e.status,
		Winner:        e.winner,
		Scores:        e.scores,
		MoveCount:     e.moveCount,
	}
	if e.lastMove != nil {
		last := *e.lastMove
		s.LastMove = &last
	}
	return s
}

func (e *Engine) IsFinished() bool {
	return e.status == StatusWon || e.status == StatusDraw
}

// ValidColumns returns the columns a drop would currently be accepted in.
func (e *Engine) ValidColumns() []int {
	if e.IsFinished() {
		return []int{}
	}
	return e.board.OpenColumns()
}
