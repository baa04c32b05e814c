package domain

type axis struct {
	deltaRow, deltaCol int
}

// horizontal, vertical, diagonal down-right, diagonal down-left
var winAxes = [...]axis{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWin reports whether the disc at (row, column) completes a line of
// ToWin or more for player. Only lines through that cell are inspected.
func CheckWin(board Board, row, column int, player PlayerID) bool {
	if !player.IsPlayer() || board[row][column] != player {
		return false
	}

	for _, a := range winAxes {
		count := 1
		count += board.CountDiscsInDirection(row, column, a.deltaRow, a.deltaCol, player)
		count += board.CountDiscsInDirection(row, column, -a.deltaRow, -a.deltaCol, player)
		if count >= ToWin {
			return true
		}
	}

	return false
}
