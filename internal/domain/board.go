package domain

// Board is a value type: assigning or returning it copies every cell, so a
// board handed to a caller never changes underneath them.
// Row 0 is the top row, row Rows-1 the bottom.
type Board [Rows][Columns]PlayerID

func NewBoard() Board {
	return Board{}
}

func IsValidColumn(column int) bool {
	return column >= 0 && column < Columns
}

// ColumnHeight returns how many discs are stacked in the column.
func (b Board) ColumnHeight(column int) int {
	if !IsValidColumn(column) {
		return 0
	}
	height := 0
	for row := Rows - 1; row >= 0 && b[row][column] != Empty; row-- {
		height++
	}
	return height
}

func (b Board) IsColumnFull(column int) bool {
	return b[0][column] != Empty
}

// DropDisc returns a copy of the board with the player's disc placed on the
// lowest free cell of the column, along with the row it landed on.
func (b Board) DropDisc(column int, player PlayerID) (Board, int, error) {
	if !IsValidColumn(column) {
		return b, -1, ErrInvalidColumn
	}

	// scanning from the bottom row up till we hit a free cell
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			b[row][column] = player
			return b, row, nil
		}
	}

	return b, -1, ErrColumnFull
}

func (b Board) IsFull() bool {
	for row := range b {
		for column := range b[row] {
			if b[row][column] == Empty {
				return false
			}
		}
	}
	return true
}

// OpenColumns lists the columns that can still take a disc, left to right.
func (b Board) OpenColumns() []int {
	columns := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if !b.IsColumnFull(c) {
			columns = append(columns, c)
		}
	}
	return columns
}

// this counts the number of discs in a specific direction, not including the
// starting cell
func (b Board) CountDiscsInDirection(row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
