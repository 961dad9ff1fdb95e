package crossing

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBoardTooSmall is returned when the board cannot hold a water row,
// at least one enemy lane and the two grass rows.
var ErrBoardTooSmall = errors.New("board needs at least 4 rows")

// MinRows is the smallest board that still has an enemy lane.
const MinRows = 4

// Board describes the tile grid. Positions are in logical pixels;
// rows are the canonical vertical coordinate.
type Board struct {
	Rows       int
	Columns    int
	TileWidth  int
	TileHeight int
}

// NewBoard validates the dimensions and returns the board.
func NewBoard(rows, columns, tileWidth, tileHeight int) (Board, error) {
	if rows < MinRows {
		return Board{}, fmt.Errorf("crossing: %d rows: %w", rows, ErrBoardTooSmall)
	}
	if columns < 1 || tileWidth <= 0 || tileHeight <= 0 {
		return Board{}, fmt.Errorf("crossing: invalid board %dx%d tiles of %dx%d", columns, rows, tileWidth, tileHeight)
	}
	return Board{Rows: rows, Columns: columns, TileWidth: tileWidth, TileHeight: tileHeight}, nil
}

// WidthPx is the x coordinate of the last column. Enemies past it have left the board.
func (b Board) WidthPx() float64 {
	return float64((b.Columns - 1) * b.TileWidth)
}

// HeightPx is the y coordinate of the last row.
func (b Board) HeightPx() float64 {
	return float64((b.Rows - 1) * b.TileHeight)
}

// RowToY converts a row index to a pixel y.
func (b Board) RowToY(row int, offset float64) float64 {
	return float64(row*b.TileHeight) + offset
}

// YToRow converts a pixel y back to its row index.
func (b Board) YToRow(y, offset float64) int {
	return int((y - offset) / float64(b.TileHeight))
}

// ColumnX returns the pixel x of a column's left edge.
func (b Board) ColumnX(col int) float64 {
	return float64(col * b.TileWidth)
}

// BottomRow is the grass row the player starts on.
func (b Board) BottomRow() int {
	return b.Rows - 1
}

// RandomEnemyRow picks a lane uniformly from [1, rows-3].
// Row 0 is water and the two bottom rows are grass.
func (b Board) RandomEnemyRow(rng *rand.Rand) int {
	return 1 + rng.Intn(b.Rows-3)
}

// IsWater reports whether the row is the goal row at the top.
func (b Board) IsWater(row int) bool {
	return row == 0
}

// IsGrass reports whether the row is one of the two safe rows at the bottom.
func (b Board) IsGrass(row int) bool {
	return row >= b.Rows-2
}
