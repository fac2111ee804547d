package attendance

import (
	"encoding/json"
	"fmt"
	"time"
)

// The schedule sheet is a fixed external contract: an ordered sequence of
// 3-row blocks. Row 0 holds the date (info column) and teacher display names,
// rows 1 and 2 hold the canonical-period label / time-range text (info
// column) and the schedule content cells.
const (
	BlockRows = 3

	BlockNameRow  = 0
	BlockCell1Row = 1
	BlockCell2Row = 2

	InfoCol = 0
)

// sheetEpoch is the historical spreadsheet date base: serial day 1 is
// 1899-12-31.
var sheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// DateFromSerial converts a spreadsheet serial day offset to a calendar date.
func DateFromSerial(serial int) time.Time {
	return sheetEpoch.AddDate(0, 0, serial)
}

// CellKind tags the dynamic value of one grid cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellDate:
		return "date"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// Cell is the tagged variant a spreadsheet value arrives as. Grid-consuming
// logic switches on Kind instead of inspecting runtime types.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

func EmptyCell() Cell           { return Cell{Kind: CellEmpty} }
func TextCell(s string) Cell    { return Cell{Kind: CellText, Text: s} }
func NumberCell(n float64) Cell { return Cell{Kind: CellNumber, Number: n} }
func DateCell(d time.Time) Cell { return Cell{Kind: CellDate, Date: d} }

func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// UnmarshalJSON maps the loose JSON payload of a posted grid onto the
// variant: null -> empty, string -> text, number -> number. Dates travel as
// serial numbers and are resolved downstream.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*c = EmptyCell()
	case string:
		if val == "" {
			*c = EmptyCell()
		} else {
			*c = TextCell(val)
		}
	case float64:
		*c = NumberCell(val)
	default:
		return fmt.Errorf("%w: %T", ErrUnexpectedCellType, v)
	}
	return nil
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellEmpty:
		return []byte("null"), nil
	case CellText:
		return json.Marshal(c.Text)
	case CellNumber:
		return json.Marshal(c.Number)
	case CellDate:
		return json.Marshal(c.Date.Format("2006-01-02"))
	}
	return nil, fmt.Errorf("%w: %s", ErrUnexpectedCellType, c.Kind)
}

// Block is one 3-row schedule block.
type Block struct {
	Rows [BlockRows][]Cell
}

// At returns the cell at (row, col), treating missing columns as empty.
func (b Block) At(row, col int) Cell {
	if row < 0 || row >= BlockRows || col < 0 || col >= len(b.Rows[row]) {
		return EmptyCell()
	}
	return b.Rows[row][col]
}

// Columns reports the widest row of the block.
func (b Block) Columns() int {
	n := 0
	for _, row := range b.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

func (b *Block) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) != BlockRows {
		return fmt.Errorf("%w: block must have %d rows, got %d", ErrUnexpectedCellType, BlockRows, len(rows))
	}
	copy(b.Rows[:], rows)
	return nil
}

func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Rows[:])
}
