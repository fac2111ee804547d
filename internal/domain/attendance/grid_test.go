package attendance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromSerial(t *testing.T) {
	tests := []struct {
		serial int
		want   time.Time
	}{
		{1, time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC)},
		{60, time.Date(1900, 2, 28, 0, 0, 0, 0, time.UTC)},
		{45112, time.Date(2023, 7, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.True(t, DateFromSerial(tt.serial).Equal(tt.want),
			"serial %d = %s", tt.serial, DateFromSerial(tt.serial))
	}
}

func TestCellJSON(t *testing.T) {
	t.Run("unmarshal variants", func(t *testing.T) {
		var cells []Cell
		require.NoError(t, json.Unmarshal([]byte(`[null, "", "田中", 45112, 3.5]`), &cells))

		require.Len(t, cells, 5)
		assert.Equal(t, CellEmpty, cells[0].Kind)
		assert.Equal(t, CellEmpty, cells[1].Kind)
		assert.Equal(t, CellText, cells[2].Kind)
		assert.Equal(t, "田中", cells[2].Text)
		assert.Equal(t, CellNumber, cells[3].Kind)
		assert.Equal(t, float64(45112), cells[3].Number)
		assert.Equal(t, CellNumber, cells[4].Kind)
	})

	t.Run("rejects other json types", func(t *testing.T) {
		var c Cell
		err := json.Unmarshal([]byte(`true`), &c)
		assert.ErrorIs(t, err, ErrUnexpectedCellType)

		err = json.Unmarshal([]byte(`{"a":1}`), &c)
		assert.ErrorIs(t, err, ErrUnexpectedCellType)
	})

	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal([]Cell{EmptyCell(), TextCell("x"), NumberCell(2)})
		require.NoError(t, err)
		assert.JSONEq(t, `[null, "x", 2]`, string(data))
	})
}

func TestBlock(t *testing.T) {
	t.Run("unmarshal requires three rows", func(t *testing.T) {
		var b Block
		require.NoError(t, json.Unmarshal([]byte(`[[null,"田中"],["1限","数学"],["2:00-3:20",null]]`), &b))
		assert.Equal(t, "田中", b.At(BlockNameRow, 1).Text)
		assert.Equal(t, "2:00-3:20", b.At(BlockCell2Row, 0).Text)

		err := json.Unmarshal([]byte(`[[null],[null]]`), &b)
		assert.ErrorIs(t, err, ErrUnexpectedCellType)
	})

	t.Run("out of range access is empty", func(t *testing.T) {
		var b Block
		b.Rows[0] = []Cell{TextCell("x")}

		assert.True(t, b.At(0, 5).IsEmpty())
		assert.True(t, b.At(1, 0).IsEmpty())
		assert.True(t, b.At(-1, 0).IsEmpty())
		assert.True(t, b.At(3, 0).IsEmpty())
	})

	t.Run("columns is the widest row", func(t *testing.T) {
		var b Block
		b.Rows[0] = []Cell{EmptyCell()}
		b.Rows[1] = []Cell{EmptyCell(), EmptyCell(), EmptyCell()}

		assert.Equal(t, 3, b.Columns())
	})
}
