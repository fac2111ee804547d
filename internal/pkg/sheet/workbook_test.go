package sheet

import (
	"bytes"
	"testing"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// july5Serial is the spreadsheet serial for 2023-07-05.
const july5Serial = 45112

func buildWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	require.NoError(t, f.SetSheetName("Sheet1", "7月前半"))
	require.NoError(t, f.SetCellValue("7月前半", "A1", july5Serial))
	require.NoError(t, f.SetCellValue("7月前半", "A2", "1限"))
	require.NoError(t, f.SetCellValue("7月前半", "A3", "2:00-3:20"))
	require.NoError(t, f.SetCellValue("7月前半", "B1", "田中"))
	require.NoError(t, f.SetCellValue("7月前半", "B2", "数学"))

	// Second block, rows 4-6, date inherited.
	require.NoError(t, f.SetCellValue("7月前半", "A5", "2限"))
	require.NoError(t, f.SetCellValue("7月前半", "A6", "3:30-4:50"))
	require.NoError(t, f.SetCellValue("7月前半", "B4", "田中"))
	require.NoError(t, f.SetCellValue("7月前半", "B5", "事務30"))

	// A sheet for another month.
	_, err := f.NewSheet("8月")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("8月", "A2", "1限"))

	return f
}

func TestReadClassWorkbook(t *testing.T) {
	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	blocks, err := ReadClassWorkbook(bytes.NewReader(buf.Bytes()), 7)
	require.NoError(t, err)

	// Only the two non-empty blocks of the July sheet survive.
	require.Len(t, blocks, 2)

	date := blocks[0].At(attendance.BlockNameRow, attendance.InfoCol)
	assert.Equal(t, attendance.CellNumber, date.Kind)
	assert.Equal(t, float64(july5Serial), date.Number)

	timeRange := blocks[0].At(attendance.BlockCell2Row, attendance.InfoCol)
	assert.Equal(t, attendance.CellText, timeRange.Kind)
	assert.Equal(t, "2:00-3:20", timeRange.Text)

	name := blocks[0].At(attendance.BlockNameRow, attendance.InfoCol+1)
	assert.Equal(t, "田中", name.Text)

	assert.True(t, blocks[1].At(attendance.BlockNameRow, attendance.InfoCol).IsEmpty())
	assert.Equal(t, "事務30", blocks[1].At(attendance.BlockCell1Row, attendance.InfoCol+1).Text)
}

func TestReadClassWorkbookAllSheets(t *testing.T) {
	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// Month 0 reads every sheet, picking up the August block too.
	blocks, err := ReadClassWorkbook(bytes.NewReader(buf.Bytes()), 0)
	require.NoError(t, err)
	assert.Len(t, blocks, 3)
}

func TestReadClassWorkbookSheetFilter(t *testing.T) {
	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	blocks, err := ReadClassWorkbook(bytes.NewReader(buf.Bytes()), 12)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestReadClassWorkbookBadStream(t *testing.T) {
	_, err := ReadClassWorkbook(bytes.NewReader([]byte("not an xlsx")), 7)
	assert.Error(t, err)
}
