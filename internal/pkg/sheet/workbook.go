// Package sheet reads the hand-maintained class schedule workbook into the
// block grid the extraction pipeline consumes. The workbook layout is a
// fixed external contract: every sheet holds up to 25 three-row blocks with
// the info column first and one column per teacher.
package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/pkg/jptext"
	"github.com/xuri/excelize/v2"
)

const (
	// MaxBlocksPerSheet caps the block scan of one sheet.
	MaxBlocksPerSheet = 25
	// MaxTeacherColumns caps the teacher columns of one block.
	MaxTeacherColumns = 15
)

// ReadClassWorkbook parses an xlsx stream into schedule blocks. When month
// is non-zero only sheets whose normalized name starts with "{month}月" are
// read; otherwise every sheet is.
func ReadClassWorkbook(r io.Reader, month int) ([]attendance.Block, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var prefix string
	if month != 0 {
		prefix = fmt.Sprintf("%d月", month)
	}

	var blocks []attendance.Block
	for _, name := range f.GetSheetList() {
		if prefix != "" && !strings.HasPrefix(jptext.Normalize(name), prefix) {
			continue
		}
		sheetBlocks, err := readSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		blocks = append(blocks, sheetBlocks...)
	}

	return blocks, nil
}

func readSheet(f *excelize.File, name string) ([]attendance.Block, error) {
	blocks := make([]attendance.Block, 0, MaxBlocksPerSheet)
	cols := attendance.InfoCol + 1 + MaxTeacherColumns

	for i := 0; i < MaxBlocksPerSheet; i++ {
		var block attendance.Block
		empty := true

		for row := 0; row < attendance.BlockRows; row++ {
			cells := make([]attendance.Cell, cols)
			for col := 0; col < cols; col++ {
				cell, err := readCell(f, name, col, i*attendance.BlockRows+row)
				if err != nil {
					return nil, err
				}
				cells[col] = cell
				if !cell.IsEmpty() {
					empty = false
				}
			}
			block.Rows[row] = cells
		}

		if !empty {
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}

// readCell maps one spreadsheet cell onto the tagged grid variant using
// zero-based coordinates.
func readCell(f *excelize.File, sheet string, col, row int) (attendance.Cell, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return attendance.Cell{}, fmt.Errorf("cell (%d,%d): %w", row, col, err)
	}

	value, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return attendance.Cell{}, fmt.Errorf("cell %s: %w", axis, err)
	}
	if value == "" {
		return attendance.EmptyCell(), nil
	}

	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return attendance.Cell{}, fmt.Errorf("cell %s: %w", axis, err)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return attendance.TextCell(value), nil
	case excelize.CellTypeBool, excelize.CellTypeError:
		return attendance.Cell{}, fmt.Errorf("cell %s: %w: %v", axis, attendance.ErrUnexpectedCellType, cellType)
	case excelize.CellTypeDate:
		serial, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return attendance.Cell{}, fmt.Errorf("cell %s: %w: date %q", axis, attendance.ErrUnexpectedCellType, value)
		}
		return attendance.DateCell(attendance.DateFromSerial(int(serial))), nil
	default:
		// Plain cells carry no explicit type marker; numbers (including
		// date serials) parse, anything else is text.
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return attendance.NumberCell(n), nil
		}
		return attendance.TextCell(value), nil
	}
}
