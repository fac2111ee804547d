package timesheet

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/pkg/jptext"
)

var (
	ErrUnknownTimeRange = errors.New("unrecognized lecture time range")
	ErrMalformedTime    = errors.New("malformed time range text")
)

// DefaultPeriodTable returns the canonical mapping from a normalized lecture
// time range to its period number. The clock values are how the schedule
// sheet writes afternoon periods (2:00 means 14:00).
func DefaultPeriodTable() map[string]int {
	return map[string]int{
		"2:00-3:20": 1,
		"3:30-4:50": 2,
		"5:00-6:20": 3,
		"6:30-7:50": 4,
		"8:00-9:20": 5,
	}
}

// Office-work content cells contain 事務, optionally followed by a duration
// in minutes (事務30).
const officeMarker = "事務"

var officeMarkerRe = regexp.MustCompile(`事務(\d+)`)

// Extractor walks the fixed-shape block grid and yields canonical timeslots
// per teacher. It holds only the immutable period table; every Extract call
// is an independent, stateless scan.
type Extractor struct {
	periods map[string]int
}

func NewExtractor(periods map[string]int) *Extractor {
	return &Extractor{periods: periods}
}

// Extract scans the blocks and returns the timeslot list for every known
// teacher, keyed by teacher id. Teachers without entries map to an empty
// list. The scan carries the current date forward across blocks with a blank
// date cell; blocks before the first dated one, or dated outside the target
// period, are skipped. Any cell whose type breaks the grid contract aborts
// the whole extraction.
func (e *Extractor) Extract(blocks []attendance.Block, teachers []teacher.Teacher, ym attendance.YearMonth) (map[string][]attendance.Timeslot, error) {
	byName := make(map[string]string, len(teachers))
	result := make(map[string][]attendance.Timeslot, len(teachers))
	for _, t := range teachers {
		byName[t.DisplayName] = t.ID
		result[t.ID] = []attendance.Timeslot{}
	}

	var (
		current  time.Time
		haveDate bool
	)

	for bi, block := range blocks {
		dateCell := block.At(attendance.BlockNameRow, attendance.InfoCol)
		periodCell := block.At(attendance.BlockCell1Row, attendance.InfoCol)
		timeCell := block.At(attendance.BlockCell2Row, attendance.InfoCol)

		// A date cell holding text is not an error, just not a date:
		// the sheet uses those rows for annotations.
		if dateCell.Kind == attendance.CellText {
			continue
		}
		if periodCell.Kind == attendance.CellDate {
			return nil, fmt.Errorf("block %d: period label cell: %w: %s", bi, attendance.ErrUnexpectedCellType, periodCell.Kind)
		}
		if timeCell.Kind != attendance.CellEmpty && timeCell.Kind != attendance.CellText {
			return nil, fmt.Errorf("block %d: time range cell: %w: %s", bi, attendance.ErrUnexpectedCellType, timeCell.Kind)
		}

		if periodCell.IsEmpty() || timeCell.IsEmpty() {
			continue
		}

		switch dateCell.Kind {
		case attendance.CellDate:
			current = dateCell.Date
			haveDate = true
		case attendance.CellNumber:
			current = attendance.DateFromSerial(int(dateCell.Number))
			haveDate = true
		}
		if !haveDate {
			continue
		}
		if current.Year() != ym.Year {
			continue
		}
		if ym.Month != 0 && int(current.Month()) != ym.Month {
			continue
		}

		start, end, number, err := e.resolveTimeRange(timeCell.Text)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", bi, err)
		}

		lecture, err := attendance.NewTimeslot(current.Day(), start, end, number, attendance.TimeslotLecture)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", bi, err)
		}

		for col := attendance.InfoCol + 1; col < block.Columns(); col++ {
			nameCell := block.At(attendance.BlockNameRow, col)
			cell1 := block.At(attendance.BlockCell1Row, col)
			cell2 := block.At(attendance.BlockCell2Row, col)

			for _, c := range []struct {
				label string
				cell  attendance.Cell
			}{
				{"teacher name", nameCell},
				{"content cell 1", cell1},
				{"content cell 2", cell2},
			} {
				if c.cell.Kind != attendance.CellEmpty && c.cell.Kind != attendance.CellText {
					return nil, fmt.Errorf("block %d col %d: %s cell: %w: %s", bi, col, c.label, attendance.ErrUnexpectedCellType, c.cell.Kind)
				}
			}

			if nameCell.IsEmpty() {
				continue
			}
			if cell1.IsEmpty() && cell2.IsEmpty() {
				continue
			}
			id, known := byName[nameCell.Text]
			if !known {
				continue
			}

			officeEnd, isOffice, err := officeWorkEnd(start, end, cell1, cell2)
			if err != nil {
				return nil, fmt.Errorf("block %d col %d (teacher %s): %w", bi, col, nameCell.Text, err)
			}
			if isOffice {
				office, err := attendance.NewTimeslot(current.Day(), start, officeEnd, 0, attendance.TimeslotOfficeWork)
				if err != nil {
					return nil, fmt.Errorf("block %d col %d (teacher %s): %w", bi, col, nameCell.Text, err)
				}
				result[id] = append(result[id], office)
			} else {
				result[id] = append(result[id], lecture)
			}
		}
	}

	return result, nil
}

// resolveTimeRange normalizes the raw time-range text, maps it to a
// canonical period number and parses both clock values. The sheet writes
// afternoon lessons on a 12h clock (2:00 means 14:00), so parsed hours
// below 12 are shifted into the afternoon before the slot is stored.
func (e *Extractor) resolveTimeRange(raw string) (start, end attendance.TimeOfDay, number int, err error) {
	text := jptext.Normalize(raw)

	number, ok := e.periods[text]
	if !ok {
		return start, end, 0, fmt.Errorf("%w: %q", ErrUnknownTimeRange, raw)
	}

	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return start, end, 0, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}
	if start, err = parseAfternoonTime(parts[0]); err != nil {
		return start, end, 0, err
	}
	if end, err = parseAfternoonTime(parts[1]); err != nil {
		return start, end, 0, err
	}
	return start, end, number, nil
}

func parseAfternoonTime(s string) (attendance.TimeOfDay, error) {
	t, err := attendance.ParseTimeOfDay(s)
	if err != nil {
		return attendance.TimeOfDay{}, err
	}
	if t.Hour() >= 12 {
		return t, nil
	}
	return t.Add(12 * 60)
}

// officeWorkEnd detects the office-work marker in either content cell,
// checking cell 1 first. A marker with a minute suffix ends the office
// period that many minutes after the block start; a bare marker spans the
// whole block.
func officeWorkEnd(start, end attendance.TimeOfDay, cell1, cell2 attendance.Cell) (attendance.TimeOfDay, bool, error) {
	check := func(c attendance.Cell) (attendance.TimeOfDay, bool, error) {
		if c.IsEmpty() {
			return attendance.TimeOfDay{}, false, nil
		}
		text := jptext.Normalize(c.Text)
		if !strings.Contains(text, officeMarker) {
			return attendance.TimeOfDay{}, false, nil
		}
		m := officeMarkerRe.FindStringSubmatch(text)
		if m == nil {
			return end, true, nil
		}
		minutes, err := strconv.Atoi(m[1])
		if err != nil {
			return attendance.TimeOfDay{}, false, fmt.Errorf("office-work duration %q: %w", m[1], err)
		}
		t, err := start.Add(minutes)
		if err != nil {
			return attendance.TimeOfDay{}, false, err
		}
		return t, true, nil
	}

	if t, ok, err := check(cell1); ok || err != nil {
		return t, ok, err
	}
	return check(cell2)
}
