package tax

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Bracket is one row of the withholding table: a gross-salary range mapped
// to either a tax rate (value < 1) or a fixed tax amount (value >= 1).
type Bracket struct {
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"` // exclusive; ignored when Open
	Value decimal.Decimal `json:"value"`
	Open  bool            `json:"open"` // no upper bound
}

// Contains reports whether the amount falls in [Min, Max).
func (b Bracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return b.Open || amount.LessThan(b.Max)
}

// Amount resolves the tax for a gross amount matched by this bracket.
func (b Bracket) Amount(gross decimal.Decimal) decimal.Decimal {
	if b.Value.LessThan(decimal.NewFromInt(1)) {
		return b.Value.Mul(gross)
	}
	return b.Value
}

// Table is the read-only withholding bracket table. It is built once at
// startup and passed by reference into every calculation that needs it.
type Table struct {
	brackets []Bracket
}

// NewTable validates that the brackets partition [0, inf) with no gaps or
// overlaps and returns them sorted by lower bound.
func NewTable(brackets []Bracket) (*Table, error) {
	if len(brackets) == 0 {
		return nil, fmt.Errorf("%w: table is empty", ErrMalformedTable)
	}

	sorted := make([]Bracket, len(brackets))
	copy(sorted, brackets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Min.LessThan(sorted[j].Min)
	})

	if !sorted[0].Min.IsZero() {
		return nil, fmt.Errorf("%w: first bracket starts at %s, not 0", ErrMalformedTable, sorted[0].Min)
	}
	for i, b := range sorted {
		last := i == len(sorted)-1
		if b.Open != last {
			if b.Open {
				return nil, fmt.Errorf("%w: open-ended bracket at position %d is not last", ErrMalformedTable, i)
			}
			return nil, fmt.Errorf("%w: last bracket [%s, %s) leaves a gap above it", ErrMalformedTable, b.Min, b.Max)
		}
		if !b.Open {
			if !b.Max.GreaterThan(b.Min) {
				return nil, fmt.Errorf("%w: bracket [%s, %s) is empty", ErrMalformedTable, b.Min, b.Max)
			}
			if !b.Max.Equal(sorted[i+1].Min) {
				return nil, fmt.Errorf("%w: bracket ends at %s but the next starts at %s", ErrMalformedTable, b.Max, sorted[i+1].Min)
			}
		}
		if b.Value.IsNegative() {
			return nil, fmt.Errorf("%w: bracket [%s, ...) has negative value %s", ErrMalformedTable, b.Min, b.Value)
		}
	}

	return &Table{brackets: sorted}, nil
}

// Brackets returns a copy of the rows in ascending order.
func (t *Table) Brackets() []Bracket {
	out := make([]Bracket, len(t.brackets))
	copy(out, t.brackets)
	return out
}

// Resolve finds the unique bracket containing the gross amount. Zero or
// multiple matches mean the table itself is corrupt, which is fatal.
func (t *Table) Resolve(gross decimal.Decimal) (Bracket, error) {
	if gross.IsNegative() {
		return Bracket{}, fmt.Errorf("%w: gross amount %s is negative", ErrBracketNotResolved, gross)
	}

	var (
		match   Bracket
		matched int
	)
	for _, b := range t.brackets {
		if b.Contains(gross) {
			match = b
			matched++
		}
	}
	switch matched {
	case 0:
		return Bracket{}, fmt.Errorf("%w: no bracket matches gross %s", ErrBracketNotResolved, gross)
	case 1:
		return match, nil
	default:
		return Bracket{}, fmt.Errorf("%w: %d brackets match gross %s", ErrBracketNotResolved, matched, gross)
	}
}

// Amount resolves the bracket for a gross amount and returns the tax it
// prescribes.
func (t *Table) Amount(gross decimal.Decimal) (decimal.Decimal, error) {
	b, err := t.Resolve(gross)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Amount(gross), nil
}
