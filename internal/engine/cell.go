package engine

import (
	"strconv"
	"strings"
)

// CellKind discriminates the three shapes a raw sheet cell can take.
type CellKind int

const (
	CellBlank CellKind = iota
	CellNumber
	CellText
)

// Cell is a single raw cell value as handed over by the record store.
// Score sheets are hand-maintained, so a cell can be empty, a number, or
// arbitrary text; all coercion rules live here as pure functions.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

func Blank() Cell {
	return Cell{Kind: CellBlank}
}

func Number(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

func Text(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// ParseCell classifies a raw stored string. Whitespace-only input is blank,
// anything that parses as a float is a number, everything else is text.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Blank()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(v)
	}
	return Text(trimmed)
}

// Float coerces the cell to a float. Blank and unparsable text both become 0;
// a malformed cell is never an error.
func (c Cell) Float() float64 {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		if v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64); err == nil {
			return v
		}
	}
	return 0
}

// Int coerces the cell to an int, truncating any fractional part.
func (c Cell) Int() int {
	return int(c.Float())
}

// Bool implements the flag-cell rule: true iff the value is, case
// insensitively, one of "y", "yes", "true" or "1".
func (c Cell) Bool() bool {
	switch c.Kind {
	case CellNumber:
		return c.Number == 1
	case CellText:
		switch strings.ToLower(strings.TrimSpace(c.Text)) {
		case "y", "yes", "true", "1":
			return true
		}
	}
	return false
}

// Played reports whether the cell records a bowled game. A game counts only
// when its numeric interpretation is positive; 0 and blank both mean "no game
// played", never "scored zero".
func (c Cell) Played() bool {
	return c.Float() > 0
}

// IsBlank reports whether the cell is empty.
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank
}
