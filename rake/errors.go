package rake

import "errors"

// ErrNoVariables is returned when no variable names are given to build
// the cell enumeration.
var ErrNoVariables = errors.New("rake: need at least one variable")

// ErrEmptyMargin is returned by NewTable when no margins are given to
// draw category values or observed counts from.
var ErrEmptyMargin = errors.New("rake: margin table has no rows")
