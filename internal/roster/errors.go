package roster

import (
	"fmt"
	"strings"
)

// File labels used in parse errors.
const (
	HouseholdFile = "Household Reservations"
	PewFile       = "Pew Seating Info"
)

// ParseError describes one bad field in an input file. Row is the 1-based
// data row (the header is not counted), Col the 1-based column.
type ParseError struct {
	File    string `json:"file"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Text    string `json:"text"`
	Message string `json:"-"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s row %d col %d: %s", e.File, e.Row, e.Col, e.Message)
}

// ValidationErrors collects every ParseError found in a load.
type ValidationErrors []*ParseError

func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d invalid fields: %s", len(v), strings.Join(msgs, "; "))
}

// Description returns a user-facing summary of the first problem.
func (v ValidationErrors) Description() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Message + " Please fix it and try submitting again."
}

// errOrNil avoids returning a typed nil as a non-nil error.
func (v ValidationErrors) errOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
