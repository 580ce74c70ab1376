package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guimove/pewfit/internal/model"
)

// Household file columns, 0-based.
const (
	colFirstName = iota
	colLastName
	colSize
	colEmail
)

// Pew file columns, 0-based.
const (
	colSection = iota
	colRow
	colCapacity
	colDoor
)

const (
	msgBadSize     = "This line contains a non-parseable family size value."
	msgBadEmail    = "This line contains a non-parseable e-mail address."
	msgBadCapacity = "This line contains a non-parseable pew capacity (size) value."
	msgMalformed   = "This line could not be read as comma-separated values."
)

// ParseHouseholds reads a household CSV: a header row, then First Name,
// Last Name, Size, E-mail. Every bad field is reported.
func ParseHouseholds(r io.Reader) ([]model.Household, error) {
	var households []model.Household
	var errs ValidationErrors

	err := eachRecord(HouseholdFile, r, func(row int, rec []string) {
		text := strings.Join(rec, ",")

		size, err := strconv.Atoi(field(rec, colSize))
		if err != nil || size <= 0 {
			errs = append(errs, &ParseError{File: HouseholdFile, Row: row, Col: colSize + 1, Text: text, Message: msgBadSize})
		}
		email := field(rec, colEmail)
		if !strings.Contains(email, "@") {
			errs = append(errs, &ParseError{File: HouseholdFile, Row: row, Col: colEmail + 1, Text: text, Message: msgBadEmail})
		}

		households = append(households, model.Household{
			FirstName: field(rec, colFirstName),
			LastName:  field(rec, colLastName),
			Size:      size,
			Email:     email,
		})
	})
	var malformed *ParseError
	switch {
	case errors.As(err, &malformed):
		errs = append(errs, malformed)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", HouseholdFile, err)
	}
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return households, nil
}

// ParsePews reads a pew CSV: a header row, then Section, Row, Capacity and
// an optional Door. Without a Door column the section doubles as the door.
func ParsePews(r io.Reader) ([]model.Pew, error) {
	var pews []model.Pew
	var errs ValidationErrors

	err := eachRecord(PewFile, r, func(row int, rec []string) {
		capacity, err := strconv.Atoi(field(rec, colCapacity))
		if err != nil || capacity <= 0 {
			errs = append(errs, &ParseError{
				File: PewFile, Row: row, Col: colCapacity + 1,
				Text: strings.Join(rec, ","), Message: msgBadCapacity,
			})
		}

		pew := model.Pew{
			Section:  field(rec, colSection),
			Row:      field(rec, colRow),
			Door:     field(rec, colDoor),
			Capacity: capacity,
		}
		if pew.Door == "" {
			pew.Door = pew.Section
		}
		pews = append(pews, pew)
	})
	var malformed *ParseError
	switch {
	case errors.As(err, &malformed):
		errs = append(errs, malformed)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", PewFile, err)
	}
	if err := errs.errOrNil(); err != nil {
		return nil, err
	}
	return pews, nil
}

// eachRecord skips the header and calls fn with each data record and its
// 1-based row number. Blank lines are skipped and not counted. Quotes inside
// unquoted fields are kept as text. A line the reader still rejects stops the
// walk with a *ParseError for that row.
func eachRecord(file string, r io.Reader, fn func(row int, rec []string)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return malformedLine(file, 0, err)
	}

	for row := 1; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return malformedLine(file, row, err)
		}
		fn(row, rec)
	}
}

// malformedLine turns a CSV syntax error into a ParseError; other read
// errors pass through.
func malformedLine(file string, row int, err error) error {
	var csvErr *csv.ParseError
	if !errors.As(err, &csvErr) {
		return err
	}
	return &ParseError{File: file, Row: row, Col: csvErr.Column, Message: msgMalformed}
}
