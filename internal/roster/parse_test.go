package roster

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guimove/pewfit/internal/model"
)

const householdCSV = `First Name,Last Name,Size,E-mail
Ann,Lee,4,ann@example.com
Bo, Park ,2, bo@example.com
"Cruz, Jr.",Diaz,1,cd@example.com
`

const pewCSV = `Section,Row,Capacity
A,1,10
A,2,8
B,1,12,North
`

func TestParseHouseholds(t *testing.T) {
	got, err := ParseHouseholds(strings.NewReader(householdCSV))
	require.NoError(t, err)

	assert.Equal(t, []model.Household{
		{FirstName: "Ann", LastName: "Lee", Size: 4, Email: "ann@example.com"},
		{FirstName: "Bo", LastName: "Park", Size: 2, Email: "bo@example.com"},
		{FirstName: "Cruz, Jr.", LastName: "Diaz", Size: 1, Email: "cd@example.com"},
	}, got)
}

func TestParseHouseholds_Errors(t *testing.T) {
	input := `First,Last,Size,Email
Ann,Lee,four,ann@example.com
Bo,Park,2,bo-at-example.com
Cy,Ng,0,
Di,Fox,3,di@example.com
`
	_, err := ParseHouseholds(strings.NewReader(input))
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	type loc struct{ row, col int }
	var got []loc
	for _, e := range verrs {
		assert.Equal(t, HouseholdFile, e.File)
		got = append(got, loc{e.Row, e.Col})
	}
	assert.Equal(t, []loc{{1, 3}, {2, 4}, {3, 3}, {3, 4}}, got)

	assert.Equal(t, "Ann,Lee,four,ann@example.com", verrs[0].Text)
	assert.Contains(t, verrs.Description(), "non-parseable family size")
}

func TestParseHouseholds_HeaderOnly(t *testing.T) {
	got, err := ParseHouseholds(strings.NewReader("First,Last,Size,Email\n"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = ParseHouseholds(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParsePews(t *testing.T) {
	got, err := ParsePews(strings.NewReader(pewCSV))
	require.NoError(t, err)

	assert.Equal(t, []model.Pew{
		{Section: "A", Row: "1", Door: "A", Capacity: 10},
		{Section: "A", Row: "2", Door: "A", Capacity: 8},
		{Section: "B", Row: "1", Door: "North", Capacity: 12},
	}, got)
}

func TestParsePews_Errors(t *testing.T) {
	input := "Section,Row,Capacity\nA,1,ten\nA,2,-3\nA,3\n"
	_, err := ParsePews(strings.NewReader(input))

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 3)
	for i, e := range verrs {
		assert.Equal(t, PewFile, e.File)
		assert.Equal(t, i+1, e.Row)
		assert.Equal(t, 3, e.Col)
	}
}

func TestParseHouseholds_BareQuote(t *testing.T) {
	got, err := ParseHouseholds(strings.NewReader("First,Last,Size,Email\nAnn,O\"Brien,2,ann@example.org\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, `O"Brien`, got[0].LastName)
	assert.Equal(t, 2, got[0].Size)
}

func TestParsePews_UnterminatedQuote(t *testing.T) {
	_, err := ParsePews(strings.NewReader("Section,Row,Capacity\n\"A,1,10\n"))

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "got %v", err)
	require.Len(t, verrs, 1)
	assert.Equal(t, 1, verrs[0].Row)
	assert.Equal(t, 3, verrs[0].Col)
}

func TestMalformedLine(t *testing.T) {
	err := malformedLine(PewFile, 2, &csv.ParseError{StartLine: 3, Line: 3, Column: 5, Err: csv.ErrQuote})

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, &ParseError{File: PewFile, Row: 2, Col: 5, Message: msgMalformed}, pe)

	assert.ErrorIs(t, malformedLine(PewFile, 2, io.ErrUnexpectedEOF), io.ErrUnexpectedEOF)
}

func TestValidationErrors_Error(t *testing.T) {
	one := ValidationErrors{{File: PewFile, Row: 2, Col: 3, Message: "bad"}}
	assert.Equal(t, "Pew Seating Info row 2 col 3: bad", one.Error())

	two := append(one, &ParseError{File: HouseholdFile, Row: 1, Col: 4, Message: "worse"})
	assert.True(t, strings.HasPrefix(two.Error(), "2 invalid fields: "))
}
