// Package roster loads household reservations and pew layouts, and turns
// engine matches back into named seat assignments.
package roster

import (
	"context"
	"errors"

	"github.com/guimove/pewfit/internal/model"
)

var (
	ErrNoHouseholds = errors.New("no household reservations found")
	ErrNoPews       = errors.New("no pews found")
)

// Roster is the parsed input of one run.
type Roster struct {
	Households []model.Household `json:"households" yaml:"households"`
	Pews       []model.Pew       `json:"pews" yaml:"pews"`
}

// Source abstracts where household and pew lists come from.
type Source interface {
	// Load reads and validates both lists.
	Load(ctx context.Context) (*Roster, error)

	// Kind returns the source type.
	Kind() string
}

func (r *Roster) check() error {
	if len(r.Households) == 0 {
		return ErrNoHouseholds
	}
	if len(r.Pews) == 0 {
		return ErrNoPews
	}
	return nil
}
