package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// FileSource reads both lists from CSV files on disk.
type FileSource struct {
	HouseholdsPath string
	PewsPath       string
}

// NewFileSource creates a source backed by two CSV files.
func NewFileSource(householdsPath, pewsPath string) *FileSource {
	return &FileSource{HouseholdsPath: householdsPath, PewsPath: pewsPath}
}

// Kind returns "file".
func (s *FileSource) Kind() string { return "file" }

// Load parses both files. Parse problems from both files are reported
// together.
func (s *FileSource) Load(ctx context.Context) (*Roster, error) {
	hf, err := os.Open(s.HouseholdsPath)
	if err != nil {
		return nil, fmt.Errorf("opening household file: %w", err)
	}
	defer hf.Close()

	pf, err := os.Open(s.PewsPath)
	if err != nil {
		return nil, fmt.Errorf("opening pew file: %w", err)
	}
	defer pf.Close()

	return NewReaderSource(hf, pf).Load(ctx)
}

// ReaderSource parses both lists from already-open readers, such as
// uploaded form files.
type ReaderSource struct {
	households io.Reader
	pews       io.Reader
}

// NewReaderSource creates a source over two CSV streams.
func NewReaderSource(households, pews io.Reader) *ReaderSource {
	return &ReaderSource{households: households, pews: pews}
}

// Kind returns "reader".
func (s *ReaderSource) Kind() string { return "reader" }

// Load parses both streams.
func (s *ReaderSource) Load(ctx context.Context) (*Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pews, pewErr := ParsePews(s.pews)
	households, hhErr := ParseHouseholds(s.households)

	var verrs ValidationErrors
	for _, err := range []error{pewErr, hhErr} {
		if err == nil {
			continue
		}
		var v ValidationErrors
		if !errors.As(err, &v) {
			return nil, err
		}
		verrs = append(verrs, v...)
	}
	if err := verrs.errOrNil(); err != nil {
		return nil, err
	}

	r := &Roster{Households: households, Pews: pews}
	if err := r.check(); err != nil {
		return nil, err
	}
	return r, nil
}

// MemorySource serves a pre-built roster.
type MemorySource struct {
	roster *Roster
}

// NewMemorySource creates a source that returns r on every load.
func NewMemorySource(r *Roster) *MemorySource {
	return &MemorySource{roster: r}
}

// Kind returns "memory".
func (s *MemorySource) Kind() string { return "memory" }

// Load returns a copy of the roster.
func (s *MemorySource) Load(ctx context.Context) (*Roster, error) {
	if s.roster == nil {
		return nil, ErrNoHouseholds
	}
	r := &Roster{
		Households: append(s.roster.Households[:0:0], s.roster.Households...),
		Pews:       append(s.roster.Pews[:0:0], s.roster.Pews...),
	}
	if err := r.check(); err != nil {
		return nil, err
	}
	return r, nil
}
