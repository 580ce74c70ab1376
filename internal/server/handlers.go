package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/common/version"

	"github.com/guimove/pewfit/internal/orchestrator"
	"github.com/guimove/pewfit/internal/report"
	"github.com/guimove/pewfit/internal/roster"
)

// Upload form fields.
const (
	fieldMaxCapacity = "maxCapacity"
	fieldReserved    = "numReservedSeating"
	fieldSeparation  = "sepRad"
	fieldSeatWidth   = "seatWidth"
	fieldPewFile     = "pewFile"
	fieldFamilyFile  = "familyFile"
)

// ArrangementFilename is the attachment name of the upload response.
const ArrangementFilename = "seating_arrangement.csv"

type errorBody struct {
	Description string               `json:"description"`
	Errors      []*roster.ParseError `json:"errors,omitempty"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	id := RequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				errorBody{Description: fmt.Sprintf("Upload exceeds %d bytes.", tooLarge.Limit)})
			return
		}
		writeError(w, http.StatusBadRequest, errorBody{Description: "Expected a multipart form upload."})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	site, err := parseSiteInfo(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Description: err.Error()})
		return
	}

	pewFile, _, err := r.FormFile(fieldPewFile)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Description: "A pew file is required."})
		return
	}
	defer pewFile.Close()

	familyFile, _, err := r.FormFile(fieldFamilyFile)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorBody{Description: "A household file is required."})
		return
	}
	defer familyFile.Close()

	cfg := s.cfg
	cfg.Seating.MaxCapacity = site.MaxCapacity
	cfg.Seating.ReservedSeats = site.ReservedSeats
	cfg.Seating.SeparationFeet = site.SeparationFeet
	cfg.Seating.SeatWidthInches = site.SeatWidthInches
	cfg.Seating.Margin = site.Margin()
	cfg.Output.Format = "csv"

	ctx := r.Context()
	if cfg.Server.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Server.RequestTimeout)
		defer cancel()
	}

	orch := orchestrator.New(roster.NewReaderSource(familyFile, pewFile), cfg)
	orch.Logger = s.log
	orch.Metrics = s.recorder

	plan, err := orch.Plan(ctx)
	if err != nil {
		s.handlePlanError(w, id, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteArrangement(&buf, plan); err != nil {
		s.log.Error("writing arrangement", "request_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, errorBody{Description: "Could not write the seating arrangement."})
		return
	}

	w.Header().Set("Content-Type", report.ContentType("csv"))
	w.Header().Set("Content-Disposition", "attachment; filename="+ArrangementFilename)
	w.Header().Set("X-Plan-ID", plan.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handlePlanError(w http.ResponseWriter, id string, err error) {
	var verrs roster.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		s.log.Info("rejected upload", "request_id", id, "invalid_fields", len(verrs))
		writeError(w, http.StatusBadRequest, errorBody{Description: verrs.Description(), Errors: verrs})
	case errors.Is(err, roster.ErrNoHouseholds):
		writeError(w, http.StatusBadRequest, errorBody{Description: "The household file has no reservations."})
	case errors.Is(err, roster.ErrNoPews):
		writeError(w, http.StatusBadRequest, errorBody{Description: "The pew file has no rows."})
	default:
		s.log.Error("seating failed", "request_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, errorBody{Description: "Seating could not be computed."})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func parseSiteInfo(r *http.Request) (roster.SiteInfo, error) {
	var site roster.SiteInfo
	var bad []string

	intField := func(name string, dst *int) {
		v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
		if err != nil {
			bad = append(bad, name)
			return
		}
		*dst = v
	}
	floatField := func(name string, dst *float64) {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name)), 64)
		if err != nil {
			bad = append(bad, name)
			return
		}
		*dst = v
	}

	intField(fieldMaxCapacity, &site.MaxCapacity)
	intField(fieldReserved, &site.ReservedSeats)
	floatField(fieldSeparation, &site.SeparationFeet)
	floatField(fieldSeatWidth, &site.SeatWidthInches)

	if len(bad) > 0 {
		return site, fmt.Errorf("missing or non-numeric fields: %s", strings.Join(bad, ", "))
	}
	if err := site.Validate(); err != nil {
		return site, err
	}
	return site, nil
}

func writeError(w http.ResponseWriter, code int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
