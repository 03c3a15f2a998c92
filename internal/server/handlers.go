package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/db"
	"github.com/jonathan/skillgap-advisor/internal/observability"
	"github.com/jonathan/skillgap-advisor/internal/server/middleware"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// maxListLimit caps the limit query parameter of GET /analyses
const maxListLimit = 200

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"positions": s.svc.Catalog().Len(),
		"storage":   s.svc.StorageEnabled(),
	})
}

// handleListPositions returns the catalog position IDs
func (s *Server) handleListPositions(w http.ResponseWriter, _ *http.Request) {
	positions := s.svc.Catalog().Positions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"positions": positions,
		"count":     len(positions),
	})
}

// handleGetPosition returns the requirements of one position. Title variants
// such as "Data Scientist" resolve to their catalog entry.
func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	position := catalog.NormalizePosition(r.PathValue("name"))
	profile, ok := s.svc.Catalog().Lookup(position)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "No requirements found for position: "+position)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"position":     position,
		"requirements": profile,
	})
}

// handleCreateAnalysis analyzes a candidate and stores the report
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.failResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failResponse(w, validationError(err))
		return
	}

	var requestedBy *uuid.UUID
	if clientID, err := middleware.GetClientID(r); err == nil {
		requestedBy = &clientID
	}

	id, report, err := s.svc.AnalyzeAndStore(r.Context(), &req, requestedBy)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     id,
		"report": report,
	})
}

// handleGetAnalysis returns a stored analysis
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleAnalysisReportText renders a stored analysis as the plain-text report
func (s *Server) handleAnalysisReportText(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.lookupAnalysis(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, observability.FormatReport(analysis.Report))
}

func (s *Server) lookupAnalysis(w http.ResponseWriter, r *http.Request) (*db.Analysis, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return nil, false
	}

	analysis, err := s.svc.GetAnalysis(r.Context(), id)
	if err != nil {
		s.failResponse(w, err)
		return nil, false
	}
	if analysis == nil {
		s.failResponse(w, &ErrNotFound{Resource: "analysis", ID: id.String()})
		return nil, false
	}
	return analysis, true
}

// handleListAnalyses returns stored analyses with optional filters
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := db.AnalysisFilters{
		ReadinessLevel: query.Get("readiness"),
	}
	if position := query.Get("position"); position != "" {
		filters.TargetPosition = catalog.NormalizePosition(position)
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxListLimit {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
			return
		}
		filters.Limit = limit
	}

	if requestedBy := query.Get("requested_by"); requestedBy != "" {
		id, err := uuid.Parse(requestedBy)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid requested_by format")
			return
		}
		filters.RequestedBy = id
	}

	analyses, err := s.svc.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// handleDeleteAnalysis deletes a stored analysis
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	if err := s.svc.DeleteAnalysis(r.Context(), id); err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleFit ranks every catalog position for a candidate
func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req types.FitRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.failResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failResponse(w, validationError(err))
		return
	}

	fits, err := s.svc.Fit(r.Context(), &req.CandidateProfile)
	if err != nil {
		s.failResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"positions": fits,
	})
}

// decodeJSON reads a bounded JSON body into v
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrValidation{Field: "body", Message: "request body too large"}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}
