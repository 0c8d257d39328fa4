package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeError maps usecase errors onto HTTP statuses: domain errors are the
// caller's fault, technical errors are ours.
func writeError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, domainStatus(domainErr.Code), errorResponse{
			Error: domainErr.Message,
			Code:  domainErr.Code,
		})
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "internal error",
			Code:  techErr.Code,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeNotAuthorized, usecase.CodeForbidden:
		return http.StatusForbidden
	case usecase.CodeAlreadySold, usecase.CodeDuplicate:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
