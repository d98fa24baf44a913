// Package server provides the HTTP REST API for the interview coach.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrInterviewNotFound indicates the interview session was not found
type ErrInterviewNotFound struct {
	InterviewID uuid.UUID
}

func (e *ErrInterviewNotFound) Error() string {
	return fmt.Sprintf("interview not found: %s", e.InterviewID)
}

// ErrProfileNotFound indicates no resume profile is stored for the user
type ErrProfileNotFound struct {
	UserID string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("no resume profile for user: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageUnavailable indicates an operation needs the database but the
// server runs without one
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "storage is not configured"
}

// typedError writes an error response with the status mapped by HTTPStatus.
func (s *Server) typedError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInterviewNotFound, *ErrProfileNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
