package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/careergpt/internal/db"
	"github.com/jonathan/careergpt/internal/extraction"
	"github.com/jonathan/careergpt/internal/ingestion"
	"github.com/jonathan/careergpt/internal/roles"
	"github.com/jonathan/careergpt/internal/server/middleware"
	"github.com/jonathan/careergpt/internal/types"
)

// ---------------------------------------------------------------------
// Resume Handlers
// ---------------------------------------------------------------------

// ParseResumeRequest accepts either a URL to fetch or raw resume text.
type ParseResumeRequest struct {
	UserID    string `json:"user_id,omitempty"`
	ResumeURL string `json:"resume_url,omitempty" validate:"omitempty,url"`
	Text      string `json:"text,omitempty"`
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	if r.ResumeURL == "" && r.Text == "" {
		return &ErrValidation{Field: "resume_url", Message: "either resume_url or text is required"}
	}
	if r.ResumeURL != "" && r.Text != "" {
		return &ErrValidation{Field: "resume_url", Message: "resume_url and text are mutually exclusive"}
	}
	return asValidationError(validator.New().Struct(r))
}

// asValidationError converts validator field errors into the API's typed
// validation error so HTTPStatus maps them to 400 rather than 500.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		first := fieldErrors[0]
		return &ErrValidation{
			Field:   strings.ToLower(first.Field()),
			Message: "failed validation on '" + first.Tag() + "'",
		}
	}
	return err
}

// ParseResumeResponse carries the extracted profile and derived signal.
type ParseResumeResponse struct {
	Profile    *types.ResumeProfile `json:"profile"`
	Role       string               `json:"role"`
	Confidence float64              `json:"confidence"`
	Summary    string               `json:"summary"`
	Stored     bool                 `json:"stored"`
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, err)
		return
	}

	text := req.Text
	if req.ResumeURL != "" {
		resume, err := ingestion.FetchResume(r.Context(), req.ResumeURL, s.fetchOpts)
		if err != nil {
			// An unreachable resume is not a server failure; the client
			// gets an empty profile and the standard guidance summary.
			log.Printf("resume fetch failed: %v", err)
			text = ""
		} else {
			text = resume.Text
		}
	}

	profile := extraction.Extract(text)
	inference := roles.Infer(profile)

	resp := ParseResumeResponse{
		Profile:    profile,
		Role:       inference.Role,
		Confidence: inference.Confidence,
		Summary:    extraction.Summary(profile),
	}

	// Persist the profile when storage and a user are both available
	userID := s.resolveUserID(r, req.UserID)
	if s.db != nil && userID != "" && !profile.IsEmpty() {
		if err := s.db.SaveProfile(r.Context(), userID, profile); err != nil {
			log.Printf("failed to store profile for %s: %v", userID, err)
		} else {
			resp.Stored = true
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	userID := s.resolveUserID(r, r.PathValue("user_id"))
	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.typedError(w, &ErrProfileNotFound{UserID: userID})
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	userID := s.resolveUserID(r, r.PathValue("user_id"))
	if err := s.db.DeleteProfile(r.Context(), userID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

// CreateInterviewRequest starts a new persisted interview session.
type CreateInterviewRequest struct {
	UserID        string `json:"user_id,omitempty"`
	InterviewType string `json:"interview_type,omitempty"`
	Role          string `json:"role,omitempty"`
}

func (s *Server) handleCreateInterview(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	var req CreateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := s.resolveUserID(r, req.UserID)
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	itype := string(types.ParseInterviewType(req.InterviewType))
	id, err := s.db.CreateInterview(r.Context(), userID, itype, req.Role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":             id.String(),
		"interview_type": itype,
	})
}

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	filters := db.InterviewFilters{
		UserID:        s.resolveUserID(r, r.URL.Query().Get("user_id")),
		InterviewType: r.URL.Query().Get("type"),
		Status:        r.URL.Query().Get("status"),
	}

	interviews, err := s.db.ListInterviews(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"interviews": interviews})
}

// RespondRequest carries one conversation turn. History and profile are
// caller-supplied so the endpoint works without storage; when an
// interview_id is present the turn is also persisted.
type RespondRequest struct {
	UserID        string               `json:"user_id,omitempty"`
	InterviewID   string               `json:"interview_id,omitempty" validate:"omitempty,uuid"`
	InterviewType string               `json:"interview_type,omitempty"`
	Role          string               `json:"role,omitempty"`
	Message       string               `json:"message,omitempty"`
	History       []types.Message      `json:"history,omitempty"`
	Profile       *types.ResumeProfile `json:"profile,omitempty"`
}

// Validate validates the RespondRequest using the validator.
func (r *RespondRequest) Validate() error {
	return asValidationError(validator.New().Struct(r))
}

// RespondResponse is the interviewer's reply for one turn.
type RespondResponse struct {
	Utterance string `json:"utterance"`
	Turn      int    `json:"turn"`
}

func (s *Server) handleRespond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.typedError(w, err)
		return
	}

	userID := s.resolveUserID(r, req.UserID)

	// Fall back to the stored profile when the request carries none
	profile := req.Profile
	if profile == nil && s.db != nil && userID != "" {
		stored, err := s.db.GetProfile(r.Context(), userID)
		if err != nil {
			log.Printf("failed to load profile for %s: %v", userID, err)
		} else {
			profile = stored
		}
	}

	role := req.Role
	if role == "" && profile != nil {
		role = roles.Infer(profile).Role
	}

	turn := &types.TurnContext{
		Role:              role,
		InterviewType:     types.ParseInterviewType(req.InterviewType),
		History:           req.History,
		LatestUserMessage: req.Message,
		Profile:           profile,
	}

	utterance := s.interviewer.NextUtterance(r.Context(), turn)

	// Persist the exchange when the turn belongs to a stored interview
	if req.InterviewID != "" && s.db != nil {
		interviewID, err := uuid.Parse(req.InterviewID)
		if err == nil {
			if req.Message != "" {
				if err := s.db.SaveTurn(r.Context(), interviewID, string(types.SpeakerUser), req.Message); err != nil {
					log.Printf("failed to save user turn: %v", err)
				}
			}
			if err := s.db.SaveTurn(r.Context(), interviewID, string(types.SpeakerInterviewer), utterance); err != nil {
				log.Printf("failed to save interviewer turn: %v", err)
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, RespondResponse{
		Utterance: utterance,
		Turn:      turn.Turn(),
	})
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	iv, err := s.db.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if iv == nil {
		s.typedError(w, &ErrInterviewNotFound{InterviewID: interviewID})
		return
	}

	s.jsonResponse(w, http.StatusOK, iv)
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	iv, err := s.db.GetInterview(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if iv == nil {
		s.typedError(w, &ErrInterviewNotFound{InterviewID: interviewID})
		return
	}

	turns, err := s.db.GetTranscript(r.Context(), interviewID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"interview": iv,
		"turns":     turns,
	})
}

func (s *Server) handleCompleteInterview(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	if err := s.db.CompleteInterview(r.Context(), interviewID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "completed"})
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.typedError(w, &ErrStorageUnavailable{})
		return
	}

	interviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid interview ID")
		return
	}

	if err := s.db.DeleteInterview(r.Context(), interviewID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.typedError(w, &ErrInterviewNotFound{InterviewID: interviewID})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// resolveUserID prefers the authenticated identity over caller-supplied IDs.
func (s *Server) resolveUserID(r *http.Request, fallback string) string {
	if userID, err := middleware.GetUserID(r); err == nil {
		return userID
	}
	return fallback
}
