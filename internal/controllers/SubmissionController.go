package controllers

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/services"
)

type SubmissionController struct {
	logger  providers.Logger
	service services.SubmissionServiceInterface
}

func NewSubmissionController(logger providers.Logger, service services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{logger: logger, service: service}
}

// writerID resolves the scoped writer: explicit writer_id parameter when
// present, the authenticated user otherwise.
func writerID(r *http.Request, explicit string) (uuid.UUID, bool) {
	if explicit != "" {
		id, err := uuid.Parse(explicit)
		return id, err == nil
	}
	if user, ok := providers.UserFromContext(r.Context()); ok {
		return user.ID, true
	}
	return uuid.Nil, false
}

// List returns the authenticated writer's submissions, newest first.
func (sc *SubmissionController) List(w http.ResponseWriter, r *http.Request) {
	id, ok := writerID(r, "")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
		return
	}

	subs, err := sc.service.List(r.Context(), id, models.SubmissionFilter{})
	if err != nil {
		sc.logger.Errorf(providers.TypeGet, "listing submissions for %s: %s", id, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// Create appends a new pending submission for the authenticated writer.
func (sc *SubmissionController) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := writerID(r, "")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "unauthorized"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var input services.SubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "bad request"})
		return
	}

	sub, err := sc.service.Create(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// ListScripts is the filterable variant: writer_id, startDate, endDate, and
// searchTitle query parameters narrow the result.
func (sc *SubmissionController) ListScripts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, ok := writerID(r, q.Get("writer_id"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "writer_id is required"})
		return
	}

	filter := models.SubmissionFilter{TitleSearch: q.Get("searchTitle")}
	if raw := q.Get("startDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			filter.Start = &t
		}
	}
	if raw := q.Get("endDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			filter.End = &end
		}
	}

	subs, err := sc.service.List(r.Context(), id, filter)
	if err != nil {
		sc.logger.Errorf(providers.TypeGet, "listing scripts for %s: %s", id, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

type scriptRequest struct {
	WriterID string `json:"writer_id"`
	Title    string `json:"title"`
	DocLink  string `json:"google_doc_link"`
}

// CreateScript is the reduced creation form: title and doc link only, typed
// Original.
func (sc *SubmissionController) CreateScript(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload scriptRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "bad request"})
		return
	}

	id, ok := writerID(r, payload.WriterID)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "writer_id is required"})
		return
	}

	sub, err := sc.service.Create(r.Context(), id, services.SubmissionInput{
		Title:   payload.Title,
		Type:    models.SubmissionTypeOriginal,
		DocLink: payload.DocLink,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}
