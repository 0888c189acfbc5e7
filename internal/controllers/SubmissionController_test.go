package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsd/internal/errs"
	"wsd/internal/models"
	"wsd/internal/providers"
	"wsd/internal/services"
	"wsd/internal/testutil"
)

type fakeSubmissionService struct {
	listed     []models.Submission
	listFilter models.SubmissionFilter
	listWriter uuid.UUID
	created    *models.Submission
	err        error
}

func (f *fakeSubmissionService) List(_ context.Context, writerID uuid.UUID, filter models.SubmissionFilter) ([]models.Submission, error) {
	f.listWriter = writerID
	f.listFilter = filter
	return f.listed, f.err
}

func (f *fakeSubmissionService) Create(_ context.Context, writerID uuid.UUID, input services.SubmissionInput) (*models.Submission, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub := &models.Submission{
		ID:       uuid.New(),
		WriterID: writerID,
		Title:    input.Title,
		Type:     input.Type,
		DocLink:  input.DocLink,
		Status:   models.StatusPending,
	}
	f.created = sub
	return sub, nil
}

func submissionTestRequest(method, url string, body string, user *models.User) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	if user != nil {
		req = req.WithContext(providers.ContextWithUser(req.Context(), user))
	}
	return req
}

func submissionTestUser() *models.User {
	return &models.User{ID: uuid.New(), Username: "writer1", Role: models.RoleWriter}
}

func TestSubmissionList(t *testing.T) {
	user := submissionTestUser()
	svc := &fakeSubmissionService{listed: []models.Submission{
		{ID: uuid.New(), WriterID: user.ID, Title: "Episode 12", Status: models.StatusPending},
	}}
	sc := NewSubmissionController(&testutil.MockLogger{}, svc)

	rr := httptest.NewRecorder()
	sc.List(rr, submissionTestRequest(http.MethodGet, "/api/submissions", "", user))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, user.ID, svc.listWriter)

	var subs []models.Submission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "Episode 12", subs[0].Title)
}

func TestSubmissionList_NoUser(t *testing.T) {
	sc := NewSubmissionController(&testutil.MockLogger{}, &fakeSubmissionService{})

	rr := httptest.NewRecorder()
	sc.List(rr, submissionTestRequest(http.MethodGet, "/api/submissions", "", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSubmissionCreate(t *testing.T) {
	user := submissionTestUser()
	svc := &fakeSubmissionService{}
	sc := NewSubmissionController(&testutil.MockLogger{}, svc)

	body := `{"title": "Episode 12", "type": "Original", "googleDocLink": "https://docs.google.com/d/abc"}`
	rr := httptest.NewRecorder()
	sc.Create(rr, submissionTestRequest(http.MethodPost, "/api/submissions", body, user))

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, user.ID, svc.created.WriterID)

	var sub models.Submission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sub))
	assert.Equal(t, models.StatusPending, sub.Status)
}

func TestSubmissionCreate_MalformedBody(t *testing.T) {
	sc := NewSubmissionController(&testutil.MockLogger{}, &fakeSubmissionService{})

	rr := httptest.NewRecorder()
	sc.Create(rr, submissionTestRequest(http.MethodPost, "/api/submissions", `{"title":`, submissionTestUser()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmissionCreate_ValidationError(t *testing.T) {
	svc := &fakeSubmissionService{err: fmt.Errorf("%w: number is required for Trope submissions", errs.ErrValidation)}
	sc := NewSubmissionController(&testutil.MockLogger{}, svc)

	body := `{"title": "Episode 12", "type": "Trope", "googleDocLink": "https://docs.google.com/d/abc"}`
	rr := httptest.NewRecorder()
	sc.Create(rr, submissionTestRequest(http.MethodPost, "/api/submissions", body, submissionTestUser()))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "number is required")
}

func TestListScripts_ExplicitWriterAndFilter(t *testing.T) {
	svc := &fakeSubmissionService{}
	sc := NewSubmissionController(&testutil.MockLogger{}, svc)
	explicit := uuid.New()

	url := "/api/scripts?writer_id=" + explicit.String() + "&startDate=2025-01-01&endDate=2025-01-31&searchTitle=train"
	rr := httptest.NewRecorder()
	sc.ListScripts(rr, submissionTestRequest(http.MethodGet, url, "", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, explicit, svc.listWriter)
	assert.Equal(t, "train", svc.listFilter.TitleSearch)
	require.NotNil(t, svc.listFilter.Start)
	require.NotNil(t, svc.listFilter.End)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *svc.listFilter.Start)
	// endDate is inclusive: the filter end lands at the last instant of the day
	assert.Equal(t, 31, svc.listFilter.End.Day())
	assert.Equal(t, 23, svc.listFilter.End.Hour())
}

func TestListScripts_BadWriterID(t *testing.T) {
	sc := NewSubmissionController(&testutil.MockLogger{}, &fakeSubmissionService{})

	rr := httptest.NewRecorder()
	sc.ListScripts(rr, submissionTestRequest(http.MethodGet, "/api/scripts?writer_id=not-a-uuid", "", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateScript_DefaultsToOriginal(t *testing.T) {
	user := submissionTestUser()
	svc := &fakeSubmissionService{}
	sc := NewSubmissionController(&testutil.MockLogger{}, svc)

	body := `{"title": "Episode 12", "google_doc_link": "https://docs.google.com/d/abc"}`
	rr := httptest.NewRecorder()
	sc.CreateScript(rr, submissionTestRequest(http.MethodPost, "/api/scripts", body, user))

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, models.SubmissionTypeOriginal, svc.created.Type)
	assert.Equal(t, user.ID, svc.created.WriterID)
}

func TestCreateScript_ExplicitWriterID(t *testing.T) {
	svc := &fakeSubmissionService{}
	sc := NewSubmissionController(&testutil.MockLogger{}, svc)
	explicit := uuid.New()

	body := `{"writer_id": "` + explicit.String() + `", "title": "Episode 12", "google_doc_link": "https://docs.google.com/d/abc"}`
	rr := httptest.NewRecorder()
	sc.CreateScript(rr, submissionTestRequest(http.MethodPost, "/api/scripts", body, nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, svc.created)
	assert.Equal(t, explicit, svc.created.WriterID)
}

func TestCreateScript_NoWriter(t *testing.T) {
	sc := NewSubmissionController(&testutil.MockLogger{}, &fakeSubmissionService{})

	body := `{"title": "Episode 12", "google_doc_link": "https://docs.google.com/d/abc"}`
	rr := httptest.NewRecorder()
	sc.CreateScript(rr, submissionTestRequest(http.MethodPost, "/api/scripts", body, nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
