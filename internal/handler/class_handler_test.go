package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecart/coursecart-api/internal/models"
	"github.com/coursecart/coursecart-api/internal/service"
)

type fakeClassRepo struct {
	classes map[string]*models.Class
	order   []string
}

func newFakeClassRepo(classes ...*models.Class) *fakeClassRepo {
	repo := &fakeClassRepo{classes: map[string]*models.Class{}}
	for _, class := range classes {
		repo.classes[class.ID] = class
		repo.order = append(repo.order, class.ID)
	}
	return repo
}

func (f *fakeClassRepo) List(_ context.Context) ([]models.Class, error) {
	out := make([]models.Class, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.classes[id])
	}
	return out, nil
}

func (f *fakeClassRepo) ListByInstructor(_ context.Context, email string) ([]models.Class, error) {
	var out []models.Class
	for _, id := range f.order {
		if f.classes[id].InstructorEmail == email {
			out = append(out, *f.classes[id])
		}
	}
	return out, nil
}

func (f *fakeClassRepo) ListApproved(_ context.Context, limit int) ([]models.Class, error) {
	var out []models.Class
	for _, id := range f.order {
		if f.classes[id].Status == models.ClassApproved {
			out = append(out, *f.classes[id])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeClassRepo) FindByID(_ context.Context, id string) (*models.Class, error) {
	if class, ok := f.classes[id]; ok {
		return class, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeClassRepo) Create(_ context.Context, class *models.Class) error {
	class.ID = "c-new"
	f.classes[class.ID] = class
	f.order = append(f.order, class.ID)
	return nil
}

func (f *fakeClassRepo) UpdateStatus(_ context.Context, id string, status models.ClassStatus) error {
	class, ok := f.classes[id]
	if !ok {
		return sql.ErrNoRows
	}
	class.Status = status
	return nil
}

func (f *fakeClassRepo) UpdateFeedback(_ context.Context, id, feedback string) error {
	// Mirrors the SQL layer: an UPDATE touching zero rows is not an error.
	if class, ok := f.classes[id]; ok {
		class.Feedback = &feedback
	}
	return nil
}

func (f *fakeClassRepo) UpdateSeats(_ context.Context, id string, availableSeats, enrolled int) error {
	class, ok := f.classes[id]
	if !ok {
		return sql.ErrNoRows
	}
	class.AvailableSeats = availableSeats
	class.Enrolled = enrolled
	return nil
}

func newClassRouter(repo *fakeClassRepo, popularLimit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewClassHandler(service.NewClassService(repo, nil, nil, nil, popularLimit))

	r := gin.New()
	r.GET("/classes", h.List)
	r.GET("/classes/approved", h.ListApproved)
	r.GET("/classes/popular", h.ListPopular)
	r.GET("/classes/instructor/:email", h.ListByInstructor)
	r.POST("/classes", h.Create)
	r.PATCH("/classes/:id/approve", h.Approve)
	r.PATCH("/classes/:id/deny", h.Deny)
	r.PUT("/classes/:id/feedback", h.SetFeedback)
	return r
}

func approvedClass(id string, enrolled int) *models.Class {
	return &models.Class{
		ID:              id,
		Name:            "Class " + id,
		InstructorEmail: "i@x.com",
		Status:          models.ClassApproved,
		Enrolled:        enrolled,
	}
}

func TestListPopularCapsAtLimit(t *testing.T) {
	repo := newFakeClassRepo(
		approvedClass("c1", 50), approvedClass("c2", 40), approvedClass("c3", 30),
		approvedClass("c4", 20), approvedClass("c5", 10), approvedClass("c6", 5),
		approvedClass("c7", 1),
	)
	r := newClassRouter(repo, 6)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/classes/popular", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out []models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 6)
}

func TestListApprovedExcludesPending(t *testing.T) {
	pending := &models.Class{ID: "p1", Status: models.ClassPending, InstructorEmail: "i@x.com"}
	repo := newFakeClassRepo(approvedClass("c1", 3), pending)
	r := newClassRouter(repo, 6)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/classes/approved", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out []models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0].ID)
}

func TestCreateClassStartsPending(t *testing.T) {
	repo := newFakeClassRepo()
	r := newClassRouter(repo, 6)

	w := httptest.NewRecorder()
	body := `{"name":"Guitar","instructorName":"Ina","instructorEmail":"i@x.com","price":20,"availableSeats":10,"status":"approved"}`
	req, _ := http.NewRequest(http.MethodPost, "/classes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var out models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, models.ClassPending, out.Status)
}

func TestApproveThenDenyUpdatesStatus(t *testing.T) {
	repo := newFakeClassRepo(&models.Class{ID: "c1", Status: models.ClassPending, InstructorEmail: "i@x.com"})
	r := newClassRouter(repo, 6)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/classes/c1/approve", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ClassApproved, repo.classes["c1"].Status)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPatch, "/classes/c1/deny", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ClassDenied, repo.classes["c1"].Status)
}

func TestSetFeedbackUnknownClassReturns404(t *testing.T) {
	r := newClassRouter(newFakeClassRepo(), 6)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/classes/ghost/feedback", strings.NewReader(`{"feedback":"needs work"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
