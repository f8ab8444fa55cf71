package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
)

type mockSelectionRepo struct {
	byID map[string]*models.Selection
}

func newMockSelectionRepo() *mockSelectionRepo {
	return &mockSelectionRepo{byID: make(map[string]*models.Selection)}
}

func (m *mockSelectionRepo) Create(ctx context.Context, selection *models.Selection) error {
	if selection.ID == "" {
		selection.ID = "generated"
	}
	copy := *selection
	m.byID[selection.ID] = &copy
	return nil
}

func (m *mockSelectionRepo) List(ctx context.Context) ([]models.Selection, error) {
	var out []models.Selection
	for _, s := range m.byID {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSelectionRepo) FindByID(ctx context.Context, id string) (*models.Selection, error) {
	if s, ok := m.byID[id]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockSelectionRepo) ListByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	var out []models.Selection
	for _, s := range m.byID {
		if s.Email == email {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSelectionRepo) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func TestCreateSelection(t *testing.T) {
	repo := newMockSelectionRepo()
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	selection, err := svc.Create(context.Background(), CreateSelectionRequest{
		Email:     "a@x.com",
		ClassID:   "c1",
		ClassName: "Watercolor Basics",
		Price:     20,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, selection.ID)
	assert.Len(t, repo.byID, 1)
}

func TestCreateSelectionAllowsDuplicates(t *testing.T) {
	repo := newMockSelectionRepo()
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	req := CreateSelectionRequest{Email: "a@x.com", ClassID: "c1", ClassName: "Watercolor Basics"}
	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	repo.byID["other"] = &models.Selection{ID: "other", Email: first.Email, ClassID: first.ClassID}

	selections, err := svc.ListByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, selections, 2)
}

func TestGetSelectionNotFound(t *testing.T) {
	svc := NewSelectionService(newMockSelectionRepo(), validator.New(), zap.NewNop())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestDeleteSelectionRemovesEntry(t *testing.T) {
	repo := newMockSelectionRepo()
	repo.byID["s1"] = &models.Selection{ID: "s1", Email: "a@x.com"}
	svc := NewSelectionService(repo, validator.New(), zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), "s1"))
	assert.Empty(t, repo.byID)
}
