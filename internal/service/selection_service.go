package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
)

type selectionRepository interface {
	Create(ctx context.Context, selection *models.Selection) error
	List(ctx context.Context) ([]models.Selection, error)
	FindByID(ctx context.Context, id string) (*models.Selection, error)
	ListByEmail(ctx context.Context, email string) ([]models.Selection, error)
	Delete(ctx context.Context, id string) error
}

// CreateSelectionRequest represents payload for adding a class to the cart.
type CreateSelectionRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	ClassID        string  `json:"classId" validate:"required"`
	ClassName      string  `json:"className" validate:"required"`
	Image          string  `json:"image"`
	Price          float64 `json:"price" validate:"gte=0"`
	InstructorName string  `json:"instructorName"`
}

// SelectionService handles cart workflows.
type SelectionService struct {
	repo      selectionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSelectionService creates an instance of SelectionService.
func NewSelectionService(repo selectionRepository, validate *validator.Validate, logger *zap.Logger) *SelectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SelectionService{repo: repo, validator: validate, logger: logger}
}

// Create adds a cart entry for a student.
func (s *SelectionService) Create(ctx context.Context, req CreateSelectionRequest) (*models.Selection, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection payload")
	}

	selection := &models.Selection{
		Email:          req.Email,
		ClassID:        req.ClassID,
		ClassName:      req.ClassName,
		Image:          req.Image,
		Price:          req.Price,
		InstructorName: req.InstructorName,
	}
	if err := s.repo.Create(ctx, selection); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create selection")
	}
	return selection, nil
}

// List returns all selections, unscoped by user.
func (s *SelectionService) List(ctx context.Context) ([]models.Selection, error) {
	selections, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list selections")
	}
	return selections, nil
}

// Get returns one selection by id.
func (s *SelectionService) Get(ctx context.Context, id string) (*models.Selection, error) {
	selection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "selection not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load selection")
	}
	return selection, nil
}

// ListByEmail returns the cart entries for one student.
func (s *SelectionService) ListByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	selections, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list selections")
	}
	return selections, nil
}

// Delete removes a selection from the cart.
func (s *SelectionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete selection")
	}
	return nil
}
