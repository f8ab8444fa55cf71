package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	ListApproved(ctx context.Context, limit int) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error
	UpdateFeedback(ctx context.Context, id, feedback string) error
	UpdateSeats(ctx context.Context, id string, availableSeats, enrolled int) error
}

// CreateClassRequest represents payload for creating a class offering.
type CreateClassRequest struct {
	Name            string  `json:"name" validate:"required"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName" validate:"required"`
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	Price           float64 `json:"price" validate:"gte=0"`
	AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
}

// FeedbackRequest carries admin feedback for a class.
type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// SeatUpdateRequest sets seat and enrollment counters after a payment.
type SeatUpdateRequest struct {
	AvailableSeats int `json:"availableSeats" validate:"gte=0"`
	Enrolled       int `json:"enrolled" validate:"gte=0"`
}

// ClassService handles class offering workflows.
type ClassService struct {
	repo         classRepository
	validator    *validator.Validate
	logger       *zap.Logger
	metrics      *MetricsService
	popularLimit int
}

// NewClassService creates an instance of ClassService. metrics may be nil.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, popularLimit int) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if popularLimit <= 0 {
		popularLimit = 6
	}
	return &ClassService{repo: repo, validator: validate, logger: logger, metrics: metrics, popularLimit: popularLimit}
}

// List returns every class offering.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	start := time.Now()
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	s.metrics.ObserveDBQuery("class_list", time.Since(start))
	return classes, nil
}

// ListByInstructor returns the classes owned by one instructor.
func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	classes, err := s.repo.ListByInstructor(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructor classes")
	}
	return classes, nil
}

// ListApproved returns all approved classes, most enrolled first.
func (s *ClassService) ListApproved(ctx context.Context) ([]models.Class, error) {
	start := time.Now()
	classes, err := s.repo.ListApproved(ctx, 0)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list approved classes")
	}
	s.metrics.ObserveDBQuery("class_list_approved", time.Since(start))
	return classes, nil
}

// ListPopular returns the most enrolled approved classes, capped at the
// configured limit.
func (s *ClassService) ListPopular(ctx context.Context) ([]models.Class, error) {
	start := time.Now()
	classes, err := s.repo.ListApproved(ctx, s.popularLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list popular classes")
	}
	s.metrics.ObserveDBQuery("class_list_popular", time.Since(start))
	return classes, nil
}

// Create adds a new offering. Status is always pending regardless of payload.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class := &models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
		Status:          models.ClassPending,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return class, nil
}

// Approve marks a class as approved.
func (s *ClassService) Approve(ctx context.Context, id string) (*models.Class, error) {
	return s.setStatus(ctx, id, models.ClassApproved)
}

// Deny marks a class as denied.
func (s *ClassService) Deny(ctx context.Context, id string) (*models.Class, error) {
	return s.setStatus(ctx, id, models.ClassDenied)
}

func (s *ClassService) setStatus(ctx context.Context, id string, status models.ClassStatus) (*models.Class, error) {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class status")
	}
	return s.reload(ctx, id)
}

// SetFeedback stores admin feedback on a class.
func (s *ClassService) SetFeedback(ctx context.Context, id string, req FeedbackRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload")
	}
	if err := s.repo.UpdateFeedback(ctx, id, req.Feedback); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to set class feedback")
	}
	return s.reload(ctx, id)
}

// UpdateSeats sets available seats and enrolled counters.
func (s *ClassService) UpdateSeats(ctx context.Context, id string, req SeatUpdateRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid seat payload")
	}
	if err := s.repo.UpdateSeats(ctx, id, req.AvailableSeats, req.Enrolled); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class seats")
	}
	return s.reload(ctx, id)
}

func (s *ClassService) reload(ctx context.Context, id string) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return class, nil
}
