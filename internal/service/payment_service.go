package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/payment"
)

type paymentRepository interface {
	Record(ctx context.Context, payment *models.Payment) error
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// intentCreator is the gateway surface the service needs.
type intentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error)
}

// CreateIntentRequest asks the gateway to open a charge for a class price.
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// CreateIntentResponse returns the client-side confirmation secret.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest persists a completed charge.
type RecordPaymentRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	TransactionID string  `json:"transactionId" validate:"required"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	ClassID       string  `json:"classId" validate:"required"`
	ClassName     string  `json:"className"`
	SelectionID   string  `json:"selectionId" validate:"required"`
}

// PaymentService handles gateway intents and payment records.
type PaymentService struct {
	repo      paymentRepository
	gateway   intentCreator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPaymentService creates an instance of PaymentService.
func NewPaymentService(repo paymentRepository, gateway intentCreator, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PaymentService{repo: repo, gateway: gateway, validator: validate, logger: logger}
}

// CreateIntent opens a card payment intent for price in USD. Amount is the
// price converted to integer cents.
func (s *PaymentService) CreateIntent(ctx context.Context, req CreateIntentRequest) (*CreateIntentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid intent payload")
	}

	amount := int64(math.Round(req.Price * 100))
	intent, err := s.gateway.CreateIntent(ctx, amount, "usd")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrGateway.Code, appErrors.ErrGateway.Status, appErrors.ErrGateway.Message)
	}

	return &CreateIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// Record stores a payment and removes the paid selection atomically.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*models.Payment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}

	record := &models.Payment{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		ClassID:       req.ClassID,
		ClassName:     req.ClassName,
		SelectionID:   req.SelectionID,
	}
	if err := s.repo.Record(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
	}

	s.logger.Info("payment recorded",
		zap.String("email", record.Email),
		zap.String("selection_id", record.SelectionID),
	)
	return record, nil
}

// ListByEmail returns one user's payments, most recent first.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	payments, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	return payments, nil
}
