package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursecart/coursecart-api/internal/models"
	appErrors "github.com/coursecart/coursecart-api/pkg/errors"
	"github.com/coursecart/coursecart-api/pkg/payment"
)

type mockPaymentRepo struct {
	recorded  []*models.Payment
	recordErr error
	payments  []models.Payment
}

func (m *mockPaymentRepo) Record(ctx context.Context, p *models.Payment) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.recorded = append(m.recorded, p)
	return nil
}

func (m *mockPaymentRepo) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return m.payments, nil
}

type mockGateway struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (m *mockGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastAmount = amount
	m.lastCurrency = currency
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret_abc", Amount: amount, Currency: currency}, nil
}

func TestCreateIntentConvertsPriceToCents(t *testing.T) {
	gateway := &mockGateway{}
	svc := NewPaymentService(&mockPaymentRepo{}, gateway, validator.New(), zap.NewNop())

	resp, err := svc.CreateIntent(context.Background(), CreateIntentRequest{Price: 20})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ClientSecret)
	assert.Equal(t, int64(2000), gateway.lastAmount)
	assert.Equal(t, "usd", gateway.lastCurrency)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockGateway{}, validator.New(), zap.NewNop())

	for _, price := range []float64{0, -5} {
		_, err := svc.CreateIntent(context.Background(), CreateIntentRequest{Price: price})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
	}
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	gateway := &mockGateway{err: errors.New("stripe 5xx")}
	svc := NewPaymentService(&mockPaymentRepo{}, gateway, validator.New(), zap.NewNop())

	_, err := svc.CreateIntent(context.Background(), CreateIntentRequest{Price: 20})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrGateway.Status, appErrors.FromError(err).Status)
}

func TestRecordPayment(t *testing.T) {
	repo := &mockPaymentRepo{}
	svc := NewPaymentService(repo, &mockGateway{}, validator.New(), zap.NewNop())

	record, err := svc.Record(context.Background(), RecordPaymentRequest{
		Email:         "a@x.com",
		TransactionID: "pi_123",
		Amount:        20,
		ClassID:       "c1",
		ClassName:     "Watercolor Basics",
		SelectionID:   "s1",
	})
	require.NoError(t, err)
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, "s1", record.SelectionID)
}

func TestRecordPaymentRequiresSelection(t *testing.T) {
	svc := NewPaymentService(&mockPaymentRepo{}, &mockGateway{}, validator.New(), zap.NewNop())

	_, err := svc.Record(context.Background(), RecordPaymentRequest{
		Email:         "a@x.com",
		TransactionID: "pi_123",
		Amount:        20,
		ClassID:       "c1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}
