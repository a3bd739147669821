package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bikeshop-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) CreateContract(ctx context.Context, c *domain.RentalContract, changedBy string) error {
	args := m.Called(ctx, c, changedBy)
	return args.Error(0)
}

func (m *MockContractService) UpdateContract(ctx context.Context, c *domain.RentalContract, changedBy string) error {
	args := m.Called(ctx, c, changedBy)
	return args.Error(0)
}

func (m *MockContractService) GetContract(ctx context.Context, id int32) (*domain.RentalContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}

func (m *MockContractService) ListContracts(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.RentalContract), args.Get(1).(int32), args.Error(2)
}

func (m *MockContractService) SuggestUnitPrice(ctx context.Context, bikeID int32, unit domain.DurationUnit) (float64, error) {
	args := m.Called(ctx, bikeID, unit)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockContractService) Confirm(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	return m.transition(ctx, id, changedBy)
}

func (m *MockContractService) Start(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	return m.transition(ctx, id, changedBy)
}

func (m *MockContractService) Return(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	return m.transition(ctx, id, changedBy)
}

func (m *MockContractService) Cancel(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	return m.transition(ctx, id, changedBy)
}

func (m *MockContractService) transition(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	args := m.Called(ctx, id, changedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}

func TestContractHandler_Create(t *testing.T) {
	t.Run("Suggests The Unit Price When Absent", func(t *testing.T) {
		svc := new(MockContractService)
		handler := NewContractHandler(svc)

		svc.On("SuggestUnitPrice", mock.Anything, int32(2), domain.DurationUnitDay).Return(20.0, nil)
		svc.On("CreateContract", mock.Anything, mock.MatchedBy(func(c *domain.RentalContract) bool {
			return c.UnitPrice == 20 && c.Deposit == domain.DefaultDeposit
		}), "system").Return(nil)

		body := `{"customer_id":3,"bike_id":2,"start_date":"2024-01-01T00:00:00Z","end_date":"2024-01-03T00:00:00Z","duration_unit":"day"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertNumberOfCalls(t, "SuggestUnitPrice", 1)
		svc.AssertNumberOfCalls(t, "CreateContract", 1)
	})

	t.Run("Keeps An Explicit Zero Unit Price", func(t *testing.T) {
		svc := new(MockContractService)
		handler := NewContractHandler(svc)

		svc.On("CreateContract", mock.Anything, mock.MatchedBy(func(c *domain.RentalContract) bool {
			return c.UnitPrice == 0
		}), "system").Return(nil)

		body := `{"customer_id":3,"bike_id":2,"start_date":"2024-01-01T00:00:00Z","end_date":"2024-01-03T00:00:00Z","duration_unit":"day","unit_price":0}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contracts", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertNotCalled(t, "SuggestUnitPrice", mock.Anything, mock.Anything, mock.Anything)
		svc.AssertNumberOfCalls(t, "CreateContract", 1)
	})
}
