package service_test

import (
	"context"
	"time"

	"bikeshop-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockBikeRepo struct {
	mock.Mock
}

func (m *MockBikeRepo) Create(ctx context.Context, bike *domain.Bike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}

func (m *MockBikeRepo) GetByID(ctx context.Context, id int32) (*domain.Bike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepo) GetByReference(ctx context.Context, reference string) (*domain.Bike, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepo) Update(ctx context.Context, bike *domain.Bike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}

func (m *MockBikeRepo) UpdateStatus(ctx context.Context, id int32, status domain.BikeStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBikeRepo) List(ctx context.Context, categoryID int32, status domain.BikeStatus, page, pageSize int32) ([]domain.Bike, int32, error) {
	args := m.Called(ctx, categoryID, status, page, pageSize)
	return args.Get(0).([]domain.Bike), args.Get(1).(int32), args.Error(2)
}

func (m *MockBikeRepo) RefreshRollups(ctx context.Context, bikeID int32) error {
	args := m.Called(ctx, bikeID)
	return args.Error(0)
}

func (m *MockBikeRepo) RefreshAllRollups(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.RentalContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepo) Update(ctx context.Context, contract *domain.RentalContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepo) UpdateWithBikeStatus(ctx context.Context, contract *domain.RentalContract, bikeStatus domain.BikeStatus) error {
	args := m.Called(ctx, contract, bikeStatus)
	return args.Error(0)
}

func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.RentalContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}

func (m *MockContractRepo) GetByNumber(ctx context.Context, number string) (*domain.RentalContract, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}

func (m *MockContractRepo) List(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.RentalContract), args.Get(1).(int32), args.Error(2)
}

func (m *MockContractRepo) ListByBike(ctx context.Context, bikeID int32) ([]domain.RentalContract, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *MockContractRepo) ListByCustomer(ctx context.Context, customerID int32) ([]domain.RentalContract, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *MockContractRepo) ListOngoingEndingBetween(ctx context.Context, from, to time.Time) ([]domain.RentalContract, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

func (m *MockContractRepo) FirstOngoingByBike(ctx context.Context, bikeID int32) (*domain.RentalContract, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}

func (m *MockContractRepo) CountByBike(ctx context.Context, bikeID int32) (int32, error) {
	args := m.Called(ctx, bikeID)
	return args.Get(0).(int32), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepo) List(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

type MockPricingRepo struct {
	mock.Mock
}

func (m *MockPricingRepo) Create(ctx context.Context, rule *domain.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPricingRepo) GetByID(ctx context.Context, id int32) (*domain.PricingRule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PricingRule), args.Error(1)
}

func (m *MockPricingRepo) Update(ctx context.Context, rule *domain.PricingRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPricingRepo) List(ctx context.Context, categoryID int32) ([]domain.PricingRule, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingRule), args.Error(1)
}

type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Record(ctx context.Context, entries []domain.ChangeEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditRepo) ListByEntity(ctx context.Context, entity string, entityID int32) ([]domain.ChangeEntry, error) {
	args := m.Called(ctx, entity, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChangeEntry), args.Error(1)
}

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) DraftInvoice(ctx context.Context, invoiceDate time.Time) (*domain.CustomerInvoice, error) {
	args := m.Called(ctx, invoiceDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerInvoice), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendContractConfirmation(ctx context.Context, email, customerName, bikeName, contractNumber string, start, end time.Time) error {
	args := m.Called(ctx, email, customerName, bikeName, contractNumber, start, end)
	return args.Error(0)
}

func (m *MockEmailService) SendReturnReceipt(ctx context.Context, email, customerName, bikeName, contractNumber string, totalPrice float64) error {
	args := m.Called(ctx, email, customerName, bikeName, contractNumber, totalPrice)
	return args.Error(0)
}

func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, customerName, bikeName, contractNumber string, endDate time.Time) error {
	args := m.Called(ctx, email, customerName, bikeName, contractNumber, endDate)
	return args.Error(0)
}
