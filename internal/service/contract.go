package service

import (
	"context"
	"fmt"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/logger"
	"bikeshop-backend/internal/repository"
	"bikeshop-backend/internal/utils"
)

type contractService struct {
	contractRepo repository.ContractRepository
	bikeRepo     repository.BikeRepository
	customerRepo repository.CustomerRepository
	seqRepo      repository.SequenceRepository
	auditRepo    repository.AuditLogRepository
	invoiceSvc   InvoiceService
	emailSvc     EmailService
}

func NewContractService(
	contractRepo repository.ContractRepository,
	bikeRepo repository.BikeRepository,
	customerRepo repository.CustomerRepository,
	seqRepo repository.SequenceRepository,
	auditRepo repository.AuditLogRepository,
	invoiceSvc InvoiceService,
	emailSvc EmailService,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		bikeRepo:     bikeRepo,
		customerRepo: customerRepo,
		seqRepo:      seqRepo,
		auditRepo:    auditRepo,
		invoiceSvc:   invoiceSvc,
		emailSvc:     emailSvc,
	}
}

func (s *contractService) CreateContract(ctx context.Context, c *domain.RentalContract, changedBy string) error {
	if c.Status == "" {
		c.Status = domain.ContractStatusDraft
	}

	// A zero unit price is kept as-is: free contracts are legitimate. The
	// bike-derived suggestion is a separate, explicit operation.
	if _, err := s.bikeRepo.GetByID(ctx, c.BikeID); err != nil {
		return err
	}
	if _, err := s.customerRepo.GetByID(ctx, c.CustomerID); err != nil {
		return err
	}

	utils.Recompute(c)
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Number == "" || c.Number == domain.ContractNumberPending {
		value, err := s.seqRepo.Next(ctx, repository.SequenceContractNumber)
		if err != nil {
			return fmt.Errorf("assign contract number: %w", err)
		}
		c.Number = fmt.Sprintf("RENT-%05d", value)
	}

	if err := s.contractRepo.Create(ctx, c); err != nil {
		return err
	}
	s.refreshBike(ctx, c.BikeID)

	cs := newChangeSet(domain.AuditEntityContract, c.ID, changedBy)
	cs.add("number", "", c.Number)
	cs.add("status", "", string(c.Status))
	s.recordChanges(ctx, cs)
	return nil
}

func (s *contractService) UpdateContract(ctx context.Context, c *domain.RentalContract, changedBy string) error {
	existing, err := s.contractRepo.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}

	// The contract number is immutable after assignment.
	c.Number = existing.Number
	// Status moves only through the confirm/start/return/cancel actions,
	// which carry the bike and invoice side effects a bare update would skip.
	if c.Status != "" && c.Status != existing.Status {
		return &domain.ValidationError{Field: "status", Reason: "status cannot be changed here; use the confirm, start, return or cancel actions"}
	}
	c.Status = existing.Status

	utils.Recompute(c)
	if err := c.Validate(); err != nil {
		return err
	}

	cs := newChangeSet(domain.AuditEntityContract, c.ID, changedBy)
	cs.addInt("customer_id", existing.CustomerID, c.CustomerID)
	cs.addInt("bike_id", existing.BikeID, c.BikeID)
	cs.add("start_date", formatTime(existing.StartDate), formatTime(c.StartDate))
	cs.add("end_date", formatTime(existing.EndDate), formatTime(c.EndDate))

	if err := s.contractRepo.Update(ctx, c); err != nil {
		return err
	}
	s.refreshBike(ctx, c.BikeID)
	if c.BikeID != existing.BikeID {
		s.refreshBike(ctx, existing.BikeID)
	}
	s.recordChanges(ctx, cs)
	return nil
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.RentalContract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

func (s *contractService) ListContracts(ctx context.Context, status domain.ContractStatus, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	return s.contractRepo.List(ctx, status, page, pageSize)
}

func (s *contractService) SuggestUnitPrice(ctx context.Context, bikeID int32, unit domain.DurationUnit) (float64, error) {
	if !unit.Valid() {
		return 0, &domain.ValidationError{Field: "duration_unit", Reason: "must be one of hour, day, week, month"}
	}
	bike, err := s.bikeRepo.GetByID(ctx, bikeID)
	if err != nil {
		return 0, err
	}
	return utils.SuggestUnitPrice(bike, unit), nil
}

func (s *contractService) Confirm(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, &domain.ValidationError{Field: "status", Reason: "contract is already " + string(c.Status)}
	}
	// Confirming from a non-draft state is unusual but not rejected.
	if c.Status != domain.ContractStatusDraft {
		logger.Warn("Confirming contract from non-draft state", "contract", c.Number, "status", c.Status)
	}

	prev := c.Status
	c.Status = domain.ContractStatusConfirmed
	utils.Recompute(c)
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.auditStatus(ctx, c, prev, changedBy)
	s.notifyConfirmation(ctx, c)
	return c, nil
}

func (s *contractService) Start(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, &domain.ValidationError{Field: "status", Reason: "contract is already " + string(c.Status)}
	}

	prev := c.Status
	c.Status = domain.ContractStatusOngoing
	utils.Recompute(c)
	// Contract and bike move together in one transaction.
	if err := s.contractRepo.UpdateWithBikeStatus(ctx, c, domain.BikeStatusRented); err != nil {
		return nil, err
	}
	s.auditStatus(ctx, c, prev, changedBy)
	return c, nil
}

func (s *contractService) Return(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, &domain.ValidationError{Field: "status", Reason: "contract is already " + string(c.Status)}
	}

	prev := c.Status
	now := time.Now()
	c.Status = domain.ContractStatusReturned
	c.ActualReturnDate = &now
	utils.Recompute(c)
	if err := s.contractRepo.UpdateWithBikeStatus(ctx, c, domain.BikeStatusAvailable); err != nil {
		return nil, err
	}
	s.auditStatus(ctx, c, prev, changedBy)

	// Follow-on invoice drafting. The contract is already committed, so a
	// drafting failure is surfaced in the logs rather than rolling back the
	// return.
	if _, err := s.invoiceSvc.DraftInvoice(ctx, now); err != nil {
		logger.Error("Failed to draft invoice for returned contract", "contract", c.Number, "error", err)
	}

	s.notifyReturn(ctx, c)
	return c, nil
}

func (s *contractService) Cancel(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() {
		return nil, &domain.ValidationError{Field: "status", Reason: "contract is already " + string(c.Status)}
	}

	bike, err := s.bikeRepo.GetByID(ctx, c.BikeID)
	if err != nil {
		return nil, err
	}

	prev := c.Status
	c.Status = domain.ContractStatusCancelled
	utils.Recompute(c)
	if bike.Status == domain.BikeStatusRented {
		// Cancelling an ongoing rental frees the bike.
		err = s.contractRepo.UpdateWithBikeStatus(ctx, c, domain.BikeStatusAvailable)
	} else {
		err = s.contractRepo.Update(ctx, c)
	}
	if err != nil {
		return nil, err
	}
	s.refreshBike(ctx, c.BikeID)
	s.auditStatus(ctx, c, prev, changedBy)
	return c, nil
}

func (s *contractService) auditStatus(ctx context.Context, c *domain.RentalContract, prev domain.ContractStatus, changedBy string) {
	cs := newChangeSet(domain.AuditEntityContract, c.ID, changedBy)
	cs.add("status", string(prev), string(c.Status))
	if c.ActualReturnDate != nil {
		cs.add("actual_return_date", "", formatTime(*c.ActualReturnDate))
	}
	s.recordChanges(ctx, cs)
}

func (s *contractService) recordChanges(ctx context.Context, cs *changeSet) {
	if len(cs.entries) == 0 {
		return
	}
	if err := s.auditRepo.Record(ctx, cs.entries); err != nil {
		logger.Error("Failed to record change log entries", "entity", cs.entity, "entity_id", cs.entityID, "error", err)
	}
}

func (s *contractService) refreshBike(ctx context.Context, bikeID int32) {
	if err := s.bikeRepo.RefreshRollups(ctx, bikeID); err != nil {
		logger.Error("Failed to refresh bike rollups", "bike_id", bikeID, "error", err)
	}
}

func (s *contractService) notifyConfirmation(ctx context.Context, c *domain.RentalContract) {
	customer, bike := s.lookupParties(ctx, c)
	if customer == nil || bike == nil || customer.Email == "" {
		return
	}
	if err := s.emailSvc.SendContractConfirmation(ctx, customer.Email, customer.Name, bike.Name, c.Number, c.StartDate, c.EndDate); err != nil {
		logger.Error("Failed to send confirmation email", "contract", c.Number, "error", err)
	}
}

func (s *contractService) notifyReturn(ctx context.Context, c *domain.RentalContract) {
	customer, bike := s.lookupParties(ctx, c)
	if customer == nil || bike == nil || customer.Email == "" {
		return
	}
	if err := s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.Name, bike.Name, c.Number, c.TotalPrice); err != nil {
		logger.Error("Failed to send return receipt email", "contract", c.Number, "error", err)
	}
}

func (s *contractService) lookupParties(ctx context.Context, c *domain.RentalContract) (*domain.Customer, *domain.Bike) {
	customer, err := s.customerRepo.GetByID(ctx, c.CustomerID)
	if err != nil {
		logger.Warn("Customer lookup failed for notification", "contract", c.Number, "error", err)
		return nil, nil
	}
	bike, err := s.bikeRepo.GetByID(ctx, c.BikeID)
	if err != nil {
		logger.Warn("Bike lookup failed for notification", "contract", c.Number, "error", err)
		return nil, nil
	}
	return customer, bike
}
