package service

import (
	"context"
	"fmt"
	"time"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/logger"
	"bikeshop-backend/internal/repository"
)

type catalogService struct {
	bikeRepo     repository.BikeRepository
	contractRepo repository.ContractRepository
	seqRepo      repository.SequenceRepository
	auditRepo    repository.AuditLogRepository
}

func NewCatalogService(
	bikeRepo repository.BikeRepository,
	contractRepo repository.ContractRepository,
	seqRepo repository.SequenceRepository,
	auditRepo repository.AuditLogRepository,
) CatalogService {
	return &catalogService{
		bikeRepo:     bikeRepo,
		contractRepo: contractRepo,
		seqRepo:      seqRepo,
		auditRepo:    auditRepo,
	}
}

func (s *catalogService) AddBike(ctx context.Context, bike *domain.Bike, changedBy string) error {
	if err := bike.Validate(); err != nil {
		return err
	}

	if bike.Reference == "" || bike.Reference == domain.BikeReferencePending {
		value, err := s.seqRepo.Next(ctx, repository.SequenceBikeReference)
		if err != nil {
			return fmt.Errorf("assign bike reference: %w", err)
		}
		bike.Reference = fmt.Sprintf("BIKE-%05d", value)
	}
	if bike.Status == "" {
		bike.Status = domain.BikeStatusAvailable
	}
	if bike.Year == 0 {
		bike.Year = int32(time.Now().Year())
	}

	if err := s.bikeRepo.Create(ctx, bike); err != nil {
		return err
	}

	cs := newChangeSet(domain.AuditEntityBike, bike.ID, changedBy)
	cs.add("reference", "", bike.Reference)
	cs.add("status", "", string(bike.Status))
	s.recordChanges(ctx, cs)
	return nil
}

func (s *catalogService) GetBike(ctx context.Context, id int32) (*domain.Bike, error) {
	// Derived columns are refreshed before the read so active rental and
	// rental count always reflect the current contract set.
	if err := s.bikeRepo.RefreshRollups(ctx, id); err != nil {
		return nil, err
	}
	return s.bikeRepo.GetByID(ctx, id)
}

func (s *catalogService) UpdateBike(ctx context.Context, bike *domain.Bike, changedBy string) error {
	if err := bike.Validate(); err != nil {
		return err
	}

	existing, err := s.bikeRepo.GetByID(ctx, bike.ID)
	if err != nil {
		return err
	}

	// The reference is immutable after assignment.
	bike.Reference = existing.Reference

	cs := newChangeSet(domain.AuditEntityBike, bike.ID, changedBy)
	cs.addInt("category_id", existing.CategoryID, bike.CategoryID)
	cs.add("brand", existing.Brand, bike.Brand)
	cs.addFloat("purchase_price", existing.PurchasePrice, bike.PurchasePrice)
	cs.addFloat("sale_price", existing.SalePrice, bike.SalePrice)
	cs.add("status", string(existing.Status), string(bike.Status))
	cs.add("available_for_rent",
		fmt.Sprintf("%t", existing.AvailableForRent), fmt.Sprintf("%t", bike.AvailableForRent))

	if err := s.bikeRepo.Update(ctx, bike); err != nil {
		return err
	}
	s.recordChanges(ctx, cs)
	return nil
}

func (s *catalogService) ArchiveBike(ctx context.Context, id int32, changedBy string) error {
	// Bikes are never hard-deleted; archival retires them.
	return s.forceStatus(ctx, id, domain.BikeStatusRetired, changedBy)
}

func (s *catalogService) SetAvailable(ctx context.Context, id int32, changedBy string) error {
	// Administrative override: forces availability regardless of the
	// current status.
	return s.forceStatus(ctx, id, domain.BikeStatusAvailable, changedBy)
}

func (s *catalogService) SetMaintenance(ctx context.Context, id int32, changedBy string) error {
	return s.forceStatus(ctx, id, domain.BikeStatusMaintenance, changedBy)
}

func (s *catalogService) forceStatus(ctx context.Context, id int32, status domain.BikeStatus, changedBy string) error {
	existing, err := s.bikeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bikeRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	cs := newChangeSet(domain.AuditEntityBike, id, changedBy)
	cs.add("status", string(existing.Status), string(status))
	s.recordChanges(ctx, cs)
	return nil
}

func (s *catalogService) ListBikes(ctx context.Context, categoryID int32, status domain.BikeStatus, page, pageSize int32) ([]domain.Bike, int32, error) {
	return s.bikeRepo.List(ctx, categoryID, status, page, pageSize)
}

func (s *catalogService) ListBikeRentals(ctx context.Context, bikeID int32) ([]domain.RentalContract, error) {
	if _, err := s.bikeRepo.GetByID(ctx, bikeID); err != nil {
		return nil, err
	}
	return s.contractRepo.ListByBike(ctx, bikeID)
}

// recordChanges writes the audit entries best-effort: the change log
// collaborator must be notified, but a logging failure does not roll back
// the committed business write.
func (s *catalogService) recordChanges(ctx context.Context, cs *changeSet) {
	if len(cs.entries) == 0 {
		return
	}
	if err := s.auditRepo.Record(ctx, cs.entries); err != nil {
		logger.Error("Failed to record change log entries", "entity", cs.entity, "entity_id", cs.entityID, "error", err)
	}
}
