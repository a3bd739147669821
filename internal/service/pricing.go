package service

import (
	"context"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/repository"
)

// pricingService manages the per-category price list. The table is advisory
// reporting data: contract unit-price suggestions read the bike's own
// rental price fields instead (the two sources are deliberately not
// unified).
type pricingService struct {
	pricingRepo  repository.PricingRepository
	categoryRepo repository.CategoryRepository
}

func NewPricingService(pricingRepo repository.PricingRepository, categoryRepo repository.CategoryRepository) PricingService {
	return &pricingService{pricingRepo: pricingRepo, categoryRepo: categoryRepo}
}

func (s *pricingService) CreateRule(ctx context.Context, rule *domain.PricingRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	category, err := s.categoryRepo.GetByID(ctx, rule.CategoryID)
	if err != nil {
		return err
	}
	if err := s.pricingRepo.Create(ctx, rule); err != nil {
		return err
	}
	rule.CategoryName = category.Name
	rule.Name = rule.DisplayName()
	return nil
}

func (s *pricingService) GetRule(ctx context.Context, id int32) (*domain.PricingRule, error) {
	rule, err := s.pricingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rule.Name = rule.DisplayName()
	return rule, nil
}

func (s *pricingService) UpdateRule(ctx context.Context, rule *domain.PricingRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	category, err := s.categoryRepo.GetByID(ctx, rule.CategoryID)
	if err != nil {
		return err
	}
	if err := s.pricingRepo.Update(ctx, rule); err != nil {
		return err
	}
	rule.CategoryName = category.Name
	rule.Name = rule.DisplayName()
	return nil
}

func (s *pricingService) ListRules(ctx context.Context, categoryID int32) ([]domain.PricingRule, error) {
	rules, err := s.pricingRepo.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	for i := range rules {
		rules[i].Name = rules[i].DisplayName()
	}
	return rules, nil
}
