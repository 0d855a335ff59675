package deduction

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=deduction
type Repository interface {
	// ListActive returns the company's active rules that apply to the given
	// driver type: type-scoped matches plus company-wide rules with no
	// driver type. Ordered by rule creation, newest first.
	ListActive(ctx context.Context, companyID uuid.UUID, driverType string) ([]*Rule, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ActiveRules returns the rules applicable to a driver of the given type.
func (s *Service) ActiveRules(ctx context.Context, companyID uuid.UUID, driverType string) ([]*Rule, error) {
	return s.repo.ListActive(ctx, companyID, driverType)
}
