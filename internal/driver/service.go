package driver

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("driver not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=driver
type Repository interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*Driver, error)
	ListActive(ctx context.Context, companyID uuid.UUID) ([]*Driver, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Driver, error) {
	return s.repo.GetDriver(ctx, id)
}

// ListActive returns the company's active drivers in a stable order.
func (s *Service) ListActive(ctx context.Context, companyID uuid.UUID) ([]*Driver, error) {
	return s.repo.ListActive(ctx, companyID)
}
