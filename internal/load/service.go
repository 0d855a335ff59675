package load

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("load not found")

// Period is a settlement period window. The zero value means all-time.
type Period struct {
	Start time.Time
	End   time.Time
}

func (p Period) IsZero() bool { return p.Start.IsZero() && p.End.IsZero() }

// Contains reports whether t falls within [Start, End] inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=load
type Repository interface {
	GetLoad(ctx context.Context, id uuid.UUID) (*Load, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Load, error)

	// ListSettleable returns assigned loads in a settleable status for the
	// company, optionally narrowed to one driver and a delivery period.
	ListSettleable(ctx context.Context, companyID uuid.UUID, driverID *uuid.UUID, period Period) ([]*Load, error)

	// ClaimedLoadIDs returns the ids of every load referenced by a settlement
	// whose approval status is not rejected. The result must be queried fresh
	// on every call; callers must not cache it across batch runs.
	ClaimedLoadIDs(ctx context.Context, companyID uuid.UUID, driverID *uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EligibleParams struct {
	CompanyID uuid.UUID
	DriverID  *uuid.UUID
	Period    Period
}

// DriverLoads groups one driver's eligible loads.
type DriverLoads struct {
	DriverID uuid.UUID
	Loads    []*Load
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Load, error) {
	return s.repo.GetLoad(ctx, id)
}

func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*Load, error) {
	return s.repo.ListByIDs(ctx, ids)
}

// Eligible returns the loads that may be settled, grouped by driver.
//
// A load qualifies when its status is settleable, it is either flagged ready
// for settlement or already billed, and it is not claimed by any non-rejected
// settlement. The claimed set is re-read on every call so that a rejection
// immediately releases its loads back into the pool.
func (s *Service) Eligible(ctx context.Context, params EligibleParams) ([]DriverLoads, error) {
	loads, err := s.repo.ListSettleable(ctx, params.CompanyID, params.DriverID, params.Period)
	if err != nil {
		return nil, err
	}

	claimed, err := s.repo.ClaimedLoadIDs(ctx, params.CompanyID, params.DriverID)
	if err != nil {
		return nil, err
	}

	byDriver := make(map[uuid.UUID][]*Load)

	for _, l := range loads {
		if l.DriverID == nil {
			continue
		}

		if !l.Status.Settleable() {
			continue
		}

		if !l.ReadyForSettlement && !l.Status.Billed() {
			continue
		}

		if _, taken := claimed[l.ID]; taken {
			continue
		}

		byDriver[*l.DriverID] = append(byDriver[*l.DriverID], l)
	}

	grouped := make([]DriverLoads, 0, len(byDriver))
	for driverID, driverLoads := range byDriver {
		sort.Slice(driverLoads, func(i, j int) bool {
			return lessByDelivery(driverLoads[i], driverLoads[j])
		})

		grouped = append(grouped, DriverLoads{DriverID: driverID, Loads: driverLoads})
	}

	sort.Slice(grouped, func(i, j int) bool {
		return grouped[i].DriverID.String() < grouped[j].DriverID.String()
	})

	return grouped, nil
}

func lessByDelivery(a, b *Load) bool {
	switch {
	case a.DeliveredAt != nil && b.DeliveredAt != nil && !a.DeliveredAt.Equal(*b.DeliveredAt):
		return a.DeliveredAt.Before(*b.DeliveredAt)
	case a.DeliveredAt == nil && b.DeliveredAt != nil:
		return false
	case a.DeliveredAt != nil && b.DeliveredAt == nil:
		return true
	}

	return a.CreatedAt.Before(b.CreatedAt)
}
