package load_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openfreight/linehaul/internal/load"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestService_Eligible(t *testing.T) {
	companyID := uuid.New()
	driverA := uuid.New()
	driverB := uuid.New()

	delivered := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	makeLoad := func(driverID uuid.UUID, status load.Status, ready bool, deliveredAt time.Time) *load.Load {
		return &load.Load{
			ID:                 uuid.New(),
			CompanyID:          companyID,
			DriverID:           &driverID,
			Status:             status,
			ReadyForSettlement: ready,
			DeliveredAt:        timePtr(deliveredAt),
		}
	}

	type testCase struct {
		name      string
		params    load.EligibleParams
		setupMock func(m *load.MockRepository) (wantIDs map[uuid.UUID][]uuid.UUID)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "FiltersUnsettleableStatuses",
			params: load.EligibleParams{CompanyID: companyID},
			setupMock: func(m *load.MockRepository) map[uuid.UUID][]uuid.UUID {
				good := makeLoad(driverA, load.StatusDelivered, true, delivered)
				inTransit := makeLoad(driverA, load.StatusInTransit, true, delivered)
				cancelled := makeLoad(driverA, load.StatusCancelled, true, delivered)

				m.EXPECT().
					ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
					Return([]*load.Load{good, inTransit, cancelled}, nil)
				m.EXPECT().
					ClaimedLoadIDs(gomock.Any(), companyID, nil).
					Return(map[uuid.UUID]struct{}{}, nil)

				return map[uuid.UUID][]uuid.UUID{driverA: {good.ID}}
			},
		},
		{
			name:   "NotReadyExcludedUnlessBilled",
			params: load.EligibleParams{CompanyID: companyID},
			setupMock: func(m *load.MockRepository) map[uuid.UUID][]uuid.UUID {
				notReady := makeLoad(driverA, load.StatusDelivered, false, delivered)
				invoiced := makeLoad(driverA, load.StatusInvoiced, false, delivered)
				paid := makeLoad(driverA, load.StatusPaid, false, delivered.Add(time.Hour))

				m.EXPECT().
					ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
					Return([]*load.Load{notReady, invoiced, paid}, nil)
				m.EXPECT().
					ClaimedLoadIDs(gomock.Any(), companyID, nil).
					Return(map[uuid.UUID]struct{}{}, nil)

				return map[uuid.UUID][]uuid.UUID{driverA: {invoiced.ID, paid.ID}}
			},
		},
		{
			name:   "ClaimedLoadsExcluded",
			params: load.EligibleParams{CompanyID: companyID},
			setupMock: func(m *load.MockRepository) map[uuid.UUID][]uuid.UUID {
				claimed := makeLoad(driverA, load.StatusDelivered, true, delivered)
				free := makeLoad(driverA, load.StatusDelivered, true, delivered.Add(time.Hour))

				m.EXPECT().
					ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
					Return([]*load.Load{claimed, free}, nil)
				m.EXPECT().
					ClaimedLoadIDs(gomock.Any(), companyID, nil).
					Return(map[uuid.UUID]struct{}{claimed.ID: {}}, nil)

				return map[uuid.UUID][]uuid.UUID{driverA: {free.ID}}
			},
		},
		{
			name:   "UnassignedLoadsSkipped",
			params: load.EligibleParams{CompanyID: companyID},
			setupMock: func(m *load.MockRepository) map[uuid.UUID][]uuid.UUID {
				unassigned := makeLoad(driverA, load.StatusDelivered, true, delivered)
				unassigned.DriverID = nil

				m.EXPECT().
					ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
					Return([]*load.Load{unassigned}, nil)
				m.EXPECT().
					ClaimedLoadIDs(gomock.Any(), companyID, nil).
					Return(map[uuid.UUID]struct{}{}, nil)

				return map[uuid.UUID][]uuid.UUID{}
			},
		},
		{
			name:   "GroupsByDriverSortedByDelivery",
			params: load.EligibleParams{CompanyID: companyID},
			setupMock: func(m *load.MockRepository) map[uuid.UUID][]uuid.UUID {
				late := makeLoad(driverA, load.StatusDelivered, true, delivered.Add(48*time.Hour))
				early := makeLoad(driverA, load.StatusDelivered, true, delivered)
				other := makeLoad(driverB, load.StatusDelivered, true, delivered)

				m.EXPECT().
					ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
					Return([]*load.Load{late, other, early}, nil)
				m.EXPECT().
					ClaimedLoadIDs(gomock.Any(), companyID, nil).
					Return(map[uuid.UUID]struct{}{}, nil)

				return map[uuid.UUID][]uuid.UUID{
					driverA: {early.ID, late.ID},
					driverB: {other.ID},
				}
			},
		},
		{
			name:   "RepoError",
			params: load.EligibleParams{CompanyID: companyID},
			setupMock: func(m *load.MockRepository) map[uuid.UUID][]uuid.UUID {
				m.EXPECT().
					ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
					Return(nil, errors.New("db error"))

				return nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := load.NewMockRepository(ctrl)
			wantIDs := tt.setupMock(repo)

			svc := load.NewService(repo)
			grouped, err := svc.Eligible(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, grouped, len(wantIDs))

			for _, g := range grouped {
				want, ok := wantIDs[g.DriverID]
				require.True(t, ok, "unexpected driver %s", g.DriverID)
				assert.Equal(t, want, load.IDs(g.Loads))
			}
		})
	}
}

// A rejected settlement's loads must come straight back into the pool. The
// service re-reads the claimed set every call, so the only requirement is that
// the repository stops reporting those loads as claimed.
func TestService_Eligible_RejectionReleasesLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	driverID := uuid.New()
	delivered := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	l := &load.Load{
		ID:                 uuid.New(),
		CompanyID:          companyID,
		DriverID:           &driverID,
		Status:             load.StatusDelivered,
		ReadyForSettlement: true,
		DeliveredAt:        &delivered,
	}

	repo := load.NewMockRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().
			ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
			Return([]*load.Load{l}, nil),
		repo.EXPECT().
			ClaimedLoadIDs(gomock.Any(), companyID, nil).
			Return(map[uuid.UUID]struct{}{l.ID: {}}, nil),
		repo.EXPECT().
			ListSettleable(gomock.Any(), companyID, nil, load.Period{}).
			Return([]*load.Load{l}, nil),
		repo.EXPECT().
			ClaimedLoadIDs(gomock.Any(), companyID, nil).
			Return(map[uuid.UUID]struct{}{}, nil),
	)

	svc := load.NewService(repo)

	grouped, err := svc.Eligible(context.Background(), load.EligibleParams{CompanyID: companyID})
	require.NoError(t, err)
	assert.Empty(t, grouped)

	grouped, err = svc.Eligible(context.Background(), load.EligibleParams{CompanyID: companyID})
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Equal(t, []uuid.UUID{l.ID}, load.IDs(grouped[0].Loads))
}
