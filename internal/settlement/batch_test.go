package settlement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/load"
	"github.com/openfreight/linehaul/internal/settlement"
)

func TestService_RunBatch_MissingCompany(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RunBatch(context.Background(), settlement.BatchParams{})
	require.ErrorIs(t, err, settlement.ErrMissingCompany)
}

func TestService_RunBatch_PeriodEndBeforeStart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   uuid.New(),
		PeriodStart: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, settlement.ErrMissingCompany)
}

func TestService_RunBatch_FailureIsolation(t *testing.T) {
	svc, m := newTestService(t)

	companyID := uuid.New()
	mcNumber := uuid.New()
	period := testPeriod()
	delivered := period.Start.Add(48 * time.Hour)

	failing := testDriver(companyID)
	failing.MCNumberID = mcNumber
	healthy := testDriver(companyID)
	healthy.MCNumberID = mcNumber

	makeLoad := func(driverID uuid.UUID) *load.Load {
		del := delivered

		return &load.Load{
			ID:                 uuid.New(),
			CompanyID:          companyID,
			DriverID:           &driverID,
			MCNumberID:         mcNumber,
			Status:             load.StatusDelivered,
			ReadyForSettlement: true,
			LoadedMiles:        1000,
			DeliveredAt:        &del,
			PODUploadedAt:      &del,
			BOLUploadedAt:      &del,
		}
	}

	failingLoad := makeLoad(failing.ID)
	healthyLoad := makeLoad(healthy.ID)

	m.repo.EXPECT().
		ValidationConfig(gomock.Any(), companyID).
		Return(settlement.ValidationConfig{}, nil)

	m.drvRepo.EXPECT().
		ListActive(gomock.Any(), companyID).
		Return([]*driver.Driver{failing, healthy}, nil)

	var batchID uuid.UUID

	m.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *settlement.SalaryBatch) error {
			b.ID = uuid.New()
			batchID = b.ID
			return nil
		})

	// Each driver gets an independent eligibility read.
	m.loadRepo.EXPECT().
		ListSettleable(gomock.Any(), companyID, &failing.ID, gomock.Any()).
		Return([]*load.Load{failingLoad}, nil)
	m.loadRepo.EXPECT().
		ClaimedLoadIDs(gomock.Any(), companyID, &failing.ID).
		Return(map[uuid.UUID]struct{}{}, nil)
	m.loadRepo.EXPECT().
		ListSettleable(gomock.Any(), companyID, &healthy.ID, gomock.Any()).
		Return([]*load.Load{healthyLoad}, nil)
	m.loadRepo.EXPECT().
		ClaimedLoadIDs(gomock.Any(), companyID, &healthy.ID).
		Return(map[uuid.UUID]struct{}{}, nil)

	m.ruleRepo.EXPECT().
		ListActive(gomock.Any(), companyID, "company").
		Return(nil, nil).
		Times(2)

	// The first driver's transaction fails to open; the run must carry on.
	m.repo.EXPECT().
		BeginCreate(gomock.Any(), companyID, failing.ID).
		Return(nil, errors.New("lock wait timeout"))

	m.repo.EXPECT().
		BeginCreate(gomock.Any(), companyID, healthy.ID).
		Return(m.createTx, nil)
	m.createTx.EXPECT().
		ClaimedLoadIDs(gomock.Any(), healthy.ID).
		Return(map[uuid.UUID]struct{}{}, nil)
	m.createTx.EXPECT().
		CreateSettlement(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, st *settlement.Settlement, _ []*settlement.DeductionLine) error {
			st.ID = uuid.New()
			return nil
		})
	m.createTx.EXPECT().Commit().Return(nil)
	m.createTx.EXPECT().Rollback().Return(nil).AnyTimes()

	// The summary records the one committed settlement, not the attempt count.
	m.repo.EXPECT().
		UpdateBatchSummary(gomock.Any(), gomock.Any(), 1, int64(55000)).
		DoAndReturn(func(_ context.Context, id uuid.UUID, _ int, _ int64) error {
			assert.Equal(t, batchID, id)
			return nil
		})

	result, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.DriversProcessed)
	assert.Equal(t, 1, result.SettlementsCreated)
	assert.Equal(t, int64(55000), result.TotalAmount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, failing.ID, result.Errors[0].DriverID)
	assert.Len(t, result.SettlementIDs, 1)
	assert.Contains(t, result.BatchNumber, "SB-")
}

func TestService_RunBatch_SkipsDriversWithoutEligibleLoads(t *testing.T) {
	svc, m := newTestService(t)

	companyID := uuid.New()
	d := testDriver(companyID)
	period := testPeriod()

	m.repo.EXPECT().
		ValidationConfig(gomock.Any(), companyID).
		Return(settlement.ValidationConfig{}, nil)
	m.drvRepo.EXPECT().
		ListActive(gomock.Any(), companyID).
		Return([]*driver.Driver{d}, nil)
	m.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(nil)

	m.loadRepo.EXPECT().
		ListSettleable(gomock.Any(), companyID, &d.ID, gomock.Any()).
		Return(nil, nil)
	m.loadRepo.EXPECT().
		ClaimedLoadIDs(gomock.Any(), companyID, &d.ID).
		Return(map[uuid.UUID]struct{}{}, nil)

	m.repo.EXPECT().
		UpdateBatchSummary(gomock.Any(), gomock.Any(), 0, int64(0)).
		Return(nil)

	result, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.DriversProcessed)
	assert.Equal(t, 0, result.SettlementsCreated)
	assert.Empty(t, result.Errors)
}

// A second run over the same period finds every load already claimed and
// creates nothing. Settled work is never paid twice.
func TestService_RunBatch_RerunCreatesNothing(t *testing.T) {
	svc, m := newTestService(t)

	companyID := uuid.New()
	d := testDriver(companyID)
	period := testPeriod()
	delivered := period.Start.Add(24 * time.Hour)

	settled := &load.Load{
		ID:                 uuid.New(),
		CompanyID:          companyID,
		DriverID:           &d.ID,
		Status:             load.StatusDelivered,
		ReadyForSettlement: true,
		LoadedMiles:        500,
		DeliveredAt:        &delivered,
	}

	m.repo.EXPECT().
		ValidationConfig(gomock.Any(), companyID).
		Return(settlement.ValidationConfig{}, nil)
	m.drvRepo.EXPECT().
		ListActive(gomock.Any(), companyID).
		Return([]*driver.Driver{d}, nil)
	m.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(nil)

	m.loadRepo.EXPECT().
		ListSettleable(gomock.Any(), companyID, &d.ID, gomock.Any()).
		Return([]*load.Load{settled}, nil)
	m.loadRepo.EXPECT().
		ClaimedLoadIDs(gomock.Any(), companyID, &d.ID).
		Return(map[uuid.UUID]struct{}{settled.ID: {}}, nil)

	m.repo.EXPECT().
		UpdateBatchSummary(gomock.Any(), gomock.Any(), 0, int64(0)).
		Return(nil)

	result, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.SettlementsCreated)
	assert.Empty(t, result.Errors)
}

func TestService_RunBatch_InvalidLoadsExcluded(t *testing.T) {
	svc, m := newTestService(t)

	companyID := uuid.New()
	d := testDriver(companyID)
	period := testPeriod()
	outside := period.Start.Add(-72 * time.Hour)

	// Settleable and unclaimed, but delivered before the period opened. The
	// validator excludes it and the driver produces no settlement.
	offPeriod := &load.Load{
		ID:                 uuid.New(),
		CompanyID:          companyID,
		DriverID:           &d.ID,
		MCNumberID:         d.MCNumberID,
		Status:             load.StatusDelivered,
		ReadyForSettlement: true,
		LoadedMiles:        800,
		DeliveredAt:        &outside,
	}

	m.repo.EXPECT().
		ValidationConfig(gomock.Any(), companyID).
		Return(settlement.ValidationConfig{}, nil)
	m.drvRepo.EXPECT().
		ListActive(gomock.Any(), companyID).
		Return([]*driver.Driver{d}, nil)
	m.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(nil)

	m.loadRepo.EXPECT().
		ListSettleable(gomock.Any(), companyID, &d.ID, gomock.Any()).
		Return([]*load.Load{offPeriod}, nil)
	m.loadRepo.EXPECT().
		ClaimedLoadIDs(gomock.Any(), companyID, &d.ID).
		Return(map[uuid.UUID]struct{}{}, nil)

	m.repo.EXPECT().
		UpdateBatchSummary(gomock.Any(), gomock.Any(), 0, int64(0)).
		Return(nil)

	result, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.SettlementsCreated)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings)
}

func TestService_RunBatch_DriverScoping(t *testing.T) {
	svc, m := newTestService(t)

	companyID := uuid.New()
	wanted := testDriver(companyID)
	ignored := testDriver(companyID)
	period := testPeriod()

	m.repo.EXPECT().
		ValidationConfig(gomock.Any(), companyID).
		Return(settlement.ValidationConfig{}, nil)
	m.drvRepo.EXPECT().
		ListActive(gomock.Any(), companyID).
		Return([]*driver.Driver{wanted, ignored}, nil)
	m.repo.EXPECT().
		CreateBatch(gomock.Any(), gomock.Any()).
		Return(nil)

	// Only the scoped driver is read; the other never reaches eligibility.
	m.loadRepo.EXPECT().
		ListSettleable(gomock.Any(), companyID, &wanted.ID, gomock.Any()).
		Return(nil, nil)
	m.loadRepo.EXPECT().
		ClaimedLoadIDs(gomock.Any(), companyID, &wanted.ID).
		Return(map[uuid.UUID]struct{}{}, nil)

	m.repo.EXPECT().
		UpdateBatchSummary(gomock.Any(), gomock.Any(), 0, int64(0)).
		Return(nil)

	result, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		DriverIDs:   []uuid.UUID{wanted.ID},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.DriversProcessed)
}

func TestService_RunBatch_ConfigLookupFatal(t *testing.T) {
	svc, m := newTestService(t)

	companyID := uuid.New()

	m.repo.EXPECT().
		ValidationConfig(gomock.Any(), companyID).
		Return(settlement.ValidationConfig{}, errors.New("db error"))

	period := testPeriod()

	_, err := svc.RunBatch(context.Background(), settlement.BatchParams{
		CompanyID:   companyID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
	})

	require.Error(t, err)
}
