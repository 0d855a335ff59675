package settlement_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/load"
	"github.com/openfreight/linehaul/internal/settlement"
)

func TestValidator_Validate(t *testing.T) {
	mcNumber := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	delivered := now.Add(-5 * 24 * time.Hour)

	period := load.Period{
		Start: now.Add(-14 * 24 * time.Hour),
		End:   now,
	}

	d := &driver.Driver{ID: uuid.New(), MCNumberID: mcNumber}

	cleanLoad := func() *load.Load {
		del, pod, bol := delivered, delivered, delivered

		return &load.Load{
			ID:                 uuid.New(),
			MCNumberID:         mcNumber,
			Status:             load.StatusDelivered,
			ReadyForSettlement: true,
			DeliveredAt:        &del,
			PODUploadedAt:      &pod,
			BOLUploadedAt:      &bol,
		}
	}

	type testCase struct {
		name         string
		cfg          settlement.ValidationConfig
		mutate       func(l *load.Load)
		wantValid    bool
		wantErrors   int
		wantWarnings int
	}

	tests := []testCase{
		{
			name:      "CleanLoadPasses",
			mutate:    func(l *load.Load) {},
			wantValid: true,
		},
		{
			name:       "UnsettleableStatusAlwaysFails",
			cfg:        settlement.ValidationConfig{},
			mutate:     func(l *load.Load) { l.Status = load.StatusInTransit },
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:         "MissingPODWarnsWhenPermissive",
			mutate:       func(l *load.Load) { l.PODUploadedAt = nil },
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:       "MissingPODFailsWhenRequired",
			cfg:        settlement.ValidationConfig{RequireProofOfDelivery: true},
			mutate:     func(l *load.Load) { l.PODUploadedAt = nil },
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:         "NotReadyWarnsWhenPermissive",
			mutate:       func(l *load.Load) { l.ReadyForSettlement = false },
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:      "BilledStatusSatisfiesReadyCheck",
			cfg:       settlement.ValidationConfig{RequireReadyFlag: true},
			mutate:    func(l *load.Load) { l.ReadyForSettlement = false; l.Status = load.StatusInvoiced },
			wantValid: true,
		},
		{
			name:       "MissingDeliveryDateFailsWhenRequired",
			cfg:        settlement.ValidationConfig{RequireDeliveryDate: true},
			mutate:     func(l *load.Load) { l.DeliveredAt = nil },
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name: "OutOfPeriodDeliveryAlwaysFails",
			mutate: func(l *load.Load) {
				outside := period.Start.Add(-24 * time.Hour)
				l.DeliveredAt = &outside
			},
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:         "MCNumberMismatchWarnsWhenPermissive",
			mutate:       func(l *load.Load) { l.MCNumberID = uuid.New() },
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:       "MCNumberMismatchFailsWhenRequired",
			cfg:        settlement.ValidationConfig{RequireMCNumberMatch: true},
			mutate:     func(l *load.Load) { l.MCNumberID = uuid.New() },
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:         "MissingBOLNeverBlocks",
			cfg:          settlement.StrictConfig(),
			mutate:       func(l *load.Load) { l.BOLUploadedAt = nil },
			wantValid:    true,
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := cleanLoad()
			tt.mutate(l)

			v := settlement.NewValidatorAt(tt.cfg, func() time.Time { return now })
			result := v.Validate(l, d, period)

			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Len(t, result.Errors, tt.wantErrors)
			assert.Len(t, result.Warnings, tt.wantWarnings)
		})
	}
}

// The stale-delivery warning uses the out-of-period path when the delivery
// also falls outside the window, so an all-time period is used here.
func TestValidator_Validate_StaleWithOpenPeriod(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	old := now.Add(-60 * 24 * time.Hour)
	mcNumber := uuid.New()

	l := &load.Load{
		ID:                 uuid.New(),
		MCNumberID:         mcNumber,
		Status:             load.StatusDelivered,
		ReadyForSettlement: true,
		DeliveredAt:        &old,
		PODUploadedAt:      &old,
		BOLUploadedAt:      &old,
	}
	d := &driver.Driver{MCNumberID: mcNumber}

	v := settlement.NewValidatorAt(settlement.StrictConfig(), func() time.Time { return now })
	result := v.Validate(l, d, load.Period{})

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "more than 30 days ago")
}

func TestValidator_ValidateAll(t *testing.T) {
	mcNumber := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	delivered := now.Add(-2 * 24 * time.Hour)
	d := &driver.Driver{MCNumberID: mcNumber}

	clean := &load.Load{
		ID:                 uuid.New(),
		MCNumberID:         mcNumber,
		Status:             load.StatusDelivered,
		ReadyForSettlement: true,
		DeliveredAt:        &delivered,
		PODUploadedAt:      &delivered,
		BOLUploadedAt:      &delivered,
	}

	warned := &load.Load{
		ID:                 uuid.New(),
		MCNumberID:         mcNumber,
		Status:             load.StatusDelivered,
		ReadyForSettlement: true,
		DeliveredAt:        &delivered,
		PODUploadedAt:      &delivered,
	}

	invalid := &load.Load{
		ID:         uuid.New(),
		MCNumberID: mcNumber,
		Status:     load.StatusCancelled,
	}

	v := settlement.NewValidatorAt(settlement.ValidationConfig{}, func() time.Time { return now })
	summary := v.ValidateAll([]*load.Load{clean, warned, invalid}, d, load.Period{})

	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 1, summary.Warned)
	require.Len(t, summary.Results, 3)
	assert.Equal(t, clean.ID, summary.Results[0].LoadID)
}
