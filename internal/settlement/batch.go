package settlement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/load"
)

type BatchParams struct {
	CompanyID   uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	// DriverIDs optionally narrows the run to specific drivers.
	DriverIDs []uuid.UUID
	// MaxDrivers caps how many drivers one invocation may process. Zero
	// means no cap.
	MaxDrivers  int
	CreatedByID uuid.UUID
}

// DriverError records one driver's failure without affecting the rest of the
// batch. The driver's loads stay unclaimed, so the next run retries them.
type DriverError struct {
	DriverID uuid.UUID
	Message  string
}

type BatchResult struct {
	BatchID            uuid.UUID
	BatchNumber        string
	DriversProcessed   int
	SettlementsCreated int
	TotalAmount        int64 // cents
	SettlementIDs      []uuid.UUID
	Errors             []DriverError
	Warnings           []string
}

// RunBatch generates settlements for every active driver in the company over
// the given period. Drivers are independent units of work: a failure is
// recorded against its driver and processing continues. Only an invalid
// tenant context aborts the run.
func (s *Service) RunBatch(ctx context.Context, params BatchParams) (*BatchResult, error) {
	if params.CompanyID == uuid.Nil {
		return nil, ErrMissingCompany
	}

	if params.PeriodEnd.Before(params.PeriodStart) {
		return nil, fmt.Errorf("period end %s is before period start %s",
			params.PeriodEnd.Format(time.DateOnly), params.PeriodStart.Format(time.DateOnly))
	}

	cfg, err := s.repo.ValidationConfig(ctx, params.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("loading validation config: %w", err)
	}

	validator := NewValidator(cfg)

	drivers, err := s.drivers.ListActive(ctx, params.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("listing active drivers: %w", err)
	}

	if len(params.DriverIDs) > 0 {
		drivers = filterDrivers(drivers, params.DriverIDs)
	}

	if params.MaxDrivers > 0 && len(drivers) > params.MaxDrivers {
		drivers = drivers[:params.MaxDrivers]
	}

	batch := &SalaryBatch{
		CompanyID:   params.CompanyID,
		BatchNumber: fmt.Sprintf("SB-%s", s.now().UTC().Format("20060102-150405")),
		PeriodStart: params.PeriodStart,
		PeriodEnd:   params.PeriodEnd,
		Status:      BatchOpen,
		CreatedByID: params.CreatedByID,
	}

	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("creating salary batch: %w", err)
	}

	period := load.Period{Start: params.PeriodStart, End: params.PeriodEnd}
	result := &BatchResult{BatchID: batch.ID, BatchNumber: batch.BatchNumber}

	for _, d := range drivers {
		if ctx.Err() != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("run stopped early: %v", ctx.Err()))
			break
		}

		result.DriversProcessed++

		grouped, err := s.loads.Eligible(ctx, load.EligibleParams{
			CompanyID: params.CompanyID,
			DriverID:  &d.ID,
			Period:    period,
		})
		if err != nil {
			result.Errors = append(result.Errors, DriverError{DriverID: d.ID, Message: err.Error()})
			continue
		}

		var eligible []*load.Load
		if len(grouped) > 0 {
			eligible = grouped[0].Loads
		}

		if len(eligible) == 0 {
			continue
		}

		summary := validator.ValidateAll(eligible, d, period)

		valid := make([]*load.Load, 0, len(eligible))

		for i, res := range summary.Results {
			for _, w := range res.Warnings {
				result.Warnings = append(result.Warnings, fmt.Sprintf("driver %s load %s: %s", d.ID, res.LoadID, w))
			}

			if !res.Valid {
				// The load stays unclaimed and eligible; it is only
				// excluded from this run.
				for _, e := range res.Errors {
					result.Warnings = append(result.Warnings, fmt.Sprintf("driver %s load %s excluded: %s", d.ID, res.LoadID, e))
				}

				continue
			}

			valid = append(valid, eligible[i])
		}

		if len(valid) == 0 {
			continue
		}

		st, err := s.Generate(ctx, GenerateParams{
			Driver:  d,
			Loads:   valid,
			Period:  period,
			BatchID: &batch.ID,
		})
		if err != nil {
			slog.Warn("settlement generation failed", "driver_id", d.ID, "error", err)
			result.Errors = append(result.Errors, DriverError{DriverID: d.ID, Message: err.Error()})

			continue
		}

		result.SettlementsCreated++
		result.TotalAmount += st.NetPay
		result.SettlementIDs = append(result.SettlementIDs, st.ID)
	}

	// The summary reflects what was actually committed, not what the loop
	// hoped to create.
	if err := s.repo.UpdateBatchSummary(ctx, batch.ID, result.SettlementsCreated, result.TotalAmount); err != nil {
		return result, fmt.Errorf("updating batch summary: %w", err)
	}

	return result, nil
}

func filterDrivers(drivers []*driver.Driver, ids []uuid.UUID) []*driver.Driver {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	filtered := make([]*driver.Driver, 0, len(ids))

	for _, d := range drivers {
		if _, ok := wanted[d.ID]; ok {
			filtered = append(filtered, d)
		}
	}

	return filtered
}
