package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/deduction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListActive(ctx context.Context, companyID uuid.UUID, driverType string) ([]*deduction.Rule, error) {
	// Company-wide rules (NULL driver_type) always apply alongside
	// type-scoped ones. Newest-first ordering is the audit order that
	// persisted line items must preserve.
	query := `SELECT
			r.id, r.company_id, r.driver_type, r.deduction_type, r.description,
			r.calculation_type, r.amount, r.percentage, r.per_mile_rate,
			r.frequency, r.min_gross_pay, r.max_amount,
			r.is_addition, r.is_active, r.created_at
		FROM deduction_rules r
		WHERE r.company_id = $1 AND r.is_active
			AND (r.driver_type IS NULL OR r.driver_type = $2)
		ORDER BY r.created_at DESC, r.id DESC`

	rows, err := s.db.QueryContext(ctx, query, companyID, driverType)
	if err != nil {
		return nil, fmt.Errorf("listing deduction rules: %w", err)
	}
	defer rows.Close()

	var rules []*deduction.Rule

	for rows.Next() {
		var r deduction.Rule

		var calcStr, freqStr string

		var maxAmount sql.NullInt64

		if err := rows.Scan(
			&r.ID, &r.CompanyID, &r.DriverType, &r.DeductionType, &r.Description,
			&calcStr, &r.Amount, &r.Percentage, &r.PerMileRate,
			&freqStr, &r.MinGrossPay, &maxAmount,
			&r.IsAddition, &r.IsActive, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning deduction rule: %w", err)
		}

		r.CalculationType = deduction.CalculationType(calcStr)
		r.Frequency = deduction.Frequency(freqStr)

		if maxAmount.Valid {
			r.MaxAmount = &maxAmount.Int64
		}

		rules = append(rules, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deduction rule rows: %w", err)
	}

	return rules, nil
}
