package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/driver"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, company_id, mc_number_id, name, driver_type,
// pay_type, pay_rate, escrow_balance, escrow_target_amount,
// escrow_deduction_per_week, active, created_at, updated_at
func scanDriver(s scanner) (*driver.Driver, error) {
	var d driver.Driver

	var payTypeStr string

	if err := s.Scan(
		&d.ID, &d.CompanyID, &d.MCNumberID, &d.Name, &d.DriverType,
		&payTypeStr, &d.PayRate,
		&d.EscrowBalance, &d.EscrowTargetAmount, &d.EscrowDeductionPerWeek,
		&d.Active, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.PayType = driver.PayType(payTypeStr)

	return &d, nil
}

const selectDriverColumns = `
	d.id, d.company_id, d.mc_number_id, d.name, d.driver_type,
	d.pay_type, d.pay_rate,
	d.escrow_balance, d.escrow_target_amount, d.escrow_deduction_per_week,
	d.active, d.created_at, d.updated_at
`

func (s *Store) GetDriver(ctx context.Context, id uuid.UUID) (*driver.Driver, error) {
	query := `SELECT ` + selectDriverColumns + `
		FROM drivers d
		WHERE d.id = $1 AND d.deleted_at IS NULL`

	d, err := scanDriver(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, driver.ErrNotFound
		}

		return nil, fmt.Errorf("getting driver: %w", err)
	}

	return d, nil
}

func (s *Store) ListActive(ctx context.Context, companyID uuid.UUID) ([]*driver.Driver, error) {
	query := `SELECT ` + selectDriverColumns + `
		FROM drivers d
		WHERE d.company_id = $1 AND d.active AND d.deleted_at IS NULL
		ORDER BY d.name ASC, d.id ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing active drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*driver.Driver

	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning driver: %w", err)
		}

		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating driver rows: %w", err)
	}

	return drivers, nil
}
