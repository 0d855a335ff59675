package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/load"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanLoad reads a load row from the scanner and returns a populated Load.
// Expected column order: id, company_id, driver_id, mc_number_id, status,
// revenue, total_miles, loaded_miles, empty_miles, driver_pay,
// ready_for_settlement, delivered_at, pod_uploaded_at, bol_uploaded_at,
// created_at, updated_at
func scanLoad(s scanner) (*load.Load, error) {
	var l load.Load

	var statusStr string

	if err := s.Scan(
		&l.ID, &l.CompanyID, &l.DriverID, &l.MCNumberID, &statusStr,
		&l.Revenue, &l.TotalMiles, &l.LoadedMiles, &l.EmptyMiles, &l.DriverPay,
		&l.ReadyForSettlement, &l.DeliveredAt, &l.PODUploadedAt, &l.BOLUploadedAt,
		&l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Status = load.Status(statusStr)

	return &l, nil
}

const selectLoadColumns = `
	l.id, l.company_id, l.driver_id, l.mc_number_id, l.status,
	l.revenue, l.total_miles, l.loaded_miles, l.empty_miles, l.driver_pay,
	l.ready_for_settlement, l.delivered_at, l.pod_uploaded_at, l.bol_uploaded_at,
	l.created_at, l.updated_at
`

func (s *Store) GetLoad(ctx context.Context, id uuid.UUID) (*load.Load, error) {
	query := `SELECT ` + selectLoadColumns + `
		FROM loads l
		WHERE l.id = $1 AND l.deleted_at IS NULL`

	l, err := scanLoad(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, load.ErrNotFound
		}

		return nil, fmt.Errorf("getting load: %w", err)
	}

	return l, nil
}

func (s *Store) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*load.Load, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + selectLoadColumns + `
		FROM loads l
		WHERE l.id = ANY($1) AND l.deleted_at IS NULL
		ORDER BY l.delivered_at ASC NULLS LAST, l.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("listing loads by id: %w", err)
	}
	defer rows.Close()

	return collectLoads(rows)
}

func (s *Store) ListSettleable(ctx context.Context, companyID uuid.UUID, driverID *uuid.UUID, period load.Period) ([]*load.Load, error) {
	query := `SELECT ` + selectLoadColumns + `
		FROM loads l
		WHERE l.company_id = $1 AND l.deleted_at IS NULL
			AND l.driver_id IS NOT NULL
			AND l.status = ANY($2)`

	args := []any{companyID, settleableStatuses()}
	argIdx := 3

	if driverID != nil {
		query += fmt.Sprintf(" AND l.driver_id = $%d", argIdx)

		args = append(args, *driverID)
		argIdx++
	}

	if !period.IsZero() {
		query += fmt.Sprintf(" AND l.delivered_at >= $%d AND l.delivered_at <= $%d", argIdx, argIdx+1)

		args = append(args, period.Start, period.End)
	}

	query += " ORDER BY l.delivered_at ASC NULLS LAST, l.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing settleable loads: %w", err)
	}
	defer rows.Close()

	return collectLoads(rows)
}

// ClaimedLoadIDs reads the dedup ledger: every load id referenced by a
// settlement that has not been rejected. Always queried fresh, never cached.
func (s *Store) ClaimedLoadIDs(ctx context.Context, companyID uuid.UUID, driverID *uuid.UUID) (map[uuid.UUID]struct{}, error) {
	query := `SELECT sl.load_id
		FROM settlement_loads sl
		JOIN settlements s ON s.id = sl.settlement_id
		WHERE s.company_id = $1 AND s.approval_status <> 'rejected'`

	args := []any{companyID}

	if driverID != nil {
		query += " AND s.driver_id = $2"

		args = append(args, *driverID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing claimed load ids: %w", err)
	}
	defer rows.Close()

	claimed := make(map[uuid.UUID]struct{})

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning claimed load id: %w", err)
		}

		claimed[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claimed load ids: %w", err)
	}

	return claimed, nil
}

func collectLoads(rows *sql.Rows) ([]*load.Load, error) {
	var loads []*load.Load

	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning load: %w", err)
		}

		loads = append(loads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating load rows: %w", err)
	}

	return loads, nil
}

func settleableStatuses() []string {
	return []string{
		string(load.StatusDelivered),
		string(load.StatusReadyToBill),
		string(load.StatusInvoiced),
		string(load.StatusBillingHold),
		string(load.StatusPaid),
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}

	return strs
}
