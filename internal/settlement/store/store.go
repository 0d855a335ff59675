package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/settlement"
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

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectSettlementColumns = `
	s.id, s.company_id, s.driver_id, s.period_start, s.period_end,
	s.gross_pay, s.deductions, s.additions, s.advances, s.net_pay,
	s.status, s.approval_status, s.rejection_reason, s.salary_batch_id,
	s.created_at, s.updated_at
`

// scanSettlement reads a settlement row. Load ids live in the
// settlement_loads join table and are attached separately.
func scanSettlement(sc scanner) (*settlement.Settlement, error) {
	var st settlement.Settlement

	var statusStr, approvalStr string

	var reason sql.NullString

	if err := sc.Scan(
		&st.ID, &st.CompanyID, &st.DriverID, &st.PeriodStart, &st.PeriodEnd,
		&st.GrossPay, &st.Deductions, &st.Additions, &st.Advances, &st.NetPay,
		&statusStr, &approvalStr, &reason, &st.SalaryBatchID,
		&st.CreatedAt, &st.UpdatedAt,
	); err != nil {
		return nil, err
	}

	st.Status = settlement.Status(statusStr)
	st.ApprovalStatus = settlement.ApprovalStatus(approvalStr)
	st.RejectionReason = reason.String

	return &st, nil
}

func loadIDsFor(ctx context.Context, q querier, settlementID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT load_id FROM settlement_loads WHERE settlement_id = $1 ORDER BY position ASC`,
		settlementID)
	if err != nil {
		return nil, fmt.Errorf("listing settlement load ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning settlement load id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement load ids: %w", err)
	}

	return ids, nil
}

func replaceLoadIDs(ctx context.Context, q querier, settlementID uuid.UUID, loadIDs []uuid.UUID) error {
	if _, err := q.ExecContext(ctx,
		`DELETE FROM settlement_loads WHERE settlement_id = $1`, settlementID); err != nil {
		return fmt.Errorf("clearing settlement loads: %w", err)
	}

	for i, loadID := range loadIDs {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO settlement_loads (settlement_id, load_id, position) VALUES ($1, $2, $3)`,
			settlementID, loadID, i); err != nil {
			return fmt.Errorf("inserting settlement load: %w", err)
		}
	}

	return nil
}

func claimedLoadIDs(ctx context.Context, q querier, driverID uuid.UUID, excludeSettlement uuid.UUID) (map[uuid.UUID]struct{}, error) {
	query := `SELECT sl.load_id
		FROM settlement_loads sl
		JOIN settlements s ON s.id = sl.settlement_id
		WHERE s.driver_id = $1 AND s.approval_status <> 'rejected'`

	args := []any{driverID}

	if excludeSettlement != uuid.Nil {
		query += " AND s.id <> $2"

		args = append(args, excludeSettlement)
	}

	rows, err := q.QueryContext(ctx, query, args...)
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

func (s *Store) GetSettlement(ctx context.Context, id uuid.UUID) (*settlement.Settlement, error) {
	query := `SELECT ` + selectSettlementColumns + ` FROM settlements s WHERE s.id = $1`

	st, err := scanSettlement(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settlement.ErrNotFound
		}

		return nil, fmt.Errorf("getting settlement: %w", err)
	}

	st.LoadIDs, err = loadIDsFor(ctx, s.db, st.ID)
	if err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Store) ListSettlements(ctx context.Context, filter settlement.ListFilter) ([]*settlement.Settlement, error) {
	query := `SELECT ` + selectSettlementColumns + ` FROM settlements s WHERE s.company_id = $1`

	args := []any{filter.CompanyID}
	argIdx := 2

	if filter.DriverID != nil {
		query += fmt.Sprintf(" AND s.driver_id = $%d", argIdx)

		args = append(args, *filter.DriverID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND s.status = $%d", argIdx)

		args = append(args, string(*filter.Status))
		argIdx++
	}

	if filter.Approval != nil {
		query += fmt.Sprintf(" AND s.approval_status = $%d", argIdx)

		args = append(args, string(*filter.Approval))
		argIdx++
	}

	if filter.BatchID != nil {
		query += fmt.Sprintf(" AND s.salary_batch_id = $%d", argIdx)

		args = append(args, *filter.BatchID)
		argIdx++
	}

	query += " ORDER BY s.period_start DESC, s.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*settlement.Settlement

	for rows.Next() {
		st, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning settlement: %w", err)
		}

		settlements = append(settlements, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating settlement rows: %w", err)
	}

	for _, st := range settlements {
		st.LoadIDs, err = loadIDsFor(ctx, s.db, st.ID)
		if err != nil {
			return nil, err
		}
	}

	return settlements, nil
}

func scanLine(sc scanner) (*settlement.DeductionLine, error) {
	var line settlement.DeductionLine

	var categoryStr string

	if err := sc.Scan(
		&line.ID, &line.SettlementID, &line.RuleID, &line.Description,
		&line.Amount, &categoryStr, &line.CreatedAt,
	); err != nil {
		return nil, err
	}

	line.Category = settlement.LineCategory(categoryStr)

	return &line, nil
}

const selectLineColumns = `
	dl.id, dl.settlement_id, dl.rule_id, dl.description,
	dl.amount, dl.category, dl.created_at
`

func listLines(ctx context.Context, q querier, settlementID uuid.UUID) ([]*settlement.DeductionLine, error) {
	query := `SELECT ` + selectLineColumns + `
		FROM settlement_deduction_lines dl
		WHERE dl.settlement_id = $1
		ORDER BY dl.position ASC, dl.created_at ASC`

	rows, err := q.QueryContext(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("listing deduction lines: %w", err)
	}
	defer rows.Close()

	var lines []*settlement.DeductionLine

	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning deduction line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deduction line rows: %w", err)
	}

	return lines, nil
}

func (s *Store) ListLines(ctx context.Context, settlementID uuid.UUID) ([]*settlement.DeductionLine, error) {
	return listLines(ctx, s.db, settlementID)
}

func (s *Store) UpdateApproval(ctx context.Context, id uuid.UUID, approval settlement.ApprovalStatus, status settlement.Status, reason string) error {
	query := `UPDATE settlements
		SET approval_status = $1, status = $2, rejection_reason = NULLIF($3, ''), updated_at = NOW()
		WHERE id = $4`

	res, err := s.db.ExecContext(ctx, query, string(approval), string(status), reason, id)
	if err != nil {
		return fmt.Errorf("updating approval: %w", err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return settlement.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status settlement.Status) error {
	query := `UPDATE settlements SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return settlement.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteSettlement(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning delete tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM settlement_deduction_lines WHERE settlement_id = $1`, id); err != nil {
		return fmt.Errorf("deleting settlement lines: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM settlement_loads WHERE settlement_id = $1`, id); err != nil {
		return fmt.Errorf("deleting settlement loads: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM settlements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting settlement: %w", err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return settlement.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

func (s *Store) CreateBatch(ctx context.Context, b *settlement.SalaryBatch) error {
	query := `INSERT INTO salary_batches
			(company_id, batch_number, period_start, period_end, settlement_count, total_amount, status, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, 0, 0, $5, $6, NOW())
		RETURNING id, created_at`

	err := s.db.QueryRowContext(ctx, query,
		b.CompanyID, b.BatchNumber, b.PeriodStart, b.PeriodEnd,
		string(b.Status), b.CreatedByID,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating salary batch: %w", err)
	}

	return nil
}

func (s *Store) GetBatch(ctx context.Context, id uuid.UUID) (*settlement.SalaryBatch, error) {
	query := `SELECT
			b.id, b.company_id, b.batch_number, b.period_start, b.period_end,
			b.settlement_count, b.total_amount, b.status, b.created_by_id, b.created_at
		FROM salary_batches b
		WHERE b.id = $1`

	var b settlement.SalaryBatch

	var statusStr string

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.CompanyID, &b.BatchNumber, &b.PeriodStart, &b.PeriodEnd,
		&b.SettlementCount, &b.TotalAmount, &statusStr, &b.CreatedByID, &b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settlement.ErrBatchNotFound
		}

		return nil, fmt.Errorf("getting salary batch: %w", err)
	}

	b.Status = settlement.BatchStatus(statusStr)

	return &b, nil
}

func (s *Store) UpdateBatchSummary(ctx context.Context, id uuid.UUID, settlementCount int, totalAmount int64) error {
	query := `UPDATE salary_batches SET settlement_count = $1, total_amount = $2 WHERE id = $3`

	res, err := s.db.ExecContext(ctx, query, settlementCount, totalAmount, id)
	if err != nil {
		return fmt.Errorf("updating batch summary: %w", err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return settlement.ErrBatchNotFound
	}

	return nil
}

// ValidationConfig reads the company's strictness flags. Companies without a
// row get the permissive default.
func (s *Store) ValidationConfig(ctx context.Context, companyID uuid.UUID) (settlement.ValidationConfig, error) {
	query := `SELECT
			cs.require_pod, cs.require_ready_flag, cs.require_delivery_date, cs.require_mc_match
		FROM company_settings cs
		WHERE cs.company_id = $1`

	var cfg settlement.ValidationConfig

	err := s.db.QueryRowContext(ctx, query, companyID).Scan(
		&cfg.RequireProofOfDelivery, &cfg.RequireReadyFlag,
		&cfg.RequireDeliveryDate, &cfg.RequireMCNumberMatch,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return settlement.ValidationConfig{}, nil
		}

		return settlement.ValidationConfig{}, fmt.Errorf("getting validation config: %w", err)
	}

	return cfg, nil
}

// driverLockKey derives the advisory lock key that serializes settlement
// writes per driver.
func driverLockKey(driverID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(driverID[:])

	return int64(h.Sum64())
}

type createTx struct {
	tx *sql.Tx
}

// BeginCreate opens a transaction holding the driver's advisory lock, so no
// other writer can interleave a conflicting settlement for the same driver
// between the claimed-load re-check and commit.
func (s *Store) BeginCreate(ctx context.Context, companyID, driverID uuid.UUID) (settlement.CreateTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning create tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", driverLockKey(driverID)); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("acquiring driver lock: %w", err)
	}

	return &createTx{tx: tx}, nil
}

func (c *createTx) Commit() error   { return c.tx.Commit() }
func (c *createTx) Rollback() error { return c.tx.Rollback() }

func (c *createTx) ClaimedLoadIDs(ctx context.Context, driverID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return claimedLoadIDs(ctx, c.tx, driverID, uuid.Nil)
}

func (c *createTx) CreateSettlement(ctx context.Context, st *settlement.Settlement, lines []*settlement.DeductionLine) error {
	query := `INSERT INTO settlements
			(company_id, driver_id, period_start, period_end,
			 gross_pay, deductions, additions, advances, net_pay,
			 status, approval_status, salary_batch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at`

	err := c.tx.QueryRowContext(ctx, query,
		st.CompanyID, st.DriverID, st.PeriodStart, st.PeriodEnd,
		st.GrossPay, st.Deductions, st.Additions, st.Advances, st.NetPay,
		string(st.Status), string(st.ApprovalStatus), st.SalaryBatchID,
	).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting settlement: %w", err)
	}

	if err := replaceLoadIDs(ctx, c.tx, st.ID, st.LoadIDs); err != nil {
		return err
	}

	for i, line := range lines {
		line.SettlementID = st.ID

		if err := insertLine(ctx, c.tx, line, i); err != nil {
			return err
		}
	}

	return nil
}

func insertLine(ctx context.Context, q querier, line *settlement.DeductionLine, position int) error {
	query := `INSERT INTO settlement_deduction_lines
			(settlement_id, rule_id, description, amount, category, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`

	err := q.QueryRowContext(ctx, query,
		line.SettlementID, line.RuleID, line.Description,
		line.Amount, string(line.Category), position,
	).Scan(&line.ID, &line.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting deduction line: %w", err)
	}

	return nil
}

type editTx struct {
	tx           *sql.Tx
	settlementID uuid.UUID
}

// BeginEdit opens a transaction for a read-recompute-write settlement edit.
func (s *Store) BeginEdit(ctx context.Context, settlementID uuid.UUID) (settlement.EditTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning edit tx: %w", err)
	}

	return &editTx{tx: tx, settlementID: settlementID}, nil
}

func (e *editTx) Commit() error   { return e.tx.Commit() }
func (e *editTx) Rollback() error { return e.tx.Rollback() }

// Settlement reads the settlement row under a row lock, so totals are never
// recomputed from a stale read.
func (e *editTx) Settlement(ctx context.Context) (*settlement.Settlement, error) {
	query := `SELECT ` + selectSettlementColumns + ` FROM settlements s WHERE s.id = $1 FOR UPDATE`

	st, err := scanSettlement(e.tx.QueryRowContext(ctx, query, e.settlementID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settlement.ErrNotFound
		}

		return nil, fmt.Errorf("getting settlement for edit: %w", err)
	}

	st.LoadIDs, err = loadIDsFor(ctx, e.tx, st.ID)
	if err != nil {
		return nil, err
	}

	return st, nil
}

func (e *editTx) Lines(ctx context.Context) ([]*settlement.DeductionLine, error) {
	return listLines(ctx, e.tx, e.settlementID)
}

func (e *editTx) ClaimedLoadIDs(ctx context.Context, driverID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	return claimedLoadIDs(ctx, e.tx, driverID, e.settlementID)
}

func (e *editTx) InsertLine(ctx context.Context, line *settlement.DeductionLine) error {
	var position int

	err := e.tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM settlement_deduction_lines WHERE settlement_id = $1`,
		e.settlementID).Scan(&position)
	if err != nil {
		return fmt.Errorf("computing line position: %w", err)
	}

	line.SettlementID = e.settlementID

	return insertLine(ctx, e.tx, line, position)
}

func (e *editTx) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	res, err := e.tx.ExecContext(ctx,
		`DELETE FROM settlement_deduction_lines WHERE id = $1 AND settlement_id = $2`,
		lineID, e.settlementID)
	if err != nil {
		return fmt.Errorf("deleting deduction line: %w", err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return settlement.ErrLineNotFound
	}

	return nil
}

func (e *editTx) SetLoadIDs(ctx context.Context, loadIDs []uuid.UUID) error {
	return replaceLoadIDs(ctx, e.tx, e.settlementID, loadIDs)
}

func (e *editTx) SetTotals(ctx context.Context, gross, deductions, additions, net int64) error {
	query := `UPDATE settlements
		SET gross_pay = $1, deductions = $2, additions = $3, net_pay = $4, updated_at = NOW()
		WHERE id = $5`

	if _, err := e.tx.ExecContext(ctx, query, gross, deductions, additions, net, e.settlementID); err != nil {
		return fmt.Errorf("writing settlement totals: %w", err)
	}

	return nil
}
