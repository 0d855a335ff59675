package settlement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/deduction"
	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/load"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=settlement
type Repository interface {
	GetSettlement(ctx context.Context, id uuid.UUID) (*Settlement, error)
	ListSettlements(ctx context.Context, filter ListFilter) ([]*Settlement, error)
	ListLines(ctx context.Context, settlementID uuid.UUID) ([]*DeductionLine, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, approval ApprovalStatus, status Status, reason string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteSettlement(ctx context.Context, id uuid.UUID) error

	// BeginCreate opens a transaction that serializes settlement creation per
	// driver, so the loads read as unclaimed stay unclaimed until commit.
	BeginCreate(ctx context.Context, companyID, driverID uuid.UUID) (CreateTx, error)
	// BeginEdit opens a transaction holding the settlement row locked.
	BeginEdit(ctx context.Context, settlementID uuid.UUID) (EditTx, error)

	CreateBatch(ctx context.Context, batch *SalaryBatch) error
	GetBatch(ctx context.Context, id uuid.UUID) (*SalaryBatch, error)
	UpdateBatchSummary(ctx context.Context, id uuid.UUID, settlementCount int, totalAmount int64) error

	// ValidationConfig returns the company's strictness policy; the zero
	// value when the company has not configured one.
	ValidationConfig(ctx context.Context, companyID uuid.UUID) (ValidationConfig, error)
}

type CreateTx interface {
	// ClaimedLoadIDs re-reads the driver's claimed loads inside the
	// transaction, for the commit-time overlap check.
	ClaimedLoadIDs(ctx context.Context, driverID uuid.UUID) (map[uuid.UUID]struct{}, error)
	CreateSettlement(ctx context.Context, s *Settlement, lines []*DeductionLine) error
	Commit() error
	Rollback() error
}

type EditTx interface {
	Settlement(ctx context.Context) (*Settlement, error)
	Lines(ctx context.Context) ([]*DeductionLine, error)
	ClaimedLoadIDs(ctx context.Context, driverID uuid.UUID) (map[uuid.UUID]struct{}, error)
	InsertLine(ctx context.Context, line *DeductionLine) error
	DeleteLine(ctx context.Context, lineID uuid.UUID) error
	SetLoadIDs(ctx context.Context, loadIDs []uuid.UUID) error
	SetTotals(ctx context.Context, gross, deductions, additions, net int64) error
	Commit() error
	Rollback() error
}

type ListFilter struct {
	CompanyID uuid.UUID
	DriverID  *uuid.UUID
	Status    *Status
	Approval  *ApprovalStatus
	BatchID   *uuid.UUID
}

type Service struct {
	repo     Repository
	loads    *load.Service
	drivers  *driver.Service
	rules    *deduction.Service
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, loads *load.Service, drivers *driver.Service, rules *deduction.Service, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		loads:    loads,
		drivers:  drivers,
		rules:    rules,
		notifier: notifier,
		now:      time.Now,
	}
}

type GenerateParams struct {
	Driver   *driver.Driver
	Loads    []*load.Load
	Period   load.Period
	BatchID  *uuid.UUID
	Advances int64
}

// Generate assembles and persists one draft settlement for the given driver
// and load set. The write is all-or-nothing: the claimed-load ledger is
// re-checked inside the transaction and any overlap aborts the whole
// settlement, leaving the loads unclaimed and the run retryable.
func (s *Service) Generate(ctx context.Context, params GenerateParams) (*Settlement, error) {
	d := params.Driver
	if d == nil {
		return nil, fmt.Errorf("driver is required")
	}

	if len(params.Loads) == 0 {
		return nil, ErrNoLoads
	}

	gross := driver.GrossPay(d, params.Loads)

	rules, err := s.rules.ActiveRules(ctx, d.CompanyID, d.DriverType)
	if err != nil {
		return nil, fmt.Errorf("resolving deduction rules: %w", err)
	}

	resolved := deduction.Resolve(rules, gross, load.TotalLoadedMiles(params.Loads))

	lines := make([]*DeductionLine, 0, len(resolved)+1)

	for _, rl := range resolved {
		lines = append(lines, ruleLine(rl))
	}

	if escrow := escrowLine(d); escrow != nil {
		lines = append(lines, escrow)
	}

	deductions, additions := SumLines(lines)

	st := &Settlement{
		CompanyID:      d.CompanyID,
		DriverID:       d.ID,
		PeriodStart:    params.Period.Start,
		PeriodEnd:      params.Period.End,
		LoadIDs:        load.IDs(params.Loads),
		GrossPay:       gross,
		Deductions:     deductions,
		Additions:      additions,
		Advances:       params.Advances,
		NetPay:         ComputeNet(gross, additions, deductions, params.Advances),
		Status:         StatusPending,
		ApprovalStatus: ApprovalDraft,
		SalaryBatchID:  params.BatchID,
	}

	tx, err := s.repo.BeginCreate(ctx, d.CompanyID, d.ID)
	if err != nil {
		return nil, fmt.Errorf("begin settlement create: %w", err)
	}
	defer tx.Rollback()

	claimed, err := tx.ClaimedLoadIDs(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("re-checking claimed loads: %w", err)
	}

	for _, id := range st.LoadIDs {
		if _, taken := claimed[id]; taken {
			return nil, fmt.Errorf("load %s: %w", id, ErrLoadClaimed)
		}
	}

	if err := tx.CreateSettlement(ctx, st, lines); err != nil {
		return nil, fmt.Errorf("creating settlement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settlement: %w", err)
	}

	s.notifier.SettlementCreated(ctx, st.ID, d.ID)

	return st, nil
}

func ruleLine(rl deduction.Line) *DeductionLine {
	category := CategoryDeduction
	if rl.Addition {
		category = CategoryAddition
	}

	description := rl.Rule.Description
	if description == "" {
		description = rl.Rule.DeductionType
	}

	ruleID := rl.Rule.ID

	return &DeductionLine{
		RuleID:      &ruleID,
		Description: description,
		Amount:      rl.Amount,
		Category:    category,
	}
}

// escrowLine supplements rule-driven lines with the driver's weekly escrow
// deposit until the escrow target is reached.
func escrowLine(d *driver.Driver) *DeductionLine {
	if d.EscrowDeductionPerWeek <= 0 || d.EscrowTargetAmount <= 0 {
		return nil
	}

	remaining := d.EscrowTargetAmount - d.EscrowBalance
	if remaining <= 0 {
		return nil
	}

	return &DeductionLine{
		Description: "Escrow deposit",
		Amount:      min(d.EscrowDeductionPerWeek, remaining),
		Category:    CategoryDeduction,
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Settlement, error) {
	return s.repo.GetSettlement(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Settlement, error) {
	return s.repo.ListSettlements(ctx, filter)
}

func (s *Service) Lines(ctx context.Context, settlementID uuid.UUID) ([]*DeductionLine, error) {
	return s.repo.ListLines(ctx, settlementID)
}

func (s *Service) Batch(ctx context.Context, id uuid.UUID) (*SalaryBatch, error) {
	return s.repo.GetBatch(ctx, id)
}

// DriverSummary pairs one driver with the validation outcome of their eligible
// loads.
type DriverSummary struct {
	DriverID uuid.UUID
	Summary  Summary
}

// PreviewValidation dry-runs the per-load checks a batch would apply over the
// given period, without writing anything. Operators use it to clear blockers
// before triggering a run.
func (s *Service) PreviewValidation(ctx context.Context, companyID uuid.UUID, driverID *uuid.UUID, period load.Period) ([]DriverSummary, error) {
	if companyID == uuid.Nil {
		return nil, ErrMissingCompany
	}

	cfg, err := s.repo.ValidationConfig(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("loading validation config: %w", err)
	}

	validator := NewValidator(cfg)

	grouped, err := s.loads.Eligible(ctx, load.EligibleParams{
		CompanyID: companyID,
		DriverID:  driverID,
		Period:    period,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]DriverSummary, 0, len(grouped))

	for _, g := range grouped {
		d, err := s.drivers.Get(ctx, g.DriverID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, DriverSummary{
			DriverID: g.DriverID,
			Summary:  validator.ValidateAll(g.Loads, d, period),
		})
	}

	return summaries, nil
}

// Approve moves a draft settlement into the approved state, making it
// eligible for payment.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	st, err := s.repo.GetSettlement(ctx, id)
	if err != nil {
		return err
	}

	if st.ApprovalStatus != ApprovalDraft {
		return fmt.Errorf("%w: cannot approve a %s settlement", ErrInvalidTransition, st.ApprovalStatus)
	}

	return s.repo.UpdateApproval(ctx, id, ApprovalApproved, StatusApproved, "")
}

// Reject terminally rejects a draft settlement. Its loads drop out of the
// claimed-load ledger by definition of the exclusion query, so they are
// eligible again on the next run; no cleanup step exists to forget.
func (s *Service) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}

	st, err := s.repo.GetSettlement(ctx, id)
	if err != nil {
		return err
	}

	if st.ApprovalStatus != ApprovalDraft {
		return fmt.Errorf("%w: cannot reject a %s settlement", ErrInvalidTransition, st.ApprovalStatus)
	}

	if err := s.repo.UpdateApproval(ctx, id, ApprovalRejected, st.Status, reason); err != nil {
		return err
	}

	s.notifier.SettlementRejected(ctx, id, st.DriverID)

	return nil
}

// MarkPaid records payment of an approved settlement.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) error {
	st, err := s.repo.GetSettlement(ctx, id)
	if err != nil {
		return err
	}

	if st.ApprovalStatus != ApprovalApproved || st.Status != StatusApproved {
		return fmt.Errorf("%w: cannot pay a %s/%s settlement", ErrInvalidTransition, st.ApprovalStatus, st.Status)
	}

	return s.repo.UpdateStatus(ctx, id, StatusPaid)
}

// Dispute flags an approved, unpaid settlement as contested.
func (s *Service) Dispute(ctx context.Context, id uuid.UUID) error {
	st, err := s.repo.GetSettlement(ctx, id)
	if err != nil {
		return err
	}

	if st.Status != StatusApproved {
		return fmt.Errorf("%w: cannot dispute a %s settlement", ErrInvalidTransition, st.Status)
	}

	return s.repo.UpdateStatus(ctx, id, StatusDisputed)
}

// Delete removes a draft settlement. Approved and paid settlements are never
// deleted; they are corrected with compensating line items.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	st, err := s.repo.GetSettlement(ctx, id)
	if err != nil {
		return err
	}

	if !st.Editable() {
		return fmt.Errorf("%w: cannot delete a %s settlement", ErrNotDraft, st.ApprovalStatus)
	}

	return s.repo.DeleteSettlement(ctx, id)
}

// AddLine appends a manual adjustment line and recomputes totals.
func (s *Service) AddLine(ctx context.Context, settlementID uuid.UUID, description string, amount int64, category LineCategory) (*Settlement, error) {
	if amount < 0 {
		return nil, fmt.Errorf("line amount must not be negative")
	}

	if category != CategoryDeduction && category != CategoryAddition {
		return nil, fmt.Errorf("unknown line category %q", category)
	}

	tx, err := s.repo.BeginEdit(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("begin settlement edit: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Settlement(ctx)
	if err != nil {
		return nil, err
	}

	if !st.Editable() {
		return nil, fmt.Errorf("%w: settlement is %s", ErrNotDraft, st.ApprovalStatus)
	}

	line := &DeductionLine{
		SettlementID: st.ID,
		Description:  description,
		Amount:       amount,
		Category:     category,
	}

	if err := tx.InsertLine(ctx, line); err != nil {
		return nil, fmt.Errorf("inserting line: %w", err)
	}

	return s.finishEdit(ctx, tx, st, st.LoadIDs)
}

// RemoveLine deletes a line item and recomputes totals.
func (s *Service) RemoveLine(ctx context.Context, settlementID, lineID uuid.UUID) (*Settlement, error) {
	tx, err := s.repo.BeginEdit(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("begin settlement edit: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Settlement(ctx)
	if err != nil {
		return nil, err
	}

	if !st.Editable() {
		return nil, fmt.Errorf("%w: settlement is %s", ErrNotDraft, st.ApprovalStatus)
	}

	if err := tx.DeleteLine(ctx, lineID); err != nil {
		return nil, fmt.Errorf("deleting line: %w", err)
	}

	return s.finishEdit(ctx, tx, st, st.LoadIDs)
}

// AddLoad claims one more load for a draft settlement and recomputes totals.
// The load must pass the same eligibility gate a batch run applies: assigned
// to the settlement's driver, in a settleable status, flagged ready or already
// billed, and delivered inside the settlement period. Manual edits cannot
// attach work the generator would have skipped.
func (s *Service) AddLoad(ctx context.Context, settlementID, loadID uuid.UUID) (*Settlement, error) {
	tx, err := s.repo.BeginEdit(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("begin settlement edit: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Settlement(ctx)
	if err != nil {
		return nil, err
	}

	if !st.Editable() {
		return nil, fmt.Errorf("%w: settlement is %s", ErrNotDraft, st.ApprovalStatus)
	}

	for _, id := range st.LoadIDs {
		if id == loadID {
			return nil, fmt.Errorf("load %s: %w", loadID, ErrLoadClaimed)
		}
	}

	l, err := s.loads.Get(ctx, loadID)
	if err != nil {
		return nil, err
	}

	if l.DriverID == nil || *l.DriverID != st.DriverID || !l.Status.Settleable() {
		return nil, fmt.Errorf("load %s: %w", loadID, ErrLoadNotEligible)
	}

	if !l.ReadyForSettlement && !l.Status.Billed() {
		return nil, fmt.Errorf("load %s is not ready for settlement: %w", loadID, ErrLoadNotEligible)
	}

	period := load.Period{Start: st.PeriodStart, End: st.PeriodEnd}
	if l.DeliveredAt != nil && !period.IsZero() && !period.Contains(*l.DeliveredAt) {
		return nil, fmt.Errorf("load %s delivered outside the settlement period: %w", loadID, ErrLoadNotEligible)
	}

	claimed, err := tx.ClaimedLoadIDs(ctx, st.DriverID)
	if err != nil {
		return nil, fmt.Errorf("re-checking claimed loads: %w", err)
	}

	if _, taken := claimed[loadID]; taken {
		return nil, fmt.Errorf("load %s: %w", loadID, ErrLoadClaimed)
	}

	loadIDs := append(append([]uuid.UUID{}, st.LoadIDs...), loadID)

	if err := tx.SetLoadIDs(ctx, loadIDs); err != nil {
		return nil, fmt.Errorf("updating load list: %w", err)
	}

	return s.finishEdit(ctx, tx, st, loadIDs)
}

// RemoveLoad releases a load from a draft settlement and recomputes totals.
// The last load cannot be removed; delete the settlement instead.
func (s *Service) RemoveLoad(ctx context.Context, settlementID, loadID uuid.UUID) (*Settlement, error) {
	tx, err := s.repo.BeginEdit(ctx, settlementID)
	if err != nil {
		return nil, fmt.Errorf("begin settlement edit: %w", err)
	}
	defer tx.Rollback()

	st, err := tx.Settlement(ctx)
	if err != nil {
		return nil, err
	}

	if !st.Editable() {
		return nil, fmt.Errorf("%w: settlement is %s", ErrNotDraft, st.ApprovalStatus)
	}

	loadIDs := make([]uuid.UUID, 0, len(st.LoadIDs))

	found := false

	for _, id := range st.LoadIDs {
		if id == loadID {
			found = true
			continue
		}

		loadIDs = append(loadIDs, id)
	}

	if !found {
		return nil, fmt.Errorf("load %s: %w", loadID, load.ErrNotFound)
	}

	if len(loadIDs) == 0 {
		return nil, ErrNoLoads
	}

	if err := tx.SetLoadIDs(ctx, loadIDs); err != nil {
		return nil, fmt.Errorf("updating load list: %w", err)
	}

	return s.finishEdit(ctx, tx, st, loadIDs)
}

// finishEdit rebuilds gross pay from the settlement's current load set and
// deductions from the full surviving line set, writes the totals, and
// commits. Totals are always recomputed from scratch, never patched with
// incremental deltas.
func (s *Service) finishEdit(ctx context.Context, tx EditTx, st *Settlement, loadIDs []uuid.UUID) (*Settlement, error) {
	d, err := s.drivers.Get(ctx, st.DriverID)
	if err != nil {
		return nil, err
	}

	loads, err := s.loads.GetByIDs(ctx, loadIDs)
	if err != nil {
		return nil, err
	}

	lines, err := tx.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}

	gross := driver.GrossPay(d, loads)
	deductions, additions := SumLines(lines)
	net := ComputeNet(gross, additions, deductions, st.Advances)

	if err := tx.SetTotals(ctx, gross, deductions, additions, net); err != nil {
		return nil, fmt.Errorf("writing totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing edit: %w", err)
	}

	st.LoadIDs = loadIDs
	st.GrossPay = gross
	st.Deductions = deductions
	st.Additions = additions
	st.NetPay = net

	return st, nil
}
