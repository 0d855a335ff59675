package settlement

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("settlement not found")
	ErrBatchNotFound     = errors.New("salary batch not found")
	ErrNotDraft          = errors.New("settlement is not in draft")
	ErrInvalidTransition = errors.New("invalid settlement transition")
	ErrReasonRequired    = errors.New("rejection reason is required")
	ErrNoLoads           = errors.New("no loads to settle")
	ErrLoadClaimed       = errors.New("load is already claimed by another settlement")
	ErrLoadNotEligible   = errors.New("load is not eligible for settlement")
	ErrMissingCompany    = errors.New("missing company context")
	ErrLineNotFound      = errors.New("deduction line not found")
)

// Status represents the payment state of a settlement.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
	StatusDisputed Status = "disputed"
)

// ApprovalStatus represents the review state of a settlement. Rejection is
// terminal and releases the settlement's loads back into the eligible pool.
type ApprovalStatus string

const (
	ApprovalDraft    ApprovalStatus = "draft"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Settlement is a computed pay record for one driver over one period.
//
// LoadIDs is the single source of truth for what has been paid: a load is
// settled iff it appears here while ApprovalStatus is not rejected. The list
// is fixed at creation and changes only through explicit edit operations.
type Settlement struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	DriverID    uuid.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	LoadIDs     []uuid.UUID

	GrossPay   int64 // cents
	Deductions int64 // cents
	Additions  int64 // cents
	Advances   int64 // cents
	NetPay     int64 // cents, never negative

	Status          Status
	ApprovalStatus  ApprovalStatus
	RejectionReason string
	SalaryBatchID   *uuid.UUID

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Editable reports whether the settlement may still be mutated. Approved and
// paid settlements are corrected via compensating line items, never edited.
func (s *Settlement) Editable() bool {
	return s.ApprovalStatus == ApprovalDraft
}

// LineCategory distinguishes earnings additions from deductions.
type LineCategory string

const (
	CategoryDeduction LineCategory = "deduction"
	CategoryAddition  LineCategory = "addition"
)

// DeductionLine is one monetary adjustment attached to a settlement.
type DeductionLine struct {
	ID           uuid.UUID
	SettlementID uuid.UUID
	RuleID       *uuid.UUID
	Description  string
	Amount       int64 // cents, non-negative
	Category     LineCategory
	CreatedAt    time.Time
}

// BatchStatus represents the review state of a salary batch.
type BatchStatus string

const (
	BatchOpen   BatchStatus = "open"
	BatchClosed BatchStatus = "closed"
)

// SalaryBatch groups the settlements produced by one fleet-wide run.
type SalaryBatch struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	BatchNumber     string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	SettlementCount int
	TotalAmount     int64 // cents, sum of net pay
	Status          BatchStatus
	CreatedByID     uuid.UUID
	CreatedAt       time.Time
}

// ComputeNet applies the net pay formula with its zero floor.
func ComputeNet(gross, additions, deductions, advances int64) int64 {
	net := gross + additions - deductions - advances
	if net < 0 {
		return 0
	}

	return net
}

// SumLines totals the surviving line items by category.
func SumLines(lines []*DeductionLine) (deductions, additions int64) {
	for _, l := range lines {
		if l.Category == CategoryAddition {
			additions += l.Amount
			continue
		}

		deductions += l.Amount
	}

	return deductions, additions
}
