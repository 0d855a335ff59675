package deduction

import (
	"time"

	"github.com/google/uuid"
)

// CalculationType determines how a rule's amount is computed.
type CalculationType string

const (
	CalcFixed      CalculationType = "fixed"
	CalcPercentage CalculationType = "percentage"
	CalcPerMile    CalculationType = "per_mile"
)

// Frequency is carried on the rule for reporting; every active rule applies
// once per settlement.
type Frequency string

const (
	FrequencyPerSettlement Frequency = "per_settlement"
	FrequencyWeekly        Frequency = "weekly"
	FrequencyMonthly       Frequency = "monthly"
)

// Rule is a configurable template that computes a monetary adjustment to a
// driver's gross pay. A nil DriverType applies the rule company-wide, in
// addition to any type-scoped rules.
type Rule struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	DriverType    *string
	DeductionType string
	Description   string

	CalculationType CalculationType
	Amount          int64 // cents, for fixed
	Percentage      int64 // basis points of gross pay, for percentage
	PerMileRate     int64 // cents per loaded mile, for per_mile

	Frequency   Frequency
	MinGrossPay int64  // cents; the rule is skipped when gross pay is below
	MaxAmount   *int64 // cents; caps the computed amount when set

	IsAddition bool
	IsActive   bool
	CreatedAt  time.Time
}
