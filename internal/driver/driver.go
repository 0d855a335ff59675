package driver

import (
	"time"

	"github.com/google/uuid"
)

// PayType represents a driver's compensation model.
type PayType string

const (
	PayPerMile    PayType = "per_mile"
	PayPercentage PayType = "percentage"
	PayFlat       PayType = "flat"
	PayOther      PayType = "other"
)

// Driver is the read model of a driver as the settlement engine sees it.
//
// PayRate is interpreted per PayType: cents per loaded mile for per_mile,
// basis points of revenue for percentage, cents per load for flat/other.
type Driver struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	MCNumberID uuid.UUID
	Name       string
	DriverType string
	PayType    PayType
	PayRate    int64

	EscrowBalance          int64 // cents
	EscrowTargetAmount     int64 // cents
	EscrowDeductionPerWeek int64 // cents

	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
