package load

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a load. Dispatch and billing own
// these transitions; the settlement engine only reads them.
type Status string

const (
	StatusPending     Status = "pending"
	StatusAssigned    Status = "assigned"
	StatusInTransit   Status = "in_transit"
	StatusDelivered   Status = "delivered"
	StatusReadyToBill Status = "ready_to_bill"
	StatusInvoiced    Status = "invoiced"
	StatusBillingHold Status = "billing_hold"
	StatusPaid        Status = "paid"
	StatusCancelled   Status = "cancelled"
)

// Settleable reports whether the status allows the load to be settled at all.
func (s Status) Settleable() bool {
	switch s {
	case StatusDelivered, StatusReadyToBill, StatusInvoiced, StatusBillingHold, StatusPaid:
		return true
	}

	return false
}

// Billed reports whether billing has progressed far enough that the
// ready-for-settlement flag is implied.
func (s Status) Billed() bool {
	return s == StatusInvoiced || s == StatusPaid
}

// Load is the pay-relevant read model of a single freight movement.
type Load struct {
	ID                 uuid.UUID
	CompanyID          uuid.UUID
	DriverID           *uuid.UUID
	MCNumberID         uuid.UUID
	Status             Status
	Revenue            int64 // cents
	TotalMiles         int64
	LoadedMiles        int64
	EmptyMiles         int64
	DriverPay          int64 // cents; non-zero means dispatch set a manual override
	ReadyForSettlement bool
	DeliveredAt        *time.Time
	PODUploadedAt      *time.Time
	BOLUploadedAt      *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// TotalLoadedMiles sums loaded miles across a load set.
func TotalLoadedMiles(loads []*Load) int64 {
	var miles int64
	for _, l := range loads {
		miles += l.LoadedMiles
	}

	return miles
}

// TotalRevenue sums revenue in cents across a load set.
func TotalRevenue(loads []*Load) int64 {
	var revenue int64
	for _, l := range loads {
		revenue += l.Revenue
	}

	return revenue
}

// IDs returns the ids of the given loads in order.
func IDs(loads []*Load) []uuid.UUID {
	ids := make([]uuid.UUID, len(loads))
	for i, l := range loads {
		ids[i] = l.ID
	}

	return ids
}
