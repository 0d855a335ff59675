package settlement

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/load"
)

// ValidationConfig selects which checks block settlement creation for a load.
// A flag set to true makes the check a hard error; false demotes it to a
// warning. The zero value is the permissive default. Status membership and
// out-of-period delivery are always hard errors and cannot be disabled.
type ValidationConfig struct {
	RequireProofOfDelivery bool
	RequireReadyFlag       bool
	RequireDeliveryDate    bool
	RequireMCNumberMatch   bool
}

// StrictConfig enables every configurable check as a hard error.
func StrictConfig() ValidationConfig {
	return ValidationConfig{
		RequireProofOfDelivery: true,
		RequireReadyFlag:       true,
		RequireDeliveryDate:    true,
		RequireMCNumberMatch:   true,
	}
}

// staleDeliveryAge is the delivery age past which a load draws a staleness
// warning. Never a blocker.
const staleDeliveryAge = 30 * 24 * time.Hour

// Validation is the outcome of validating one load. Validation never mutates
// data; an invalid load is simply excluded from the current run and stays
// eligible for the next one.
type Validation struct {
	LoadID   uuid.UUID
	Valid    bool
	Errors   []string
	Warnings []string
}

// Summary aggregates validation outcomes across a load set.
type Summary struct {
	Valid   int
	Invalid int
	Warned  int
	Results []Validation
}

type Validator struct {
	cfg ValidationConfig
	now func() time.Time
}

func NewValidator(cfg ValidationConfig) *Validator {
	return &Validator{cfg: cfg, now: time.Now}
}

// NewValidatorAt pins the validator's clock, for deterministic staleness
// checks in tests.
func NewValidatorAt(cfg ValidationConfig, now func() time.Time) *Validator {
	return &Validator{cfg: cfg, now: now}
}

// Validate checks one load against the strictness policy for the given driver
// and settlement period.
func (v *Validator) Validate(l *load.Load, d *driver.Driver, period load.Period) Validation {
	result := Validation{LoadID: l.ID, Valid: true}

	fail := func(msg string) {
		result.Valid = false
		result.Errors = append(result.Errors, msg)
	}
	warn := func(msg string) {
		result.Warnings = append(result.Warnings, msg)
	}
	flag := func(hard bool, msg string) {
		if hard {
			fail(msg)
			return
		}

		warn(msg)
	}

	// Status membership is mandatory regardless of configuration.
	if !l.Status.Settleable() {
		fail(fmt.Sprintf("load status %q is not settleable", l.Status))
	}

	if l.PODUploadedAt == nil {
		flag(v.cfg.RequireProofOfDelivery, "proof of delivery has not been uploaded")
	}

	if !l.ReadyForSettlement && !l.Status.Billed() {
		flag(v.cfg.RequireReadyFlag, "load is not flagged ready for settlement")
	}

	switch {
	case l.DeliveredAt == nil:
		flag(v.cfg.RequireDeliveryDate, "load has no delivery date")
	case !period.IsZero() && !period.Contains(*l.DeliveredAt):
		// Paying for out-of-period work corrupts period reporting, so this
		// stays a hard error no matter how permissive the config is.
		fail(fmt.Sprintf("delivered %s, outside the settlement period", l.DeliveredAt.Format(time.DateOnly)))
	case v.now().Sub(*l.DeliveredAt) > staleDeliveryAge:
		warn(fmt.Sprintf("delivered %s, more than 30 days ago", l.DeliveredAt.Format(time.DateOnly)))
	}

	if l.MCNumberID != d.MCNumberID {
		flag(v.cfg.RequireMCNumberMatch, "load MC number does not match the driver's")
	}

	if l.BOLUploadedAt == nil {
		warn("bill of lading has not been uploaded")
	}

	return result
}

// ValidateAll validates a load set and aggregates the outcomes.
func (v *Validator) ValidateAll(loads []*load.Load, d *driver.Driver, period load.Period) Summary {
	summary := Summary{Results: make([]Validation, 0, len(loads))}

	for _, l := range loads {
		result := v.Validate(l, d, period)
		summary.Results = append(summary.Results, result)

		switch {
		case !result.Valid:
			summary.Invalid++
		case len(result.Warnings) > 0:
			summary.Warned++
			summary.Valid++
		default:
			summary.Valid++
		}
	}

	return summary
}
