package driver

import (
	"github.com/openfreight/linehaul/internal/load"
)

// GrossPay computes gross pay in cents for a set of loads under the driver's
// compensation model.
//
// A non-zero per-load DriverPay is a manual override set by dispatch at
// assignment time; it is summed verbatim for any pay type and never
// recomputed. The formula applies only to loads without one:
//
//	per_mile:   loaded miles x rate (empty miles are informational)
//	percentage: revenue x rate, rate in basis points
//	flat/other: rate per load
func GrossPay(d *Driver, loads []*load.Load) int64 {
	var gross int64

	for _, l := range loads {
		if l.DriverPay != 0 {
			gross += l.DriverPay
			continue
		}

		switch d.PayType {
		case PayPerMile:
			gross += l.LoadedMiles * d.PayRate
		case PayPercentage:
			gross += l.Revenue * d.PayRate / 10000
		case PayFlat, PayOther:
			gross += d.PayRate
		}
	}

	return gross
}
