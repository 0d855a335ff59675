package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfreight/linehaul/internal/driver"
	"github.com/openfreight/linehaul/internal/load"
)

func TestGrossPay(t *testing.T) {
	type testCase struct {
		name   string
		driver *driver.Driver
		loads  []*load.Load
		want   int64
	}

	tests := []testCase{
		{
			name:   "PerMileUsesLoadedMilesOnly",
			driver: &driver.Driver{PayType: driver.PayPerMile, PayRate: 55},
			loads: []*load.Load{
				{LoadedMiles: 1450, EmptyMiles: 200},
			},
			want: 79750,
		},
		{
			name:   "PercentageInBasisPoints",
			driver: &driver.Driver{PayType: driver.PayPercentage, PayRate: 2500},
			loads: []*load.Load{
				{Revenue: 400000},
			},
			want: 100000,
		},
		{
			name:   "FlatRatePerLoad",
			driver: &driver.Driver{PayType: driver.PayFlat, PayRate: 30000},
			loads: []*load.Load{
				{Revenue: 400000}, {Revenue: 100000},
			},
			want: 60000,
		},
		{
			name:   "OtherBehavesLikeFlat",
			driver: &driver.Driver{PayType: driver.PayOther, PayRate: 12345},
			loads: []*load.Load{
				{LoadedMiles: 500},
			},
			want: 12345,
		},
		{
			name:   "OverrideWinsOverFormula",
			driver: &driver.Driver{PayType: driver.PayPerMile, PayRate: 55},
			loads: []*load.Load{
				{LoadedMiles: 1000, DriverPay: 99999},
				{LoadedMiles: 100},
			},
			want: 99999 + 5500,
		},
		{
			name:   "OverrideWinsForPercentageToo",
			driver: &driver.Driver{PayType: driver.PayPercentage, PayRate: 2500},
			loads: []*load.Load{
				{Revenue: 400000, DriverPay: 50000},
			},
			want: 50000,
		},
		{
			name:   "ZeroMetricsYieldZero",
			driver: &driver.Driver{PayType: driver.PayPerMile, PayRate: 55},
			loads: []*load.Load{
				{LoadedMiles: 0, Revenue: 0},
			},
			want: 0,
		},
		{
			name:   "NoLoads",
			driver: &driver.Driver{PayType: driver.PayFlat, PayRate: 30000},
			loads:  nil,
			want:   0,
		},
		{
			name:   "PercentageTruncatesTowardZero",
			driver: &driver.Driver{PayType: driver.PayPercentage, PayRate: 3333},
			loads: []*load.Load{
				{Revenue: 101},
			},
			want: 33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, driver.GrossPay(tt.driver, tt.loads))
		})
	}
}
