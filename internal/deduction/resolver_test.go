package deduction_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfreight/linehaul/internal/deduction"
)

func int64Ptr(v int64) *int64 { return &v }

func TestResolve(t *testing.T) {
	type testCase struct {
		name        string
		rules       []*deduction.Rule
		grossPay    int64
		loadedMiles int64
		want        []int64
	}

	tests := []testCase{
		{
			name: "FixedAmount",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcFixed, Amount: 5000, IsActive: true},
			},
			grossPay: 100000,
			want:     []int64{5000},
		},
		{
			name: "PercentageOfGross",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcPercentage, Percentage: 250, IsActive: true},
			},
			grossPay: 100000,
			want:     []int64{2500},
		},
		{
			name: "PerMile",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcPerMile, PerMileRate: 3, IsActive: true},
			},
			grossPay:    100000,
			loadedMiles: 1450,
			want:        []int64{4350},
		},
		{
			name: "InactiveSkipped",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcFixed, Amount: 5000, IsActive: false},
			},
			grossPay: 100000,
			want:     []int64{},
		},
		{
			name: "MinGrossPayGatesWholeRule",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcFixed, Amount: 5000, MinGrossPay: 50000, IsActive: true},
			},
			grossPay: 49999,
			want:     []int64{},
		},
		{
			name: "MinGrossPayMetExactly",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcFixed, Amount: 5000, MinGrossPay: 50000, IsActive: true},
			},
			grossPay: 50000,
			want:     []int64{5000},
		},
		{
			name: "MaxAmountCaps",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcPercentage, Percentage: 1000, MaxAmount: int64Ptr(7500), IsActive: true},
			},
			grossPay: 100000,
			want:     []int64{7500},
		},
		{
			name: "NegativeClampedToZero",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcFixed, Amount: -100, IsActive: true},
			},
			grossPay: 100000,
			want:     []int64{0},
		},
		{
			name: "UnknownCalculationTypeSkipped",
			rules: []*deduction.Rule{
				{CalculationType: "lottery", Amount: 5000, IsActive: true},
			},
			grossPay: 100000,
			want:     []int64{},
		},
		{
			name: "OrderPreserved",
			rules: []*deduction.Rule{
				{CalculationType: deduction.CalcFixed, Amount: 1, IsActive: true},
				{CalculationType: deduction.CalcFixed, Amount: 2, IsActive: true},
				{CalculationType: deduction.CalcFixed, Amount: 3, IsActive: true},
			},
			grossPay: 100000,
			want:     []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := deduction.Resolve(tt.rules, tt.grossPay, tt.loadedMiles)

			require.Len(t, lines, len(tt.want))

			for i, line := range lines {
				assert.Equal(t, tt.want[i], line.Amount)
			}
		})
	}
}

func TestResolve_AdditionFlag(t *testing.T) {
	rules := []*deduction.Rule{
		{ID: uuid.New(), CalculationType: deduction.CalcFixed, Amount: 10000, IsAddition: true, IsActive: true},
		{ID: uuid.New(), CalculationType: deduction.CalcFixed, Amount: 2000, IsActive: true},
	}

	lines := deduction.Resolve(rules, 100000, 0)

	require.Len(t, lines, 2)
	assert.True(t, lines[0].Addition)
	assert.False(t, lines[1].Addition)
	assert.Same(t, rules[0], lines[0].Rule)
}
