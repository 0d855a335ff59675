package deduction

// Line is one resolved adjustment for a settlement.
type Line struct {
	Rule     *Rule
	Amount   int64 // cents, always non-negative
	Addition bool
}

// Resolve computes the adjustment each rule yields for the given gross pay and
// loaded miles. Rules whose MinGrossPay threshold is not met are omitted
// entirely, not applied at zero. Computed amounts are capped at MaxAmount.
// Input order is preserved in the output.
func Resolve(rules []*Rule, grossPay, loadedMiles int64) []Line {
	lines := make([]Line, 0, len(rules))

	for _, r := range rules {
		if !r.IsActive {
			continue
		}

		if grossPay < r.MinGrossPay {
			continue
		}

		var amount int64

		switch r.CalculationType {
		case CalcFixed:
			amount = r.Amount
		case CalcPercentage:
			amount = grossPay * r.Percentage / 10000
		case CalcPerMile:
			amount = r.PerMileRate * loadedMiles
		default:
			continue
		}

		if amount < 0 {
			amount = 0
		}

		if r.MaxAmount != nil && amount > *r.MaxAmount {
			amount = *r.MaxAmount
		}

		lines = append(lines, Line{Rule: r, Amount: amount, Addition: r.IsAddition})
	}

	return lines
}
