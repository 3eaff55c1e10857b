// Package fees implements the marketplace transaction fee schedule.
package fees

import (
	"errors"
	"math"

	"laundr/models"
)

// Fee schedule constants.
const (
	MinimumAmount  = 5.00
	Rate           = 0.03
	FixedSurcharge = 0.74
	FlatMinimumFee = 1.50
)

// ErrInvalidAmount is returned for amounts below the transaction minimum.
var ErrInvalidAmount = errors.New("transaction amount must be at least $5.00")

// roundCents rounds to 2 decimal places, half away from zero.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate computes the fee breakdown for a transaction amount:
// total = max(1.50, 0.03*amount + 0.74), split evenly between payer and
// payee. Pure and safe for concurrent use.
func Calculate(amount float64) (models.FeeBreakdown, error) {
	if amount < MinimumAmount {
		return models.FeeBreakdown{}, ErrInvalidAmount
	}

	total := math.Max(FlatMinimumFee, Rate*amount+FixedSurcharge)
	total = roundCents(total)
	half := roundCents(total / 2)
	return models.FeeBreakdown{
		Total: total,
		Payer: half,
		Payee: half,
	}, nil
}
