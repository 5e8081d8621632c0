package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func decimalFromString(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decimal: %w", err)
	}
	return d, nil
}
