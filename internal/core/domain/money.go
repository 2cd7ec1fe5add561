package domain

import "github.com/shopspring/decimal"

// RoundMoney rounds a currency amount half away from zero to two decimals.
func RoundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
