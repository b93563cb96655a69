package usecase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	amountPlaces = 8
	// maxAmountLen bounds the coefficient a submitted amount can carry.
	maxAmountLen = 64
)

var requiredBalanceRate = decimal.New(1, -1) // 10%

var chainUnits = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
	"dogecoin": "DOGE",
	"litecoin": "LTC",
	"tron":     "TRX",
	"solana":   "SOL",
}

// ParseAmount reads a submitted amount; anything non-numeric is zero. Values
// outside the float64 range, or too long to be an amount, count as
// non-numeric: rounding them would expand the exponent digit by digit.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if len(s) > maxAmountLen {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && f == 0) {
		return decimal.Zero
	}
	return d
}

// FormatAmount rounds to 8 decimal places, ties away from zero, with trailing
// zeros dropped ("1.123456789" -> "1.12345679", "10.0" -> "10").
func FormatAmount(s string) string {
	return ParseAmount(s).Round(amountPlaces).String()
}

// RequiredBalance is the informational 10% balance shown on receipts. It is
// never enforced.
func RequiredBalance(s string) string {
	return ParseAmount(s).Mul(requiredBalanceRate).Round(amountPlaces).String()
}

// UnitForChain maps a chain name to its display unit; unknown chains show
// their own name upper-cased.
func UnitForChain(chain string) string {
	if unit, ok := chainUnits[strings.ToLower(strings.TrimSpace(chain))]; ok {
		return unit
	}
	return strings.ToUpper(chain)
}
