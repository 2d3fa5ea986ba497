package storage

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimals of the NUMERIC(12,2) money columns.
const MoneyScale = 2

// MaxMoney is the first value a NUMERIC(12,2) column can no longer hold.
var MaxMoney = decimal.New(1, 10)

// MoneyFits reports whether d is stored in a money column unchanged:
// no rounding and no overflow.
func MoneyFits(d decimal.Decimal) bool {
	return d.Abs().LessThan(MaxMoney) && d.Equal(d.Round(MoneyScale))
}
