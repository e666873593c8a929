package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Диапазон суммы заявки в долларах, как в продуктовом контракте.
var (
	minOfferedAmount = decimal.NewFromInt(10)
	maxOfferedAmount = decimal.NewFromInt(100)
)

func isValidAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(minOfferedAmount) && amount.LessThanOrEqual(maxOfferedAmount)
}

func isValidUrgency(urgency string) bool {
	switch urgency {
	case "within_3_days", "within_7_days", "flexible":
		return true
	default:
		return false
	}
}

func isFilled(fields ...*string) bool {
	for _, field := range fields {
		if field == nil || strings.TrimSpace(*field) == "" {
			return false
		}
	}
	return true
}
