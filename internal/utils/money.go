package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatEuro renders an amount for customer-facing messages.
func FormatEuro(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

// Round2 rounds to two decimal places, the precision stored in the DB.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
