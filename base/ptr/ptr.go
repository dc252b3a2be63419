package ptr

import (
	"time"

	"github.com/shopspring/decimal"
)

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int return a pointer to the input value
func Int(value int) *int {
	return &value
}

// Bool return a pointer to the input value
func Bool(value bool) *bool {
	return &value
}

// Time return a pointer to the input value
func Time(value time.Time) *time.Time {
	return &value
}

// Decimal return a pointer to the input value
func Decimal(value decimal.Decimal) *decimal.Decimal {
	return &value
}

// DecimalFromString parses s and panics on malformed input. Meant for constants and tests.
func DecimalFromString(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
