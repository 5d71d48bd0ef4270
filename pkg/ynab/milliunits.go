package ynab

import "fmt"

// Milliunits is the integer currency representation used by the YNAB API:
// 1/1000 of the budget's base currency unit, so $10.50 is 10500.
type Milliunits int64

// Format renders the value as a display string with a leading dollar sign
// and exactly two decimal places. Negative amounts keep the sign after the
// symbol: -10500 renders as "$-10.50".
func (m Milliunits) Format() string {
	return fmt.Sprintf("$%.2f", float64(m)/1000)
}

// Float returns the value in currency units as a float64.
func (m Milliunits) Float() float64 {
	return float64(m) / 1000
}
