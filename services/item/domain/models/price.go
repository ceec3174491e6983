package models

import "fmt"

// Price is a value object representing a non-negative item price.
type Price float64

// NewPrice constructs a valid Price or returns an error when negative.
func NewPrice(v float64) (Price, error) {
	if v < 0 {
		return 0, fmt.Errorf("price must not be negative, got %v", v)
	}
	return Price(v), nil
}

// Float64 returns the underlying numeric value.
func (p Price) Float64() float64 {
	return float64(p)
}
