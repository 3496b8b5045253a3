package attribute

import "fmt"

// BaseAttribute is any value that can be printed.
type BaseAttribute interface {
	fmt.Stringer
}

// NumericType represents the type of numeric value
type NumericType int

const (
	// Nothing marks the absence of a value
	Nothing NumericType = iota
	// Decimal represents an arbitrary decimal value with fixed precision
	Decimal
)

type NumericAttribute interface {
	BaseAttribute
	// GetNumericType returns the type of numeric value
	GetNumericType() NumericType
	// EqualTo checks if two numeric attributes are equal
	EqualTo(other NumericAttribute) bool
}
