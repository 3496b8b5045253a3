package numeric

import (
	attr "outageschedule/pkg/api/attribute"

	apd "github.com/cockroachdb/apd/v3"
)

var (
	_ attr.NumericAttribute = (*decimalAttribute)(nil)
	_ DecimalValue          = (*decimalAttribute)(nil)

	hoursCtx apd.Context = apd.Context{
		Precision:   50,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
)

const minutesPerHour = 60

type decimalAttribute struct {
	value apd.Decimal
}

type DecimalValue interface {
	// GetDecimal returns the decimal value
	GetDecimal() *apd.Decimal
}

// GetDecimal implements DecimalValue.
func (d *decimalAttribute) GetDecimal() *apd.Decimal {
	return &d.value
}

// GetNumericType implements attribute.NumericAttribute.
func (d *decimalAttribute) GetNumericType() attr.NumericType {
	return attr.Decimal
}

// String implements attribute.NumericAttribute.
func (d *decimalAttribute) String() string {
	return d.value.String()
}

// MarshalText renders the decimal the same way as String, so JSON output
// keeps trailing zeros.
func (d *decimalAttribute) MarshalText() ([]byte, error) {
	return []byte(d.value.String()), nil
}

// EqualTo implements attribute.NumericAttribute.
func (d *decimalAttribute) EqualTo(other attr.NumericAttribute) bool {
	if other == nil {
		return false
	}
	if d.GetNumericType() != other.GetNumericType() {
		return false
	}
	decimalValue, ok := other.(DecimalValue)
	if !ok {
		return false
	}
	return d.value.Cmp(decimalValue.GetDecimal()) == 0
}

// NewDecimalAttribute creates a new decimal attribute from an apd.Decimal value.
func NewDecimalAttribute(value *apd.Decimal) attr.NumericAttribute {
	return &decimalAttribute{
		value: *value,
	}
}

// Hours converts a sum of minutes into hours per count, rounded half-even to
// two decimal places. A zero count yields NoneNumeric.
func Hours(minutes *apd.Decimal, count int64) (attr.NumericAttribute, error) {
	if count == 0 {
		return NoneNumeric, nil
	}
	hours := apd.New(0, 0)
	if _, err := hoursCtx.Quo(hours, minutes, apd.New(count*minutesPerHour, 0)); err != nil {
		return nil, err
	}
	if _, err := hoursCtx.Quantize(hours, hours, -2); err != nil {
		return nil, err
	}
	return NewDecimalAttribute(hours), nil
}
