package api

import (
	"bytes"
	"strconv"
)

// Decimal is a monetary value on the wire. The backend serializes decimals
// as JSON strings ("5.90"); some aggregate fields arrive as plain numbers.
// Unparseable values decode to zero, mirroring how the pages treat them.
type Decimal float64

// UnmarshalJSON accepts "5.90", 5.9 and null.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" {
		*d = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*d = 0
		return nil
	}
	*d = Decimal(v)
	return nil
}

// MarshalJSON emits a plain JSON number.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(d), 'f', -1, 64)), nil
}

// Float returns the underlying float64.
func (d Decimal) Float() float64 {
	return float64(d)
}
