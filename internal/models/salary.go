package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SalaryUnspecified is the sentinel string persisted in place of a number
// when a vacancy carries no salary.
const SalaryUnspecified = "unspecified"

// Salary is a tagged variant: either a concrete non-negative amount or
// "not specified". The two are distinct; an unspecified salary is not zero.
// The zero value is the unspecified variant.
type Salary struct {
	amount    float64
	specified bool
}

// NewSalary builds a numeric salary. Negative amounts are rejected.
func NewSalary(amount float64) (Salary, error) {
	if amount < 0 {
		return Salary{}, &ValidationError{Field: "salary", Reason: "must not be negative"}
	}
	return Salary{amount: amount, specified: true}, nil
}

// UnspecifiedSalary returns the "no salary given" variant.
func UnspecifiedSalary() Salary {
	return Salary{}
}

// Amount returns the numeric value; ok is false for the unspecified variant.
func (s Salary) Amount() (amount float64, ok bool) {
	return s.amount, s.specified
}

// Specified reports whether the salary holds a numeric value.
func (s Salary) Specified() bool {
	return s.specified
}

func (s Salary) String() string {
	if !s.specified {
		return "not specified"
	}
	return strconv.FormatFloat(s.amount, 'f', -1, 64)
}

// SalaryFromValue converts a loosely-typed source value into a Salary.
// nil, the empty string and the sentinel string mean unspecified; numbers
// go through NewSalary; anything else is a validation error.
func SalaryFromValue(v any) (Salary, error) {
	switch val := v.(type) {
	case nil:
		return UnspecifiedSalary(), nil
	case string:
		if val == "" || val == SalaryUnspecified {
			return UnspecifiedSalary(), nil
		}
		return Salary{}, &ValidationError{Field: "salary", Reason: fmt.Sprintf("must be a number, got %q", val)}
	case float64:
		return NewSalary(val)
	case int:
		return NewSalary(float64(val))
	case int64:
		return NewSalary(float64(val))
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return Salary{}, &ValidationError{Field: "salary", Reason: fmt.Sprintf("must be a number, got %q", val.String())}
		}
		return NewSalary(f)
	default:
		return Salary{}, &ValidationError{Field: "salary", Reason: fmt.Sprintf("must be a number, got %T", v)}
	}
}

func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.specified {
		return json.Marshal(SalaryUnspecified)
	}
	return json.Marshal(s.amount)
}

func (s *Salary) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := SalaryFromValue(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
