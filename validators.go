package numfield

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateOn controls when validation runs. Combine with bitwise OR.
type ValidateOn uint8

const (
	VOnChange ValidateOn = 1 << iota // validate on every accepted edit
	VOnBlur                          // validate when the field loses focus
	VOnSubmit                        // validate when the host calls RunValidation
)

// NumberValidator validates a canonical numeric value. Every validator except
// VRequired passes the empty value through, so optional fields stay quiet
// until filled; combine with VRequired when a value is mandatory.
type NumberValidator func(canonical string) error

// VAll runs validators in order and returns the first error.
func VAll(vs ...NumberValidator) NumberValidator {
	return func(c string) error {
		for _, v := range vs {
			if err := v(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// VRequired rejects the empty value.
func VRequired(c string) error {
	if c == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// VInteger rejects values with a nonzero fractional part.
func VInteger(c string) error {
	if c == "" {
		return nil
	}
	if i := strings.IndexByte(c, '.'); i >= 0 && strings.Trim(c[i+1:], "0") != "" {
		return fmt.Errorf("whole numbers only")
	}
	return nil
}

// VPositive rejects values not strictly greater than zero.
func VPositive(c string) error {
	if c == "" {
		return nil
	}
	f, err := canonicalFloat(c)
	if err != nil {
		return err
	}
	if f <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// VNonNegative rejects values below zero.
func VNonNegative(c string) error {
	if c == "" {
		return nil
	}
	f, err := canonicalFloat(c)
	if err != nil {
		return err
	}
	if f < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// VMin rejects values below min.
func VMin(min float64) NumberValidator {
	return func(c string) error {
		if c == "" {
			return nil
		}
		f, err := canonicalFloat(c)
		if err != nil {
			return err
		}
		if f < min {
			return fmt.Errorf("min %s", trimFloat(min))
		}
		return nil
	}
}

// VMax rejects values above max.
func VMax(max float64) NumberValidator {
	return func(c string) error {
		if c == "" {
			return nil
		}
		f, err := canonicalFloat(c)
		if err != nil {
			return err
		}
		if f > max {
			return fmt.Errorf("max %s", trimFloat(max))
		}
		return nil
	}
}

// canonicalFloat parses a canonical value, mapping the in-progress states the
// shape gate admits but ParseFloat rejects ("-", a lone ".") to a user-facing
// message.
func canonicalFloat(c string) (float64, error) {
	f, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return 0, fmt.Errorf("incomplete number")
	}
	return f, nil
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
