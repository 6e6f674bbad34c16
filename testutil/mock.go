// Package testutil provides test helpers for extsvc (e.g. MockValidator).
package testutil

import (
	"github.com/skosovsky/extsvc"
)

// MockValidator is a configurable ConfigValidator for tests of code that depends on one.
// Calls records every invocation in order.
type MockValidator struct {
	ValidateFn func(json, serviceName string) error
	ExtractFn  func(json string) ([]string, error)
	Calls      []Call
}

// Call is one recorded MockValidator invocation. Service is empty for extract calls.
type Call struct {
	Method  string
	JSON    string
	Service string
}

// ValidateForUpdate runs ValidateFn if set, otherwise accepts.
func (m *MockValidator) ValidateForUpdate(json, serviceName string) error {
	m.Calls = append(m.Calls, Call{Method: "ValidateForUpdate", JSON: json, Service: serviceName})
	if m.ValidateFn != nil {
		return m.ValidateFn(json, serviceName)
	}
	return nil
}

// ExtractTopLevelKeys runs ExtractFn if set, otherwise returns no keys.
func (m *MockValidator) ExtractTopLevelKeys(json string) ([]string, error) {
	m.Calls = append(m.Calls, Call{Method: "ExtractTopLevelKeys", JSON: json})
	if m.ExtractFn != nil {
		return m.ExtractFn(json)
	}
	return []string{}, nil
}

// Ensure MockValidator implements ConfigValidator.
var _ extsvc.ConfigValidator = (*MockValidator)(nil)
