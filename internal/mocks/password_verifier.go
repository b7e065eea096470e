package mocks

import "errors"

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare succeeds when CompareFn is unset
	ShouldSucceed bool

	// CompareFn allows test cases to mock the Compare behavior
	CompareFn func(hashedPassword, password string) error

	// Call tracking
	CompareCallCount  int
	CompareCalledWith []string
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	m.CompareCalledWith = append(m.CompareCalledWith, password)

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
