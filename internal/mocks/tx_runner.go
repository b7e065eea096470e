package mocks

import (
	"context"

	"github.com/lifequest/lifequest-api/internal/store"
)

// MockTxRunner implements store.TxRunner for testing. By default it
// invokes the function with a nil transaction, which works with the
// mock stores because their WithTx methods ignore the transaction.
type MockTxRunner struct {
	// RunFn allows tests to override RunInTransaction behavior
	RunFn func(ctx context.Context, fn store.TxFn) error

	// RunCallCount tracks how many transactions were started
	RunCallCount int
}

// NewMockTxRunner creates a MockTxRunner with default behavior.
func NewMockTxRunner() *MockTxRunner {
	return &MockTxRunner{}
}

// RunInTransaction implements store.TxRunner.RunInTransaction
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.RunCallCount++
	if m.RunFn != nil {
		return m.RunFn(ctx, fn)
	}
	return fn(ctx, nil)
}
