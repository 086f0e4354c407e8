package balancemock

import (
	"context"
	"errors"

	domain "campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"
)

// Ensure compile-time compliance
var _ domain.Ledger = (*Ledger)(nil)

var errUnimplemented = errors.New("balancemock: method not implemented")

// Ledger is a function-backed mock that satisfies balance.Ledger.
type Ledger struct {
	DebitFn  func(ctx context.Context, staffID string, category leave.Category, days int) (int, error)
	CreditFn func(ctx context.Context, staffID string, category leave.Category, days int) (int, error)
	GetFn    func(ctx context.Context, staffID string, category leave.Category) (*domain.LeaveBalance, error)
}

func (m *Ledger) Debit(ctx context.Context, staffID string, category leave.Category, days int) (int, error) {
	if m.DebitFn != nil {
		return m.DebitFn(ctx, staffID, category, days)
	}
	return 0, errUnimplemented
}

func (m *Ledger) Credit(ctx context.Context, staffID string, category leave.Category, days int) (int, error) {
	if m.CreditFn != nil {
		return m.CreditFn(ctx, staffID, category, days)
	}
	return 0, errUnimplemented
}

func (m *Ledger) Get(ctx context.Context, staffID string, category leave.Category) (*domain.LeaveBalance, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, staffID, category)
	}
	return nil, errUnimplemented
}
