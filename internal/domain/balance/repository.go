package balance

import (
	"context"

	"campus-leave-service/internal/domain/leave"
)

// Ledger is the single point of truth for remaining leave-day quotas.
type Ledger interface {
	// Debit decrements remaining_days by days if and only if the balance
	// covers it, as one conditional UPDATE. Returns the new balance.
	// ErrInsufficientBalance / ErrNoBalanceRecord leave the row untouched.
	// A failed Debit is terminal for the call; the ledger never retries.
	Debit(ctx context.Context, staffID string, category leave.Category, days int) (int, error)

	// Credit is the unconditional increment used to reverse an erroneous
	// debit. It does not deduplicate; idempotency is the caller's problem.
	Credit(ctx context.Context, staffID string, category leave.Category, days int) (int, error)

	Get(ctx context.Context, staffID string, category leave.Category) (*LeaveBalance, error)
}
