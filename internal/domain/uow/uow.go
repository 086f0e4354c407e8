package uow

import (
	"context"

	"campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"
)

type Repos struct {
	Applications leave.Repository
	Balances     balance.Ledger
}

// UnitOfWork binds both repositories to one transaction so a decision
// commit and its ledger debit succeed or roll back together.
type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, app *leave.LeaveApplication) error) error
}
