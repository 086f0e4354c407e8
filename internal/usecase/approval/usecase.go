package approval

import (
	"context"
	"time"

	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/internal/domain/uow"
	"campus-leave-service/internal/usecase/application"
	"campus-leave-service/pkg/businessday"
)

// Usecase is the approval state machine: the only code that moves an
// application's three status fields, and the only caller of the
// ledger's mutating operations. Every transition runs inside one
// transaction with the application row locked first.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type DecisionInput struct {
	ApplicationID string
	Decision      leave.Decision
	DecidedBy     string // 32-char hex, approver's staff id
}

// RecordHodDecision is the first approval tier. A rejection cascades to
// all three status fields in one write; the principal is never
// consulted and the ledger is never touched.
func (u *Usecase) RecordHodDecision(ctx context.Context, in DecisionInput) (*application.ApplicationDTO, error) {
	if in.Decision != leave.DecisionApproved && in.Decision != leave.DecisionRejected {
		return nil, leave.ErrUnknownDecision
	}
	var dto *application.ApplicationDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, app *leave.LeaveApplication) error {
		if app.HodDecision == in.Decision {
			// client retry of an already-recorded decision: no-op success
			dto = application.NewApplicationDTO(app)
			return nil
		}
		if app.HodDecision != leave.DecisionPending {
			return leave.ErrInvalidTransition
		}

		now := time.Now().UTC()
		app.HodDecidedBy = in.DecidedBy
		app.HodDecidedAt = &now
		if in.Decision == leave.DecisionRejected {
			app.HodDecision = leave.DecisionRejected
			app.PrincipalDecision = leave.DecisionRejected
			app.FinalStatus = leave.DecisionRejected
		} else {
			app.HodDecision = leave.DecisionApproved
		}
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		dto = application.NewApplicationDTO(app)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RecordPrincipalDecision is the second tier. On approval the ledger is
// debited before the decision is committed, inside the same
// transaction: if the balance doesn't cover the leave, the decision
// stays pending and the caller gets the typed failure; if the store
// fails after the debit, both roll back. An approved-but-unfunded
// application can therefore never exist.
func (u *Usecase) RecordPrincipalDecision(ctx context.Context, in DecisionInput) (*application.ApplicationDTO, error) {
	if in.Decision != leave.DecisionApproved && in.Decision != leave.DecisionRejected {
		return nil, leave.ErrUnknownDecision
	}
	var dto *application.ApplicationDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, app *leave.LeaveApplication) error {
		if app.PrincipalDecision == in.Decision {
			// retry replay; also covers re-rejecting an HOD-rejected application
			dto = application.NewApplicationDTO(app)
			return nil
		}
		if app.HodDecision != leave.DecisionApproved {
			return leave.ErrNotEligible
		}
		if app.PrincipalDecision != leave.DecisionPending {
			return leave.ErrInvalidTransition
		}

		now := time.Now().UTC()
		if in.Decision == leave.DecisionRejected {
			app.PrincipalDecision = leave.DecisionRejected
			app.FinalStatus = leave.DecisionRejected
		} else {
			days := businessday.DaysInclusive(app.FromDate, app.ToDate)
			remaining, err := r.Balances.Debit(ctx, app.StaffID, app.Category, days)
			if err != nil {
				return err
			}
			app.PrincipalDecision = leave.DecisionApproved
			app.FinalStatus = leave.DecisionApproved
			app.BalanceAfter = &remaining
		}
		app.PrincipalDecidedBy = in.DecidedBy
		app.PrincipalDecidedAt = &now
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}
		dto = application.NewApplicationDTO(app)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
