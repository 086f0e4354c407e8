package gate

import (
	"context"
	"errors"

	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/internal/domain/uow"
	"campus-leave-service/internal/usecase/application"
	"campus-leave-service/pkg/businessday"
)

// Usecase answers "who is off-site today under an approved leave" for
// the security desk and records the physical exit/return overlay. It
// never touches decisions or the ledger.
type Usecase struct {
	apps  leave.Repository
	uow   uow.UnitOfWork
	clock *businessday.Clock
}

func NewUsecase(apps leave.Repository, tx uow.UnitOfWork, clock *businessday.Clock) *Usecase {
	return &Usecase{apps: apps, uow: tx, clock: clock}
}

func (u *Usecase) ListAuthorizedToday(ctx context.Context) ([]application.ApplicationDTO, error) {
	rows, err := u.apps.ListAuthorizedAbsent(ctx, u.clock.Today())
	if err != nil {
		return nil, err
	}
	out := make([]application.ApplicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *application.NewApplicationDTO(&rows[i]))
	}
	return out, nil
}

// MarkExit asserts that the staff member physically left campus. A
// second exit before a return is rejected, not silently absorbed, so
// the desk learns the person is already recorded as out.
func (u *Usecase) MarkExit(ctx context.Context, staffID string) (*application.ApplicationDTO, error) {
	var dto *application.ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetAuthorizedAbsentByStaffForUpdate(ctx, staffID, u.clock.Today())
		if err != nil {
			if errors.Is(err, leave.ErrNotFound) {
				return leave.ErrNotAuthorizedToday
			}
			return err
		}
		if app.ExitAsserted {
			return leave.ErrAlreadyExited
		}
		now := u.clock.Now()
		app.ExitAsserted = true
		app.ExitTime = &now
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

func (u *Usecase) MarkReturn(ctx context.Context, staffID string) (*application.ApplicationDTO, error) {
	var dto *application.ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetAuthorizedAbsentByStaffForUpdate(ctx, staffID, u.clock.Today())
		if err != nil {
			if errors.Is(err, leave.ErrNotFound) {
				return leave.ErrNotAuthorizedToday
			}
			return err
		}
		if !app.ExitAsserted {
			return leave.ErrNotExited
		}
		app.ExitAsserted = false
		app.ExitTime = nil
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
