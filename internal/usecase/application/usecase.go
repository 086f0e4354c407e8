package application

import (
	"context"
	"errors"
	"time"

	"campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/pkg/businessday"
	"campus-leave-service/pkg/id"
)

var ErrUnknownRole = errors.New("unknown approver role")

const (
	RoleHOD       = "hod"
	RolePrincipal = "principal"
)

type Usecase struct {
	apps     leave.Repository
	balances balance.Ledger
	clock    *businessday.Clock
}

func NewUsecase(apps leave.Repository, balances balance.Ledger, clock *businessday.Clock) *Usecase {
	return &Usecase{apps: apps, balances: balances, clock: clock}
}

type SubmitInput struct {
	StaffID    string `json:"staff_id"`
	StaffName  string `json:"staff_name"`
	Department string `json:"department"`
	Category   string `json:"category"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	Reason     string `json:"reason"`
}

func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*ApplicationDTO, error) {
	cat, err := leave.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	from, err := businessday.ParseDate(in.FromDate)
	if err != nil {
		return nil, leave.ErrInvalidDateRange
	}
	to, err := businessday.ParseDate(in.ToDate)
	if err != nil {
		return nil, leave.ErrInvalidDateRange
	}
	if to.Before(from) {
		return nil, leave.ErrInvalidDateRange
	}

	app := &leave.LeaveApplication{
		ApplicationID:     id.NewID32(),
		StaffID:           in.StaffID,
		StaffName:         in.StaffName,
		Department:        in.Department,
		Category:          cat,
		FromDate:          from,
		ToDate:            to,
		Reason:            in.Reason,
		ApplicationDate:   u.clock.Today(),
		HodDecision:       leave.DecisionPending,
		PrincipalDecision: leave.DecisionPending,
		FinalStatus:       leave.DecisionPending,
	}
	if err := u.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return NewApplicationDTO(app), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	app, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return NewApplicationDTO(app), nil
}

func (u *Usecase) ListByStaff(ctx context.Context, staffID string) ([]ApplicationDTO, error) {
	rows, err := u.apps.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return toDTOs(rows), nil
}

// ListPending is the approval-queue read path. The HOD view is scoped
// to one department; the principal sees everything already carrying an
// HOD approval.
func (u *Usecase) ListPending(ctx context.Context, role, department string) ([]ApplicationDTO, error) {
	switch role {
	case RoleHOD:
		if department == "" {
			return nil, ErrUnknownRole
		}
		rows, err := u.apps.ListPendingHOD(ctx, department)
		if err != nil {
			return nil, err
		}
		return toDTOs(rows), nil
	case RolePrincipal:
		rows, err := u.apps.ListPendingPrincipal(ctx)
		if err != nil {
			return nil, err
		}
		return toDTOs(rows), nil
	default:
		return nil, ErrUnknownRole
	}
}

type BalanceDTO struct {
	StaffID       string    `json:"staff_id"`
	Category      string    `json:"category"`
	RemainingDays int       `json:"remaining_days"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *Usecase) GetBalance(ctx context.Context, staffID, category string) (*BalanceDTO, error) {
	cat, err := leave.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	b, err := u.balances.Get(ctx, staffID, cat)
	if err != nil {
		return nil, err
	}
	return &BalanceDTO{
		StaffID:       b.StaffID,
		Category:      string(b.Category),
		RemainingDays: b.RemainingDays,
		UpdatedAt:     b.UpdatedAt,
	}, nil
}
