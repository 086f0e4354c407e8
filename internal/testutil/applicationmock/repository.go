package applicationmock

import (
	"context"
	"errors"
	"time"

	domain "campus-leave-service/internal/domain/leave"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("applicationmock: method not implemented")

// Repo is a function-backed mock that satisfies leave.Repository.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type Repo struct {
	CreateFn                              func(ctx context.Context, app *domain.LeaveApplication) error
	GetByApplicationIDFn                  func(ctx context.Context, applicationID string) (*domain.LeaveApplication, error)
	GetByApplicationIDForUpdateFn         func(ctx context.Context, applicationID string) (*domain.LeaveApplication, error)
	ListByStaffFn                         func(ctx context.Context, staffID string) ([]domain.LeaveApplication, error)
	ListPendingHODFn                      func(ctx context.Context, department string) ([]domain.LeaveApplication, error)
	ListPendingPrincipalFn                func(ctx context.Context) ([]domain.LeaveApplication, error)
	ListAuthorizedAbsentFn                func(ctx context.Context, date time.Time) ([]domain.LeaveApplication, error)
	GetAuthorizedAbsentByStaffForUpdateFn func(ctx context.Context, staffID string, date time.Time) (*domain.LeaveApplication, error)
	SaveFn                                func(ctx context.Context, app *domain.LeaveApplication) error
}

func (m *Repo) Create(ctx context.Context, app *domain.LeaveApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, app)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.LeaveApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.LeaveApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStaff(ctx context.Context, staffID string) ([]domain.LeaveApplication, error) {
	if m.ListByStaffFn != nil {
		return m.ListByStaffFn(ctx, staffID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPendingHOD(ctx context.Context, department string) ([]domain.LeaveApplication, error) {
	if m.ListPendingHODFn != nil {
		return m.ListPendingHODFn(ctx, department)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPendingPrincipal(ctx context.Context) ([]domain.LeaveApplication, error) {
	if m.ListPendingPrincipalFn != nil {
		return m.ListPendingPrincipalFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAuthorizedAbsent(ctx context.Context, date time.Time) ([]domain.LeaveApplication, error) {
	if m.ListAuthorizedAbsentFn != nil {
		return m.ListAuthorizedAbsentFn(ctx, date)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetAuthorizedAbsentByStaffForUpdate(ctx context.Context, staffID string, date time.Time) (*domain.LeaveApplication, error) {
	if m.GetAuthorizedAbsentByStaffForUpdateFn != nil {
		return m.GetAuthorizedAbsentByStaffForUpdateFn(ctx, staffID, date)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, app *domain.LeaveApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, app)
	}
	return nil
}
