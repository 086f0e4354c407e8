package leave

import (
	"context"
	"time"
)

// Repository is the leave application store. It is pure data access:
// decision and exit fields are mutated only through the approval and
// gate usecases, never by handlers.
type Repository interface {
	Create(ctx context.Context, app *LeaveApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LeaveApplication, error)
	// Locked read (SELECT ... FOR UPDATE); used inside a unit of work
	// before any state transition.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LeaveApplication, error)

	ListByStaff(ctx context.Context, staffID string) ([]LeaveApplication, error)
	// HOD queue: hod_decision pending, scoped to the HOD's department.
	ListPendingHOD(ctx context.Context, department string) ([]LeaveApplication, error)
	// Principal queue: hod approved, principal still pending.
	ListPendingPrincipal(ctx context.Context) ([]LeaveApplication, error)

	// Applications with final_status approved whose [from_date, to_date]
	// window contains date (both endpoints inclusive).
	ListAuthorizedAbsent(ctx context.Context, date time.Time) ([]LeaveApplication, error)
	// Locked variant of the above for a single staff member; feeds the
	// exit/return overlay.
	GetAuthorizedAbsentByStaffForUpdate(ctx context.Context, staffID string, date time.Time) (*LeaveApplication, error)

	// Save writes the whole row as one UPDATE, so a rejection cascade
	// (hod+principal+final together) is a single atomic statement.
	Save(ctx context.Context, app *LeaveApplication) error
}
