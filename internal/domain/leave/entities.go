package leave

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound           = errors.New("leave application not found")
	ErrInvalidDateRange   = errors.New("to_date is before from_date")
	ErrInvalidTransition  = errors.New("decision already recorded for this application")
	ErrNotEligible        = errors.New("application has no HOD approval yet")
	ErrNotAuthorizedToday = errors.New("no approved leave covers today for this staff member")
	ErrAlreadyExited      = errors.New("exit already asserted for this application")
	ErrNotExited          = errors.New("no exit asserted for this application")
	ErrUnknownCategory    = errors.New("unknown leave category")
	ErrUnknownDecision    = errors.New("unknown decision")
)

// Category is the closed set of leave types. Each category carries its
// own per-staff quota in the balance ledger.
type Category string

const (
	CategorySick      Category = "sick"
	CategoryAcademic  Category = "academic"
	CategoryEmergency Category = "emergency"
	CategoryMaternity Category = "maternity"
	CategoryFamily    Category = "family"
	CategoryTravel    Category = "travel"
	CategoryOther     Category = "other"
)

func Categories() []Category {
	return []Category{
		CategorySick, CategoryAcademic, CategoryEmergency,
		CategoryMaternity, CategoryFamily, CategoryTravel, CategoryOther,
	}
}

// ParseCategory rejects anything outside the closed set so a bad
// category never reaches the store as a free string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Decision is used for both approver decisions and the derived final
// status; the final status is never written independently of the two.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// ParseDecision accepts only the two decisions a caller may record;
// "pending" is the initial state, not something an approver can set.
func ParseDecision(s string) (Decision, error) {
	switch d := Decision(strings.ToLower(strings.TrimSpace(s))); d {
	case DecisionApproved, DecisionRejected:
		return d, nil
	default:
		return "", ErrUnknownDecision
	}
}

// Table: leave_applications. Rows are never deleted; the application
// history is the audit trail for every approval and every debit.
type LeaveApplication struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_leave_applications_application_id"`

	// staff_id is owned by the external faculty directory; department is
	// resolved there at submission time and captured here so the HOD
	// pending queue can be scoped without a directory round trip.
	StaffID    string `gorm:"column:staff_id;type:char(32);not null;index:idx_leave_applications_staff"`
	StaffName  string `gorm:"column:staff_name;size:120;not null"`
	Department string `gorm:"column:department;size:80;not null;index:idx_leave_applications_department"`

	Category Category  `gorm:"column:category;size:20;not null;index"`
	FromDate time.Time `gorm:"column:from_date;type:date;not null"`
	ToDate   time.Time `gorm:"column:to_date;type:date;not null"`
	Reason   string    `gorm:"column:reason;type:text"`
	// Business date of submission, immutable.
	ApplicationDate time.Time `gorm:"column:application_date;type:date;not null"`

	HodDecision       Decision `gorm:"column:hod_decision;size:10;not null;default:'pending'"`
	PrincipalDecision Decision `gorm:"column:principal_decision;size:10;not null;default:'pending'"`
	FinalStatus       Decision `gorm:"column:final_status;size:10;not null;default:'pending';index"`

	HodDecidedBy       string     `gorm:"column:hod_decided_by;type:char(32)"`
	HodDecidedAt       *time.Time `gorm:"column:hod_decided_at"`
	PrincipalDecidedBy string     `gorm:"column:principal_decided_by;type:char(32)"`
	PrincipalDecidedAt *time.Time `gorm:"column:principal_decided_at"`
	// Remaining balance right after the approving debit, kept for audit.
	BalanceAfter *int `gorm:"column:balance_after"`

	// Security overlay; meaningful only while final_status is approved
	// and today falls within [from_date, to_date].
	ExitAsserted bool       `gorm:"column:exit_asserted;not null;default:false"`
	ExitTime     *time.Time `gorm:"column:exit_time"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveApplication) TableName() string { return "leave_applications" }
