package mysql

import (
	"context"
	"errors"
	"time"

	"campus-leave-service/internal/domain/leave"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *leave.LeaveApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// Save writes the whole row in one UPDATE; the rejection cascade relies
// on this so an observer never sees hod=rejected with final=pending.
func (r *ApplicationRepository) Save(ctx context.Context, app *leave.LeaveApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*leave.LeaveApplication, error) {
	var out leave.LeaveApplication
	err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leave.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*leave.LeaveApplication, error) {
	var out leave.LeaveApplication
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leave.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ApplicationRepository) ListByStaff(ctx context.Context, staffID string) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("application_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListPendingHOD(ctx context.Context, department string) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	err := r.db.WithContext(ctx).
		Where("department = ? AND hod_decision = ?", department, leave.DecisionPending).
		Order("application_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListPendingPrincipal(ctx context.Context) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	err := r.db.WithContext(ctx).
		Where("hod_decision = ? AND principal_decision = ?", leave.DecisionApproved, leave.DecisionPending).
		Order("application_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) ListAuthorizedAbsent(ctx context.Context, date time.Time) ([]leave.LeaveApplication, error) {
	var out []leave.LeaveApplication
	err := r.db.WithContext(ctx).
		Where("final_status = ? AND from_date <= ? AND to_date >= ?", leave.DecisionApproved, date, date).
		Order("staff_name ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) GetAuthorizedAbsentByStaffForUpdate(ctx context.Context, staffID string, date time.Time) (*leave.LeaveApplication, error) {
	var out leave.LeaveApplication
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("staff_id = ? AND final_status = ? AND from_date <= ? AND to_date >= ?",
			staffID, leave.DecisionApproved, date, date).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, leave.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
