package mysql

import (
	"context"
	"errors"

	"campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"

	"gorm.io/gorm"
)

type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

// Debit is one conditional UPDATE: the WHERE clause carries the
// remaining_days >= days check, so two principals approving for the
// same staff/category concurrently can never drive the balance
// negative. A read-then-write here would be a lost-update bug.
func (r *BalanceRepository) Debit(ctx context.Context, staffID string, category leave.Category, days int) (int, error) {
	res := r.db.WithContext(ctx).
		Model(&balance.LeaveBalance{}).
		Where("staff_id = ? AND category = ? AND remaining_days >= ?", staffID, category, days).
		Update("remaining_days", gorm.Expr("remaining_days - ?", days))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// Nothing matched: either the row was never provisioned or the
		// quota doesn't cover the request.
		if _, err := r.Get(ctx, staffID, category); err != nil {
			return 0, err
		}
		return 0, balance.ErrInsufficientBalance
	}
	b, err := r.Get(ctx, staffID, category)
	if err != nil {
		return 0, err
	}
	return b.RemainingDays, nil
}

func (r *BalanceRepository) Credit(ctx context.Context, staffID string, category leave.Category, days int) (int, error) {
	res := r.db.WithContext(ctx).
		Model(&balance.LeaveBalance{}).
		Where("staff_id = ? AND category = ?", staffID, category).
		Update("remaining_days", gorm.Expr("remaining_days + ?", days))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, balance.ErrNoBalanceRecord
	}
	b, err := r.Get(ctx, staffID, category)
	if err != nil {
		return 0, err
	}
	return b.RemainingDays, nil
}

func (r *BalanceRepository) Get(ctx context.Context, staffID string, category leave.Category) (*balance.LeaveBalance, error) {
	var out balance.LeaveBalance
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND category = ?", staffID, category).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, balance.ErrNoBalanceRecord
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
