package balance

import (
	"errors"
	"time"

	"campus-leave-service/internal/domain/leave"
)

var (
	// Quota exhausted: the conditional debit matched no row because
	// remaining_days < requested days. Nothing was mutated.
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	// No row was ever provisioned for (staff, category); distinct from a
	// zero balance.
	ErrNoBalanceRecord = errors.New("no balance record for staff and category")
)

// Table: leave_balances. One row per (staff, category), provisioned out
// of band; remaining_days never goes negative.
type LeaveBalance struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	StaffID       string         `gorm:"column:staff_id;type:char(32);not null;uniqueIndex:ux_leave_balances_staff_category"`
	Category      leave.Category `gorm:"column:category;size:20;not null;uniqueIndex:ux_leave_balances_staff_category"`
	RemainingDays int            `gorm:"column:remaining_days;not null"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveBalance) TableName() string { return "leave_balances" }
