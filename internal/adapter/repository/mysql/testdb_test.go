package mysql

import (
	"testing"

	"campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with both core tables. The
// entities avoid MySQL-only column types on purpose so the domain
// models migrate unchanged here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&leave.LeaveApplication{}, &balance.LeaveBalance{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
