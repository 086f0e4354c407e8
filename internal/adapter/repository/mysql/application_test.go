package mysql

import (
	"context"
	"errors"
	"testing"

	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/pkg/businessday"
	"campus-leave-service/pkg/id"
)

func makeApplication(staffID, department string, from, to string) *leave.LeaveApplication {
	f, _ := businessday.ParseDate(from)
	t, _ := businessday.ParseDate(to)
	return &leave.LeaveApplication{
		ApplicationID:     id.NewID32(),
		StaffID:           staffID,
		StaffName:         "A. Sharma",
		Department:        department,
		Category:          leave.CategorySick,
		FromDate:          f,
		ToDate:            t,
		Reason:            "test",
		ApplicationDate:   f,
		HodDecision:       leave.DecisionPending,
		PrincipalDecision: leave.DecisionPending,
		FinalStatus:       leave.DecisionPending,
	}
}

func TestCreateAndGetByApplicationID(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := makeApplication(id.NewID32(), "physics", "2024-01-10", "2024-01-12")
	if err := repo.Create(ctx, app); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if app.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByApplicationID(ctx, app.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.StaffID != app.StaffID || got.Category != leave.CategorySick {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.FinalStatus != leave.DecisionPending {
		t.Fatalf("final status = %s, want pending", got.FinalStatus)
	}

	if _, err := repo.GetByApplicationID(ctx, id.NewID32()); !errors.Is(err, leave.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSave_WritesDecisionCascadeAtomically(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := makeApplication(id.NewID32(), "physics", "2024-01-10", "2024-01-12")
	if err := repo.Create(ctx, app); err != nil {
		t.Fatalf("Create: %v", err)
	}

	app.HodDecision = leave.DecisionRejected
	app.PrincipalDecision = leave.DecisionRejected
	app.FinalStatus = leave.DecisionRejected
	if err := repo.Save(ctx, app); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByApplicationID(ctx, app.ApplicationID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.HodDecision != leave.DecisionRejected ||
		got.PrincipalDecision != leave.DecisionRejected ||
		got.FinalStatus != leave.DecisionRejected {
		t.Fatalf("cascade not persisted: %s/%s/%s", got.HodDecision, got.PrincipalDecision, got.FinalStatus)
	}
}

func TestListPendingQueues(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	physics := makeApplication(id.NewID32(), "physics", "2024-01-10", "2024-01-12")
	chemistry := makeApplication(id.NewID32(), "chemistry", "2024-01-10", "2024-01-12")
	hodDone := makeApplication(id.NewID32(), "physics", "2024-01-15", "2024-01-16")
	hodDone.HodDecision = leave.DecisionApproved
	for _, a := range []*leave.LeaveApplication{physics, chemistry, hodDone} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	hodQueue, err := repo.ListPendingHOD(ctx, "physics")
	if err != nil {
		t.Fatalf("ListPendingHOD: %v", err)
	}
	if len(hodQueue) != 1 || hodQueue[0].ApplicationID != physics.ApplicationID {
		t.Fatalf("hod queue = %+v", hodQueue)
	}

	prinQueue, err := repo.ListPendingPrincipal(ctx)
	if err != nil {
		t.Fatalf("ListPendingPrincipal: %v", err)
	}
	if len(prinQueue) != 1 || prinQueue[0].ApplicationID != hodDone.ApplicationID {
		t.Fatalf("principal queue = %+v", prinQueue)
	}
}

func TestListByStaff_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()
	staff := id.NewID32()

	older := makeApplication(staff, "physics", "2024-01-02", "2024-01-03")
	newer := makeApplication(staff, "physics", "2024-02-05", "2024-02-05")
	other := makeApplication(id.NewID32(), "physics", "2024-02-05", "2024-02-05")
	for _, a := range []*leave.LeaveApplication{older, newer, other} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err := repo.ListByStaff(ctx, staff)
	if err != nil {
		t.Fatalf("ListByStaff: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].ApplicationID != newer.ApplicationID {
		t.Fatalf("expected newest first, got %s", rows[0].ApplicationID)
	}
}

func TestListAuthorizedAbsent_InclusiveWindow(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	approved := makeApplication(id.NewID32(), "physics", "2024-01-10", "2024-01-12")
	approved.HodDecision = leave.DecisionApproved
	approved.PrincipalDecision = leave.DecisionApproved
	approved.FinalStatus = leave.DecisionApproved

	pending := makeApplication(id.NewID32(), "physics", "2024-01-10", "2024-01-12")

	if err := repo.Create(ctx, approved); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, pending); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		date string
		want int
	}{
		{"2024-01-09", 0},
		{"2024-01-10", 1}, // from_date inclusive
		{"2024-01-11", 1},
		{"2024-01-12", 1}, // to_date inclusive
		{"2024-01-13", 0},
	}
	for _, tt := range tests {
		date, _ := businessday.ParseDate(tt.date)
		rows, err := repo.ListAuthorizedAbsent(ctx, date)
		if err != nil {
			t.Fatalf("ListAuthorizedAbsent(%s): %v", tt.date, err)
		}
		if len(rows) != tt.want {
			t.Fatalf("date %s: rows = %d, want %d", tt.date, len(rows), tt.want)
		}
		// pending applications never authorize an absence
		for _, r := range rows {
			if r.FinalStatus != leave.DecisionApproved {
				t.Fatalf("non-approved row in authorized list: %+v", r)
			}
		}
	}
}
