package approval

import (
	"context"
	"errors"
	"testing"

	"campus-leave-service/internal/domain/balance"
	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/internal/domain/uow"
	"campus-leave-service/internal/testutil/balancemock"
	"campus-leave-service/internal/testutil/uowmock"
	"campus-leave-service/pkg/businessday"

	"campus-leave-service/internal/usecase/application"
)

const (
	appID   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	staffID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	hodID   = "cccccccccccccccccccccccccccccccc"
	prinID  = "dddddddddddddddddddddddddddddddd"
)

// fixture: sick leave 2024-01-10 .. 2024-01-12 (3 days inclusive)
func newPendingApp() *leave.LeaveApplication {
	return &leave.LeaveApplication{
		ID:                77,
		ApplicationID:     appID,
		StaffID:           staffID,
		StaffName:         "R. Iyer",
		Department:        "physics",
		Category:          leave.CategorySick,
		FromDate:          businessday.Date(2024, 1, 10),
		ToDate:            businessday.Date(2024, 1, 12),
		ApplicationDate:   businessday.Date(2024, 1, 8),
		HodDecision:       leave.DecisionPending,
		PrincipalDecision: leave.DecisionPending,
		FinalStatus:       leave.DecisionPending,
	}
}

func newHodApprovedApp() *leave.LeaveApplication {
	app := newPendingApp()
	app.HodDecision = leave.DecisionApproved
	return app
}

// saveRecorder tracks Save calls so tests can assert both the written
// state and how many writes happened.
type saveRecorder struct {
	saved []leave.LeaveApplication
}

func (s *saveRecorder) fn(ctx context.Context, app *leave.LeaveApplication) error {
	s.saved = append(s.saved, *app)
	return nil
}

// withinAppTx builds a uow mock that hands fn the given application and
// wires Save through the recorder.
func withinAppTx(app *leave.LeaveApplication, rec *saveRecorder, balances *balancemock.Ledger) *uowmock.UoW {
	return &uowmock.UoW{
		WithinApplicationTxFn: func(ctx context.Context, applicationID string, fn func(r uow.Repos, a *leave.LeaveApplication) error) error {
			if app == nil {
				return leave.ErrNotFound
			}
			r := uow.Repos{Balances: balances}
			r.Applications = saveOnlyRepo{rec: rec}
			return fn(r, app)
		},
	}
}

type saveOnlyRepo struct {
	leave.Repository
	rec *saveRecorder
}

func (s saveOnlyRepo) Save(ctx context.Context, app *leave.LeaveApplication) error {
	return s.rec.fn(ctx, app)
}

func mustNoDebit(t *testing.T) *balancemock.Ledger {
	t.Helper()
	return &balancemock.Ledger{
		DebitFn: func(context.Context, string, leave.Category, int) (int, error) {
			t.Fatal("ledger debited on a non-approving transition")
			return 0, nil
		},
	}
}

func TestRecordHodDecision(t *testing.T) {
	tests := []struct {
		name     string
		app      *leave.LeaveApplication
		decision leave.Decision
		wantErr  error
		check    func(t *testing.T, rec *saveRecorder, dto *application.ApplicationDTO)
	}{
		{
			name:     "approve moves only hod decision",
			app:      newPendingApp(),
			decision: leave.DecisionApproved,
			check: func(t *testing.T, rec *saveRecorder, dto *application.ApplicationDTO) {
				if len(rec.saved) != 1 {
					t.Fatalf("saves = %d, want 1", len(rec.saved))
				}
				got := rec.saved[0]
				if got.HodDecision != leave.DecisionApproved {
					t.Fatalf("hod = %s, want approved", got.HodDecision)
				}
				if got.PrincipalDecision != leave.DecisionPending || got.FinalStatus != leave.DecisionPending {
					t.Fatalf("principal/final moved early: %s/%s", got.PrincipalDecision, got.FinalStatus)
				}
				if got.HodDecidedBy != hodID || got.HodDecidedAt == nil {
					t.Fatalf("decider audit missing: %+v", got)
				}
			},
		},
		{
			name:     "reject cascades all three fields in one save",
			app:      newPendingApp(),
			decision: leave.DecisionRejected,
			check: func(t *testing.T, rec *saveRecorder, dto *application.ApplicationDTO) {
				if len(rec.saved) != 1 {
					t.Fatalf("saves = %d, want 1", len(rec.saved))
				}
				got := rec.saved[0]
				if got.HodDecision != leave.DecisionRejected ||
					got.PrincipalDecision != leave.DecisionRejected ||
					got.FinalStatus != leave.DecisionRejected {
					t.Fatalf("cascade incomplete: %s/%s/%s", got.HodDecision, got.PrincipalDecision, got.FinalStatus)
				}
			},
		},
		{
			name:     "replaying the recorded decision is a no-op success",
			app:      newHodApprovedApp(),
			decision: leave.DecisionApproved,
			check: func(t *testing.T, rec *saveRecorder, dto *application.ApplicationDTO) {
				if len(rec.saved) != 0 {
					t.Fatalf("replay wrote %d saves", len(rec.saved))
				}
				if dto.HodDecision != "approved" {
					t.Fatalf("dto hod = %s", dto.HodDecision)
				}
			},
		},
		{
			name:     "changing a recorded decision fails",
			app:      newHodApprovedApp(),
			decision: leave.DecisionRejected,
			wantErr:  leave.ErrInvalidTransition,
		},
		{
			name:     "unknown application",
			app:      nil,
			decision: leave.DecisionApproved,
			wantErr:  leave.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &saveRecorder{}
			uc := NewUsecase(withinAppTx(tt.app, rec, mustNoDebit(t)))

			dto, err := uc.RecordHodDecision(context.Background(), DecisionInput{
				ApplicationID: appID,
				Decision:      tt.decision,
				DecidedBy:     hodID,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if tt.check != nil {
				tt.check(t, rec, dto)
			}
		})
	}
}

func TestRecordHodDecision_RejectsPending(t *testing.T) {
	uc := NewUsecase(uowmock.New())
	if _, err := uc.RecordHodDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionPending,
	}); !errors.Is(err, leave.ErrUnknownDecision) {
		t.Fatalf("err = %v, want ErrUnknownDecision", err)
	}
}

func TestRecordPrincipalDecision_ApproveDebitsOnce(t *testing.T) {
	app := newHodApprovedApp()
	rec := &saveRecorder{}
	debits := 0
	balances := &balancemock.Ledger{
		DebitFn: func(ctx context.Context, gotStaff string, cat leave.Category, days int) (int, error) {
			debits++
			if gotStaff != staffID || cat != leave.CategorySick {
				t.Fatalf("debit key = %s/%s", gotStaff, cat)
			}
			if days != 3 {
				t.Fatalf("days = %d, want 3 (inclusive of both endpoints)", days)
			}
			return 7, nil // balance was 10
		},
	}
	uc := NewUsecase(withinAppTx(app, rec, balances))

	dto, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionApproved, DecidedBy: prinID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if debits != 1 {
		t.Fatalf("debits = %d, want 1", debits)
	}
	if dto.PrincipalDecision != "approved" || dto.FinalStatus != "approved" {
		t.Fatalf("dto = %s/%s", dto.PrincipalDecision, dto.FinalStatus)
	}
	if dto.BalanceAfter == nil || *dto.BalanceAfter != 7 {
		t.Fatalf("balance snapshot = %v, want 7", dto.BalanceAfter)
	}

	// replay: the application is now terminal-approved; a second approve
	// must not debit again
	replayed, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionApproved, DecidedBy: prinID,
	})
	if err != nil {
		t.Fatalf("replay err: %v", err)
	}
	if debits != 1 {
		t.Fatalf("replay caused a second debit (debits = %d)", debits)
	}
	if replayed.FinalStatus != "approved" {
		t.Fatalf("replay dto final = %s", replayed.FinalStatus)
	}
}

func TestRecordPrincipalDecision_InsufficientBalance(t *testing.T) {
	app := newHodApprovedApp() // 3 days
	rec := &saveRecorder{}
	balances := &balancemock.Ledger{
		DebitFn: func(ctx context.Context, _ string, _ leave.Category, days int) (int, error) {
			return 0, balance.ErrInsufficientBalance // balance Sick=2 < 3
		},
	}
	uc := NewUsecase(withinAppTx(app, rec, balances))

	_, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionApproved, DecidedBy: prinID,
	})
	if !errors.Is(err, balance.ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}
	// decision must not be committed: no save, statuses untouched
	if len(rec.saved) != 0 {
		t.Fatalf("decision committed despite failed debit (%d saves)", len(rec.saved))
	}
	if app.PrincipalDecision != leave.DecisionPending || app.FinalStatus != leave.DecisionPending {
		t.Fatalf("statuses moved: %s/%s", app.PrincipalDecision, app.FinalStatus)
	}
}

func TestRecordPrincipalDecision_Guards(t *testing.T) {
	hodRejected := newPendingApp()
	hodRejected.HodDecision = leave.DecisionRejected
	hodRejected.PrincipalDecision = leave.DecisionRejected
	hodRejected.FinalStatus = leave.DecisionRejected

	principalRejected := newHodApprovedApp()
	principalRejected.PrincipalDecision = leave.DecisionRejected
	principalRejected.FinalStatus = leave.DecisionRejected

	tests := []struct {
		name     string
		app      *leave.LeaveApplication
		decision leave.Decision
		wantErr  error
	}{
		{"hod still pending", newPendingApp(), leave.DecisionApproved, leave.ErrNotEligible},
		{"hod rejected, approve attempt", hodRejected, leave.DecisionApproved, leave.ErrNotEligible},
		{"principal already rejected, approve attempt", principalRejected, leave.DecisionApproved, leave.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &saveRecorder{}
			uc := NewUsecase(withinAppTx(tt.app, rec, mustNoDebit(t)))
			_, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
				ApplicationID: appID, Decision: tt.decision, DecidedBy: prinID,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(rec.saved) != 0 {
				t.Fatalf("guard failure still wrote %d saves", len(rec.saved))
			}
		})
	}
}

func TestRecordPrincipalDecision_RejectSkipsLedger(t *testing.T) {
	app := newHodApprovedApp()
	rec := &saveRecorder{}
	uc := NewUsecase(withinAppTx(app, rec, mustNoDebit(t)))

	dto, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionRejected, DecidedBy: prinID,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.PrincipalDecision != "rejected" || dto.FinalStatus != "rejected" {
		t.Fatalf("dto = %s/%s", dto.PrincipalDecision, dto.FinalStatus)
	}
	// replaying the rejection is a no-op success too
	if _, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionRejected, DecidedBy: prinID,
	}); err != nil {
		t.Fatalf("replay err: %v", err)
	}
	if len(rec.saved) != 1 {
		t.Fatalf("saves = %d, want 1", len(rec.saved))
	}
}

func TestRecordPrincipalDecision_OneDayLeaveDebitsOneDay(t *testing.T) {
	app := newHodApprovedApp()
	app.FromDate = businessday.Date(2024, 2, 5)
	app.ToDate = businessday.Date(2024, 2, 5)
	rec := &saveRecorder{}
	balances := &balancemock.Ledger{
		DebitFn: func(ctx context.Context, _ string, _ leave.Category, days int) (int, error) {
			if days != 1 {
				t.Fatalf("days = %d, want 1 for a same-day leave", days)
			}
			return 9, nil
		},
	}
	uc := NewUsecase(withinAppTx(app, rec, balances))
	if _, err := uc.RecordPrincipalDecision(context.Background(), DecisionInput{
		ApplicationID: appID, Decision: leave.DecisionApproved, DecidedBy: prinID,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
