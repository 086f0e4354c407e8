package application

import (
	"time"

	"campus-leave-service/internal/domain/leave"
	"campus-leave-service/pkg/businessday"
)

// ApplicationDTO is the wire shape shared by the submission, approval
// and gate surfaces. Dates travel as canonical YYYY-MM-DD.
type ApplicationDTO struct {
	ApplicationID      string     `json:"application_id"`
	StaffID            string     `json:"staff_id"`
	StaffName          string     `json:"staff_name"`
	Department         string     `json:"department"`
	Category           string     `json:"category"`
	FromDate           string     `json:"from_date"`
	ToDate             string     `json:"to_date"`
	Days               int        `json:"days"`
	Reason             string     `json:"reason"`
	ApplicationDate    string     `json:"application_date"`
	HodDecision        string     `json:"hod_decision"`
	PrincipalDecision  string     `json:"principal_decision"`
	FinalStatus        string     `json:"final_status"`
	HodDecidedBy       string     `json:"hod_decided_by,omitempty"`
	HodDecidedAt       *time.Time `json:"hod_decided_at,omitempty"`
	PrincipalDecidedBy string     `json:"principal_decided_by,omitempty"`
	PrincipalDecidedAt *time.Time `json:"principal_decided_at,omitempty"`
	BalanceAfter       *int       `json:"balance_after,omitempty"`
	ExitAsserted       bool       `json:"exit_asserted"`
	ExitTime           *time.Time `json:"exit_time,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func NewApplicationDTO(app *leave.LeaveApplication) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:      app.ApplicationID,
		StaffID:            app.StaffID,
		StaffName:          app.StaffName,
		Department:         app.Department,
		Category:           string(app.Category),
		FromDate:           businessday.FormatDate(app.FromDate),
		ToDate:             businessday.FormatDate(app.ToDate),
		Days:               businessday.DaysInclusive(app.FromDate, app.ToDate),
		Reason:             app.Reason,
		ApplicationDate:    businessday.FormatDate(app.ApplicationDate),
		HodDecision:        string(app.HodDecision),
		PrincipalDecision:  string(app.PrincipalDecision),
		FinalStatus:        string(app.FinalStatus),
		HodDecidedBy:       app.HodDecidedBy,
		HodDecidedAt:       app.HodDecidedAt,
		PrincipalDecidedBy: app.PrincipalDecidedBy,
		PrincipalDecidedAt: app.PrincipalDecidedAt,
		BalanceAfter:       app.BalanceAfter,
		ExitAsserted:       app.ExitAsserted,
		ExitTime:           app.ExitTime,
		CreatedAt:          app.CreatedAt,
	}
}

func toDTOs(rows []leave.LeaveApplication) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewApplicationDTO(&rows[i]))
	}
	return out
}
