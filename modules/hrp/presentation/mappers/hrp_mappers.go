package mappers

import (
	"time"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/appointee"
	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/person"
	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/worker"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/employment"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/jobprofile"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/position"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/suporg"
	"github.com/iota-uz/hrp/modules/hrp/presentation/viewmodels"
)

const (
	dateLayout      = "2006-01-02 15:04:05-07:00"
	dateLayoutMicro = "2006-01-02 15:04:05.000000-07:00"
)

// FormatDate renders t as "2006-05-16 00:00:00-07:00", adding microseconds
// only when t has a fractional second.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	layout := dateLayout
	if t.Nanosecond() != 0 {
		layout = dateLayoutMicro
	}
	s := t.Format(layout)
	return &s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func EmploymentStatusToJSON(s employment.Status) *viewmodels.EmploymentStatus {
	return &viewmodels.EmploymentStatus{
		Status:            nullable(s.Status()),
		StatusCode:        nullable(s.StatusCode()),
		IsActive:          s.IsActive(),
		IsRetired:         s.IsRetired(),
		IsTerminated:      s.IsTerminated(),
		HireDate:          FormatDate(s.HireDate()),
		RetirementDate:    FormatDate(s.RetirementDate()),
		TerminationDate:   FormatDate(s.TerminationDate()),
		EndEmploymentDate: FormatDate(s.EndEmploymentDate()),
	}
}

func JobProfileToJSON(p jobprofile.JobProfile) *viewmodels.JobProfile {
	return &viewmodels.JobProfile{
		JobCode:     p.JobCode(),
		Description: p.Description(),
	}
}

func SupervisoryOrgToJSON(o suporg.SupervisoryOrganization) *viewmodels.SupervisoryOrg {
	return &viewmodels.SupervisoryOrg{
		BudgetCode: nullable(o.BudgetCode()),
		OrgCode:    nullable(o.OrgCode()),
		OrgName:    nullable(o.OrgName()),
	}
}

func PositionToJSON(p position.Position) *viewmodels.Position {
	return &viewmodels.Position{
		StartDate:      FormatDate(p.StartDate()),
		EndDate:        FormatDate(p.EndDate()),
		JobClass:       p.JobClass(),
		FTEPercent:     p.FTEPercent(),
		IsPrimary:      p.IsPrimary(),
		Location:       p.Location(),
		OrgUnitCode:    p.OrgUnitCode(),
		PosType:        p.PositionType(),
		PosTimeType:    p.TimeType(),
		SupervisorEID:  p.SupervisorEID(),
		Title:          p.Title(),
		JobProfile:     JobProfileToJSON(p.JobProfile()),
		SupervisoryOrg: SupervisoryOrgToJSON(p.SupervisoryOrganization()),
	}
}

func positionsToJSON(positions []position.Position) []*viewmodels.Position {
	out := make([]*viewmodels.Position, 0, len(positions))
	for _, p := range positions {
		out = append(out, PositionToJSON(p))
	}
	return out
}

// WorkerDetailsToJSON lists the primary position first, then the other active ones.
func WorkerDetailsToJSON(w person.WorkerDetails) *viewmodels.WorkerDetails {
	return &viewmodels.WorkerDetails{
		WorkerWID:        nullable(w.WID()),
		EmployeeStatus:   EmploymentStatusToJSON(w.EmploymentStatus()),
		PrimaryManagerID: w.PrimaryManagerID(),
		ActivePositions:  positionsToJSON(w.ActivePositions()),
	}
}

func PersonToJSON(p person.Person) *viewmodels.Person {
	details := make([]*viewmodels.WorkerDetails, 0, len(p.WorkerDetails()))
	for _, wd := range p.WorkerDetails() {
		details = append(details, WorkerDetailsToJSON(wd))
	}
	return &viewmodels.Person{
		NetID:            nullable(p.NetID()),
		RegID:            nullable(p.RegID()),
		EmployeeID:       nullable(p.EmployeeID()),
		StudentID:        p.StudentID(),
		IsActive:         p.IsActive(),
		PrimaryManagerID: p.PrimaryManagerID(),
		WorkerDetails:    details,
	}
}

func PersonsToJSON(persons []person.Person) []*viewmodels.Person {
	out := make([]*viewmodels.Person, 0, len(persons))
	for _, p := range persons {
		out = append(out, PersonToJSON(p))
	}
	return out
}

func WorkerToJSON(w worker.Worker) *viewmodels.Worker {
	return &viewmodels.Worker{
		NetID:            nullable(w.NetID()),
		RegID:            nullable(w.RegID()),
		EmployeeID:       nullable(w.EmployeeID()),
		EmployeeStatus:   EmploymentStatusToJSON(w.EmploymentStatus()),
		PrimaryManagerID: w.PrimaryManagerID(),
		ActivePositions:  positionsToJSON(w.ActivePositions()),
	}
}

func WorkerRefToJSON(r worker.Ref) *viewmodels.WorkerRef {
	return &viewmodels.WorkerRef{
		NetID:             nullable(r.NetID()),
		RegID:             nullable(r.RegID()),
		EmployeeID:        nullable(r.EmployeeID()),
		IsActive:          r.IsActive(),
		IsCurrentFaculty:  r.IsCurrentFaculty(),
		WorkdayPersonType: nullable(r.WorkdayPersonType()),
		Href:              nullable(r.Href()),
	}
}

func WorkerRefsToJSON(refs []worker.Ref) []*viewmodels.WorkerRef {
	out := make([]*viewmodels.WorkerRef, 0, len(refs))
	for _, r := range refs {
		out = append(out, WorkerRefToJSON(r))
	}
	return out
}

func AppointmentToJSON(a appointee.Appointment) *viewmodels.Appointment {
	return &viewmodels.Appointment{
		AppNumber:        a.Number(),
		AppState:         nullable(a.State()),
		DeptBudgetName:   nullable(a.DeptBudgetName()),
		DeptBudgetNumber: nullable(a.DeptBudgetNumber()),
		JobClassCode:     nullable(a.JobClassCode()),
		JobClassTitle:    nullable(a.JobClassTitle()),
		OrgCode:          nullable(a.OrgCode()),
		OrgName:          nullable(a.OrgName()),
		PaidAppCode:      nullable(a.PaidAppointmentCode()),
		Status:           nullable(a.Status()),
		StatusDesc:       nullable(a.StatusDesc()),
		PayRate:          a.PayRate().StringFixed(3),
	}
}

func AppointeeToJSON(a *appointee.Appointee) *viewmodels.Appointee {
	if a == nil {
		return nil
	}
	apps := make([]*viewmodels.Appointment, 0, len(a.Appointments()))
	for _, app := range a.Appointments() {
		apps = append(apps, AppointmentToJSON(app))
	}
	hd := a.HomeDepartment()
	return &viewmodels.Appointee{
		NetID:                nullable(a.NetID()),
		RegID:                nullable(a.RegID()),
		EmployeeID:           nullable(a.EmployeeID()),
		Status:               nullable(a.Status()),
		StatusDesc:           nullable(a.StatusDesc()),
		HomeDeptBudgetNumber: nullable(hd.BudgetNumber),
		HomeDeptBudgetName:   nullable(hd.BudgetName),
		HomeDeptOrgCode:      nullable(hd.OrgCode),
		HomeDeptOrgName:      nullable(hd.OrgName),
		OnOffCampusCode:      nullable(a.OnOffCampusCode()),
		OnOffCampusCodeDesc:  nullable(a.OnOffCampusCodeDesc()),
		Appointments:         apps,
	}
}
