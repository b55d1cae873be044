package hrpws

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/appointee"
)

// ToDomainAppointee maps an appointee document. A document without a
// Person object yields nil and no error. Appointments without a positive
// pay rate are dropped.
func ToDomainAppointee(data gjson.Result) (*appointee.Appointee, error) {
	p := data.Get("Person")
	if !p.IsObject() {
		return nil, nil
	}

	var apps []appointee.Appointment
	for _, entry := range data.Get("Appointments").Array() {
		app, err := ToDomainAppointment(entry)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	return appointee.New(
		p.Get("UWNetID").String(),
		p.Get("UWRegID").String(),
		p.Get("EmployeeID").String(),
		appointee.WithStatus(p.Get("EmploymentStatus").String(), p.Get("EmploymentStatusDescription").String()),
		appointee.WithHomeDepartment(appointee.HomeDepartment{
			BudgetNumber: p.Get("HomeDepartmentBudgetNumber").String(),
			BudgetName:   p.Get("HomeDepartmentBudgetName").String(),
			OrgCode:      p.Get("HomeDepartmentOrganizationCode").String(),
			OrgName:      p.Get("HomeDepartmentOrganizationName").String(),
		}),
		appointee.WithCampus(p.Get("OnOffCampusCode").String(), p.Get("OnOffCampusCodeDescription").String()),
		appointee.WithAppointments(apps),
	), nil
}

func ToDomainAppointment(data gjson.Result) (appointee.Appointment, error) {
	number := 0
	if raw := strings.TrimSpace(data.Get("AppointmentNumber").String()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return appointee.Appointment{}, &ParseError{Field: "AppointmentNumber", Value: raw, Err: err}
		}
		number = n
	}
	payRate, err := decimalField(data, "PayRate")
	if err != nil {
		return appointee.Appointment{}, err
	}
	rate := decimal.Zero
	if payRate != nil {
		rate = *payRate
	}
	return appointee.NewAppointment(
		number,
		appointee.WithState(data.Get("AppointmentState").String()),
		appointee.WithDepartmentBudget(data.Get("DepartmentBudgetNumber").String(), data.Get("DepartmentBudgetName").String()),
		appointee.WithJobClass(data.Get("JobClassCode").String(), data.Get("JobClassTitle").String()),
		appointee.WithOrganization(data.Get("OrganizationCode").String(), data.Get("OrganizationName").String()),
		appointee.WithPaidAppointmentCode(data.Get("PaidAppointmentCode").String()),
		appointee.WithAppointmentStatus(data.Get("Status").String(), data.Get("StatusDescription").String()),
		appointee.WithPayRate(rate),
	), nil
}
