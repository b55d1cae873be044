package appointee

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	activeStatusCode = "A"
	currentAppState  = "current"
)

// Appointment is a single paid assignment in the legacy appointee schema.
type Appointment struct {
	number           int
	state            string
	deptBudgetName   string
	deptBudgetNumber string
	jobClassCode     string
	jobClassTitle    string
	orgCode          string
	orgName          string
	paidAppCode      string
	status           string
	statusDesc       string
	payRate          decimal.Decimal
}

type AppointmentOption func(*Appointment)

func WithState(state string) AppointmentOption {
	return func(a *Appointment) {
		a.state = state
	}
}

func WithDepartmentBudget(number, name string) AppointmentOption {
	return func(a *Appointment) {
		a.deptBudgetNumber = number
		a.deptBudgetName = name
	}
}

func WithJobClass(code, title string) AppointmentOption {
	return func(a *Appointment) {
		a.jobClassCode = code
		a.jobClassTitle = title
	}
}

func WithOrganization(code, name string) AppointmentOption {
	return func(a *Appointment) {
		a.orgCode = code
		a.orgName = name
	}
}

func WithPaidAppointmentCode(code string) AppointmentOption {
	return func(a *Appointment) {
		a.paidAppCode = code
	}
}

func WithAppointmentStatus(code, desc string) AppointmentOption {
	return func(a *Appointment) {
		a.status = code
		a.statusDesc = desc
	}
}

func WithPayRate(rate decimal.Decimal) AppointmentOption {
	return func(a *Appointment) {
		a.payRate = rate
	}
}

func NewAppointment(number int, opts ...AppointmentOption) Appointment {
	a := Appointment{number: number}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a Appointment) Number() int {
	return a.number
}

func (a Appointment) State() string {
	return a.state
}

func (a Appointment) DeptBudgetName() string {
	return a.deptBudgetName
}

func (a Appointment) DeptBudgetNumber() string {
	return a.deptBudgetNumber
}

func (a Appointment) JobClassCode() string {
	return a.jobClassCode
}

func (a Appointment) JobClassTitle() string {
	return a.jobClassTitle
}

func (a Appointment) OrgCode() string {
	return a.orgCode
}

func (a Appointment) OrgName() string {
	return a.orgName
}

func (a Appointment) PaidAppointmentCode() string {
	return a.paidAppCode
}

func (a Appointment) Status() string {
	return a.status
}

func (a Appointment) StatusDesc() string {
	return a.statusDesc
}

func (a Appointment) PayRate() decimal.Decimal {
	return a.payRate
}

func (a Appointment) IsActiveAppStatus() bool {
	return a.status == activeStatusCode
}

func (a Appointment) IsCurrentAppState() bool {
	return strings.EqualFold(a.state, currentAppState)
}

// IsPaid reports a pay rate strictly above zero.
func (a Appointment) IsPaid() bool {
	return a.payRate.IsPositive()
}

func compareByNumber(a, b Appointment) int {
	return a.number - b.number
}
