package appointee

import "slices"

type HomeDepartment struct {
	BudgetNumber string
	BudgetName   string
	OrgCode      string
	OrgName      string
}

// Appointee is a person in the legacy appointee schema together with
// their paid appointments.
type Appointee struct {
	netID               string
	regID               string
	employeeID          string
	status              string
	statusDesc          string
	homeDept            HomeDepartment
	onOffCampusCode     string
	onOffCampusCodeDesc string
	appointments        []Appointment
}

type Option func(*Appointee)

func WithStatus(code, desc string) Option {
	return func(a *Appointee) {
		a.status = code
		a.statusDesc = desc
	}
}

func WithHomeDepartment(hd HomeDepartment) Option {
	return func(a *Appointee) {
		a.homeDept = hd
	}
}

func WithCampus(code, desc string) Option {
	return func(a *Appointee) {
		a.onOffCampusCode = code
		a.onOffCampusCodeDesc = desc
	}
}

// WithAppointments retains only paid appointments, ordered by appointment number.
func WithAppointments(apps []Appointment) Option {
	return func(a *Appointee) {
		paid := make([]Appointment, 0, len(apps))
		for _, app := range apps {
			if app.IsPaid() {
				paid = append(paid, app)
			}
		}
		slices.SortStableFunc(paid, compareByNumber)
		a.appointments = paid
	}
}

func New(netID, regID, employeeID string, opts ...Option) *Appointee {
	a := &Appointee{
		netID:        netID,
		regID:        regID,
		employeeID:   employeeID,
		appointments: []Appointment{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Appointee) NetID() string {
	return a.netID
}

func (a *Appointee) RegID() string {
	return a.regID
}

func (a *Appointee) EmployeeID() string {
	return a.employeeID
}

func (a *Appointee) Status() string {
	return a.status
}

func (a *Appointee) StatusDesc() string {
	return a.statusDesc
}

func (a *Appointee) HomeDepartment() HomeDepartment {
	return a.homeDept
}

func (a *Appointee) OnOffCampusCode() string {
	return a.onOffCampusCode
}

func (a *Appointee) OnOffCampusCodeDesc() string {
	return a.onOffCampusCodeDesc
}

func (a *Appointee) Appointments() []Appointment {
	return a.appointments
}

func (a *Appointee) IsActiveEmpStatus() bool {
	return a.status == activeStatusCode
}
