package viewmodels

// Field names mirror the JSON documents produced by the HRP client in other
// languages so that downstream consumers can switch without remapping.

type EmploymentStatus struct {
	Status            *string `json:"status" yaml:"status"`
	StatusCode        *string `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	IsActive          bool    `json:"is_active" yaml:"is_active"`
	IsRetired         bool    `json:"is_retired" yaml:"is_retired"`
	IsTerminated      bool    `json:"is_terminated" yaml:"is_terminated"`
	HireDate          *string `json:"hire_date" yaml:"hire_date"`
	RetirementDate    *string `json:"retirement_date" yaml:"retirement_date"`
	TerminationDate   *string `json:"termination_date" yaml:"termination_date"`
	EndEmploymentDate *string `json:"end_emp_date,omitempty" yaml:"end_emp_date,omitempty"`
}

type JobProfile struct {
	JobCode     *string `json:"job_code" yaml:"job_code"`
	Description *string `json:"description" yaml:"description"`
}

type SupervisoryOrg struct {
	BudgetCode *string `json:"budget_code" yaml:"budget_code"`
	OrgCode    *string `json:"org_code" yaml:"org_code"`
	OrgName    *string `json:"org_name" yaml:"org_name"`
}

type Position struct {
	StartDate      *string         `json:"start_date" yaml:"start_date"`
	EndDate        *string         `json:"end_date" yaml:"end_date"`
	JobClass       *string         `json:"job_class" yaml:"job_class"`
	FTEPercent     *float64        `json:"fte_percent" yaml:"fte_percent"`
	IsPrimary      bool            `json:"is_primary" yaml:"is_primary"`
	Location       *string         `json:"location" yaml:"location"`
	OrgUnitCode    *string         `json:"org_unit_code" yaml:"org_unit_code"`
	PosType        *string         `json:"pos_type" yaml:"pos_type"`
	PosTimeType    *string         `json:"pos_time_type,omitempty" yaml:"pos_time_type,omitempty"`
	SupervisorEID  *string         `json:"supervisor_eid" yaml:"supervisor_eid"`
	Title          *string         `json:"title" yaml:"title"`
	JobProfile     *JobProfile     `json:"job_profile" yaml:"job_profile"`
	SupervisoryOrg *SupervisoryOrg `json:"supervisory_org" yaml:"supervisory_org"`
}

type WorkerDetails struct {
	WorkerWID        *string           `json:"worker_wid" yaml:"worker_wid"`
	EmployeeStatus   *EmploymentStatus `json:"employee_status" yaml:"employee_status"`
	PrimaryManagerID *string           `json:"primary_manager_id" yaml:"primary_manager_id"`
	ActivePositions  []*Position       `json:"active_positions" yaml:"active_positions"`
}

type Person struct {
	NetID            *string          `json:"netid" yaml:"netid"`
	RegID            *string          `json:"regid" yaml:"regid"`
	EmployeeID       *string          `json:"employee_id" yaml:"employee_id"`
	StudentID        *string          `json:"student_id" yaml:"student_id"`
	IsActive         bool             `json:"is_active" yaml:"is_active"`
	PrimaryManagerID *string          `json:"primary_manager_id" yaml:"primary_manager_id"`
	WorkerDetails    []*WorkerDetails `json:"worker_details" yaml:"worker_details"`
}

type Worker struct {
	NetID            *string           `json:"netid" yaml:"netid"`
	RegID            *string           `json:"regid" yaml:"regid"`
	EmployeeID       *string           `json:"employee_id" yaml:"employee_id"`
	EmployeeStatus   *EmploymentStatus `json:"employee_status" yaml:"employee_status"`
	PrimaryManagerID *string           `json:"primary_manager_id" yaml:"primary_manager_id"`
	ActivePositions  []*Position       `json:"active_positions" yaml:"active_positions"`
}

type WorkerRef struct {
	NetID             *string `json:"netid" yaml:"netid"`
	RegID             *string `json:"regid" yaml:"regid"`
	EmployeeID        *string `json:"employee_id" yaml:"employee_id"`
	IsActive          bool    `json:"is_active" yaml:"is_active"`
	IsCurrentFaculty  bool    `json:"is_current_faculty" yaml:"is_current_faculty"`
	WorkdayPersonType *string `json:"workday_person_type" yaml:"workday_person_type"`
	Href              *string `json:"href" yaml:"href"`
}

type Appointment struct {
	AppNumber        int     `json:"app_number" yaml:"app_number"`
	AppState         *string `json:"app_state" yaml:"app_state"`
	DeptBudgetName   *string `json:"dept_budget_name" yaml:"dept_budget_name"`
	DeptBudgetNumber *string `json:"dept_budget_number" yaml:"dept_budget_number"`
	JobClassCode     *string `json:"job_class_code" yaml:"job_class_code"`
	JobClassTitle    *string `json:"job_class_title" yaml:"job_class_title"`
	OrgCode          *string `json:"org_code" yaml:"org_code"`
	OrgName          *string `json:"org_name" yaml:"org_name"`
	PaidAppCode      *string `json:"paid_app_code" yaml:"paid_app_code"`
	Status           *string `json:"status" yaml:"status"`
	StatusDesc       *string `json:"status_desc" yaml:"status_desc"`
	PayRate          string  `json:"pay_rate" yaml:"pay_rate"`
}

type Appointee struct {
	NetID                *string        `json:"netid" yaml:"netid"`
	RegID                *string        `json:"regid" yaml:"regid"`
	EmployeeID           *string        `json:"employee_id" yaml:"employee_id"`
	Status               *string        `json:"status" yaml:"status"`
	StatusDesc           *string        `json:"status_desc" yaml:"status_desc"`
	HomeDeptBudgetNumber *string        `json:"home_dept_budget_number" yaml:"home_dept_budget_number"`
	HomeDeptBudgetName   *string        `json:"home_dept_budget_name" yaml:"home_dept_budget_name"`
	HomeDeptOrgCode      *string        `json:"home_dept_org_code" yaml:"home_dept_org_code"`
	HomeDeptOrgName      *string        `json:"home_dept_org_name" yaml:"home_dept_org_name"`
	OnOffCampusCode      *string        `json:"onoff_campus_code" yaml:"onoff_campus_code"`
	OnOffCampusCodeDesc  *string        `json:"onoff_campus_code_desc" yaml:"onoff_campus_code_desc"`
	Appointments         []*Appointment `json:"appointments" yaml:"appointments"`
}
