package hrpws

import (
	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/entities/employment"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/jobprofile"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/suporg"
)

const (
	idTypeJobProfile = "Job_Profile_ID"
	idTypeEmployee   = "Employee_ID"
)

// ToDomainEmploymentStatus maps the EmploymentStatus object of a person document.
func ToDomainEmploymentStatus(data gjson.Result) (employment.Status, error) {
	return toDomainStatus(data, statusKeys{
		status:     "EmployeeStatus",
		code:       "EmployeeStatusCode",
		active:     "Active",
		retired:    "Retired",
		terminated: "Terminated",
	})
}

// ToDomainWorkerEmploymentStatus maps the WorkerEmploymentStatus object of a worker document.
func ToDomainWorkerEmploymentStatus(data gjson.Result) (employment.Status, error) {
	return toDomainStatus(data, statusKeys{
		status:     "EmployeeStatus",
		code:       "EmployeeStatusCode",
		active:     "IsActive",
		retired:    "IsRetired",
		terminated: "IsTerminated",
	})
}

type statusKeys struct {
	status     string
	code       string
	active     string
	retired    string
	terminated string
}

func toDomainStatus(data gjson.Result, keys statusKeys) (employment.Status, error) {
	if !data.IsObject() {
		return employment.Status{}, nil
	}
	hireDate, err := dateField(data, "HireDate")
	if err != nil {
		return employment.Status{}, err
	}
	retirementDate, err := dateField(data, "RetirementDate")
	if err != nil {
		return employment.Status{}, err
	}
	terminationDate, err := dateField(data, "TerminationDate")
	if err != nil {
		return employment.Status{}, err
	}
	endDate, err := dateField(data, "EndEmploymentDate")
	if err != nil {
		return employment.Status{}, err
	}
	return employment.NewStatus(
		data.Get(keys.status).String(),
		employment.WithStatusCode(data.Get(keys.code).String()),
		employment.WithActive(data.Get(keys.active).Bool()),
		employment.WithRetired(data.Get(keys.retired).Bool()),
		employment.WithTerminated(data.Get(keys.terminated).Bool()),
		employment.WithHireDate(hireDate),
		employment.WithRetirementDate(retirementDate),
		employment.WithTerminationDate(terminationDate),
		employment.WithEndEmploymentDate(endDate),
	), nil
}

// ToDomainJobProfile maps a JobProfile object, taking the job code from its typed IDs.
func ToDomainJobProfile(data gjson.Result) jobprofile.JobProfile {
	if !data.IsObject() {
		return jobprofile.JobProfile{}
	}
	return jobprofile.New(
		typedIDValue(data.Get("IDs"), idTypeJobProfile),
		optString(data.Get("Name")),
	)
}

// ToDomainJobProfileSummary maps the flat JobProfileSummary of a worker position.
func ToDomainJobProfileSummary(data gjson.Result) jobprofile.JobProfile {
	if !data.IsObject() {
		return jobprofile.JobProfile{}
	}
	return jobprofile.New(
		optString(data.Get("JobProfileID")),
		optString(data.Get("JobProfileDescription")),
	)
}

func ToDomainSupervisoryOrganization(data gjson.Result) suporg.SupervisoryOrganization {
	if !data.IsObject() {
		return suporg.SupervisoryOrganization{}
	}
	code, name := SplitCodeName(data.Get("Name").String())
	return suporg.New(
		data.Get("CostCenter.OrganizationCode").String(),
		code,
		name,
	)
}

// supervisorEID scans the Managers structure for the first employee id.
func supervisorEID(managers gjson.Result) *string {
	for _, m := range listOrObject(managers) {
		if v := typedIDValue(m.Get("IDs"), idTypeEmployee); v != nil {
			return v
		}
	}
	return nil
}

// orgUnitCode reads the first organization name from OrganizationDetails.
func orgUnitCode(details gjson.Result) *string {
	for _, d := range listOrObject(details) {
		if v := optString(d.Get("Organization.Name")); v != nil {
			return v
		}
	}
	return nil
}
