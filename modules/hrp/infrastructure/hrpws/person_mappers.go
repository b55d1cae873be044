package hrpws

import (
	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/person"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/position"
)

const (
	idTypeNetID     = "NetID"
	idTypeStudentID = "StudentID"
)

// ToDomainEmploymentDetails maps one EmploymentDetails entry of a person document.
func ToDomainEmploymentDetails(data gjson.Result) (position.Position, error) {
	if !data.IsObject() {
		return position.Position{}, nil
	}
	startDate, err := dateField(data, "StartDate")
	if err != nil {
		return position.Position{}, err
	}
	endDate, err := dateField(data, "PositionVacateDate")
	if err != nil {
		return position.Position{}, err
	}
	fte, err := floatField(data, "FTEPercent")
	if err != nil {
		return position.Position{}, err
	}
	return position.New(
		position.WithStartDate(startDate),
		position.WithEndDate(endDate),
		position.WithTitle(optString(data.Get("BusinessTitle"))),
		position.WithJobClass(ExtractJobClass(data.Get("JobClassificationSummaries"))),
		position.WithFTEPercent(fte),
		position.WithPrimary(data.Get("PrimaryPosition").Bool()),
		position.WithLocation(optString(data.Get("Location.Name"))),
		position.WithOrgUnitCode(orgUnitCode(data.Get("OrganizationDetails"))),
		position.WithPositionType(optString(data.Get("PositionWorkerType.Name"))),
		position.WithTimeType(optString(data.Get("PositionTimeType.Name"))),
		position.WithSupervisorEID(supervisorEID(data.Get("Managers"))),
		position.WithJobProfile(ToDomainJobProfile(data.Get("JobProfile"))),
		position.WithSupervisoryOrganization(ToDomainSupervisoryOrganization(data.Get("SupervisoryOrganization"))),
	), nil
}

// ToDomainWorkerDetails maps one WorkerDetails entry. Positions are only
// read for active workers and are not filtered by end date; the person
// endpoint already scopes them.
func ToDomainWorkerDetails(data gjson.Result) (person.WorkerDetails, error) {
	status, err := ToDomainEmploymentStatus(data.Get("EmploymentStatus"))
	if err != nil {
		return person.WorkerDetails{}, err
	}
	var positions []position.Position
	if status.IsActive() {
		for _, entry := range data.Get("EmploymentDetails").Array() {
			p, err := ToDomainEmploymentDetails(entry)
			if err != nil {
				return person.WorkerDetails{}, err
			}
			positions = append(positions, p)
		}
	}
	return person.NewWorkerDetails(data.Get("WID").String(), status, positions), nil
}

// ToDomainPerson maps a person document. Worker records explicitly marked
// ActiveAppointment=false are skipped.
func ToDomainPerson(data gjson.Result) (person.Person, error) {
	var details []person.WorkerDetails
	for _, entry := range data.Get("WorkerDetails").Array() {
		if flag := entry.Get("ActiveAppointment"); flag.Type == gjson.False {
			continue
		}
		wd, err := ToDomainWorkerDetails(entry)
		if err != nil {
			return person.Person{}, err
		}
		details = append(details, wd)
	}

	ids := data.Get("IDs")
	netID := ""
	if v := typedIDValue(ids, idTypeNetID); v != nil {
		netID = *v
	}
	return person.New(
		data.Get("EmployeeID").String(),
		data.Get("RegID").String(),
		person.WithNetID(netID),
		person.WithStudentID(typedIDValue(ids, idTypeStudentID)),
		person.WithWorkerDetails(details),
	), nil
}
