package hrpws

import (
	"time"

	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/worker"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/position"
)

// ToDomainWorkerPosition maps one WorkerPositions entry of a worker document.
func ToDomainWorkerPosition(data gjson.Result) (position.Position, error) {
	if !data.IsObject() {
		return position.Position{}, nil
	}
	startDate, err := dateField(data, "PositionStartDate")
	if err != nil {
		return position.Position{}, err
	}
	endDate, err := dateField(data, "PositionEndDate")
	if err != nil {
		return position.Position{}, err
	}
	fteKey := "PositionFTEPercent"
	if !present(data.Get(fteKey)) {
		fteKey = "FTEPercent"
	}
	fte, err := floatField(data, fteKey)
	if err != nil {
		return position.Position{}, err
	}

	jobClass := optString(data.Get("EcsJobClassificationCodeDescription"))
	if jobClass == nil {
		jobClass = ExtractJobClass(data.Get("JobClassificationSummaries"))
	}
	supervisor := optString(data.Get("SupervisorEmployeeID"))
	if supervisor == nil {
		supervisor = supervisorEID(data.Get("Managers"))
	}
	location := optString(data.Get("Location.Name"))
	if location == nil {
		location = optString(data.Get("LocationDescription"))
	}

	return position.New(
		position.WithStartDate(startDate),
		position.WithEndDate(endDate),
		position.WithTitle(optString(data.Get("PositionBusinessTitle"))),
		position.WithJobClass(jobClass),
		position.WithFTEPercent(fte),
		position.WithPrimary(data.Get("IsPrimaryPosition").Bool()),
		position.WithLocation(location),
		position.WithOrgUnitCode(orgUnitCode(data.Get("OrganizationDetails"))),
		position.WithPositionType(optString(data.Get("PositionType"))),
		position.WithTimeType(optString(data.Get("PositionTimeTypeID"))),
		position.WithSupervisorEID(supervisor),
		position.WithJobProfile(ToDomainJobProfileSummary(data.Get("JobProfileSummary"))),
		position.WithSupervisoryOrganization(ToDomainSupervisoryOrganization(data.Get("SupervisoryOrganization"))),
	), nil
}

// ToDomainWorker maps a worker document. Non-primary positions that ended
// before now are dropped.
func ToDomainWorker(data gjson.Result, now time.Time) (worker.Worker, error) {
	status, err := ToDomainWorkerEmploymentStatus(data.Get("WorkerEmploymentStatus"))
	if err != nil {
		return worker.Worker{}, err
	}
	var positions []position.Position
	if status.IsActiveOrRetired() {
		for _, entry := range data.Get("WorkerPositions").Array() {
			p, err := ToDomainWorkerPosition(entry)
			if err != nil {
				return worker.Worker{}, err
			}
			positions = append(positions, p)
		}
	}
	return worker.New(
		data.Get("NetID").String(),
		data.Get("RegID").String(),
		data.Get("EmployeeID").String(),
		status,
		positions,
		now,
	), nil
}

// ToDomainWorkerRef maps one entry of a worker search page.
func ToDomainWorkerRef(data gjson.Result) worker.Ref {
	return worker.HydrateRef(
		data.Get("NetID").String(),
		data.Get("RegID").String(),
		data.Get("EmployeeID").String(),
		data.Get("IsActive").Bool(),
		data.Get("IsCurrentFaculty").Bool(),
		data.Get("WorkdayPersonType").String(),
		data.Get("Href").String(),
	)
}
