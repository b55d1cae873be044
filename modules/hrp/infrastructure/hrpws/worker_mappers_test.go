package hrpws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var workerNow = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func TestToDomainWorker_Faculty(t *testing.T) {
	t.Parallel()

	w, err := ToDomainWorker(gjson.Parse(loadResource(t, "/hrp/v2/worker/faculty.json")), workerNow)
	require.NoError(t, err)

	assert.Equal(t, "faculty", w.NetID())
	assert.Equal(t, "10000000000000000000000000000005", w.RegID())
	assert.Equal(t, "000000005", w.EmployeeID())

	status := w.EmploymentStatus()
	assert.True(t, status.IsActive())
	assert.Equal(t, "A", status.StatusCode())
	assert.Equal(t, "2006-05-16 07:00:00+00:00", status.HireDate().Format("2006-01-02 15:04:05-07:00"))
	assert.Nil(t, status.EndEmploymentDate())

	require.NotNil(t, w.PrimaryManagerID())
	assert.Equal(t, "100000015", *w.PrimaryManagerID())

	primary := w.PrimaryPosition()
	require.NotNil(t, primary)
	assert.Equal(t, "Clinical Associate Professor", *primary.Title())
	assert.Equal(t, "Academic Personnel", *primary.JobClass())
	assert.Equal(t, "Part_time", *primary.TimeType())
	assert.Equal(t, "Unpaid_Academic", *primary.PositionType())
	assert.Equal(t, "Seattle Campus", *primary.Location())
	assert.Equal(t, "21184", *primary.JobProfile().JobCode())
	assert.Equal(t, "Unpaid Academic", *primary.JobProfile().Description())
	org := primary.SupervisoryOrganization()
	assert.Equal(t, "3040111000", org.BudgetCode())
	assert.Equal(t, "SOM", org.OrgCode())
	assert.Equal(t, "Family Medicine: Volunteer", org.OrgName())

	// the Tacoma lecturer position ended in 2019
	assert.Empty(t, w.OtherActivePositions())
}

func TestToDomainWorker_KeepsOpenNonPrimary(t *testing.T) {
	t.Parallel()

	w, err := ToDomainWorker(gjson.Parse(loadResource(t, "/hrp/v2/worker/chair.json")), workerNow)
	require.NoError(t, err)
	require.Len(t, w.OtherActivePositions(), 1)
	other := w.OtherActivePositions()[0]
	assert.Equal(t, "Adjunct Professor", *other.Title())
	assert.Nil(t, other.SupervisorEID())
	assert.Equal(t, "SPH", other.SupervisoryOrganization().OrgCode())
	assert.Len(t, w.ActivePositions(), 2)
}

func TestToDomainWorker_NotActiveOrRetired(t *testing.T) {
	t.Parallel()

	doc := loadResource(t, "/hrp/v2/worker/faculty.json")
	doc, err := sjson.Set(doc, "WorkerEmploymentStatus.IsActive", false)
	require.NoError(t, err)
	doc, err = sjson.Set(doc, "WorkerPositions.0.PositionStartDate", "garbage")
	require.NoError(t, err)

	w, err := ToDomainWorker(gjson.Parse(doc), workerNow)
	require.NoError(t, err)
	assert.Nil(t, w.PrimaryPosition())
	assert.Nil(t, w.PrimaryManagerID())
}

func TestToDomainWorker_RetiredKeepsPositions(t *testing.T) {
	t.Parallel()

	doc := loadResource(t, "/hrp/v2/worker/faculty.json")
	doc, err := sjson.Set(doc, "WorkerEmploymentStatus.IsActive", false)
	require.NoError(t, err)
	doc, err = sjson.Set(doc, "WorkerEmploymentStatus.IsRetired", true)
	require.NoError(t, err)

	w, err := ToDomainWorker(gjson.Parse(doc), workerNow)
	require.NoError(t, err)
	assert.NotNil(t, w.PrimaryPosition())
}

func TestToDomainWorkerPosition_Fallbacks(t *testing.T) {
	t.Parallel()

	p, err := ToDomainWorkerPosition(gjson.Parse(`{
		"FTEPercent": "50",
		"LocationDescription": "Bothell Campus",
		"JobClassificationSummaries": [{"JobClassification": {"Name": "E - Professional Staff (Employment)"}}],
		"Managers": [{"IDs": [{"Type": "Employee_ID", "Value": "100000001"}]}]
	}`))
	require.NoError(t, err)
	assert.InDelta(t, 50.0, *p.FTEPercent(), 0.0001)
	assert.Equal(t, "Bothell Campus", *p.Location())
	assert.Equal(t, "Professional Staff", *p.JobClass())
	assert.Equal(t, "100000001", *p.SupervisorEID())
}

func TestToDomainWorkerRef(t *testing.T) {
	t.Parallel()

	page := gjson.Parse(loadResource(t, "/hrp/v2/worker.json?current_faculty=true&page_size=200"))
	entries := page.Get("Workers").Array()
	require.Len(t, entries, 1)

	ref := ToDomainWorkerRef(entries[0])
	assert.Equal(t, "faculty", ref.NetID())
	assert.Equal(t, "000000005", ref.EmployeeID())
	assert.True(t, ref.IsActive())
	assert.True(t, ref.IsCurrentFaculty())
	assert.Equal(t, "Academic Personnel", ref.WorkdayPersonType())
	assert.Equal(t, "/hrp/v2/worker/000000005.json", ref.Href())
}
