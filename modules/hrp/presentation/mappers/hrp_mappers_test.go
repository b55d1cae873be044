package mappers_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
	"github.com/iota-uz/hrp/modules/hrp/presentation/mappers"
	"github.com/iota-uz/hrp/modules/hrp/services"
)

func marshal(t *testing.T, v any) gjson.Result {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return gjson.ParseBytes(b)
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	pdt := time.FixedZone("", -7*60*60)
	tests := []struct {
		name string
		in   *time.Time
		want any
	}{
		{"nil", nil, nil},
		{"offset", ptr(time.Date(2006, 5, 16, 0, 0, 0, 0, pdt)), "2006-05-16 00:00:00-07:00"},
		{"utc", ptr(time.Date(2017, 9, 16, 7, 0, 0, 0, time.UTC)), "2017-09-16 07:00:00+00:00"},
		{"micro", ptr(time.Date(2017, 9, 16, 7, 0, 0, 123456000, time.UTC)), "2017-09-16 07:00:00.123456+00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mappers.FormatDate(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestPersonToJSON_Bill(t *testing.T) {
	t.Parallel()

	p, err := hrpws.ToDomainPerson(gjson.Parse(`{
		"EmployeeID": "000000005",
		"RegID": "10000000000000000000000000000005",
		"IDs": [
			{"Type": "NetID", "Value": "bill"},
			{"Type": "StudentID", "Value": "1000005"}
		],
		"WorkerDetails": [{
			"WID": "1b68136df25201c0710e3ddad462fa1d",
			"ActiveAppointment": true,
			"EmploymentStatus": {"Active": true, "EmployeeStatus": "Active", "HireDate": "2021-11-12T00:00:00-08:00"},
			"EmploymentDetails": []
		}]
	}`))
	require.NoError(t, err)

	doc := marshal(t, mappers.PersonToJSON(p))
	assert.Equal(t, "bill", doc.Get("netid").String())
	assert.Equal(t, "000000005", doc.Get("employee_id").String())
	assert.Equal(t, "10000000000000000000000000000005", doc.Get("regid").String())
	assert.Equal(t, "1000005", doc.Get("student_id").String())
	assert.True(t, doc.Get("is_active").Bool())
	assert.Equal(t, gjson.Null, doc.Get("primary_manager_id").Type)
	assert.True(t, doc.Get("primary_manager_id").Exists())

	details := doc.Get("worker_details").Array()
	require.Len(t, details, 1)
	assert.Equal(t, "1b68136df25201c0710e3ddad462fa1d", details[0].Get("worker_wid").String())
	assert.Equal(t, "2021-11-12 00:00:00-08:00", details[0].Get("employee_status.hire_date").String())
	assert.Equal(t, gjson.Null, details[0].Get("employee_status.retirement_date").Type)
	assert.False(t, details[0].Get("employee_status.end_emp_date").Exists())
	active := details[0].Get("active_positions")
	assert.True(t, active.IsArray())
	assert.Empty(t, active.Array())
}

func TestPersonToJSON_Faculty(t *testing.T) {
	t.Parallel()

	p, err := services.NewPersonService(hrpws.NewMockFetcher()).GetByNetID(context.Background(), "faculty", true)
	require.NoError(t, err)

	doc := marshal(t, mappers.PersonToJSON(p))
	assert.Equal(t, "845007271", doc.Get("primary_manager_id").String())

	positions := doc.Get("worker_details.0.active_positions").Array()
	require.GreaterOrEqual(t, len(positions), 2)
	primary := positions[0]
	assert.True(t, primary.Get("is_primary").Bool())
	assert.Equal(t, "Clinical Associate Professor", primary.Get("title").String())
	assert.Equal(t, "Academic Personnel", primary.Get("job_class").String())
	assert.Equal(t, "21184", primary.Get("job_profile.job_code").String())
	assert.Equal(t, "SOM", primary.Get("supervisory_org.org_code").String())
	assert.Equal(t, "3040111000", primary.Get("supervisory_org.budget_code").String())
	for _, other := range positions[1:] {
		assert.False(t, other.Get("is_primary").Bool())
	}
}

func TestWorkerToJSON(t *testing.T) {
	t.Parallel()

	svc := services.NewWorkerService(hrpws.NewMockFetcher(), services.WithClock(func() time.Time {
		return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	}))
	w, err := svc.GetByNetID(context.Background(), "chair")
	require.NoError(t, err)

	doc := marshal(t, mappers.WorkerToJSON(w))
	assert.Equal(t, "chair", doc.Get("netid").String())
	assert.True(t, doc.Get("employee_status.is_active").Bool())
	positions := doc.Get("active_positions").Array()
	require.Len(t, positions, 2)
	assert.True(t, positions[0].Get("is_primary").Bool())
	assert.Equal(t, "Adjunct Professor", positions[1].Get("title").String())
	assert.Equal(t, gjson.Null, positions[1].Get("supervisor_eid").Type)
	assert.Equal(t, "10101", positions[0].Get("job_profile.job_code").String())
	assert.Equal(t, "Adjunct Professor", positions[1].Get("job_profile.description").String())
	assert.Equal(t, "1998-09-16 07:00:00+00:00", doc.Get("employee_status.hire_date").String())
}

func TestWorkerRefsToJSON(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mappers.WorkerRefsToJSON(nil))

	current := true
	refs, err := services.NewWorkerService(hrpws.NewMockFetcher()).Search(context.Background(), services.WorkerSearchParams{CurrentFaculty: &current})
	require.NoError(t, err)

	doc := marshal(t, mappers.WorkerRefsToJSON(refs))
	require.Len(t, doc.Array(), 2)
	assert.Equal(t, "/hrp/v2/worker/000000005.json", doc.Get("0.href").String())
	assert.True(t, doc.Get("1.is_current_faculty").Bool())
}

func TestAppointeeToJSON(t *testing.T) {
	t.Parallel()

	ap, err := services.NewAppointeeService(hrpws.NewMockFetcher()).GetByNetID(context.Background(), "javerage")
	require.NoError(t, err)

	doc := marshal(t, mappers.AppointeeToJSON(ap))
	assert.Equal(t, "javerage", doc.Get("netid").String())
	assert.Equal(t, "100001", doc.Get("home_dept_budget_number").String())
	apps := doc.Get("appointments").Array()
	require.Len(t, apps, 1)
	assert.Equal(t, int64(1), apps[0].Get("app_number").Int())
	assert.Equal(t, "15.500", apps[0].Get("pay_rate").String())

	assert.Nil(t, mappers.AppointeeToJSON(nil))
}

func ptr[T any](v T) *T {
	return &v
}
