package person_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/hrp/modules/hrp/domain/aggregates/person"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/employment"
	"github.com/iota-uz/hrp/modules/hrp/domain/entities/position"
)

func strPtr(s string) *string { return &s }

func activeStatus() employment.Status {
	return employment.NewStatus("Active", employment.WithActive(true))
}

func TestNewWorkerDetails_BucketsPrimary(t *testing.T) {
	t.Parallel()

	positions := []position.Position{
		position.New(position.WithTitle(strPtr("other-1"))),
		position.New(position.WithTitle(strPtr("primary")), position.WithPrimary(true), position.WithSupervisorEID(strPtr("100000015"))),
		position.New(position.WithTitle(strPtr("other-2"))),
	}

	wd := person.NewWorkerDetails("wid-1", activeStatus(), positions)

	require.NotNil(t, wd.PrimaryPosition())
	assert.Equal(t, "primary", *wd.PrimaryPosition().Title())
	require.Len(t, wd.OtherActivePositions(), 2)
	assert.Equal(t, "other-1", *wd.OtherActivePositions()[0].Title())
	assert.Equal(t, "other-2", *wd.OtherActivePositions()[1].Title())
	require.NotNil(t, wd.PrimaryManagerID())
	assert.Equal(t, "100000015", *wd.PrimaryManagerID())

	active := wd.ActivePositions()
	require.Len(t, active, 3)
	assert.Equal(t, "primary", *active[0].Title())
}

func TestNewWorkerDetails_LastPrimaryWins(t *testing.T) {
	t.Parallel()

	positions := []position.Position{
		position.New(position.WithTitle(strPtr("first")), position.WithPrimary(true), position.WithSupervisorEID(strPtr("1"))),
		position.New(position.WithTitle(strPtr("second")), position.WithPrimary(true), position.WithSupervisorEID(strPtr("2"))),
	}

	wd := person.NewWorkerDetails("wid", activeStatus(), positions)
	require.NotNil(t, wd.PrimaryPosition())
	assert.Equal(t, "second", *wd.PrimaryPosition().Title())
	assert.Equal(t, "2", *wd.PrimaryManagerID())
	assert.Empty(t, wd.OtherActivePositions())
}

func TestNewWorkerDetails_InactiveDropsPositions(t *testing.T) {
	t.Parallel()

	status := employment.NewStatus("Terminated", employment.WithTerminated(true))
	wd := person.NewWorkerDetails("wid", status, []position.Position{
		position.New(position.WithPrimary(true)),
	})

	assert.Nil(t, wd.PrimaryPosition())
	assert.Empty(t, wd.OtherActivePositions())
	assert.Nil(t, wd.PrimaryManagerID())
	assert.False(t, wd.IsActive())
}

func TestPerson_ActiveAggregationAndManager(t *testing.T) {
	t.Parallel()

	first := person.NewWorkerDetails("a", activeStatus(), []position.Position{
		position.New(position.WithPrimary(true), position.WithSupervisorEID(strPtr("111111111"))),
	})
	inactive := person.NewWorkerDetails("b", employment.NewStatus("Terminated"), nil)
	last := person.NewWorkerDetails("c", activeStatus(), []position.Position{
		position.New(position.WithPrimary(true), position.WithSupervisorEID(strPtr("222222222"))),
	})

	p := person.New("000000005", "10000000000000000000000000000005",
		person.WithNetID("bill"),
		person.WithWorkerDetails([]person.WorkerDetails{first, inactive, last}),
	)

	assert.True(t, p.IsActive())
	require.Len(t, p.WorkerDetails(), 2)
	assert.Equal(t, "a", p.WorkerDetails()[0].WID())
	assert.Equal(t, "c", p.WorkerDetails()[1].WID())
	require.NotNil(t, p.PrimaryManagerID())
	assert.Equal(t, "222222222", *p.PrimaryManagerID())
}

func TestPerson_NoActiveWorkers(t *testing.T) {
	t.Parallel()

	p := person.New("000000005", "", person.WithWorkerDetails([]person.WorkerDetails{
		person.NewWorkerDetails("b", employment.NewStatus("Terminated"), nil),
	}))

	assert.False(t, p.IsActive())
	assert.Empty(t, p.WorkerDetails())
	assert.NotNil(t, p.WorkerDetails())
	assert.Nil(t, p.PrimaryManagerID())
}
