package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/hrp/modules/hrp/domain/identifier"
	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

func TestPersonService_GetByIdentifier(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher)

	byNetID, err := svc.GetByNetID(ctx, "faculty", false)
	require.NoError(t, err)
	byEID, err := svc.GetByEmployeeID(ctx, "000000005", false)
	require.NoError(t, err)
	byRegID, err := svc.GetByRegID(ctx, "10000000000000000000000000000005", false)
	require.NoError(t, err)

	for _, p := range []string{byNetID.NetID(), byEID.NetID(), byRegID.NetID()} {
		assert.Equal(t, "faculty", p)
	}
	assert.Equal(t, "000000005", byNetID.EmployeeID())
	require.NotNil(t, byNetID.PrimaryManagerID())
	assert.Equal(t, "845007271", *byNetID.PrimaryManagerID())

	assert.Equal(t, []string{
		"/hrp/v3/person/faculty.json",
		"/hrp/v3/person/000000005.json",
		"/hrp/v3/person/10000000000000000000000000000005.json",
	}, fetcher.Paths())
}

func TestPersonService_IncludeFuture(t *testing.T) {
	t.Parallel()

	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher)

	current, err := svc.GetByNetID(context.Background(), "faculty", false)
	require.NoError(t, err)
	future, err := svc.GetByNetID(context.Background(), "faculty", true)
	require.NoError(t, err)

	assert.Equal(t, "/hrp/v3/person/faculty.json?future_worker=true", fetcher.Paths()[1])
	require.Len(t, current.WorkerDetails(), 1)
	require.Len(t, future.WorkerDetails(), 1)
	assert.Greater(t, len(future.WorkerDetails()[0].OtherActivePositions()), len(current.WorkerDetails()[0].OtherActivePositions()))
}

func TestPersonService_InvalidIdentifiers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher)

	_, err := svc.GetByNetID(ctx, "1badnetid", false)
	require.ErrorIs(t, err, identifier.ErrInvalidNetID)

	_, err = svc.GetByRegID(ctx, "9136CCB8F66711D5BE060004AC494FF", false)
	require.ErrorIs(t, err, identifier.ErrInvalidRegID)

	_, err = svc.GetByEmployeeID(ctx, "12345678", false)
	require.ErrorIs(t, err, identifier.ErrInvalidEmployeeID)

	_, err = svc.Get(ctx, "!!", false)
	var invalid *identifier.InvalidError
	require.ErrorAs(t, err, &invalid)

	assert.Empty(t, fetcher.Paths(), "nothing is fetched for a malformed identifier")
}

func TestPersonService_Get_DetectsKind(t *testing.T) {
	t.Parallel()

	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher)

	p, err := svc.Get(context.Background(), "9136CCB8F66711D5BE060004AC494FFE", false)
	require.NoError(t, err)
	assert.Equal(t, "javerage", p.NetID())

	p, err = svc.Get(context.Background(), "123456789", false)
	require.NoError(t, err)
	assert.Equal(t, "javerage", p.NetID())
}

func TestPersonService_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewPersonService(hrpws.NewMockFetcher()).GetByNetID(context.Background(), "none", false)
	require.ErrorIs(t, err, hrpws.ErrNotFound)

	var fe *hrpws.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.Status)
	assert.Equal(t, "/hrp/v3/person/none.json", fe.URL)
	assert.Equal(t, "Data not found", string(fe.Body))
}

func TestPersonService_FetchFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	svc := NewPersonService(staticFetcher{resp: &hrpws.Response{Status: http.StatusInternalServerError, Body: []byte("boom")}})
	_, err := svc.GetByNetID(ctx, "faculty", false)
	var fe *hrpws.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
	assert.NotErrorIs(t, err, hrpws.ErrNotFound)

	transport := errors.New("connection refused")
	svc = NewPersonService(staticFetcher{err: transport})
	_, err = svc.GetByNetID(ctx, "faculty", false)
	require.ErrorIs(t, err, transport)

	svc = NewPersonService(staticFetcher{resp: &hrpws.Response{Status: http.StatusOK, Body: []byte("<html>")}})
	_, err = svc.GetByNetID(ctx, "faculty", false)
	var pe *hrpws.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestPersonService_Search(t *testing.T) {
	t.Parallel()

	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher)

	persons, err := svc.Search(context.Background(), PersonSearchParams{ChangedSinceDate: "2022-12-12"})
	require.NoError(t, err)
	require.Len(t, persons, 2)

	assert.Equal(t, "retiree", persons[0].NetID())
	assert.False(t, persons[0].IsActive())
	assert.Equal(t, "staff", persons[1].NetID())
	assert.True(t, persons[1].IsActive())

	assert.Equal(t, []string{
		"/hrp/v3/person.json?changed_since_date=2022-12-12&page_size=200",
		"/hrp/v3/person.json?changed_since_date=2022-12-12&page_size=200&page_start=2",
	}, fetcher.Paths())
}

func TestPersonService_SearchEmpty(t *testing.T) {
	t.Parallel()

	persons, err := NewPersonService(hrpws.NewMockFetcher()).Search(context.Background(), PersonSearchParams{})
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestPersonService_SearchPageLimit(t *testing.T) {
	t.Parallel()

	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher, WithMaxPages(3))

	_, err := svc.Search(context.Background(), PersonSearchParams{Location: "Loop"})
	require.ErrorIs(t, err, ErrPageLimitExceeded)
	assert.Len(t, fetcher.Paths(), 3)
}

func TestPersonService_SearchInvalidParams(t *testing.T) {
	t.Parallel()

	fetcher := newRecordingFetcher()
	svc := NewPersonService(fetcher)

	_, err := svc.Search(context.Background(), PersonSearchParams{ChangedSinceDate: "12/12/2022"})
	require.ErrorIs(t, err, ErrInvalidSearchParams)

	_, err = svc.Search(context.Background(), PersonSearchParams{WorkerWID: "not-a-wid"})
	require.ErrorIs(t, err, ErrInvalidSearchParams)

	_, err = svc.Search(context.Background(), PersonSearchParams{PageSize: 5000})
	require.ErrorIs(t, err, ErrInvalidSearchParams)

	assert.Empty(t, fetcher.Paths())
}
