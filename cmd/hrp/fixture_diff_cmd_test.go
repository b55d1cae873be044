package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

// newDriftedUpstream serves the embedded resources with EmployeeID rewritten
// on every person document.
func newDriftedUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mock := hrpws.NewMockFetcher()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := mock.GetURL(context.Background(), r.URL.RequestURI())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		body := resp.Body
		if resp.Status == http.StatusOK && gjson.GetBytes(body, "EmployeeID").Exists() {
			if body, err = sjson.SetBytes(body, "EmployeeID", "000000099"); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(resp.Status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestFixtureDiffCmd(t *testing.T) {
	ts := newDriftedUpstream(t)
	t.Setenv("HRPWS_HOST", ts.URL)
	t.Setenv("HRPWS_MAX_RETRIES", "0")

	out, err := runCLI(t, "fixture-diff", "/hrp/v3/person/faculty.json", "/hrp/v1/appointee/nobody.json", "/hrp/v3/person/none.json")
	require.NoError(t, err)

	diffs := gjson.Parse(out).Array()
	require.Len(t, diffs, 3)

	faculty := diffs[0]
	assert.Equal(t, "/hrp/v3/person/faculty.json", faculty.Get("path").String())
	ops := faculty.Get("patch").Array()
	require.Len(t, ops, 1)
	assert.Equal(t, "replace", ops[0].Get("op").String())
	assert.Equal(t, "/EmployeeID", ops[0].Get("path").String())
	assert.Equal(t, "000000099", ops[0].Get("value").String())

	assert.Empty(t, diffs[1].Get("patch").Array())
	assert.Equal(t, int64(404), diffs[2].Get("mock_status").Int())
	assert.Equal(t, int64(404), diffs[2].Get("live_status").Int())
}

func TestFixtureDiffCmd_FailOnDiff(t *testing.T) {
	ts := newDriftedUpstream(t)
	t.Setenv("HRPWS_HOST", ts.URL)
	t.Setenv("HRPWS_MAX_RETRIES", "0")

	_, err := runCLI(t, "fixture-diff", "--fail-on-diff", "/hrp/v2/worker/chair.json")
	require.Error(t, err)
	assert.Equal(t, exitDrift, exitCode(err))

	_, err = runCLI(t, "fixture-diff", "--fail-on-diff", "/hrp/v1/appointee/nobody.json")
	require.NoError(t, err)

	_, err = runCLI(t, "fixture-diff", "hrp/v1/appointee/nobody.json")
	assert.Equal(t, exitUsage, exitCode(err))
}
