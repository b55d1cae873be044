package hrpws

import (
	"context"
	"net/http"
)

// ServiceName is the name HRP resources are registered under, both for
// mock resource paths and for metric labels.
const ServiceName = "hrpws"

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Fetcher issues a GET for a resource path such as "/hrp/v3/person/bill.json".
// A transport failure is returned as an error; any HTTP status, including
// non-200, is returned in the Response.
type Fetcher interface {
	GetURL(ctx context.Context, path string) (*Response, error)
}
