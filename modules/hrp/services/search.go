package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

var (
	ErrPageLimitExceeded   = errors.New("search exceeded the page limit")
	ErrInvalidSearchParams = errors.New("invalid search parameters")
)

var (
	searchEncoder  = form.NewEncoder()
	searchValidate = validator.New()
)

// PersonSearchParams are the filters accepted by the v3 person search.
// Unset fields are left out of the query.
type PersonSearchParams struct {
	ActiveAppointment       *bool  `form:"active_appointment,omitempty"`
	ChangedSinceDate        string `form:"changed_since_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CostCenter              string `form:"cost_center,omitempty" validate:"omitempty,max=64"`
	CurrentFaculty          *bool  `form:"current_faculty,omitempty"`
	FutureWorker            *bool  `form:"future_worker,omitempty"`
	Location                string `form:"location,omitempty" validate:"omitempty,max=128"`
	SupervisoryOrganization string `form:"supervisory_organization,omitempty" validate:"omitempty,max=128"`
	WorkerWID               string `form:"worker_wid,omitempty" validate:"omitempty,hexadecimal,len=32"`
	PageSize                int    `form:"page_size" validate:"gte=1,lte=1000"`
}

// WorkerSearchParams are the filters accepted by the v2 worker search.
type WorkerSearchParams struct {
	ChangedSinceDate        string `form:"changed_since_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CostCenter              string `form:"cost_center,omitempty" validate:"omitempty,max=64"`
	CurrentFaculty          *bool  `form:"current_faculty,omitempty"`
	Location                string `form:"location,omitempty" validate:"omitempty,max=128"`
	SupervisoryOrganization string `form:"supervisory_organization,omitempty" validate:"omitempty,max=128"`
	PageSize                int    `form:"page_size" validate:"gte=1,lte=1000"`
}

// encodeSearchParams validates params and renders them as a query string
// with keys in sorted order.
func encodeSearchParams(params any) (string, error) {
	if err := searchValidate.Struct(params); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSearchParams, err)
	}
	values, err := searchEncoder.Encode(params)
	if err != nil {
		return "", fmt.Errorf("encode search parameters: %w", err)
	}
	return values.Encode(), nil
}

// paginate fetches path and hands every entry under listKey to visit, then
// follows Next.Href until it is missing or empty.
func paginate(
	ctx context.Context,
	fetcher hrpws.Fetcher,
	cfg config,
	path, listKey string,
	visit func(entry gjson.Result) error,
) error {
	for page := 0; path != ""; page++ {
		if page >= cfg.maxPages {
			return fmt.Errorf("%w: stopped after %d pages", ErrPageLimitExceeded, cfg.maxPages)
		}

		doc, err := getDocument(ctx, fetcher, cfg.logger, path)
		if err != nil {
			return err
		}
		entries := doc.Get(listKey).Array()
		cfg.logger.WithFields(logrus.Fields{
			"url":     path,
			"page":    page + 1,
			"entries": len(entries),
		}).Debug("hrp search page")

		for _, entry := range entries {
			if err := visit(entry); err != nil {
				return err
			}
		}

		path, err = nextPage(doc.Get("Next.Href").String())
		if err != nil {
			return err
		}
	}
	return nil
}

// nextPage reduces an absolute next link to its path and query so it is
// fetched from the configured host.
func nextPage(href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", &hrpws.ParseError{Field: "Next.Href", Value: href, Err: err}
	}
	if u.IsAbs() {
		return u.RequestURI(), nil
	}
	return href, nil
}
