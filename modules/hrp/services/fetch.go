package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/iota-uz/hrp/modules/hrp/domain/identifier"
	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

// getDocument fetches path and decodes the body. Any status other than 200
// is returned as a *hrpws.FetchError.
func getDocument(ctx context.Context, fetcher hrpws.Fetcher, logger *logrus.Entry, path string) (gjson.Result, error) {
	start := time.Now()
	resp, err := fetcher.GetURL(ctx, path)
	if err != nil {
		return gjson.Result{}, err
	}
	logger.WithFields(logrus.Fields{
		"url":      path,
		"status":   resp.Status,
		"duration": time.Since(start),
	}).Debug("hrp resource fetched")

	if resp.Status != http.StatusOK {
		return gjson.Result{}, &hrpws.FetchError{URL: path, Status: resp.Status, Body: resp.Body}
	}
	return hrpws.DecodeBody(resp.Body)
}

// resourcePath validates id as the given kind and returns "<prefix>/<id>.json".
func resourcePath(prefix string, kind identifier.Kind, id string) (string, error) {
	if err := identifier.Check(kind, id); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s.json", prefix, id), nil
}

func detectKind(id string) (identifier.Kind, error) {
	kind, err := identifier.Detect(id)
	if err != nil {
		return "", &identifier.InvalidError{Kind: identifier.KindNetID, Value: id}
	}
	return kind, nil
}
