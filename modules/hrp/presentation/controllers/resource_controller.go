package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
	"github.com/iota-uz/hrp/pkg/httpapi"
	"github.com/iota-uz/hrp/pkg/middleware"
)

// ResourceController serves HRP resources under /hrp/ from a Fetcher, which
// lets the file-backed mock stand in for the real service over HTTP.
type ResourceController struct {
	fetcher  hrpws.Fetcher
	basePath string
}

func NewResourceController(fetcher hrpws.Fetcher) *ResourceController {
	return &ResourceController{
		fetcher:  fetcher,
		basePath: "/hrp",
	}
}

func (c *ResourceController) Key() string {
	return c.basePath
}

func (c *ResourceController) Register(r *mux.Router) {
	r.PathPrefix(c.basePath + "/").Methods(http.MethodGet).HandlerFunc(c.Get)
}

func (c *ResourceController) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := c.fetcher.GetURL(r.Context(), r.URL.RequestURI())
	if err != nil {
		if logger, ok := middleware.UseLogger(r.Context()); ok {
			logger.WithError(err).Error("hrp resource fetch failed")
		}
		status, code := httpapi.UpstreamStatus(err)
		_ = httpapi.WriteError(w, status, code, err.Error(), map[string]string{
			"path": r.URL.RequestURI(),
		})
		return
	}

	if logger, ok := middleware.UseLogger(r.Context()); ok {
		logger.WithFields(logrus.Fields{
			"status": resp.Status,
			"bytes":  len(resp.Body),
		}).Debug("hrp resource served")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/plain; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
