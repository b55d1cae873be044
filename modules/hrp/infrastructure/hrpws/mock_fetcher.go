package hrpws

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

const modeMock = "mock"

//go:embed resources
var resources embed.FS

// Characters that cannot appear in resource file names are replaced by "_",
// so "/hrp/v3/person.json?page_size=200" maps to
// "hrpws/file/hrp/v3/person.json_page_size_200".
var platformSafe = strings.NewReplacer(
	"?", "_", "|", "_", "<", "_", ">", "_", "=", "_", ":", "_",
	"*", "_", ",", "_", ";", "_", "+", "_", "&", "_", "\"", "_",
	"@", "_", "$", "_",
)

// MockResources returns the embedded mock resource tree.
func MockResources() fs.FS {
	sub, err := fs.Sub(resources, "resources")
	if err != nil {
		panic(err)
	}
	return sub
}

// MockFilePath maps a resource path to its file in a mock resource tree.
func MockFilePath(resourcePath string) string {
	p := strings.TrimPrefix(resourcePath, "/")
	return path.Join(ServiceName, "file", platformSafe.Replace(p))
}

// MockFetcher serves resources from files instead of the network. A
// missing file is reported as a 404 response.
type MockFetcher struct {
	fsys   fs.FS
	logger *logrus.Entry
}

type MockOption func(*MockFetcher)

func WithMockFS(fsys fs.FS) MockOption {
	return func(f *MockFetcher) {
		f.fsys = fsys
	}
}

// WithMockDir reads resources from a directory laid out like the embedded tree.
func WithMockDir(dir string) MockOption {
	return func(f *MockFetcher) {
		f.fsys = os.DirFS(dir)
	}
}

func WithMockLogger(logger *logrus.Entry) MockOption {
	return func(f *MockFetcher) {
		f.logger = logger
	}
}

func NewMockFetcher(opts ...MockOption) *MockFetcher {
	f := &MockFetcher{}
	for _, opt := range opts {
		opt(f)
	}
	if f.fsys == nil {
		f.fsys = MockResources()
	}
	if f.logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		f.logger = logrus.NewEntry(l)
	}
	return f
}

func (f *MockFetcher) GetURL(ctx context.Context, resourcePath string) (*Response, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	m := getMetrics()
	name := MockFilePath(resourcePath)
	logger := f.logger.WithFields(logrus.Fields{
		"path": resourcePath,
		"file": name,
	})

	body, err := fs.ReadFile(f.fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid):
		logger.Debug("hrpws mock resource not found")
		m.fetchTotal.WithLabelValues(modeMock, "404").Inc()
		return &Response{
			Status: http.StatusNotFound,
			Header: http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}},
			Body:   []byte("Data not found"),
		}, nil
	case err != nil:
		m.fetchTotal.WithLabelValues(modeMock, "error").Inc()
		return nil, errors.Wrapf(err, "read mock resource %s", name)
	}

	logger.WithField("duration", time.Since(start)).Debug("hrpws mock response")
	m.fetchTotal.WithLabelValues(modeMock, "200").Inc()
	m.fetchLatency.WithLabelValues(modeMock).Observe(time.Since(start).Seconds())
	return &Response{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{mimetype.Detect(body).String()}},
		Body:   body,
	}, nil
}
