package services

import (
	"context"
	"sync"
	"time"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
)

// recordingFetcher serves the embedded mock resources and remembers every requested path.
type recordingFetcher struct {
	mu    sync.Mutex
	next  hrpws.Fetcher
	paths []string
}

func newRecordingFetcher() *recordingFetcher {
	return &recordingFetcher{next: hrpws.NewMockFetcher()}
}

func (f *recordingFetcher) GetURL(ctx context.Context, path string) (*hrpws.Response, error) {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
	return f.next.GetURL(ctx, path)
}

func (f *recordingFetcher) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

type staticFetcher struct {
	resp *hrpws.Response
	err  error
}

func (f staticFetcher) GetURL(context.Context, string) (*hrpws.Response, error) {
	return f.resp, f.err
}

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
}

func boolPtr(b bool) *bool {
	return &b
}
