package services

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 200
	defaultMaxPages = 1000
)

type config struct {
	logger   *logrus.Entry
	now      func() time.Time
	pageSize int
	maxPages int
}

type Option func(*config)

func WithLogger(logger *logrus.Entry) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithClock sets the time source used to decide whether a position is still active.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithPageSize sets the page_size sent with searches that do not set one.
func WithPageSize(size int) Option {
	return func(c *config) {
		c.pageSize = size
	}
}

// WithMaxPages bounds how many pages a single search may follow.
func WithMaxPages(n int) Option {
	return func(c *config) {
		c.maxPages = n
	}
}

func newConfig(component string, opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		c.logger = logrus.NewEntry(l)
	}
	c.logger = c.logger.WithField("component", component)
	if c.now == nil {
		c.now = time.Now
	}
	if c.pageSize <= 0 {
		c.pageSize = defaultPageSize
	}
	if c.maxPages <= 0 {
		c.maxPages = defaultMaxPages
	}
	return c
}
