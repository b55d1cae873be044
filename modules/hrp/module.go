package hrp

import (
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/hrp/modules/hrp/infrastructure/hrpws"
	"github.com/iota-uz/hrp/modules/hrp/services"
	"github.com/iota-uz/hrp/pkg/configuration"
)

// Client bundles the person, worker and appointee queries over one Fetcher.
type Client struct {
	fetcher    hrpws.Fetcher
	persons    *services.PersonService
	workers    *services.WorkerService
	appointees *services.AppointeeService
}

func New(fetcher hrpws.Fetcher, opts ...services.Option) *Client {
	return &Client{
		fetcher:    fetcher,
		persons:    services.NewPersonService(fetcher, opts...),
		workers:    services.NewWorkerService(fetcher, opts...),
		appointees: services.NewAppointeeService(fetcher, opts...),
	}
}

// NewFromConfig builds the fetcher selected by HRPWS_DAO_CLASS and wires the
// services with the configured paging limits and logger.
func NewFromConfig(conf *configuration.Configuration) (*Client, error) {
	var logger *logrus.Entry
	if conf.Logger() != nil {
		logger = logrus.NewEntry(conf.Logger())
	}
	fetcher, err := NewFetcher(conf, logger)
	if err != nil {
		return nil, err
	}

	opts := []services.Option{
		services.WithPageSize(conf.HRPWS.PageSize),
		services.WithMaxPages(conf.HRPWS.MaxPages),
	}
	if logger != nil {
		opts = append(opts, services.WithLogger(logger))
	}
	return New(fetcher, opts...), nil
}

// NewFetcher returns the fetcher selected by HRPWS_DAO_CLASS.
func NewFetcher(conf *configuration.Configuration, logger *logrus.Entry) (hrpws.Fetcher, error) {
	if conf.HRPWS.IsMock() {
		return NewMockFetcher(conf, logger), nil
	}
	live, err := NewLiveFetcher(conf, logger)
	if err != nil {
		return nil, err
	}
	return live, nil
}

// NewMockFetcher reads HRPWS_MOCK_PATH when set and the embedded resources otherwise.
func NewMockFetcher(conf *configuration.Configuration, logger *logrus.Entry) *hrpws.MockFetcher {
	opts := []hrpws.MockOption{}
	if conf.HRPWS.MockPath != "" {
		opts = append(opts, hrpws.WithMockDir(conf.HRPWS.MockPath))
	}
	if logger != nil {
		opts = append(opts, hrpws.WithMockLogger(logger.WithField("component", "hrpws.mock")))
	}
	return hrpws.NewMockFetcher(opts...)
}

// NewLiveFetcher calls HRPWS_HOST regardless of HRPWS_DAO_CLASS.
func NewLiveFetcher(conf *configuration.Configuration, logger *logrus.Entry) (*hrpws.LiveFetcher, error) {
	live := hrpws.LiveOptions{
		BaseURL:         conf.HRPWS.Host,
		CertFile:        conf.HRPWS.CertFile,
		KeyFile:         conf.HRPWS.KeyFile,
		Timeout:         conf.HRPWS.Timeout,
		MaxRetries:      conf.HRPWS.MaxRetries,
		MaxBackoff:      conf.HRPWS.MaxBackoff,
		RequestIDHeader: conf.RequestIDHeader,
	}
	if logger != nil {
		live.Logger = logger.WithField("component", "hrpws.live")
	}
	return hrpws.NewLiveFetcher(live)
}

func (c *Client) Persons() *services.PersonService       { return c.persons }
func (c *Client) Workers() *services.WorkerService       { return c.workers }
func (c *Client) Appointees() *services.AppointeeService { return c.appointees }

// IsUsingFileDAO reports whether resources come from files rather than the live service.
func (c *Client) IsUsingFileDAO() bool {
	_, ok := c.fetcher.(*hrpws.MockFetcher)
	return ok
}

func (c *Client) ServiceName() string {
	return hrpws.ServiceName
}
