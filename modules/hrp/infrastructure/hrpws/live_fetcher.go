package hrpws

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/iota-uz/hrp/pkg/backoff"
)

const modeLive = "live"

var tracer = otel.Tracer("hrp-hrpws")

type LiveOptions struct {
	// BaseURL is the scheme and host of the HRP web service.
	BaseURL string
	// CertFile and KeyFile enable TLS client certificate authentication when both are set.
	CertFile string
	KeyFile  string

	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	MaxBackoff time.Duration
	JitterMax  time.Duration

	RequestIDHeader string

	HTTPClient *http.Client
	Logger     *logrus.Entry
	// Jitter is shared by every GetURL call; a seeded source makes delays reproducible.
	Jitter *backoff.Source
}

func (o *LiveOptions) setDefaults() {
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.BaseDelay == 0 {
		o.BaseDelay = 250 * time.Millisecond
	}
	if o.MaxBackoff == 0 {
		o.MaxBackoff = 10 * time.Second
	}
	if o.JitterMax == 0 {
		o.JitterMax = 100 * time.Millisecond
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		o.Logger = logrus.NewEntry(l)
	}
	if o.Jitter == nil {
		o.Jitter = backoff.NewSource(time.Now().UnixNano())
	}
}

// LiveFetcher reads resources from the HRP web service over HTTPS.
// It is safe for concurrent use.
type LiveFetcher struct {
	baseURL *url.URL
	client  *http.Client
	opts    LiveOptions
	retry   backoff.Policy
}

func NewLiveFetcher(opts LiveOptions) (*LiveFetcher, error) {
	opts.setDefaults()

	base := strings.TrimSpace(opts.BaseURL)
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid HRP base url: %q", base)
	}

	client := opts.HTTPClient
	if client == nil {
		transport := &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 50,
			IdleConnTimeout:     90 * time.Second,
		}
		if opts.CertFile != "" && opts.KeyFile != "" {
			cert, err := tls.LoadX509KeyPair(opts.CertFile, opts.KeyFile)
			if err != nil {
				return nil, errors.Wrap(err, "load client certificate")
			}
			transport.TLSClientConfig = &tls.Config{
				Certificates: []tls.Certificate{cert},
				MinVersion:   tls.VersionTLS12,
			}
		}
		client = &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		}
	}

	retry := backoff.Policy{
		Base:      opts.BaseDelay,
		Max:       opts.MaxBackoff,
		MaxJitter: opts.JitterMax,
		Source:    opts.Jitter,
	}
	return &LiveFetcher{
		baseURL: u,
		client:  client,
		opts:    opts,
		retry:   retry,
	}, nil
}

func (f *LiveFetcher) GetURL(ctx context.Context, path string) (*Response, error) {
	if ctx == nil {
		return nil, errors.New("context cannot be nil")
	}
	ctx, span := tracer.Start(ctx, "hrpws.GetURL",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("hrpws.path", path),
			attribute.String("http.method", http.MethodGet),
		),
	)
	defer span.End()

	m := getMetrics()
	start := time.Now()

	var lastErr error
	for attempt := 0; attempt <= f.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := f.retry.Delay(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := f.do(ctx, path)
		logger := f.opts.Logger.WithFields(logrus.Fields{
			"path":    path,
			"attempt": attempt + 1,
		})
		if err != nil {
			lastErr = err
			logger.WithError(err).Warn("hrpws request failed")
			if attempt < f.opts.MaxRetries {
				m.retryTotal.WithLabelValues("transport").Inc()
			}
			continue
		}
		if retryableStatus(resp.Status) && attempt < f.opts.MaxRetries {
			logger.WithField("status", resp.Status).Warn("hrpws retryable status")
			m.retryTotal.WithLabelValues("status").Inc()
			continue
		}

		elapsed := time.Since(start)
		logger.WithFields(logrus.Fields{
			"status":   resp.Status,
			"duration": elapsed,
		}).Debug("hrpws response")
		m.fetchTotal.WithLabelValues(modeLive, strconv.Itoa(resp.Status)).Inc()
		m.fetchLatency.WithLabelValues(modeLive).Observe(elapsed.Seconds())
		span.SetAttributes(attribute.Int("http.status_code", resp.Status))
		return resp, nil
	}

	m.fetchTotal.WithLabelValues(modeLive, "error").Inc()
	span.RecordError(lastErr)
	span.SetStatus(codes.Error, lastErr.Error())
	return nil, errors.Wrapf(lastErr, "GET %s", path)
}

func (f *LiveFetcher) do(ctx context.Context, path string) (*Response, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, errors.Wrap(err, "parse path")
	}
	target := f.baseURL.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "http request")
	}
	req.Header.Set("Accept", "application/json")
	if f.opts.RequestIDHeader != "" {
		req.Header.Set(f.opts.RequestIDHeader, uuid.NewString())
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http do")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "http read")
	}
	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
