package configuration

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iota-uz/utils/fs"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/hrp/pkg/logging"
)

const Production = "production"

const (
	DAOMock = "Mock"
	DAOLive = "Live"
)

var singleton = sync.OnceValue(func() *Configuration {
	c, err := Load([]string{".env", ".env.local"})
	if err != nil {
		panic(err)
	}
	return c
})

// LoadEnv loads the env files that exist. A file missing from the working
// directory is looked up in the nearest parent directory holding a go.mod.
func LoadEnv(envFiles []string) (int, error) {
	root := moduleRoot()

	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		switch {
		case fs.FileExists(file):
			existingFiles = append(existingFiles, file)
		case root != "" && !filepath.IsAbs(file) && fs.FileExists(filepath.Join(root, file)):
			existingFiles = append(existingFiles, filepath.Join(root, file))
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

func moduleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if fs.FileExists(filepath.Join(dir, "go.mod")) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

type HRPWSOptions struct {
	// DAOClass selects the resource fetcher: Mock reads bundled files, Live calls the service.
	DAOClass   string        `env:"HRPWS_DAO_CLASS" envDefault:"Mock"`
	Host       string        `env:"HRPWS_HOST" envDefault:"https://hrpws.example.edu"`
	CertFile   string        `env:"HRPWS_CERT_FILE"`
	KeyFile    string        `env:"HRPWS_KEY_FILE"`
	Timeout    time.Duration `env:"HRPWS_TIMEOUT" envDefault:"30s"`
	MaxRetries int           `env:"HRPWS_MAX_RETRIES" envDefault:"3"`
	MaxBackoff time.Duration `env:"HRPWS_MAX_BACKOFF" envDefault:"10s"`
	// MockPath overrides the embedded mock resources with a directory laid out as hrpws/file/<path>.
	MockPath string `env:"HRPWS_MOCK_PATH"`
	PageSize int    `env:"HRPWS_PAGE_SIZE" envDefault:"200"`
	MaxPages int    `env:"HRPWS_MAX_PAGES" envDefault:"1000"`
}

func (o *HRPWSOptions) IsMock() bool {
	return o.DAOClass == DAOMock
}

func (o *HRPWSOptions) Validate() error {
	switch strings.ToLower(strings.TrimSpace(o.DAOClass)) {
	case "mock", "":
		o.DAOClass = DAOMock
	case "live":
		o.DAOClass = DAOLive
	default:
		return fmt.Errorf("invalid HRPWS_DAO_CLASS=%q (expected Mock|Live)", o.DAOClass)
	}

	if o.DAOClass == DAOLive {
		u, err := url.Parse(strings.TrimSpace(o.Host))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid HRPWS_HOST=%q", o.Host)
		}
		if (o.CertFile == "") != (o.KeyFile == "") {
			return fmt.Errorf("HRPWS_CERT_FILE and HRPWS_KEY_FILE must be set together")
		}
	}
	if o.MockPath != "" && !isDir(o.MockPath) {
		return fmt.Errorf("HRPWS_MOCK_PATH=%q is not a directory", o.MockPath)
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("HRPWS_TIMEOUT must be positive, got %s", o.Timeout)
	}
	if o.MaxRetries < 0 {
		return fmt.Errorf("HRPWS_MAX_RETRIES must be non-negative, got %d", o.MaxRetries)
	}
	if o.PageSize < 1 || o.PageSize > 1000 {
		return fmt.Errorf("HRPWS_PAGE_SIZE must be between 1 and 1000, got %d", o.PageSize)
	}
	if o.MaxPages < 1 {
		return fmt.Errorf("HRPWS_MAX_PAGES must be positive, got %d", o.MaxPages)
	}
	return nil
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"hrp"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type Configuration struct {
	HRPWS         HRPWSOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"error"`
	// Empty means log to stderr only.
	LogPath string `env:"LOG_PATH"`
	// Sent with every live request and echoed by the mock server.
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	MockServerAddr  string `env:"MOCK_SERVER_ADDR" envDefault:"localhost:8090"`
	// Browser origins allowed to call the mock server. Empty disables CORS.
	MockServerCORSOrigins []string `env:"MOCK_SERVER_CORS_ORIGINS" envSeparator:","`

	logFile io.Closer
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func Use() *Configuration {
	return singleton()
}

// Load reads the env files and the process environment into a new Configuration.
func Load(envFiles []string) (*Configuration, error) {
	c := &Configuration{}
	if err := c.load(envFiles); err != nil {
		c.Unload()
		return nil, err
	}
	return c, nil
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 && len(envFiles) > 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.HRPWS.Validate(); err != nil {
		return fmt.Errorf("hrpws configuration error: %w", err)
	}
	if err := c.validateLogLevel(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger
	return nil
}

func (c *Configuration) validateLogLevel() error {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	if level == "" {
		level = "error"
	}
	switch level {
	case "silent", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid LOG_LEVEL=%q (expected silent|error|warn|info|debug)", c.LogLevel)
	}
	c.LogLevel = level
	return nil
}

// Unload closes the log file, if any.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
