package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "sentinel"

	// DefaultSitesDir is the sessions root, relative to the working directory.
	// Every session is a subdirectory of it.
	DefaultSitesDir = "sites"

	// DefaultTimeout bounds each page and asset GET.
	DefaultTimeout = 10 * time.Second

	// DefaultAnalysisTimeout bounds a single call to the analysis service.
	// Large files take the model a while to answer, so this is generous.
	DefaultAnalysisTimeout = 5 * time.Minute

	// DefaultModel is the chat completion model used for analysis.
	DefaultModel = "gpt-4o-mini"

	// DefaultAPIBaseURL is the OpenAI-compatible API root.
	DefaultAPIBaseURL = "https://api.openai.com/v1"

	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "OPENAI_API_KEY"

	// DefaultEncoding is the BPE scheme used to count tokens.
	DefaultEncoding = "cl100k_base"

	// DefaultMaxBodySize limits how much of a single response body is read.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
)

// Config holds all configuration options for sentinel.
// It is populated from defaults, the configuration file and CLI flags (in
// that order of increasing priority) and passed down explicitly.
type Config struct {
	// SitesDir is the sessions root. Each session is a directory below it.
	SitesDir string

	// Timeout bounds each outbound GET (page and every asset).
	Timeout time.Duration

	// AnalysisTimeout bounds each call to the analysis service.
	AnalysisTimeout time.Duration

	// Model is the chat completion model name sent to the analysis service.
	Model string

	// APIBaseURL is the root of the OpenAI-compatible API.
	APIBaseURL string

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself is read when the client is built and never stored here.
	APIKeyEnv string

	// Encoding is the tokenizer encoding used by the unit counter.
	Encoding string

	// ProxyAddress is an optional SOCKS5 proxy ("host:port") for fetches.
	// Empty means direct connections.
	ProxyAddress string

	// MaxBodySize limits how many bytes of a response body are read.
	// Zero means DefaultMaxBodySize.
	MaxBodySize int64

	// History enables recording finished analyses in the history database.
	History bool

	// LocalChecks enables the local pattern checks that run before each
	// analysis.
	LocalChecks bool

	// DBDir is the directory holding the history database.
	DBDir string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file path given on the command line.
	// Empty means search the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SitesDir:        DefaultSitesDir,
		Timeout:         DefaultTimeout,
		AnalysisTimeout: DefaultAnalysisTimeout,
		Model:           DefaultModel,
		APIBaseURL:      DefaultAPIBaseURL,
		APIKeyEnv:       DefaultAPIKeyEnv,
		Encoding:        DefaultEncoding,
		MaxBodySize:     DefaultMaxBodySize,
		History:         true,
		LocalChecks:     true,
		DBDir:           XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for sentinel.
// On Linux: ~/.local/share/sentinel
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for sentinel.
// On Linux: ~/.config/sentinel
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors.
func (c *Config) Validate() error {
	if c.SitesDir == "" {
		return ErrEmptySitesDir
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.AnalysisTimeout <= 0 {
		return ErrInvalidAnalysisTimeout
	}
	if c.Model == "" {
		return ErrEmptyModel
	}
	if c.Encoding == "" {
		return ErrEmptyEncoding
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}

// EffectiveMaxBodySize returns MaxBodySize, or the default when it is zero.
func (c *Config) EffectiveMaxBodySize() int64 {
	if c.MaxBodySize == 0 {
		return DefaultMaxBodySize
	}
	return c.MaxBodySize
}
