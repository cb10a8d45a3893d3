package config

import "time"

// File represents the structure of the .sentinel configuration file.
// Zero values mean "not set" and leave the current value untouched.
type File struct {
	SitesDir        string        `yaml:"sites_dir,omitempty"`
	Timeout         time.Duration `yaml:"timeout,omitempty"`
	AnalysisTimeout time.Duration `yaml:"analysis_timeout,omitempty"`
	Model           string        `yaml:"model,omitempty"`
	APIBaseURL      string        `yaml:"api_base_url,omitempty"`
	APIKeyEnv       string        `yaml:"api_key_env,omitempty"`
	Encoding        string        `yaml:"encoding,omitempty"`
	Proxy           string        `yaml:"proxy,omitempty"`
	MaxBodySize     int64         `yaml:"max_body_size,omitempty"`

	// History is a pointer so that "history: false" can be told apart
	// from an absent key.
	History *bool `yaml:"history,omitempty"`

	LocalChecks *bool `yaml:"local_checks,omitempty"`
}

// Apply copies every value set in the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.SitesDir != "" {
		cfg.SitesDir = f.SitesDir
	}
	if f.Timeout != 0 {
		cfg.Timeout = f.Timeout
	}
	if f.AnalysisTimeout != 0 {
		cfg.AnalysisTimeout = f.AnalysisTimeout
	}
	if f.Model != "" {
		cfg.Model = f.Model
	}
	if f.APIBaseURL != "" {
		cfg.APIBaseURL = f.APIBaseURL
	}
	if f.APIKeyEnv != "" {
		cfg.APIKeyEnv = f.APIKeyEnv
	}
	if f.Encoding != "" {
		cfg.Encoding = f.Encoding
	}
	if f.Proxy != "" {
		cfg.ProxyAddress = f.Proxy
	}
	if f.MaxBodySize != 0 {
		cfg.MaxBodySize = f.MaxBodySize
	}
	if f.History != nil {
		cfg.History = *f.History
	}
	if f.LocalChecks != nil {
		cfg.LocalChecks = *f.LocalChecks
	}
}
