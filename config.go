package culture

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Config captures engine setup
type Config struct {
	Provider   LocaleProvider
	Logger     logrus.FieldLogger
	Registerer prometheus.Registerer

	dataPath       string
	overridesPath  string
	userDefault    string
	systemDefault  string
	detectUser     bool
	cldrNames      bool
	tables         *LocaleTables
	metricsEnabled bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}

	return cfg, nil
}

// New builds an engine from options in one step.
func New(opts ...Option) (*Engine, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildEngine()
}

// WithProvider uses provider instead of locale tables. Data, override and
// default locale options are ignored when a provider is set.
func WithProvider(provider LocaleProvider) Option {
	return func(c *Config) error {
		if provider == nil {
			return errors.New("culture: provider is nil")
		}
		c.Provider = provider
		return nil
	}
}

// WithLocaleData loads locale tables from a JSON or YAML file instead of the
// embedded defaults.
func WithLocaleData(path string) Option {
	return func(c *Config) error {
		c.dataPath = path
		c.tables = nil
		return nil
	}
}

// WithLocaleTables uses already decoded locale tables.
func WithLocaleTables(tables LocaleTables) Option {
	return func(c *Config) error {
		c.tables = &tables
		c.dataPath = ""
		return nil
	}
}

// WithUserOverrides loads per-machine user settings from a JSON or YAML file.
func WithUserOverrides(path string) Option {
	return func(c *Config) error {
		c.overridesPath = path
		return nil
	}
}

// WithUserDefaultLocale sets the user default locale by name.
func WithUserDefaultLocale(name string) Option {
	return func(c *Config) error {
		c.userDefault = name
		return nil
	}
}

// WithSystemDefaultLocale sets the system default locale by name.
func WithSystemDefaultLocale(name string) Option {
	return func(c *Config) error {
		c.systemDefault = name
		return nil
	}
}

// WithDetectedUserLocale takes the user default locale from the process
// environment when it names a known locale.
func WithDetectedUserLocale() Option {
	return func(c *Config) error {
		c.detectUser = true
		return nil
	}
}

// WithCLDRNames fills missing language, country and currency names from CLDR.
func WithCLDRNames() Option {
	return func(c *Config) error {
		c.cldrNames = true
		return nil
	}
}

// WithLogger sets the logger used for cache, fallback and enumeration events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics enables Prometheus collectors. A nil registerer keeps them
// unregistered.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Config) error {
		c.Registerer = reg
		c.metricsEnabled = true
		return nil
	}
}

// BuildEngine assembles the provider and the engine.
func (cfg *Config) BuildEngine() (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("culture: config is nil")
	}

	provider, err := cfg.buildProvider()
	if err != nil {
		return nil, err
	}
	if cfg.cldrNames {
		provider = NewCLDRNames(provider)
	}

	var metrics *Metrics
	if cfg.metricsEnabled {
		metrics = NewMetrics(cfg.Registerer)
	}

	return NewEngine(provider, cfg.Logger, metrics), nil
}

func (cfg *Config) buildProvider() (LocaleProvider, error) {
	if cfg.Provider != nil {
		return cfg.Provider, nil
	}

	tables, err := cfg.loadTables()
	if err != nil {
		return nil, err
	}

	if cfg.overridesPath != "" {
		overrides, err := LoadOverrideTable(cfg.overridesPath)
		if err != nil {
			return nil, err
		}
		tables.UserOverrides = overrides
	}
	if cfg.systemDefault != "" {
		tables.SystemDefault = cfg.systemDefault
	}
	if cfg.userDefault != "" {
		tables.UserDefault = cfg.userDefault
	}

	provider, err := NewTableProvider(tables)
	if err != nil {
		return nil, err
	}

	if cfg.detectUser && cfg.userDefault == "" {
		if name := DetectUserLocale(); name != "" {
			if id, ok := provider.LocaleNameToID(name); ok {
				provider.SetUserDefault(id)
			} else {
				cfg.Logger.WithField("locale", name).Debug("culture: detected user locale is not defined")
			}
		}
	}

	return provider, nil
}

func (cfg *Config) loadTables() (LocaleTables, error) {
	switch {
	case cfg.tables != nil:
		return *cfg.tables, nil
	case cfg.dataPath != "":
		tables, err := LoadLocaleTables(cfg.dataPath)
		if err != nil {
			return LocaleTables{}, fmt.Errorf("culture: load locale data: %w", err)
		}
		return tables, nil
	default:
		return DefaultTables()
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
