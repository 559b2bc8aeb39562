package queue

import (
	"math/rand/v2"
	"strings"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/config"
	"github.com/kbukum/knife/engine"
	"github.com/kbukum/knife/errors"
	"github.com/kbukum/knife/logger"
	"github.com/kbukum/knife/observability"
	"github.com/kbukum/knife/validation"
)

// Config holds queue configuration.
type Config struct {
	// Backend selects the buffer backend: "eager" or "lazy".
	Backend string `mapstructure:"backend" yaml:"backend" validate:"oneof=eager lazy"`

	// Policy selects the balancing policy: "replace", "accumulate" or "manual".
	Policy string `mapstructure:"policy" yaml:"policy" validate:"oneof=replace accumulate manual"`

	// MaxSnapshots bounds the snapshot history.
	MaxSnapshots int `mapstructure:"max_snapshots" yaml:"max_snapshots" validate:"gte=1,lte=1000"`

	// Tracing wraps every verb in an OpenTelemetry span.
	Tracing bool `mapstructure:"tracing" yaml:"tracing"`

	// Metrics records verb counts, durations and commits.
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`

	// Logging logs every verb at debug level and failures at warn.
	Logging bool `mapstructure:"logging" yaml:"logging"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.Policy = strings.ToLower(strings.TrimSpace(c.Policy))
	if c.Backend == "" {
		c.Backend = buffer.KindEager.String()
	}
	if c.Policy == "" {
		c.Policy = engine.Replace.String()
	}
	if c.MaxSnapshots == 0 {
		c.MaxSnapshots = engine.DefaultMaxSnapshots
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// Options converts the configuration into constructor options.
func (c *Config) Options() (Options, error) {
	kind, err := buffer.ParseKind(c.Backend)
	if err != nil {
		return Options{}, err
	}
	policy, err := engine.ParsePolicy(c.Policy)
	if err != nil {
		return Options{}, err
	}
	opts := Options{
		Backend:      kind,
		Policy:       policy,
		MaxSnapshots: c.MaxSnapshots,
		Tracing:      c.Tracing,
		Logging:      c.Logging,
	}
	if c.Metrics {
		m, err := observability.NewMetrics(observability.Meter(instrumentationName))
		if err != nil {
			return Options{}, errors.Internal(err)
		}
		opts.Metrics = m
	}
	return opts, nil
}

// LoadConfig reads queue configuration for name from <name>.yml, .env
// files and KNIFE_* environment variables, then applies defaults and
// validates it.
func LoadConfig(name string, opts ...config.LoaderOption) (Config, error) {
	var cfg Config
	opts = append([]config.LoaderOption{config.WithEnvPrefix("KNIFE")}, opts...)
	if err := config.Load(name, &cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options configures a Queue. The zero value is an eager queue under the
// Replace policy with no instrumentation.
type Options struct {
	// Backend selects the buffer backend.
	Backend buffer.Kind
	// Policy selects the balancing policy.
	Policy engine.Policy
	// MaxSnapshots bounds the snapshot history; zero means the default.
	MaxSnapshots int
	// Rand drives Shuffle, Sample and Choice; nil uses the global source.
	Rand *rand.Rand
	// Logger replaces the "knife.queue" component logger.
	Logger *logger.Logger
	// Metrics, when set, records verb metrics.
	Metrics *observability.Metrics
	// Tracing wraps every verb in a span.
	Tracing bool
	// Logging logs every verb.
	Logging bool
}
