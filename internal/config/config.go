package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind decides how the first producer of the chain is wired. Only
// KindReplicant changes anything; any other value is treated like a worker.
type Kind string

const (
	KindWorker    Kind = "worker"
	KindReplicant Kind = "replicant"
)

var (
	ErrNoProducers      = errors.New("config: no producers defined")
	ErrInvalidValue     = errors.New("config: invalid value")
	ErrInvalidChainHead = errors.New("config: first producer cannot be a replicant")
)

type ProducerDef struct {
	Name       string  `yaml:"name"`
	Cost       float64 `yaml:"cost"`
	Production float64 `yaml:"production"`
	Kind       Kind    `yaml:"type"`
	// Growth is the per-purchase cost multiplier. Zero means DefaultGrowth.
	Growth float64 `yaml:"growth"`
}

type Config struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	Decimals      int           `yaml:"decimals"`
	DefaultGrowth float64       `yaml:"default_growth"`
	Producers     []ProducerDef `yaml:"producers"`
}

func Default() Config {
	return Config{
		TickInterval:  10 * time.Millisecond,
		Decimals:      0,
		DefaultGrowth: 1.5,
		Producers: []ProducerDef{
			{Name: "Replicant Alpha", Cost: 10, Production: 1, Kind: KindWorker, Growth: 1.5},
			{Name: "Replicant Beta", Cost: 150, Production: 1, Kind: KindReplicant, Growth: 1.5},
			{Name: "Replicant Gamma", Cost: 2500, Production: 1, Kind: KindReplicant, Growth: 1.5},
			{Name: "Replicant Delta", Cost: 50000, Production: 1, Kind: KindReplicant, Growth: 1.5},
			{Name: "Replicant Epsilon", Cost: 2000000, Production: 1, Kind: KindReplicant, Growth: 1.5},
		},
	}
}

// ApplyDefaults fills zero values with the values of Default.
func (c *Config) ApplyDefaults() {
	def := Default()
	if c.TickInterval == 0 {
		c.TickInterval = def.TickInterval
	}
	if c.DefaultGrowth == 0 {
		c.DefaultGrowth = def.DefaultGrowth
	}
	for i := range c.Producers {
		if c.Producers[i].Growth == 0 {
			c.Producers[i].Growth = c.DefaultGrowth
		}
	}
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval %v", ErrInvalidValue, c.TickInterval)
	}
	if c.Decimals < 0 {
		return fmt.Errorf("%w: decimals %d", ErrInvalidValue, c.Decimals)
	}
	if len(c.Producers) == 0 {
		return ErrNoProducers
	}
	for _, p := range c.Producers {
		if p.Cost <= 0 {
			return fmt.Errorf("%w: producer %q cost %v", ErrInvalidValue, p.Name, p.Cost)
		}
		if p.Production < 0 {
			return fmt.Errorf("%w: producer %q production %v", ErrInvalidValue, p.Name, p.Production)
		}
		if p.Growth <= 1 {
			return fmt.Errorf("%w: producer %q growth %v", ErrInvalidValue, p.Name, p.Growth)
		}
	}
	if c.Producers[0].Kind == KindReplicant {
		return ErrInvalidChainHead
	}
	return nil
}

// Load reads a YAML config, fills defaults and validates it.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
