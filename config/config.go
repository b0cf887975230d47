package config

import (
	"github.com/kbukum/creational/errors"
	"github.com/kbukum/creational/logger"
	"github.com/kbukum/creational/validation"
)

// Collaboration policies.
const (
	CollaborationPermit = "permit"
	CollaborationReject = "reject"
)

// Config is the full creational configuration.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Factory     FactoryConfig `yaml:"factory" mapstructure:"factory"`
	Pool        PoolConfig    `yaml:"pool" mapstructure:"pool"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// FactoryConfig selects which concrete factory the application uses.
type FactoryConfig struct {
	// Variant pins a single variant. When empty, Priority decides.
	Variant string `yaml:"variant" mapstructure:"variant" validate:"omitempty,variant"`
	// Priority lists variants to try in order.
	Priority []string `yaml:"priority" mapstructure:"priority" validate:"dive,variant"`
	// Collaboration is "permit" (label cross-variant pairings) or "reject" (fail them).
	Collaboration string `yaml:"collaboration" mapstructure:"collaboration" validate:"oneof=permit reject"`
}

// PoolConfig enables reuse of product instances.
type PoolConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	MaxIdle int  `yaml:"max_idle" mapstructure:"max_idle" validate:"gte=0,max=1024"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "creational"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Factory.Collaboration == "" {
		c.Factory.Collaboration = CollaborationPermit
	}
	if c.Factory.Variant == "" && len(c.Factory.Priority) == 0 {
		c.Factory.Priority = []string{"1", "2"}
	}
	if c.Pool.Enabled && c.Pool.MaxIdle == 0 {
		c.Pool.MaxIdle = 4
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.InvalidConfig("logging: " + err.Error()).WithCause(err)
	}
	return nil
}
