package stress

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// DistributionUniform draws values uniformly from the key space.
	DistributionUniform = "uniform"
	// DistributionZipfian draws values from a scrambled zipfian distribution
	// over the key space, concentrating traffic on a hot subset.
	DistributionZipfian = "zipfian"
)

// Config describes a single stress run.
type Config struct {
	InitialCapacity int    `toml:"initial_capacity"`
	MaxCapacity     int    `toml:"max_capacity"`
	LockStripes     int    `toml:"lock_stripes"`
	MaxKicks        int    `toml:"max_kicks"`
	Prefill         int    `toml:"prefill"`
	Operations      int    `toml:"operations"`
	Goroutines      int    `toml:"goroutines"`
	ReadPercent     int    `toml:"read_percent"`
	AddPercent      int    `toml:"add_percent"`
	RemovePercent   int    `toml:"remove_percent"`
	KeySpace        int64  `toml:"key_space"`
	Distribution    string `toml:"distribution"`
	Seed            int64  `toml:"seed"`
}

// DefaultConfig returns the standard stress scenario: a set sized for a
// million values, half filled up front, then a million mixed operations
// spread across eight goroutines.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 1_000_000,
		Prefill:         500_000,
		Operations:      1_000_000,
		Goroutines:      8,
		ReadPercent:     80,
		AddPercent:      10,
		RemovePercent:   10,
		KeySpace:        2_000_000,
		Distribution:    DistributionUniform,
	}
}

func (c *Config) validate() error {
	if c.InitialCapacity < 0 {
		return errors.New("initial capacity should not be negative")
	}

	if c.MaxCapacity < 0 {
		return errors.New("max capacity should not be negative")
	}

	if c.LockStripes < 0 {
		return errors.New("lock stripes should not be negative")
	}

	if c.MaxKicks < 0 {
		return errors.New("max kicks should not be negative")
	}

	if c.Prefill < 0 {
		return errors.New("prefill should not be negative")
	}

	if c.Operations <= 0 {
		return errors.New("operations should be positive")
	}

	if c.Goroutines <= 0 {
		return errors.New("goroutines should be positive")
	}

	if c.ReadPercent < 0 || c.AddPercent < 0 || c.RemovePercent < 0 {
		return errors.New("operation percentages should not be negative")
	}

	if c.ReadPercent+c.AddPercent+c.RemovePercent != 100 {
		return errors.New("operation percentages should sum to 100")
	}

	if c.KeySpace <= 0 {
		return errors.New("key space should be positive")
	}

	if 2*int64(c.Prefill) > c.KeySpace {
		return errors.New("key space should be at least twice the prefill count")
	}

	if c.Distribution != DistributionUniform && c.Distribution != DistributionZipfian {
		return errors.New("not valid distribution")
	}

	return nil
}

// Load reads a run configuration from the TOML file at configPath. Values
// absent from the file keep their defaults; an empty path yields the default
// configuration unchanged.
func Load(configPath string) (Config, error) {
	c := DefaultConfig()

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}

		if err := toml.Unmarshal(content, &c); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	if err := c.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}
