package rivgo

import (
	"fmt"
	"os"

	"github.com/hupe1980/rivgo/hilbert"
	"github.com/hupe1980/rivgo/permutation"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of a Space.
type Config struct {
	// Size is the dimension of every vector in the space.
	Size int `yaml:"size"`

	// NNZ is the number of non-zero entries per label, rounded up to even.
	NNZ int `yaml:"nnz"`

	// Namespace offsets label seeds so that independent spaces of the same
	// size do not share labels. Empty keeps the plain token seeds.
	Namespace string `yaml:"namespace"`

	// PermutationSeed seeds the rotation used by Rotate and Context.
	PermutationSeed int64 `yaml:"permutation_seed"`

	// HilbertOrder is the number of bits per coordinate in Key (1..32).
	HilbertOrder uint `yaml:"hilbert_order"`

	// HilbertStrict rejects coordinates outside [0, 2^HilbertOrder) instead of
	// keeping their low bits.
	HilbertStrict bool `yaml:"hilbert_strict"`

	// Workers limits the goroutines used for batch labelling and summation.
	// Zero uses GOMAXPROCS.
	Workers int `yaml:"workers"`

	// LabelCacheSize is the number of labels memoized. Zero disables the cache.
	LabelCacheSize int `yaml:"label_cache_size"`
}

// DefaultConfig returns the configuration used by most Random Indexing
// experiments: 16000 dimensions with 48 non-zero entries per label.
func DefaultConfig() Config {
	return Config{
		Size:            16000,
		NNZ:             48,
		PermutationSeed: permutation.DefaultSeed,
		HilbertOrder:    hilbert.DefaultOrder,
		LabelCacheSize:  4096,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return &ErrInvalidConfig{Field: "size", Reason: "must be positive"}
	case c.NNZ <= 0:
		return &ErrInvalidConfig{Field: "nnz", Reason: "must be positive", cause: ErrInvalidNNZ}
	case c.NNZ+c.NNZ%2 > c.Size:
		return &ErrInvalidConfig{Field: "nnz", Reason: fmt.Sprintf("%d entries do not fit in size %d", c.NNZ+c.NNZ%2, c.Size)}
	case c.HilbertOrder < 1 || c.HilbertOrder > hilbert.MaxOrder:
		return &ErrInvalidConfig{Field: "hilbert_order", Reason: "must be between 1 and 32", cause: ErrInvalidOrder}
	case c.Workers < 0:
		return &ErrInvalidConfig{Field: "workers", Reason: "must not be negative"}
	case c.LabelCacheSize < 0:
		return &ErrInvalidConfig{Field: "label_cache_size", Reason: "must not be negative"}
	}
	return nil
}

// ParseConfig decodes a YAML document. Fields that are absent keep their
// DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}
