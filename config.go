package textbuilder

import (
	"fmt"

	"github.com/npillmayer/textbuilder/search"
	"github.com/npillmayer/textbuilder/store"
)

// Config configures a builder.
type Config struct {
	// BlockSize is the allocation granularity in bytes. It has to be an even
	// power of two; zero selects 256.
	BlockSize int
	// SearchLimit is the maximum number of matches IndexOf, IndexOfSkip,
	// LastIndexOf and IndexOfRegExp report when called without a limit.
	// Zero selects 1000.
	SearchLimit int
}

// DefaultConfig returns the configuration used by New.
func DefaultConfig() Config {
	return Config{
		BlockSize:   store.BlockBytes,
		SearchLimit: search.DefaultLimit,
	}
}

func (cfg Config) normalized() Config {
	if cfg.BlockSize == 0 {
		cfg.BlockSize = store.BlockBytes
	}
	if cfg.SearchLimit == 0 {
		cfg.SearchLimit = search.DefaultLimit
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BlockSize < 2 || cfg.BlockSize%2 != 0 || !store.ValidBlock(cfg.BlockSize/2) {
		return fmt.Errorf("%w: block size %d is not an even power of two", ErrInvalidConfig, cfg.BlockSize)
	}
	if cfg.SearchLimit < 0 {
		return fmt.Errorf("%w: negative search limit %d", ErrInvalidConfig, cfg.SearchLimit)
	}
	return nil
}

func (cfg Config) blockUnits() int {
	return cfg.BlockSize / 2
}
