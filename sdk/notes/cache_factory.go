package notes

import (
	"github.com/leandrodaf/musictheory/sdk/contracts"
)

// NewCache creates a note interning cache with the specified options.
// It applies default options and preallocates the requested capacity.
//
// opts ...contracts.Option: A variadic list of option functions to customize the cache.
//
// Returns:
//   - *Cache: An empty cache ready for concurrent use.
//   - error: An error, if any occurred while applying the options.
func NewCache(opts ...contracts.Option) (*Cache, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		logger: options.Logger,
		notes:  make(map[int]*Note, options.InitialCapacity),
	}
	c.logger.Debug("note cache created",
		c.logger.Field().Int("initialCapacity", options.InitialCapacity))
	return c, nil
}
