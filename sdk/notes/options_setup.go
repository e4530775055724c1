package notes

import (
	"github.com/leandrodaf/musictheory/internal/logger"
	"github.com/leandrodaf/musictheory/sdk/contracts"
)

// applyDefaultOptions sets default values for Options if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify Options.
//
// Returns:
//   - contracts.Options: The finalized options with defaults applied.
//   - error: An error if the requested log destination could not be opened.
func applyDefaultOptions(opts ...contracts.Option) (contracts.Options, error) {
	options := &contracts.Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogFilePath != "" {
		if err := options.Logger.SetDestination(contracts.FileLog, options.LogFilePath); err != nil {
			return contracts.Options{}, err
		}
	}
	if options.InitialCapacity < 0 {
		options.InitialCapacity = 0
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
