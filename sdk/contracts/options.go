package contracts

// Options holds the configuration shared by the stateful services of the
// library, such as the note interning cache.
type Options struct {
	Logger          Logger   // Logger for cache events.
	LogLevel        LogLevel // Level of logging to use.
	LogFilePath     string   // File path for logging if file logging is enabled.
	InitialCapacity int      // Number of entries to preallocate in caches.
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger for the service.
func WithLogger(l Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the service.
func WithLogLevel(level LogLevel) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFile directs the service logger to the given file.
func WithLogFile(path string) Option {
	return func(opts *Options) {
		opts.LogFilePath = path
	}
}

// WithInitialCapacity preallocates room for n entries.
func WithInitialCapacity(n int) Option {
	return func(opts *Options) {
		opts.InitialCapacity = n
	}
}
