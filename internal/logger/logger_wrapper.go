package logger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leandrodaf/musictheory/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrMissingLogFile is returned when file logging is requested without a path.
var ErrMissingLogFile = errors.New("file destination requires a file path")

// ZapLogger is an implementation of contracts.Logger backed by Uber's zap.
type ZapLogger struct {
	mu          sync.RWMutex
	logger      *zap.Logger
	level       contracts.LogLevel
	closeOutput func() // releases the sink opened by SetDestination, if any
}

// NewZapLogger creates a logger using zap's production encoding. The zap core
// accepts every level; filtering is left to SetLevel.
func NewZapLogger() contracts.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewFromZap(logger)
}

// NewStandardLogger creates a human readable logger for command line use.
func NewStandardLogger() contracts.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewFromZap(logger)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() contracts.Logger {
	return NewFromZap(zap.NewNop())
}

// NewFromZap wraps an existing zap logger.
func NewFromZap(logger *zap.Logger) contracts.Logger {
	return &ZapLogger{logger: logger, level: contracts.InfoLevel}
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.log(contracts.InfoLevel, msg, fields...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.log(contracts.ErrorLevel, msg, fields...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.log(contracts.DebugLevel, msg, fields...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.log(contracts.WarnLevel, msg, fields...)
}

// Fatal logs a message at the FATAL level; zap terminates the process afterwards.
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.log(contracts.FatalLevel, msg, fields...)
}

// Field returns a new instance of Field
func (z *ZapLogger) Field() contracts.Field {
	return &zapField{}
}

// SetLevel sets the minimum level that is written.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.level = level
}

// SetDestination rebuilds the underlying zap logger so that it writes to the
// console or to the file given in filePath. The output opened by a previous
// call is closed.
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) error {
	var path string
	switch dest {
	case contracts.ConsoleLog:
		path = "stderr"
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			return ErrMissingLogFile
		}
		path = filePath[0]
	default:
		return fmt.Errorf("unknown log destination %q", dest)
	}

	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return fmt.Errorf("opening log destination %s: %w", dest, err)
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zapcore.DebugLevel,
	)
	logger := zap.New(core, zap.AddCaller(), zap.ErrorOutput(sink))

	z.mu.Lock()
	defer z.mu.Unlock()
	_ = z.logger.Sync()
	if z.closeOutput != nil {
		z.closeOutput()
	}
	z.logger = logger
	z.closeOutput = closeSink
	return nil
}

// log is the internal function shared by every level.
func (z *ZapLogger) log(level contracts.LogLevel, msg string, fields ...contracts.Field) {
	z.mu.RLock()
	logger, threshold := z.logger, z.level
	z.mu.RUnlock()

	if level < threshold {
		return
	}

	zfs := toZapFields(fields...)
	switch level {
	case contracts.DebugLevel:
		logger.Debug(msg, zfs...)
	case contracts.InfoLevel:
		logger.Info(msg, zfs...)
	case contracts.WarnLevel:
		logger.Warn(msg, zfs...)
	case contracts.ErrorLevel:
		logger.Error(msg, zfs...)
	case contracts.FatalLevel:
		logger.Fatal(msg, zfs...)
	}
}

// toZapFields converts contract fields into zap fields, skipping foreign
// implementations.
func toZapFields(fields ...contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if f, ok := field.(*zapField); ok && f.key != "" {
			out = append(out, f.field)
		}
	}
	return out
}

// zapField implements contracts.Field
type zapField struct {
	key   string
	field zap.Field
}

func (f *zapField) Bool(key string, val bool) contracts.Field {
	return &zapField{key, zap.Bool(key, val)}
}

func (f *zapField) Int(key string, val int) contracts.Field {
	return &zapField{key, zap.Int(key, val)}
}

func (f *zapField) Float64(key string, val float64) contracts.Field {
	return &zapField{key, zap.Float64(key, val)}
}

func (f *zapField) String(key string, val string) contracts.Field {
	return &zapField{key, zap.String(key, val)}
}

func (f *zapField) Time(key string, val time.Time) contracts.Field {
	return &zapField{key, zap.Time(key, val)}
}

func (f *zapField) Int64(key string, val int64) contracts.Field {
	return &zapField{key, zap.Int64(key, val)}
}

func (f *zapField) Error(key string, val error) contracts.Field {
	return &zapField{key, zap.NamedError(key, val)}
}

func (f *zapField) Uint64(key string, val uint64) contracts.Field {
	return &zapField{key, zap.Uint64(key, val)}
}

func (f *zapField) Uint8(key string, val uint8) contracts.Field {
	return &zapField{key, zap.Uint8(key, val)}
}
