package lumber

import "errors"

// Fields is passed to WithFields for structured logging.
type Fields map[string]interface{}

// Log levels.
const (
	Debug = "debug"
	Info  = "info"
	Warn  = "warn"
	Error = "error"
	Fatal = "fatal"
)

// Logger instances.
const (
	// InstanceZapLogger zap logger instance.
	InstanceZapLogger int = iota
	// InstanceLogrusLogger logrus logger instance.
	InstanceLogrusLogger
)

var errInvalidLoggerInstance = errors.New("invalid logger instance")

// LoggingConfig stores the config for the logger.
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// Logger is the contract for the logger interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Panicf(format string, args ...interface{})
	WithFields(keyValues Fields) Logger
}

// NewLogger returns a logger instance.
func NewLogger(config *LoggingConfig, verbose bool, loggerInstance int) (Logger, error) {
	if !verbose {
		config.ConsoleLevel = Info
		config.FileLevel = Info
	}
	if config.ConsoleLevel == "" {
		config.ConsoleLevel = Debug
	}
	if config.FileLevel == "" {
		config.FileLevel = Debug
	}
	switch loggerInstance {
	case InstanceZapLogger:
		logger, err := newZapLogger(config)
		if err != nil {
			return nil, err
		}
		return logger, nil
	case InstanceLogrusLogger:
		logger, err := newLogrusLogger(config)
		if err != nil {
			return nil, err
		}
		return logger, nil
	default:
		return nil, errInvalidLoggerInstance
	}
}
