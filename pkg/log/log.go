package log

import (
	"github.com/kiltia/showroom/config"

	"go.uber.org/zap"
)

// Logger is a thin wrapper over a sugared zap logger that forces every
// call site to attach a tagged [LogObject].
type Logger struct {
	internal *zap.SugaredLogger
}

func (l Logger) GetInternal() *zap.SugaredLogger {
	if l.internal == nil {
		return zap.S()
	}
	return l.internal
}

// Wrap adapts an existing sugared logger.
func Wrap(s *zap.SugaredLogger) Logger {
	return Logger{internal: s}
}

// Init builds the process logger from cfg and installs it as zap's global,
// so zap.S() and zap.L() pick it up as well.
func Init(cfg config.LogConfig) (Logger, error) {
	conf := zap.NewDevelopmentConfig()
	conf.Level = zap.NewAtomicLevelAt(cfg.Level)
	conf.Encoding = cfg.Encoding
	if cfg.OutputPath != "" {
		conf.OutputPaths = []string{cfg.OutputPath}
		conf.ErrorOutputPaths = []string{cfg.OutputPath}
	}
	logger, err := conf.Build()
	if err != nil {
		return Logger{}, err
	}
	zap.ReplaceGlobals(logger)
	return Wrap(logger.Sugar()), nil
}
