package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugared *zap.SugaredLogger

func init() {
	InitLog("info")
}

// InitLog rebuilds the global logger with the given level. Unknown
// levels fall back to info.
func InitLog(level string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = zapcore.InfoLevel
	}

	c := zap.NewDevelopmentConfig()
	c.Level = zap.NewAtomicLevelAt(l)
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := c.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugared = logger.Sugar()
}

func Debug(args ...any) { sugared.Debug(args...) }

func Debugf(format string, args ...any) { sugared.Debugf(format, args...) }

func Info(args ...any) { sugared.Info(args...) }

func Infof(format string, args ...any) { sugared.Infof(format, args...) }

func Warn(args ...any) { sugared.Warn(args...) }

func Warnf(format string, args ...any) { sugared.Warnf(format, args...) }

func Error(args ...any) { sugared.Error(args...) }

func Errorf(format string, args ...any) { sugared.Errorf(format, args...) }

func Fatalf(format string, args ...any) { sugared.Fatalf(format, args...) }
