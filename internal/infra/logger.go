package infra

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the application logger: a colored console sink on
// stderr at the configured level, and a rotating debug file sink at
// <logDir>/futures-bot.log (10 MB per file, 5 retained).
func NewLogger(cfg *Config, logDir string) (*zap.Logger, error) {
	if err := EnsureDir(logDir); err != nil {
		return nil, err
	}

	consoleLevel := zapcore.InfoLevel
	if cfg.Logging.Level != "" {
		lvl, err := zapcore.ParseLevel(strings.ToLower(cfg.Logging.Level))
		if err != nil {
			return nil, err
		}
		consoleLevel = lvl
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)

	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.TimeKey = "ts"
	fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(fileCfg),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(logDir, "futures-bot.log"),
			MaxSize:    10, // MB
			MaxBackups: 5,
		}),
		zapcore.DebugLevel,
	)

	return zap.New(zapcore.NewTee(consoleCore, fileCore)), nil
}
