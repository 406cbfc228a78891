package logger

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logEnvKey     = "LOG_ENV"
	defaultLogEnv = "prod"
)

var logger *zap.Logger

func init() {
	// LOG_ENV may live in .env; load it before the profile is chosen,
	// this package initializes before any config service runs.
	_ = godotenv.Load()

	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var err error
	logger, err = build(env)
	if err != nil {
		log.Fatal("logger init", err)
	}
}

func build(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	// Interactive tool: keep stderr readable next to the menu.
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return conf.Build()
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
