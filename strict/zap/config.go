package zap

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-strict/strict/ok"
)

const callerSkipFrames = 1

// DefaultLibraryName is the instrumentation scope used by ConfigFromEnv.
const DefaultLibraryName = "github.com/LerianStudio/lib-strict"

// Environment selects the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentUAT         Environment = "uat"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Encoding selects the output format.
type Encoding string

const (
	EncodingJSON    Encoding = "json"
	EncodingConsole Encoding = "console"
)

// Config holds the logger inputs. Empty Level picks the environment default;
// empty Encoding means JSON.
type Config struct {
	Environment     Environment
	Level           string
	Encoding        Encoding
	OTelLibraryName string
}

func (c Config) validate() error {
	if c.OTelLibraryName == "" {
		return fmt.Errorf("OTelLibraryName is required")
	}

	switch c.Encoding {
	case "", EncodingJSON, EncodingConsole:
	default:
		return fmt.Errorf("invalid encoding %q", c.Encoding)
	}

	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentUAT, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// ConfigFromEnv reads ENV_NAME and LOG_LEVEL. An unset ENV_NAME means
// production.
func ConfigFromEnv() Config {
	env := Environment(strings.ToLower(ok.GetenvOrDefault("ENV_NAME", string(EnvironmentProduction))))

	level, err := ok.Getenv("LOG_LEVEL")
	if err != nil {
		level = ""
	}

	return Config{
		Environment:     env,
		Level:           level,
		OTelLibraryName: DefaultLibraryName,
	}
}

// New builds a logger and returns it with its runtime level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap config: %w", err)
	}

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	baseConfig := buildConfig(cfg)
	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	built, err := baseConfig.Build(
		zap.AddCallerSkip(callerSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}),
	)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, level, nil
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if isDevelopment(cfg.Environment) {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func isDevelopment(env Environment) bool {
	return env == EnvironmentDevelopment || env == EnvironmentLocal
}

func buildConfig(cfg Config) zap.Config {
	var base zap.Config
	if isDevelopment(cfg.Environment) {
		base = zap.NewDevelopmentConfig()
	} else {
		base = zap.NewProductionConfig()
	}

	base.Encoding = string(EncodingJSON)
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	if cfg.Encoding == EncodingConsole {
		base.Encoding = string(EncodingConsole)
		base.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return base
}
