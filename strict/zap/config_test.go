//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "missing library name",
			cfg:  Config{Environment: EnvironmentProduction},
			want: "OTelLibraryName is required",
		},
		{
			name: "unknown environment",
			cfg:  Config{Environment: "moon", OTelLibraryName: "lib"},
			want: `invalid environment "moon"`,
		},
		{
			name: "unknown encoding",
			cfg:  Config{Environment: EnvironmentLocal, Encoding: "xml", OTelLibraryName: "lib"},
			want: `invalid encoding "xml"`,
		},
		{
			name: "unknown level",
			cfg:  Config{Environment: EnvironmentLocal, Level: "loud", OTelLibraryName: "lib"},
			want: `invalid level "loud"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, _, err := New(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, logger)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewDefaultLevels(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentProduction, OTelLibraryName: "lib"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
	assert.Equal(t, zapcore.InfoLevel, logger.Level().Level())

	_, level, err = New(Config{Environment: EnvironmentLocal, Encoding: EncodingConsole, OTelLibraryName: "lib"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	_, level, err = New(Config{Environment: EnvironmentStaging, Level: "warn", OTelLibraryName: "lib"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level.Level())
}

func TestNewLevelIsAdjustable(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentUAT, OTelLibraryName: "lib"})
	require.NoError(t, err)

	level.SetLevel(zapcore.ErrorLevel)
	assert.False(t, logger.Raw().Core().Enabled(zapcore.WarnLevel))
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfg := buildConfig(Config{Environment: EnvironmentDevelopment})
	assert.Equal(t, "json", cfg.Encoding)
	assert.True(t, cfg.Development)

	cfg = buildConfig(Config{Environment: EnvironmentProduction, Encoding: EncodingConsole})
	assert.Equal(t, "console", cfg.Encoding)
	assert.False(t, cfg.Development)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ENV_NAME", "Local")
	t.Setenv("LOG_LEVEL", "error")

	cfg := ConfigFromEnv()
	assert.Equal(t, EnvironmentLocal, cfg.Environment)
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, DefaultLibraryName, cfg.OTelLibraryName)
	require.NoError(t, cfg.validate())

	t.Setenv("ENV_NAME", "")

	cfg = ConfigFromEnv()
	assert.Equal(t, EnvironmentProduction, cfg.Environment)
}
