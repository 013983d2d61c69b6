package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vango-ant/app/components/ui"
	"github.com/vango-dev/vango-ant/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "VANGO_PREFIX", "VANGO_DIRECTION", "VANGO_AUTO_INSERT_SPACE", "VANGO_MAX_RENDER_PASSES"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ui.DefaultPrefix, cfg.Prefix)
	assert.Equal(t, ui.DirectionLTR, cfg.Direction)
	assert.True(t, cfg.AutoInsertSpace)
	assert.Equal(t, 8, cfg.MaxRenderPasses)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VANGO_PREFIX", "my-app")
	t.Setenv("VANGO_DIRECTION", "RTL")
	t.Setenv("VANGO_AUTO_INSERT_SPACE", "false")
	t.Setenv("VANGO_MAX_RENDER_PASSES", "4")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 4, cfg.MaxRenderPasses)

	cc := cfg.UIContext()
	assert.Equal(t, "my-app-btn", cc.Prefix("btn", ""))
	assert.Equal(t, ui.DirectionRTL, cc.Direction())
	assert.False(t, cc.AutoInsertSpace())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad prefix", "VANGO_PREFIX", "My_App"},
		{"bad direction", "VANGO_DIRECTION", "up"},
		{"bad bool", "VANGO_AUTO_INSERT_SPACE", "maybe"},
		{"bad passes", "VANGO_MAX_RENDER_PASSES", "many"},
		{"zero passes", "VANGO_MAX_RENDER_PASSES", "0"},
		{"bad level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		wantErr error
	}{
		// Valid prefixes
		{"default", "ant", nil},
		{"minimum length", "ab", nil},
		{"with hyphen", "my-app", nil},
		{"with numbers", "v2", nil},

		// Invalid
		{"too short", "a", config.ErrPrefixTooShort},
		{"too long", "abcdefghijklmnopqrstuvwxyz0123456", config.ErrPrefixTooLong},
		{"starts with number", "2ant", config.ErrPrefixInvalidStart},
		{"starts with uppercase", "Ant", config.ErrPrefixInvalidStart},
		{"ends with hyphen", "ant-", config.ErrPrefixInvalidEnd},
		{"consecutive hyphens", "my--app", config.ErrPrefixConsecutiveHyphens},
		{"underscore", "my_app", config.ErrPrefixInvalidChars},
		{"space", "my app", config.ErrPrefixInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ValidatePrefix(tt.prefix)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
