package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("PROPRIETOR_PASSWORD", "owner")
	t.Setenv("MANAGER_PASSWORD", "manager")
	t.Setenv("SUPERVISOR_PASSWORD", "super")
}

func TestFromEnvDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, DefaultStationID, cfg.StationID.String())
	assert.Equal(t, 10*time.Second, cfg.DeleteUndoWindow)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30, cfg.ChartWindow)
	assert.Equal(t, 10, cfg.TableWindow)
	assert.Equal(t, 15, cfg.SupervisorHistoryLimit)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DELETE_UNDO_SECONDS", "3")
	t.Setenv("CHART_WINDOW", "60")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 3*time.Second, cfg.DeleteUndoWindow)
	assert.Equal(t, 60, cfg.ChartWindow)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOriginList())
}

func TestFromEnvRejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"short secret", "JWT_SECRET", "too-short"},
		{"unknown driver", "DATABASE_DRIVER", "mysql"},
		{"bad station", "STATION_ID", "station-one"},
		{"bad window", "TABLE_WINDOW", "ten"},
		{"zero undo", "DELETE_UNDO_SECONDS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnvRequiresRolePasswords(t *testing.T) {
	setRequired(t)
	t.Setenv("MANAGER_PASSWORD", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "MANAGER_PASSWORD")
}
