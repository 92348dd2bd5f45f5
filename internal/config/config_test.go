package config

import (
	"os"
	"path/filepath"
	"testing"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		expected    Config
		expectedErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{"SEED": "42"},
			expected: Config{
				Stage:        StageDev,
				Seed:         42,
				MigrationDir: DefaultMigrationDir,
			},
		},
		{
			name: "prod with analytics",
			env: map[string]string{
				"STAGE":         StageProd,
				"SEED":          "-7",
				"DATABASE_URL":  "postgres://localhost/seabattle",
				"MIGRATION_DIR": "file:///srv/migration",
			},
			expected: Config{
				Stage:        StageProd,
				Seed:         -7,
				DatabaseUrl:  "postgres://localhost/seabattle",
				MigrationDir: "file:///srv/migration",
			},
		},
		{
			name: "reveal fleet",
			env:  map[string]string{"SEED": "1", "REVEAL_FLEET": "1"},
			expected: Config{
				Stage:        StageDev,
				Seed:         1,
				MigrationDir: DefaultMigrationDir,
				RevealFleet:  true,
			},
		},
		{
			name:        "invalid reveal fleet",
			env:         map[string]string{"REVEAL_FLEET": "sometimes"},
			expectedErr: true,
		},
		{
			name:        "invalid stage",
			env:         map[string]string{"STAGE": "staging"},
			expectedErr: true,
		},
		{
			name:        "invalid seed",
			env:         map[string]string{"SEED": "abc"},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for _, key := range []string{"STAGE", "SEED", "DATABASE_URL", "MIGRATION_DIR", "REVEAL_FLEET"} {
				t.Setenv(key, test.env[key])
			}

			cfg, err := Load()
			if test.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, cfg)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEED=99\n"), 0o600))
	t.Chdir(dir)

	t.Setenv("STAGE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REVEAL_FLEET", "")
	t.Setenv("SEED", "")
	// godotenv does not override variables that are already set
	require.NoError(t, os.Unsetenv("SEED"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(99), cfg.Seed)
	require.True(t, cfg.IsDev())
	require.False(t, cfg.AnalyticsEnabled())
	require.False(t, cfg.RevealFleet)
}

func TestLoadInvalidStageError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STAGE", "qa")

	_, err := Load()
	require.EqualError(t, err, cerr.ErrInvalidStage("qa").Error())
}
