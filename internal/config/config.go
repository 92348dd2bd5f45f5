package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	DefaultMigrationDir = "file://db/migration"
)

type Config struct {
	Stage        string
	Seed         int64
	DatabaseUrl  string
	MigrationDir string

	// RevealFleet draws the computer's ships on its board.
	RevealFleet bool
}

// Load reads the environment, pulling in .env first outside of prod.
// A missing .env file is fine; a malformed one is not.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:        os.Getenv("STAGE"),
		Seed:         time.Now().UnixNano(),
		DatabaseUrl:  os.Getenv("DATABASE_URL"),
		MigrationDir: os.Getenv("MIGRATION_DIR"),
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrInvalidStage(cfg.Stage)
	}

	if seedEnv := os.Getenv("SEED"); seedEnv != "" {
		seed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			return Config{}, cerr.ErrInvalidSeed(seedEnv)
		}
		cfg.Seed = seed
	}

	if revealEnv := os.Getenv("REVEAL_FLEET"); revealEnv != "" {
		reveal, err := strconv.ParseBool(revealEnv)
		if err != nil {
			return Config{}, cerr.ErrInvalidRevealFleet(revealEnv)
		}
		cfg.RevealFleet = reveal
	}

	if cfg.MigrationDir == "" {
		cfg.MigrationDir = DefaultMigrationDir
	}
	return cfg, nil
}

func (c Config) IsDev() bool {
	return c.Stage == StageDev
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}
