package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/saeidalz13/seabattle/api"
	"github.com/saeidalz13/seabattle/db"
	"github.com/saeidalz13/seabattle/db/sqlc"
	"github.com/saeidalz13/seabattle/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// the board is drawn on stdout; keep logs off it in prod
	if !cfg.IsDev() {
		log.SetOutput(io.Discard)
	}
	log.Printf("stage: %s\tseed: %d", cfg.Stage, cfg.Seed)

	opts := []api.Option{
		api.WithStage(cfg.Stage),
		api.WithSeed(cfg.Seed),
		api.WithRevealFleet(cfg.RevealFleet),
		api.WithInput(os.Stdin),
		api.WithOutput(os.Stdout),
	}

	if cfg.AnalyticsEnabled() {
		conn := db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)
		defer conn.Close()

		dbManager := sqlc.NewDbManager(sqlc.New(conn))
		opts = append(opts, api.WithRecorder(dbManager.Analytics, api.HostIpNet()))
	}

	runner := api.NewRunner(opts...)
	state, err := runner.Run(context.Background())
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Println("input closed, match abandoned")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Println("match over:", state)
}
