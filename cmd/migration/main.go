package main

import (
	"flag"
	"os"

	"hridayavayu/cmd/migration/seed"
	"hridayavayu/config"
	"hridayavayu/internal/database"
	"hridayavayu/internal/logger"
)

func main() {
	log := logger.New("migration").Function("main")

	withSeed := flag.Bool("seed", false, "seed development data after migrating")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		log.Er("failed to initialize config", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Er("failed to create database", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Er("failed to close database", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Er("failed to run migrations", err)
		os.Exit(1)
	}

	if *withSeed {
		if err := seed.Seed(db.SQL, cfg, logger.New("migration")); err != nil {
			log.Er("failed to seed data", err)
			os.Exit(1)
		}
	}

	log.Info("Migration complete")
}
