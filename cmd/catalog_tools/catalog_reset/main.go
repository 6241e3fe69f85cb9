package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// replaces the exercise catalog with the seed file, or only refreshes the urls

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	seedPath := flag.String("seed", "", "exercise catalog yaml (defaults to catalog_seed_path from config)")
	urlsOnly := flag.Bool("urls-only", false, "only update the urls of the existing exercises, add the missing ones")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	flag.Parse()

	loggingSetup(*logsPath)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	if *seedPath == "" {
		*seedPath = cfg.CatalogSeedPath
	}
	if *seedPath == "" {
		log.Fatalln("seed file not specified")
	}

	entries, err := catalog.LoadSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("load seed file: %s", err)
	}
	if duplicates := catalog.FindDuplicates(entries); len(duplicates) > 0 {
		for _, name := range catalog.SortedNames(duplicates) {
			log.Errorf("duplicate exercise: %s (%d times)", name, duplicates[name])
		}
		log.Fatalln("seed file has duplicates, fix them first")
	}
	log.Printf("loaded %d exercises from %s", len(entries), *seedPath)

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("GYMTRACKER_DB_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	repo := catalog.NewRepo(dbPool)

	if *urlsOnly {
		updated, err := repo.UpsertURLs(ctx, entries)
		if err != nil {
			log.Errorf("upsert urls: %s", err)
			return
		}
		log.Printf("urls updated for %d exercises", updated)
		return
	}

	if err := repo.ReplaceAll(ctx, entries); err != nil {
		log.Errorf("replace catalog: %s", err)
		return
	}

	count, err := repo.Count(ctx)
	if err != nil {
		log.Errorf("count catalog: %s", err)
		return
	}
	log.Printf("catalog reset done, %d exercises stored", count)
}

func loggingSetup(logFileName string) {
	if logFileName == "" {
		log.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:  logFileName,
		MaxSize:   10,    // megabytes
		LocalTime: false, // false -> use UTC
		Compress:  true,
	})
}
