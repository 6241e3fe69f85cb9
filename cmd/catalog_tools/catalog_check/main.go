package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"

	log "github.com/sirupsen/logrus"
)

// reports duplicates and per category counts of the seed file, optionally compared with the db

func main() {
	seedPath := flag.String("seed", "./assets/exercises.yaml", "exercise catalog yaml")
	verifyDB := flag.Bool("verify-db", false, "compare the seed file with the stored catalog")
	env := flag.String("env", "development", "environment, used with -verify-db")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file, used with -verify-db")
	flag.Parse()

	entries, err := catalog.LoadSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("load seed file: %s", err)
	}

	fmt.Printf("%s: %d exercises\n\n", *seedPath, len(entries))
	for _, cc := range catalog.CategoryCounts(entries) {
		fmt.Printf("  %-10s %3d\n", cc.Category, cc.Count)
	}
	fmt.Println()

	problems := 0
	duplicates := catalog.FindDuplicates(entries)
	for _, name := range catalog.SortedNames(duplicates) {
		fmt.Printf("DUPLICATE: %s (%d times)\n", name, duplicates[name])
		problems++
	}
	if len(duplicates) == 0 {
		fmt.Println("no duplicates")
	}

	if *verifyDB {
		problems += verifyAgainstDB(*env, *configPath, entries)
	}

	if problems > 0 {
		os.Exit(1)
	}
}

func verifyAgainstDB(env, configPath string, seed []catalog.Entry) int {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

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

	stored, err := catalog.NewRepo(dbPool).ListAll(ctx)
	if err != nil {
		log.Errorf("list stored catalog: %s", err)
		return 1
	}

	missing, extra := catalog.Diff(seed, stored)
	fmt.Printf("\ndb: %d exercises stored\n", len(stored))
	for _, name := range missing {
		fmt.Printf("MISSING IN DB: %s\n", name)
	}
	for _, name := range extra {
		fmt.Printf("NOT IN SEED: %s\n", name)
	}

	return len(missing) + len(extra)
}
