// Package main runs the gymtracker MCP server over stdio for one user.
// The same tools are mounted on the main backend at /mcp, where the user comes from the auth token.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/history"
	gymtrackermcp "github.com/2beens/gymtracker/internal/mcp"
	"github.com/2beens/gymtracker/internal/plans"
	"github.com/2beens/gymtracker/internal/reports"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.String("user", "", "id of the user whose data the tools read")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	if *userID == "" {
		log.Fatal("user id not set, use -user")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("GYMTRACKER_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	service := gymtrackermcp.NewContextService(
		gymtrackermcp.NewPoolSchemaRepo(dbPool),
		plans.NewRepo(dbPool),
		catalog.NewCachedRepo(catalog.NewRepo(dbPool)),
		reports.NewAnalyzer(history.NewRepo(dbPool)),
	)

	if err := gymtrackermcp.ServeStdio(gymtrackermcp.NewServer(service, "1.0.0"), *userID); err != nil {
		log.Errorf("mcp stdio server: %s", err)
	}
}
