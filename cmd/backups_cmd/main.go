package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/history"
	"github.com/2beens/gymtracker/internal/plans"
	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type backup struct {
	UserID    string           `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	Plans     []plans.Plan     `json:"plans"`
	History   []history.Record `json:"history"`
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	userID := flag.String("user", "", "id of the user whose plans and history are backed up")
	outDir := flag.String("out", "./backups", "backups directory")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	flag.Parse()

	loggingSetup(*logsPath)

	log.Println("staring gymtracker backup ...")

	if *userID == "" {
		log.Fatalln("user not specified")
	}

	exists, err := pkg.PathExists(*outDir, true)
	if err != nil {
		log.Fatalf("check backups dir: %s", err)
	}
	if !exists {
		if err := os.MkdirAll(*outDir, 0o750); err != nil {
			log.Fatalf("create backups dir: %s", err)
		}
	}

	cfg, err := config.Load(*env, *configPath)
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

	b := backup{
		UserID:    *userID,
		CreatedAt: time.Now().UTC(),
	}
	if b.Plans, err = plans.NewRepo(dbPool).List(ctx, *userID); err != nil {
		log.Errorf("list plans: %s", err)
		return
	}
	if b.History, err = history.NewRepo(dbPool).List(ctx, *userID); err != nil {
		log.Errorf("list history: %s", err)
		return
	}

	fileName, err := writeBackup(*outDir, b)
	if err != nil {
		log.Errorf("write backup: %s", err)
		return
	}
	log.Printf("backup done: %d plans, %d workouts -> %s", len(b.Plans), len(b.History), fileName)
}

func writeBackup(dir string, b backup) (string, error) {
	backupJson, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal backup: %w", err)
	}

	fileName := filepath.Join(dir, fmt.Sprintf("gymtracker-%s-%s.json", b.UserID, b.CreatedAt.Format("20060102-150405")))
	if err := os.WriteFile(fileName, backupJson, 0o600); err != nil {
		return "", err
	}
	return fileName, nil
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
