package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

var (
	SeedDB *sql.DB
	dbMu   sync.Mutex
)

// ConnectSeedDB opens the optional MySQL seed source (idempotent).
// The connection is only read during start-up; mutations never reach it.
func ConnectSeedDB(dsn string) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if SeedDB != nil {
		return SeedDB, nil
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DSN: %w", err)
	}
	cfg.ParseTime = true
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 30 * time.Second
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open seed db: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping seed db: %w", err)
	}

	SeedDB = db
	log.Printf("[CONFIG] connected to seed database %s@%s/%s", cfg.User, cfg.Addr, cfg.DBName)
	return SeedDB, nil
}

func CloseSeedDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if SeedDB != nil {
		_ = SeedDB.Close()
		SeedDB = nil
	}
}
