package mcp

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// newDbConnection opens the process-wide connection described by cfg.
// The initial ping only warns on failure: database/sql dials lazily, so an
// unreachable server surfaces per tool call instead of killing the process.
func newDbConnection(cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("sqlserver", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	db.SetMaxOpenConns(DBMaxOpenConns)
	db.SetMaxIdleConns(DBMaxIdleConns)
	db.SetConnMaxLifetime(DBConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), DBPingTimeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		log.Printf("Warning: could not reach %s: %v", cfg.Describe(), err)
	}

	return db, nil
}
