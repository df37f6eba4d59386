package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"feebank/internal/config"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Driver normalizes a configured driver name to the database/sql driver name.
func Driver(dbType string) string {
	switch strings.ToLower(strings.TrimSpace(dbType)) {
	case "sqlite", "sqlite3":
		return "sqlite3"
	case "mysql":
		return "mysql"
	default:
		return strings.ToLower(dbType)
	}
}

// Open connects to the configured database and verifies it with a ping.
func Open(ctx context.Context, dbType string, cfg *config.Config) (*sql.DB, error) {
	driver := Driver(dbType)
	dbCfg, ok := cfg.Databases[driver]
	if !ok {
		dbCfg, ok = cfg.Databases[dbType]
	}
	if !ok {
		return nil, fmt.Errorf("database config for %s not found", dbType)
	}

	var (
		db  *sql.DB
		err error
	)

	switch driver {
	case "sqlite3":
		if dbCfg.DSN == "" {
			return nil, fmt.Errorf("sqlite dsn must be provided")
		}
		db, err = sql.Open("sqlite3", dbCfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite database: %w", err)
		}
		// sqlite allows one writer; a single connection also keeps :memory: databases shared
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	case "mysql":
		dsn := dbCfg.DSN
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
				dbCfg.Username,
				dbCfg.Password,
				dbCfg.Host,
				dbCfg.Port,
				dbCfg.DBName,
				dbCfg.Params,
			)
		}
		db, err = sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql database: %w", err)
		}
		db.SetConnMaxLifetime(5 * time.Minute)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", dbType)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate ensures the portal tables are present.
func Migrate(ctx context.Context, db *sql.DB, dbType string) error {
	var stmts []string
	switch Driver(dbType) {
	case "sqlite3":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS portal_records (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				kind TEXT NOT NULL,
				student_id TEXT NOT NULL,
				seq INTEGER NOT NULL,
				payload TEXT NOT NULL,
				UNIQUE(kind, student_id, seq)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_portal_records_student ON portal_records(student_id, kind)`,
			`CREATE TABLE IF NOT EXISTS feedback (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				student_id TEXT NOT NULL,
				semester TEXT NOT NULL,
				subject TEXT NOT NULL,
				faculty TEXT NOT NULL,
				rating INTEGER NOT NULL,
				comments TEXT NOT NULL,
				suggestions TEXT NOT NULL DEFAULT '',
				created_at DATETIME NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_feedback_student ON feedback(student_id)`,
			`CREATE TABLE IF NOT EXISTS attendance_undertakings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				student_id TEXT NOT NULL,
				student_name TEXT NOT NULL,
				semester TEXT NOT NULL,
				subject TEXT NOT NULL,
				from_date TEXT NOT NULL,
				to_date TEXT NOT NULL,
				reason TEXT NOT NULL,
				submission_date TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				remarks TEXT,
				document_url TEXT
			)`,
			`CREATE INDEX IF NOT EXISTS idx_undertakings_student ON attendance_undertakings(student_id)`,
		}
	case "mysql":
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS portal_records (
				id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
				kind VARCHAR(64) NOT NULL,
				student_id VARCHAR(64) NOT NULL,
				seq INT NOT NULL,
				payload MEDIUMTEXT NOT NULL,
				PRIMARY KEY (id),
				UNIQUE KEY uniq_portal_record (kind, student_id, seq),
				INDEX idx_portal_records_student (student_id, kind)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
			`CREATE TABLE IF NOT EXISTS feedback (
				id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
				student_id VARCHAR(64) NOT NULL,
				semester VARCHAR(64) NOT NULL,
				subject VARCHAR(255) NOT NULL,
				faculty VARCHAR(255) NOT NULL,
				rating TINYINT NOT NULL,
				comments TEXT NOT NULL,
				suggestions TEXT NOT NULL,
				created_at DATETIME NOT NULL,
				PRIMARY KEY (id),
				INDEX idx_feedback_student (student_id)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
			`CREATE TABLE IF NOT EXISTS attendance_undertakings (
				id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
				student_id VARCHAR(64) NOT NULL,
				student_name VARCHAR(255) NOT NULL,
				semester VARCHAR(64) NOT NULL,
				subject VARCHAR(255) NOT NULL,
				from_date VARCHAR(10) NOT NULL,
				to_date VARCHAR(10) NOT NULL,
				reason TEXT NOT NULL,
				submission_date VARCHAR(10) NOT NULL,
				status VARCHAR(16) NOT NULL DEFAULT 'pending',
				remarks TEXT,
				document_url TEXT,
				PRIMARY KEY (id),
				INDEX idx_undertakings_student (student_id)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		}
	default:
		return fmt.Errorf("unsupported driver for migration: %s", dbType)
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate (%s): %w", dbType, err)
		}
	}
	return nil
}
