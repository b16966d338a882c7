// Package db opens the sqlite database and bootstraps its schema.
package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    description TEXT
);

CREATE TABLE IF NOT EXISTS photos (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    imageUrl TEXT NOT NULL,
    backgroundColor TEXT,
    categoryId TEXT,
    createdAt TEXT NOT NULL,
    updatedAt TEXT NOT NULL,
    FOREIGN KEY (categoryId) REFERENCES categories(id)
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password TEXT NOT NULL
);
`

// InitSQLite opens the database at path, creates the schema if missing and
// seeds the administrator account. The returned handle is the single
// process-wide connection pool and is safe for concurrent use.
func InitSQLite(path, adminUsername, adminPassword string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := sqldb.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// WAL keeps readers unblocked while the admin writes
	if _, err := sqldb.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := sqldb.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if err := seedAdmin(sqldb, adminUsername, adminPassword); err != nil {
		return nil, fmt.Errorf("seed admin user: %w", err)
	}

	return sqldb, nil
}

// seedAdmin inserts the administrator row with a bcrypt password hash
// unless a user with that username already exists.
func seedAdmin(sqldb *sql.DB, username, password string) error {
	var exists bool
	err := sqldb.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`,
		username,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = sqldb.Exec(
		`INSERT INTO users (id, username, password) VALUES (?, ?, ?)`,
		uuid.NewString(), username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	return nil
}
