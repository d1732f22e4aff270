// Command migrate applies the SQL files in migrations/ in lexical order.
// Every statement is idempotent (CREATE TABLE IF NOT EXISTS), so running it
// repeatedly at deploy time is safe.
//
//	migrate            apply migrations/ against DATABASE_URL
//	migrate <dir>      apply a different directory
//	migrate --list     print the public tables instead of applying
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	dir := "migrations"
	listOnly := false
	for _, a := range os.Args[1:] {
		if a == "--list" {
			listOnly = true
		} else {
			dir = a
		}
	}

	db, err := connect()
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if listOnly {
		if err := listTables(db); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := applyMigrations(db, dir); err != nil {
		log.Fatal(err)
	}
}

func connect() (*sql.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	log.Println("Connected to database")
	return db, nil
}

func listTables(db *sql.DB) error {
	rows, err := db.Query("SELECT tablename FROM pg_tables WHERE schemaname='public' ORDER BY tablename")
	if err != nil {
		return err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return err
		}
		fmt.Println(" ", t)
		n++
	}
	fmt.Printf("Total: %d tables\n", n)
	return rows.Err()
}

// applyMigrations runs every .sql file in dir, each inside its own
// transaction. A failing file is reported and skipped so the remaining
// migrations still get a chance to apply.
func applyMigrations(db *sql.DB, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	var okCount, errCount int
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f))
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		content := string(data)
		if strings.TrimSpace(content) == "" {
			continue
		}

		fmt.Printf("  %s ... ", f)
		if err := applyOne(db, content); err != nil {
			fmt.Printf("ERROR: %v\n", err)
			errCount++
		} else {
			fmt.Println("OK")
			okCount++
		}
	}

	log.Printf("Done: %d OK, %d errors", okCount, errCount)
	if errCount > 0 {
		return fmt.Errorf("%d migration(s) failed", errCount)
	}
	return nil
}

func applyOne(db *sql.DB, content string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(content); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
