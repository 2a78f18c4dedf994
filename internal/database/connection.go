package database

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect opens the database and initializes the schema.
//
// The default backend is a local SQLite file (DATABASE_PATH, falling back
// to submissions.db in the working directory). Setting DB_TYPE=postgres
// switches to PostgreSQL using DATABASE_URL.
func Connect() error {
	var (
		db  *sqlx.DB
		err error
	)

	if DriverName() == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DB_TYPE=postgres requires DATABASE_URL to be set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	} else {
		dbPath := os.Getenv("DATABASE_PATH")
		if dbPath == "" {
			dbPath = "submissions.db"
		}
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// DriverName reports which backend is configured
func DriverName() string {
	if os.Getenv("DB_TYPE") == "postgres" {
		return "postgres"
	}
	return "sqlite3"
}

// initializeSchema creates necessary tables if they don't exist.
// Three independent tables, no foreign keys: rows are append-only and
// reads never join across them.
func initializeSchema() error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DriverName() == "postgres" {
		idColumn = "SERIAL PRIMARY KEY"
	}

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS submissions (
				id %s,
				topic TEXT,
				name TEXT,
				file_path TEXT,
				link TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`, idColumn),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS progress (
				id %s,
				player_name TEXT,
				level INTEGER,
				score INTEGER,
				time INTEGER,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`, idColumn),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS wrong_answers (
				id %s,
				question TEXT,
				wrong_answer TEXT,
				correct_answer TEXT,
				topic TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`, idColumn),
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}

	return nil
}
