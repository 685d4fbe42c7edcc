package models

import (
	"fmt"
	"log"
	"strings"

	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Database wraps the optional SQLite Cloud connection probed by the /test
// diagnostic endpoint. The backend runs fine without it.
type Database struct {
	db   *sqlitecloud.SQCloud
	name string
}

// NewDatabase connects to SQLite Cloud using the given connection string
// and optionally switches to the named database.
func NewDatabase(connStr, name string) (*Database, error) {
	log.Printf("Connecting to SQLite Cloud database: %s", maskConnectionString(connStr))

	db, err := sqlitecloud.Connect(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %v", err)
	}

	if name != "" {
		if err := db.UseDatabase(name); err != nil {
			return nil, fmt.Errorf("failed to select database %s: %v", name, err)
		}
	}

	return &Database{
		db:   db,
		name: name,
	}, nil
}

// maskConnectionString hides the API key in logs for security
func maskConnectionString(connStr string) string {
	if strings.Contains(connStr, "apikey=") {
		parts := strings.Split(connStr, "apikey=")
		if len(parts) > 1 {
			return parts[0] + "apikey=***"
		}
	}
	return connStr
}

// Name returns the configured database name.
func (d *Database) Name() string {
	return d.name
}

// ListTables returns up to limit table names, used to verify that the
// connection actually works and not just that the dial succeeded.
func (d *Database) ListTables(limit int) ([]string, error) {
	sql := fmt.Sprintf(
		`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name LIMIT %d`, limit)

	result, err := d.db.Select(sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %v", err)
	}

	tables := make([]string, 0, result.GetNumberOfRows())
	for row := uint64(0); row < result.GetNumberOfRows(); row++ {
		name, err := result.GetStringValue(row, 0)
		if err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
