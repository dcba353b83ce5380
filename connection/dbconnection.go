package connection

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DBConnection opens the sqlite database at dbPath, creating the file and
// the schema on first launch.
func DBConnection(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return db, nil
}

// modernc.org/sqlite uses driver name "sqlite" and prefers a file: DSN.
// mode=rwc creates the database file if it doesn't exist.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") || strings.HasPrefix(path, ":memory:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// EnsureSchema creates all tables. Monetary columns are TEXT holding
// decimal strings; timestamps are TEXT holding RFC3339.
func EnsureSchema(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS users (
	user_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	created_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS clients (
	client_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT DEFAULT '',
	phone TEXT DEFAULT '',
	company TEXT DEFAULT '',
	address TEXT DEFAULT '',
	status TEXT NOT NULL DEFAULT 'lead',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS projects (
	project_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT DEFAULT '',
	client_id TEXT DEFAULT '',
	client_name TEXT DEFAULT '',
	status TEXT NOT NULL DEFAULT 'pending',
	budget TEXT NOT NULL DEFAULT '0',
	spent TEXT NOT NULL DEFAULT '0',
	deadline TEXT DEFAULT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS invoices (
	invoice_id TEXT PRIMARY KEY,
	invoice_number TEXT NOT NULL,
	project_id TEXT DEFAULT '',
	project_name TEXT DEFAULT '',
	client_id TEXT DEFAULT '',
	client_name TEXT DEFAULT '',
	subtotal TEXT NOT NULL DEFAULT '0',
	tax TEXT NOT NULL DEFAULT '0',
	tax_rate TEXT DEFAULT NULL,
	total TEXT NOT NULL DEFAULT '0',
	status TEXT NOT NULL DEFAULT 'draft',
	due_date TEXT DEFAULT NULL,
	created_at TEXT NOT NULL,
	paid_at TEXT DEFAULT NULL
);`,
		`CREATE TABLE IF NOT EXISTS invoice_items (
	item_id TEXT PRIMARY KEY,
	invoice_id TEXT NOT NULL,
	description TEXT DEFAULT '',
	quantity INTEGER NOT NULL DEFAULT 1,
	rate TEXT NOT NULL DEFAULT '0',
	amount TEXT NOT NULL DEFAULT '0',
	position INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE TABLE IF NOT EXISTS quotations (
	quotation_id TEXT PRIMARY KEY,
	quotation_number TEXT NOT NULL,
	project_id TEXT DEFAULT '',
	project_name TEXT DEFAULT '',
	client_id TEXT DEFAULT '',
	client_name TEXT DEFAULT '',
	subtotal TEXT NOT NULL DEFAULT '0',
	tax TEXT NOT NULL DEFAULT '0',
	tax_rate TEXT DEFAULT NULL,
	total TEXT NOT NULL DEFAULT '0',
	status TEXT NOT NULL DEFAULT 'draft',
	valid_until TEXT DEFAULT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS quotation_items (
	item_id TEXT PRIMARY KEY,
	quotation_id TEXT NOT NULL,
	description TEXT DEFAULT '',
	quantity INTEGER NOT NULL DEFAULT 1,
	rate TEXT NOT NULL DEFAULT '0',
	amount TEXT NOT NULL DEFAULT '0',
	position INTEGER NOT NULL DEFAULT 0
);`,
		`CREATE TABLE IF NOT EXISTS todos (
	todo_id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	client_id TEXT DEFAULT '',
	client_name TEXT DEFAULT '',
	project_id TEXT DEFAULT '',
	project_name TEXT DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'medium',
	due_date TEXT DEFAULT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	recurring TEXT NOT NULL DEFAULT 'none',
	labels TEXT DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS subtasks (
	subtask_id TEXT PRIMARY KEY,
	todo_id TEXT NOT NULL,
	title TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	sort_order INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS expenses (
	expense_id TEXT PRIMARY KEY,
	description TEXT DEFAULT '',
	amount TEXT NOT NULL DEFAULT '0',
	category TEXT DEFAULT '',
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS time_entries (
	entry_id TEXT PRIMARY KEY,
	project_id TEXT DEFAULT '',
	project_name TEXT DEFAULT '',
	description TEXT DEFAULT '',
	hours REAL NOT NULL DEFAULT 0,
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS services (
	service_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT DEFAULT '',
	price TEXT NOT NULL DEFAULT '0',
	description TEXT DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS meetings (
	meeting_id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	client_id TEXT DEFAULT '',
	client_name TEXT DEFAULT '',
	date TEXT NOT NULL,
	time TEXT DEFAULT '',
	attendees TEXT DEFAULT '',
	agenda TEXT DEFAULT '',
	notes TEXT DEFAULT '',
	status TEXT NOT NULL DEFAULT 'scheduled',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	business_name TEXT DEFAULT '',
	business_email TEXT DEFAULT '',
	business_address TEXT DEFAULT '',
	business_phone TEXT DEFAULT '',
	default_tax_rate TEXT NOT NULL DEFAULT '11',
	currency TEXT NOT NULL DEFAULT 'IDR'
);`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
