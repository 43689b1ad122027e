// Package sqlstore keeps documents as JSON rows in MySQL or SQLite.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05.999999"

type dialect struct {
	schema string
	now    string
	upsert string
	insert string
}

const insertDocument = `
	INSERT INTO documents (collection, doc_id, body, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)`

var dialects = map[string]dialect{
	"mysql": {
		schema: `
			CREATE TABLE IF NOT EXISTS documents (
			  collection VARCHAR(128) NOT NULL,
			  doc_id     VARCHAR(128) NOT NULL,
			  body       JSON         NOT NULL,
			  created_at DATETIME(6)  NOT NULL,
			  updated_at DATETIME(6)  NOT NULL,
			  PRIMARY KEY (collection, doc_id)
			)`,
		now: `SELECT DATE_FORMAT(UTC_TIMESTAMP(6), '%Y-%m-%d %H:%i:%s.%f')`,
		upsert: insertDocument + ` AS new
			ON DUPLICATE KEY UPDATE body = new.body, updated_at = new.updated_at`,
		insert: insertDocument,
	},
	"sqlite": {
		schema: `
			CREATE TABLE IF NOT EXISTS documents (
			  collection TEXT NOT NULL,
			  doc_id     TEXT NOT NULL,
			  body       TEXT NOT NULL,
			  created_at TEXT NOT NULL,
			  updated_at TEXT NOT NULL,
			  PRIMARY KEY (collection, doc_id)
			)`,
		// millisecond resolution is the best SQLite's clock offers
		now: `SELECT strftime('%Y-%m-%d %H:%M:%f', 'now')`,
		upsert: insertDocument + `
			ON CONFLICT(collection, doc_id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		insert: insertDocument,
	},
}

// Store is a docstore.Store over database/sql. Server timestamps are read
// from the database clock inside the write transaction.
type Store struct {
	db      *sql.DB
	dialect dialect
	newKey  func() string
}

// Open connects with driver ("mysql" or "sqlite"), checks the connection
// and creates the documents table if needed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s dsn is required", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == "sqlite" {
		// an in-memory database lives and dies with its connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}
	return &Store{db: db, dialect: d, newKey: uuid.NewString}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Set(ctx context.Context, collection, key string, doc docstore.Document) error {
	if key == "" {
		return fmt.Errorf("set %s: key is required", collection)
	}
	if err := s.write(ctx, s.dialect.upsert, collection, key, doc); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	key := s.newKey()
	if err := s.write(ctx, s.dialect.insert, collection, key, doc); err != nil {
		return "", fmt.Errorf("add %s: %w", collection, err)
	}
	return key, nil
}

func (s *Store) write(ctx context.Context, query, collection, key string, doc docstore.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return errors.New("store is not configured")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var raw string
	if err := tx.QueryRowContext(ctx, s.dialect.now).Scan(&raw); err != nil {
		return fmt.Errorf("read server time: %w", err)
	}
	now, err := time.Parse(timeLayout, raw)
	if err != nil {
		return fmt.Errorf("parse server time %q: %w", raw, err)
	}

	body, err := json.Marshal(docstore.Resolve(doc, docstore.Resolver(now)))
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	stamp := now.Format(timeLayout)
	if _, err := tx.ExecContext(ctx, query, collection, key, string(body), stamp, stamp); err != nil {
		return err
	}
	return tx.Commit()
}

// Get decodes the stored document into dst. It returns docstore.ErrNotFound
// when nothing is stored under key.
func (s *Store) Get(ctx context.Context, collection, key string, dst any) error {
	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND doc_id = ?`,
		collection, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return docstore.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, key, err)
	}
	return nil
}

// Count returns the number of documents in collection.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE collection = ?`, collection).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}
