// Package database provides the SQLite dataset store for abxdash.
//
// A store holds datasets in their authored form (schema plus rows). It is an
// alternative source to the embedded TOML content: definitions loaded from
// it still go through dataset.NewRegistry, so a hand-edited database cannot
// bypass schema checking.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/Mr-Dark-debug/abxdash/internal/dataset"
	"github.com/Mr-Dark-debug/abxdash/pkg/jsonutil"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines dataset persistence.
type Store interface {
	// SaveDataset writes ds, replacing any dataset with the same name.
	SaveDataset(ds *dataset.Dataset) error
	// DeleteDataset removes a dataset with its fields and records. Deleting
	// an unknown name is not an error.
	DeleteDataset(name string) error
	// LoadDefinitions returns every stored dataset in save order.
	LoadDefinitions() ([]dataset.Definition, error)
	// ListDatasets summarises the stored datasets.
	ListDatasets() ([]DatasetInfo, error)
	// Close shuts down the database connection.
	Close() error
}

// DatasetInfo is a summary row for listing.
type DatasetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Fields      int    `json:"fields"`
	Records     int    `json:"records"`
	SavedAt     int64  `json:"saved_at"` // Unix nanoseconds
}

// DBService implements Store on SQLite.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
	now  func() time.Time

	stmtUpsertDataset *sql.Stmt
	stmtInsertField   *sql.Stmt
	stmtInsertRecord  *sql.Stmt
}

// NewDBService opens (or creates) the database at path and applies the
// embedded schema. Use ":memory:" for tests.
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "opening database at %s", path)
	}

	// One connection: SQLite has a single writer and ":memory:" databases
	// are per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{db: db, path: path, now: time.Now}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing schema")
	}
	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "preparing statements")
	}
	return svc, nil
}

// Path returns the database location the service was opened with.
func (s *DBService) Path() string { return s.path }

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return errors.Wrap(err, "reading embedded schema")
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return errors.Wrap(err, "executing schema")
	}
	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtUpsertDataset, err = s.db.Prepare(`
		INSERT INTO datasets (name, description, position, saved_at)
		VALUES (?, ?, COALESCE((SELECT MAX(position) + 1 FROM datasets), 0), ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			saved_at = excluded.saved_at
	`)
	if err != nil {
		return errors.Wrap(err, "preparing UpsertDataset")
	}

	s.stmtInsertField, err = s.db.Prepare(`
		INSERT INTO fields (dataset, position, name, label, kind, unit)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "preparing InsertField")
	}

	s.stmtInsertRecord, err = s.db.Prepare(`
		INSERT INTO records (dataset, position, payload) VALUES (?, ?, ?)
	`)
	if err != nil {
		return errors.Wrap(err, "preparing InsertRecord")
	}
	return nil
}

// SaveDataset writes ds in a single transaction. An existing dataset with
// the same name keeps its position but has its fields and records replaced.
func (s *DBService) SaveDataset(ds *dataset.Dataset) error {
	def := ds.Definition()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrapf(err, "beginning save of dataset %s", def.Name)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.Stmt(s.stmtUpsertDataset).Exec(def.Name, def.Description, s.now().UnixNano()); err != nil {
		return errors.Wrapf(err, "saving dataset %s", def.Name)
	}
	for _, table := range []string{"fields", "records"} {
		if _, err := tx.Exec(`DELETE FROM `+table+` WHERE dataset = ?`, def.Name); err != nil {
			return errors.Wrapf(err, "clearing %s of dataset %s", table, def.Name)
		}
	}

	insField := tx.Stmt(s.stmtInsertField)
	for i, f := range def.Fields {
		if _, err := insField.Exec(def.Name, i, f.Name, f.Label, string(f.Kind), f.Unit); err != nil {
			return errors.Wrapf(err, "saving field %s.%s", def.Name, f.Name)
		}
	}

	insRecord := tx.Stmt(s.stmtInsertRecord)
	for i, row := range def.Rows {
		payload, err := jsonutil.EncodeRow(row)
		if err != nil {
			return errors.Wrapf(err, "dataset %s row %d", def.Name, i)
		}
		if _, err := insRecord.Exec(def.Name, i, payload); err != nil {
			return errors.Wrapf(err, "saving dataset %s row %d", def.Name, i)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "committing dataset %s", def.Name)
	}
	return nil
}

// DeleteDataset removes name and, by cascade, its fields and records.
func (s *DBService) DeleteDataset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return errors.Wrapf(err, "deleting dataset %s", name)
	}
	return nil
}

// LoadDefinitions reads every dataset back in its authored form. The
// definitions are not type-checked here.
func (s *DBService) LoadDefinitions() ([]dataset.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT name, description FROM datasets ORDER BY position ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying datasets")
	}
	var defs []dataset.Definition
	for rows.Next() {
		var def dataset.Definition
		if err := rows.Scan(&def.Name, &def.Description); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scanning dataset row")
		}
		defs = append(defs, def)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating datasets")
	}

	for i := range defs {
		if defs[i].Fields, err = s.loadFields(defs[i].Name); err != nil {
			return nil, err
		}
		if defs[i].Rows, err = s.loadRows(defs[i].Name); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

func (s *DBService) loadFields(name string) ([]dataset.Field, error) {
	rows, err := s.db.Query(`
		SELECT name, label, kind, unit FROM fields
		WHERE dataset = ?
		ORDER BY position ASC
	`, name)
	if err != nil {
		return nil, errors.Wrapf(err, "querying fields of %s", name)
	}
	defer rows.Close()

	var fields []dataset.Field
	for rows.Next() {
		var f dataset.Field
		var kind string
		if err := rows.Scan(&f.Name, &f.Label, &kind, &f.Unit); err != nil {
			return nil, errors.Wrapf(err, "scanning field of %s", name)
		}
		f.Kind = dataset.Kind(kind)
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func (s *DBService) loadRows(name string) ([]map[string]any, error) {
	rows, err := s.db.Query(`
		SELECT payload FROM records
		WHERE dataset = ?
		ORDER BY position ASC
	`, name)
	if err != nil {
		return nil, errors.Wrapf(err, "querying records of %s", name)
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Wrapf(err, "scanning record of %s", name)
		}
		row, err := jsonutil.DecodeRow(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "dataset %s record %d", name, len(out))
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListDatasets returns one summary per stored dataset in save order.
func (s *DBService) ListDatasets() ([]DatasetInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT d.name, d.description, d.saved_at,
			(SELECT COUNT(*) FROM fields f WHERE f.dataset = d.name),
			(SELECT COUNT(*) FROM records r WHERE r.dataset = d.name)
		FROM datasets d
		ORDER BY d.position ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "listing datasets")
	}
	defer rows.Close()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		if err := rows.Scan(&info.Name, &info.Description, &info.SavedAt, &info.Fields, &info.Records); err != nil {
			return nil, errors.Wrap(err, "scanning dataset summary")
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Close closes the prepared statements and the connection.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtUpsertDataset, s.stmtInsertField, s.stmtInsertRecord} {
		if stmt != nil {
			stmt.Close()
		}
	}
	return s.db.Close()
}
