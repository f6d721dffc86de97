package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"companyatlas/internal/companydata/models"
	"companyatlas/pkg/platform/sentinel"
	txcontext "companyatlas/pkg/platform/tx"
)

// Dialect selects placeholder syntax and schema for a SQL engine.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// SQLStore persists companies and data through database/sql. Queries are
// written with ? placeholders and rebound for the dialect.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewPostgres constructs a PostgreSQL-backed store on a lib/pq connection.
func NewPostgres(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, dialect: DialectPostgres}
}

// NewSQLite constructs a store on a modernc.org/sqlite connection.
func NewSQLite(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, dialect: DialectSQLite}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *SQLStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Migrate creates the tables and indexes when they do not exist.
func (s *SQLStore) Migrate(ctx context.Context) error {
	for _, stmt := range schema(s.dialect) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// RunInTx runs fn with a transaction stored in its context. Nested calls
// reuse the outer transaction.
func (s *SQLStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txcontext.From(ctx); ok {
		return fn(ctx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const companyColumns = "id, name, country, created_at, updated_at"

func (s *SQLStore) FindCompanyByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := s.rebind(`SELECT ` + companyColumns + ` FROM companies WHERE id = ?`)
	return s.scanCompany(s.execer(ctx).QueryRowContext(ctx, query, id))
}

// FindCompanyByName returns the oldest company with the exact name.
func (s *SQLStore) FindCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	query := s.rebind(`SELECT ` + companyColumns + ` FROM companies WHERE name = ? ORDER BY created_at ASC LIMIT 1`)
	return s.scanCompany(s.execer(ctx).QueryRowContext(ctx, query, name))
}

func (s *SQLStore) scanCompany(row *sql.Row) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Country, timestamp{&c.CreatedAt}, timestamp{&c.UpdatedAt}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return &c, nil
}

func (s *SQLStore) CreateCompany(ctx context.Context, c *models.Company) error {
	query := s.rebind(`INSERT INTO companies (` + companyColumns + `) VALUES (?, ?, ?, ?, ?)`)
	_, err := s.execer(ctx).ExecContext(ctx, query, c.ID, c.Name, c.Country, c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

func (s *SQLStore) UpdateCompany(ctx context.Context, c *models.Company) error {
	query := s.rebind(`UPDATE companies SET name = ?, country = ?, updated_at = ? WHERE id = ?`)
	res, err := s.execer(ctx).ExecContext(ctx, query, c.Name, c.Country, c.UpdatedAt.UTC(), c.ID)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// UpsertData inserts or overwrites the record identified by d.Key(). On
// update the stored ID and CreatedAt win and are copied back into d.
func (s *SQLStore) UpsertData(ctx context.Context, d *models.Data) error {
	query := s.rebind(`
		INSERT INTO company_data (id, company_id, source, country_code, data_type, value, value_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (company_id, source, country_code, data_type) DO UPDATE
		SET value = excluded.value, value_type = excluded.value_type, updated_at = excluded.updated_at
		RETURNING id, created_at
	`)
	err := s.execer(ctx).QueryRowContext(ctx, query,
		d.ID,
		d.CompanyID,
		d.Source,
		d.CountryCode,
		d.DataType,
		d.Value.Raw(),
		string(d.Value.Kind()),
		d.CreatedAt.UTC(),
		d.UpdatedAt.UTC(),
	).Scan(&d.ID, timestamp{&d.CreatedAt})
	if err != nil {
		return fmt.Errorf("upsert company data: %w", err)
	}
	return nil
}

const dataColumns = "id, company_id, source, country_code, data_type, value, value_type, created_at, updated_at"

// ListData returns a company's records ordered by data type, newest first within a type.
func (s *SQLStore) ListData(ctx context.Context, companyID uuid.UUID) ([]*models.Data, error) {
	query := s.rebind(`SELECT ` + dataColumns + ` FROM company_data WHERE company_id = ? ORDER BY data_type ASC, created_at DESC`)
	return s.queryData(ctx, query, companyID)
}

func (s *SQLStore) FindDataByValue(ctx context.Context, country, dataType, raw string) ([]*models.Data, error) {
	query := s.rebind(`SELECT ` + dataColumns + ` FROM company_data WHERE country_code = ? AND data_type = ? AND value = ? ORDER BY created_at ASC`)
	return s.queryData(ctx, query, country, dataType, raw)
}

func (s *SQLStore) queryData(ctx context.Context, query string, args ...any) ([]*models.Data, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query company data: %w", err)
	}
	defer rows.Close()

	out := []*models.Data{}
	for rows.Next() {
		var (
			d     models.Data
			value string
			kind  string
		)
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Source, &d.CountryCode, &d.DataType, &value, &kind, timestamp{&d.CreatedAt}, timestamp{&d.UpdatedAt}); err != nil {
			return nil, fmt.Errorf("scan company data: %w", err)
		}
		d.Value = models.NewTypedValue(value, models.Kind(kind))
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company data: %w", err)
	}
	return out, nil
}

// recordOrder sorts documents and events by date descending, undated last,
// then newest first.
const recordOrder = ` ORDER BY CASE WHEN record_date = '' THEN 1 ELSE 0 END, record_date DESC, created_at DESC`

const documentColumns = "id, company_id, source, country_code, document_type, title, record_date, url, content, metadata, created_at, updated_at"

func (s *SQLStore) CreateDocument(ctx context.Context, d *models.Document) error {
	metadata, err := encodeMetadata(d.Metadata)
	if err != nil {
		return err
	}
	query := s.rebind(`INSERT INTO company_documents (` + documentColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = s.execer(ctx).ExecContext(ctx, query,
		d.ID, d.CompanyID, d.Source, d.CountryCode, d.DocumentType, d.Title, d.Date, d.URL, d.Content,
		metadata, d.CreatedAt.UTC(), d.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create company document: %w", err)
	}
	return nil
}

// ListDocuments returns a company's documents, most recent date first.
func (s *SQLStore) ListDocuments(ctx context.Context, companyID uuid.UUID) ([]*models.Document, error) {
	query := s.rebind(`SELECT ` + documentColumns + ` FROM company_documents WHERE company_id = ?` + recordOrder)
	rows, err := s.execer(ctx).QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("query company documents: %w", err)
	}
	defer rows.Close()

	out := []*models.Document{}
	for rows.Next() {
		var (
			d        models.Document
			metadata []byte
		)
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Source, &d.CountryCode, &d.DocumentType, &d.Title, &d.Date,
			&d.URL, &d.Content, &metadata, timestamp{&d.CreatedAt}, timestamp{&d.UpdatedAt}); err != nil {
			return nil, fmt.Errorf("scan company document: %w", err)
		}
		if d.Metadata, err = decodeMetadata(metadata); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company documents: %w", err)
	}
	return out, nil
}

const eventColumns = "id, company_id, source, country_code, event_type, title, record_date, description, metadata, created_at, updated_at"

func (s *SQLStore) CreateEvent(ctx context.Context, e *models.Event) error {
	metadata, err := encodeMetadata(e.Metadata)
	if err != nil {
		return err
	}
	query := s.rebind(`INSERT INTO company_events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = s.execer(ctx).ExecContext(ctx, query,
		e.ID, e.CompanyID, e.Source, e.CountryCode, e.EventType, e.Title, e.Date, e.Description,
		metadata, e.CreatedAt.UTC(), e.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create company event: %w", err)
	}
	return nil
}

// ListEvents returns a company's events, most recent date first.
func (s *SQLStore) ListEvents(ctx context.Context, companyID uuid.UUID) ([]*models.Event, error) {
	query := s.rebind(`SELECT ` + eventColumns + ` FROM company_events WHERE company_id = ?` + recordOrder)
	rows, err := s.execer(ctx).QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("query company events: %w", err)
	}
	defer rows.Close()

	out := []*models.Event{}
	for rows.Next() {
		var (
			e        models.Event
			metadata []byte
		)
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Source, &e.CountryCode, &e.EventType, &e.Title, &e.Date,
			&e.Description, &metadata, timestamp{&e.CreatedAt}, timestamp{&e.UpdatedAt}); err != nil {
			return nil, fmt.Errorf("scan company event: %w", err)
		}
		if e.Metadata, err = decodeMetadata(metadata); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate company events: %w", err)
	}
	return out, nil
}

func encodeMetadata(m map[string]any) (string, error) {
	if m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return string(raw), nil
}

func decodeMetadata(raw []byte) (map[string]any, error) {
	m := map[string]any{}
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return m, nil
}
