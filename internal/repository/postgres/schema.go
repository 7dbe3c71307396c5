package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// Each collection is a table of (id, doc JSONB); seq preserves insertion order.
const (
	jobsTable        = "jobs"
	appliedJobsTable = "applied_jobs"
	usersTable       = "users"
)

// Bootstrap creates the collection tables and their indexes if missing.
func Bootstrap(ctx context.Context, db *pgxpool.Pool) error {
	var stmts []string
	for _, table := range []string{jobsTable, appliedJobsTable, usersTable} {
		stmts = append(stmts, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id  TEXT PRIMARY KEY,
			doc JSONB NOT NULL DEFAULT '{}'::jsonb,
			seq BIGSERIAL
		)`, pq.QuoteIdentifier(table)))
		stmts = append(stmts, fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (seq)`,
			pq.QuoteIdentifier(table+"_seq_idx"), pq.QuoteIdentifier(table)))
	}

	stmts = append(stmts,
		`CREATE INDEX IF NOT EXISTS jobs_category_idx ON jobs ((doc->>'category'))`,
		`CREATE INDEX IF NOT EXISTS jobs_owner_email_idx ON jobs ((doc->'jobOwner'->>'email'))`,
		// one application per (email, jobId), enforced by the store
		`CREATE UNIQUE INDEX IF NOT EXISTS applied_jobs_email_job_uidx ON applied_jobs ((doc->>'email'), (doc->>'jobId'))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_uidx ON users ((doc->>'email'))`,
	)

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// pinger reports whether the pool can reach the database.
type pinger struct {
	db *pgxpool.Pool
}

func NewPinger(db *pgxpool.Pool) domain.Pinger {
	return &pinger{db: db}
}

func (p *pinger) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func newID() string {
	return uuid.NewString()
}

// parseID rejects ids that could never have been generated by newID.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return parsed.String(), nil
}

// encodeDocument marshals doc for a ::jsonb parameter, dropping the id key kept in its own column.
func encodeDocument(doc domain.Document) (string, error) {
	b, err := json.Marshal(doc.Without(domain.IDField))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeDocument(id string, raw []byte) (domain.Document, error) {
	doc := domain.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc[domain.IDField] = id
	return doc, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// collect scans (id, doc) rows; it never returns a nil slice so empty results encode as [].
func collect(rows rowScanner) ([]domain.Document, error) {
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		doc, err := decodeDocument(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func acknowledged(id string) *domain.InsertResult {
	return &domain.InsertResult{Acknowledged: true, InsertedID: id}
}
