package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new applied job repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Exists checks if an application already exists for the email/job combination
func (r *applicationRepo) Exists(ctx context.Context, email, jobID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applied_jobs WHERE doc->>'email' = $1 AND doc->>'jobId' = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, email, jobID).Scan(&exists)
	return exists, err
}

// Submit records the application and bumps the job's applicants counter in one transaction.
func (r *applicationRepo) Submit(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	jobID, err := parseID(doc.String(domain.ApplicationJobIDField))
	if err != nil {
		return nil, err
	}
	body, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := newID()
	if _, err := tx.Exec(ctx, `INSERT INTO applied_jobs (id, doc) VALUES ($1, $2::jsonb)`, id, body); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	// a deleted job leaves the application dangling; nothing to increment then
	_, err = tx.Exec(ctx, `
		UPDATE jobs
		SET doc = jsonb_set(doc, '{applicants}', to_jsonb(COALESCE((doc->>'applicants')::numeric, 0) + 1))
		WHERE id = $1`, jobID)
	if err != nil {
		return nil, fmt.Errorf("increment applicants: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, err
	}
	return acknowledged(id), nil
}

// FindByApplicant lists an applicant's applications, optionally narrowed to one category.
func (r *applicationRepo) FindByApplicant(ctx context.Context, email, category string) ([]domain.Document, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category == "" {
		rows, err = r.db.Query(ctx,
			`SELECT id, doc FROM applied_jobs WHERE doc->>'email' = $1 ORDER BY seq`, email)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT id, doc FROM applied_jobs WHERE doc->>'email' = $1 AND doc->>'category' = $2 ORDER BY seq`,
			email, category)
	}
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *applicationRepo) FindAll(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.db.Query(ctx, `SELECT id, doc FROM applied_jobs ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}
