package postgres

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	body, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}
	id := newID()
	if _, err := r.db.Exec(ctx, `INSERT INTO jobs (id, doc) VALUES ($1, $2::jsonb)`, id, body); err != nil {
		return nil, err
	}
	return acknowledged(id), nil
}

// jobFilter renders the WHERE clause for q; search is matched literally and case-insensitively.
func jobFilter(q domain.JobQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.Search != "" {
		args = append(args, regexp.QuoteMeta(q.Search))
		conds = append(conds, fmt.Sprintf("doc->>'jobTitle' ~* $%d", len(args)))
	}
	if q.Category != "" {
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("doc->>'category' = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *jobRepo) Find(ctx context.Context, q domain.JobQuery) ([]domain.Document, error) {
	where, args := jobFilter(q)
	query := `SELECT id, doc FROM jobs` + where + ` ORDER BY seq`

	args = append(args, q.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *jobRepo) FindByOwner(ctx context.Context, email string) ([]domain.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, doc FROM jobs WHERE doc->'jobOwner'->>'email' = $1 ORDER BY seq`, email)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// FindByID returns nil, nil when no job has that id.
func (r *jobRepo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = r.db.QueryRow(ctx, `SELECT doc FROM jobs WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(id, raw)
}

func (r *jobRepo) DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected()}, nil
}

// UpsertFields merges fields into the job; a missing id is created holding only fields.
// The WHERE on the conflict branch skips no-op merges so they report modifiedCount 0.
func (r *jobRepo) UpsertFields(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	body, err := encodeDocument(fields)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO jobs (id, doc) VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET doc = jobs.doc || EXCLUDED.doc
		WHERE jobs.doc IS DISTINCT FROM jobs.doc || EXCLUDED.doc
		RETURNING (xmax = 0) AS inserted`

	var inserted bool
	err = r.db.QueryRow(ctx, query, id, body).Scan(&inserted)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	case err != nil:
		return nil, err
	case inserted:
		return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &id}, nil
	default:
		return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
