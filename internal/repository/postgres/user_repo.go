package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// FindByEmail returns nil, nil when no user has that email.
func (r *userRepo) FindByEmail(ctx context.Context, email string) (domain.Document, error) {
	var (
		id  string
		raw []byte
	)
	err := r.db.QueryRow(ctx, `SELECT id, doc FROM users WHERE doc->>'email' = $1`, email).Scan(&id, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(id, raw)
}

func (r *userRepo) UpsertByEmail(ctx context.Context, email string, doc domain.Document) (*domain.UpdateResult, error) {
	fields := doc.Without(domain.IDField)
	fields[domain.UserEmailField] = email
	body, err := encodeDocument(fields)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO users (id, doc) VALUES ($1, $2::jsonb)
		ON CONFLICT ((doc->>'email')) DO UPDATE SET doc = users.doc || EXCLUDED.doc
		WHERE users.doc IS DISTINCT FROM users.doc || EXCLUDED.doc
		RETURNING id, (xmax = 0) AS inserted`

	var (
		id       string
		inserted bool
	)
	err = r.db.QueryRow(ctx, query, newID(), body).Scan(&id, &inserted)
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

func (r *userRepo) UpdateByEmail(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	body, err := encodeDocument(fields)
	if err != nil {
		return nil, err
	}

	query := `
		WITH target AS (
			SELECT id, doc FROM users WHERE doc->>'email' = $1 FOR UPDATE
		)
		UPDATE users u SET doc = target.doc || $2::jsonb
		FROM target
		WHERE u.id = target.id
		RETURNING target.doc IS DISTINCT FROM u.doc AS modified`

	var modified bool
	err = r.db.QueryRow(ctx, query, email, body).Scan(&modified)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.UpdateResult{Acknowledged: true}, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	result := &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if modified {
		result.ModifiedCount = 1
	}
	return result, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.Document, error) {
	rows, err := r.db.Query(ctx, `SELECT id, doc FROM users ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}
