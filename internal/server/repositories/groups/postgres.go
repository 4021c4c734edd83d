// Package groups provides the PostgreSQL-backed repository for groups and
// their password phrases.
package groups

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/dbx"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectGroup = `SELECT id, name, description, password_phrase, created_at FROM groups`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*models.Group, error) {
	g := &models.Group{}
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.PasswordPhrase, &g.CreatedAt); err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a group without a phrase. Phrases are only ever set through SetPhrase.
func (r *PostgresRepository) Create(ctx context.Context, group *models.Group) (*models.Group, error) {
	query :=
		`INSERT INTO groups (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, group.Name, group.Description).Scan(&group.ID, &group.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: group %q", common.ErrorAlreadyExists, group.Name)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	group.PasswordPhrase = sql.NullString{}

	return group, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*models.Group, error) {
	g, err := scanGroup(r.db.QueryRowContext(ctx, selectGroup+" WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Group, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByName reads a group in a single statement, so the phrase it returns is
// always one committed value.
func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	return r.getOne(ctx, "name = $1", name)
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Group, error) {
	rows, err := r.db.QueryContext(ctx, selectGroup+" ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Update renames the group and replaces its description. The phrase is untouched.
func (r *PostgresRepository) Update(ctx context.Context, group *models.Group) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE groups SET name = $2, description = $3 WHERE id = $1`,
		group.ID, group.Name, group.Description)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("%w: group %q", common.ErrorAlreadyExists, group.Name)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

// LockByName row-locks the named group and returns its id. Concurrent phrase
// rotations of the same group queue up behind this lock.
func (r *PostgresRepository) LockByName(ctx context.Context, name string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM groups WHERE name = $1 FOR UPDATE`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) LockByID(ctx context.Context, id string) error {
	var locked string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM groups WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SetPhrase overwrites the phrase wholesale. A NULL phrase opens the group.
func (r *PostgresRepository) SetPhrase(ctx context.Context, id string, phrase sql.NullString) error {
	res, err := r.db.ExecContext(ctx, `UPDATE groups SET password_phrase = $2 WHERE id = $1`, id, phrase)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
