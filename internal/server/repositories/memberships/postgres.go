// Package memberships stores user-to-group assignments. The schema keeps
// user_id unique, so every user has at most one row.
package memberships

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

const selectMembership = `SELECT id, user_id, group_id, created_at FROM user_groups`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMembership(row rowScanner) (*models.Membership, error) {
	m := &models.Membership{}
	if err := row.Scan(&m.ID, &m.UserID, &m.GroupID, &m.CreatedAt); err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts the row. A user that already has a membership yields
// common.ErrorAlreadyExists, callers replace by deleting first.
func (r *PostgresRepository) Create(ctx context.Context, m *models.Membership) (*models.Membership, error) {
	query :=
		`INSERT INTO user_groups (user_id, group_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, m.UserID, m.GroupID).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: user %s already has a group", common.ErrorAlreadyExists, m.UserID)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*models.Membership, error) {
	m, err := scanMembership(r.db.QueryRowContext(ctx, selectMembership+" WHERE user_id = $1", userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByGroup(ctx context.Context, groupID string) ([]*models.Membership, error) {
	rows, err := r.db.QueryContext(ctx, selectMembership+" WHERE group_id = $1 ORDER BY created_at", groupID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// DeleteByUser removes whatever membership the user has and reports how many
// rows went away (0 or 1).
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_groups WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM user_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
