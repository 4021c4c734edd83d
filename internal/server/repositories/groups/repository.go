package groups

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/groupauth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, group *models.Group) (*models.Group, error)
	GetByID(ctx context.Context, id string) (*models.Group, error)
	GetByName(ctx context.Context, name string) (*models.Group, error)
	List(ctx context.Context) ([]*models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id string) error
	LockByName(ctx context.Context, name string) (string, error)
	LockByID(ctx context.Context, id string) error
	SetPhrase(ctx context.Context, id string, phrase sql.NullString) error
}
