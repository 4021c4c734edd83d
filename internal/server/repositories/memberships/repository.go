package memberships

import (
	"context"

	"github.com/dmitrijs2005/groupauth/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Membership) (*models.Membership, error)
	GetByUser(ctx context.Context, userID string) (*models.Membership, error)
	ListByGroup(ctx context.Context, groupID string) ([]*models.Membership, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	DeleteByID(ctx context.Context, id string) error
}
