package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/dbx"
	"github.com/dmitrijs2005/groupauth/internal/server/auth"
	"github.com/dmitrijs2005/groupauth/internal/server/config"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/repomanager"
)

// MembershipService keeps every user in at most one group.
type MembershipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	txAttempts  int
}

func NewMembershipService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *MembershipService {
	return &MembershipService{db: db, repomanager: m, txAttempts: cfg.TxAttempts}
}

// Assign puts the user into the group, replacing any previous membership in
// the same transaction. Readers see either the old or the new row.
func (s *MembershipService) Assign(ctx context.Context, p auth.Principal, userID, groupID string) (*models.Membership, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := checkIDs(userID, groupID); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInvalidMembership, err)
	}

	var result *models.Membership
	err := dbx.WithRetryTx(ctx, s.db, nil, s.txAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).LockByID(ctx, userID); err != nil {
			return err
		}
		if _, err := s.repomanager.Groups(tx).GetByID(ctx, groupID); err != nil {
			return err
		}

		repo := s.repomanager.Memberships(tx)
		if _, err := repo.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		m, err := repo.Create(ctx, &models.Membership{UserID: userID, GroupID: groupID})
		if err != nil {
			return err
		}
		result = m
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidMembership
		}
		return nil, fmt.Errorf("assign membership: %w", err)
	}
	return result, nil
}

// Remove deletes a membership row by its id.
func (s *MembershipService) Remove(ctx context.Context, p auth.Principal, membershipID string) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if err := checkIDs(membershipID); err != nil {
		return err
	}
	return s.repomanager.Memberships(s.db).DeleteByID(ctx, membershipID)
}

// Get returns the user's membership, or common.ErrorNotFound if the user has no group.
func (s *MembershipService) Get(ctx context.Context, userID string) (*models.Membership, error) {
	if err := checkIDs(userID); err != nil {
		return nil, err
	}
	return s.repomanager.Memberships(s.db).GetByUser(ctx, userID)
}

func (s *MembershipService) ListByGroup(ctx context.Context, p auth.Principal, groupID string) ([]*models.Membership, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := checkIDs(groupID); err != nil {
		return nil, err
	}
	return s.repomanager.Memberships(s.db).ListByGroup(ctx, groupID)
}
