// Package services contains server-side business logic. This file implements
// GroupService: the credential checks served over gRPC and the admin
// operations on groups and their password phrases.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/dbx"
	"github.com/dmitrijs2005/groupauth/internal/server/auth"
	"github.com/dmitrijs2005/groupauth/internal/server/config"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/repomanager"
)

const maxGroupNameLength = 100

// CheckResult is the outcome of a group/phrase check. It is a complete answer,
// never a partially filled one.
type CheckResult struct {
	Exists      bool
	Valid       bool
	Description string
	Message     string
}

type GroupService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	phraseLength int
	txAttempts   int
}

func NewGroupService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *GroupService {
	length := cfg.PhraseLength
	if length < common.MinPhraseLength {
		length = common.MinPhraseLength
	}
	return &GroupService{
		db:           db,
		repomanager:  m,
		phraseLength: length,
		txAttempts:   cfg.TxAttempts,
	}
}

// CheckGroup looks the group up by name and compares the supplied phrase with
// the stored one. Only store failures are returned as errors, wrapped in
// common.ErrorInternal; a missing group is a regular result.
func (s *GroupService) CheckGroup(ctx context.Context, name, phrase string) (*CheckResult, error) {
	group, err := s.repomanager.Groups(s.db).GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &CheckResult{Message: common.MsgGroupNotFound}, nil
		}
		return nil, fmt.Errorf("%w: check group: %v", common.ErrorInternal, err)
	}
	return evaluatePhrase(group, phrase), nil
}

// evaluatePhrase decides a check against a group that exists. A group without
// a phrase accepts everyone.
func evaluatePhrase(g *models.Group, phrase string) *CheckResult {
	res := &CheckResult{Exists: true, Description: g.Description}

	switch {
	case !g.HasPhrase():
		res.Valid = true
		res.Message = common.MsgNoPasswordSet
	case phrase == "":
		res.Message = common.MsgPasswordNeeded
	case phrasesEqual(g.PasswordPhrase.String, phrase):
		res.Valid = true
		res.Message = common.MsgPasswordCorrect
	default:
		res.Message = common.MsgPasswordInvalid
	}
	return res
}

func phrasesEqual(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// GeneratePhrase issues a fresh phrase for the named group and makes it the
// only valid one. Concurrent calls for one group serialize on the row lock.
// Returns common.ErrorNotFound when the group does not exist.
func (s *GroupService) GeneratePhrase(ctx context.Context, name string) (string, error) {
	phrase, err := common.MakeRandAlphanumeric(s.phraseLength)
	if err != nil {
		return "", fmt.Errorf("%w: generate phrase: %v", common.ErrorInternal, err)
	}

	err = dbx.WithRetryTx(ctx, s.db, nil, s.txAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Groups(tx)
		id, err := repo.LockByName(ctx, name)
		if err != nil {
			return err
		}
		return repo.SetPhrase(ctx, id, sql.NullString{String: phrase, Valid: true})
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("%w: store phrase: %v", common.ErrorInternal, err)
	}
	return phrase, nil
}

// RotatePhrase is the admin counterpart of GeneratePhrase, addressed by id.
func (s *GroupService) RotatePhrase(ctx context.Context, p auth.Principal, groupID string) (string, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return "", err
	}
	if err := checkIDs(groupID); err != nil {
		return "", err
	}
	phrase, err := common.MakeRandAlphanumeric(s.phraseLength)
	if err != nil {
		return "", fmt.Errorf("%w: generate phrase: %v", common.ErrorInternal, err)
	}

	err = dbx.WithRetryTx(ctx, s.db, nil, s.txAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Groups(tx)
		if err := repo.LockByID(ctx, groupID); err != nil {
			return err
		}
		return repo.SetPhrase(ctx, groupID, sql.NullString{String: phrase, Valid: true})
	})
	if err != nil {
		return "", err
	}
	return phrase, nil
}

// ClearPhrase removes the phrase, leaving the group open.
func (s *GroupService) ClearPhrase(ctx context.Context, p auth.Principal, groupID string) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if err := checkIDs(groupID); err != nil {
		return err
	}
	return dbx.WithRetryTx(ctx, s.db, nil, s.txAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Groups(tx)
		if err := repo.LockByID(ctx, groupID); err != nil {
			return err
		}
		return repo.SetPhrase(ctx, groupID, sql.NullString{})
	})
}

func validateGroupName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: group name is required", common.ErrorValidation)
	}
	if len(name) > maxGroupNameLength {
		return fmt.Errorf("%w: group name longer than %d", common.ErrorValidation, maxGroupNameLength)
	}
	return nil
}

func (s *GroupService) CreateGroup(ctx context.Context, p auth.Principal, name, description string) (*models.Group, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	if err := validateGroupName(name); err != nil {
		return nil, err
	}
	return s.repomanager.Groups(s.db).Create(ctx, &models.Group{Name: name, Description: description})
}

// UpdateGroup renames the group and replaces its description.
func (s *GroupService) UpdateGroup(ctx context.Context, p auth.Principal, id, name, description string) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if err := checkIDs(id); err != nil {
		return err
	}
	if err := validateGroupName(name); err != nil {
		return err
	}
	return s.repomanager.Groups(s.db).Update(ctx, &models.Group{ID: id, Name: name, Description: description})
}

// DeleteGroup removes the group; its memberships go with it.
func (s *GroupService) DeleteGroup(ctx context.Context, p auth.Principal, id string) error {
	if err := auth.RequireAdmin(p); err != nil {
		return err
	}
	if err := checkIDs(id); err != nil {
		return err
	}
	return s.repomanager.Groups(s.db).Delete(ctx, id)
}

func (s *GroupService) ListGroups(ctx context.Context, p auth.Principal) ([]*models.Group, error) {
	if err := auth.RequireAdmin(p); err != nil {
		return nil, err
	}
	return s.repomanager.Groups(s.db).List(ctx)
}
