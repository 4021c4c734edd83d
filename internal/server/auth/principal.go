// Package auth carries the authenticated caller through admin operations and
// decides what that caller may do.
package auth

import (
	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/dmitrijs2005/groupauth/internal/server/models"
)

// Principal is the authenticated actor behind an admin operation.
type Principal struct {
	UserID string
	Role   models.Role
}

func PrincipalFor(u *models.User) Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// RequireAdmin is the policy check for every user, group and membership
// mutation.
func RequireAdmin(p Principal) error {
	if !p.IsAdmin() {
		return common.ErrorForbidden
	}
	return nil
}
