package services

import (
	"fmt"

	"github.com/dmitrijs2005/groupauth/internal/common"
	"github.com/google/uuid"
)

// checkIDs rejects record ids that are not UUIDs before they reach the store.
// The error matches both common.ErrorValidation and common.ErrorInvalidID.
func checkIDs(ids ...string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("%w: %w %q", common.ErrorValidation, common.ErrorInvalidID, id)
		}
	}
	return nil
}
