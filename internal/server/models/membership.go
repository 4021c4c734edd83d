package models

import "time"

// Membership assigns one user to one group. user_id is unique, so a user is
// in at most one group at a time.
type Membership struct {
	ID        string
	UserID    string
	GroupID   string
	CreatedAt time.Time
}
