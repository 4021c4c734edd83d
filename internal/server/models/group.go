package models

import (
	"database/sql"
	"time"
)

// Group is a named resource guarded by an optional shared password phrase.
// A NULL phrase marks an open group.
type Group struct {
	ID             string
	Name           string
	Description    string
	PasswordPhrase sql.NullString
	CreatedAt      time.Time
}

// HasPhrase reports whether a phrase is configured. An empty string stored in
// the column counts as no phrase.
func (g *Group) HasPhrase() bool {
	return g.PasswordPhrase.Valid && g.PasswordPhrase.String != ""
}
