package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/groupauth/internal/dbx"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/groups"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/memberships"
	"github.com/dmitrijs2005/groupauth/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to either the pool or an open
// transaction, so services can compose several of them under one tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Groups(db dbx.DBTX) groups.Repository
	Memberships(db dbx.DBTX) memberships.Repository
}
