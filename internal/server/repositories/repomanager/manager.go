package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/ads"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Ads(db dbx.DBTX) ads.Repository
}
