package apidb

import (
	"context"
	"log"

	mghelper "github.com/memeforge/memeforge/pkg/pgutil/migrations"
	"github.com/memeforge/memeforge/pkg/tokenstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating tokens table...")
		if err := mghelper.CreateSchema(ctx, db, &tokenstore.TokenDao{}); err != nil {
			return err
		}
		// Create indexes
		return mghelper.CreateModelIndexes(ctx, db, &tokenstore.TokenDao{}, "user_id", "network")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping tokens table...")
		return mghelper.DropTables(ctx, db, &tokenstore.TokenDao{})
	})
}
