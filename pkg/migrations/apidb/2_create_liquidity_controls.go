package apidb

import (
	"context"
	"log"

	"github.com/memeforge/memeforge/pkg/liquiditystore"
	mghelper "github.com/memeforge/memeforge/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating liquidity_controls table...")
		if err := mghelper.CreateSchema(ctx, db, &liquiditystore.ControlDao{}); err != nil {
			return err
		}
		// The upsert path relies on a unique constraint on token_id
		return mghelper.CreateModelUniqueIndexes(ctx, db, &liquiditystore.ControlDao{}, "token_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping liquidity_controls table...")
		return mghelper.DropTables(ctx, db, &liquiditystore.ControlDao{})
	})
}
