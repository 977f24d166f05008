package migrations

import (
	"context"

	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// users
		_, err := db.NewCreateTable().
			Model((*models.User)(nil)).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return err
		}
		// accounts
		// referential integrity is explicit: removing a user removes its
		// account and, transitively, the account's ledger
		_, err = db.NewCreateTable().
			Model((*models.Account)(nil)).
			IfNotExists().
			ForeignKey(`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`).
			Exec(ctx)
		if err != nil {
			return err
		}
		// transactions
		_, err = db.NewCreateTable().
			Model((*models.Transaction)(nil)).
			IfNotExists().
			ForeignKey(`("account_id") REFERENCES "accounts" ("id") ON DELETE CASCADE`).
			Exec(ctx)
		if err != nil {
			return err
		}
		// the home view reads the ledger newest-first
		_, err = db.NewCreateIndex().
			Model((*models.Transaction)(nil)).
			Index("transactions_account_id_created_at_idx").
			IfNotExists().
			Column("account_id", "created_at").
			Exec(ctx)
		return err
	}, nil)
}
