package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// User : User Model
type User struct {
	ID               int64        `bun:",pk,autoincrement" json:"id"`
	Login            string       `bun:",unique,notnull" json:"login"`
	Password         string       `bun:",notnull" json:"-"`
	RefreshTokenHash string       `bun:",nullzero" json:"-"`
	CreatedAt        time.Time    `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt        bun.NullTime `bun:",nullzero" json:"updated_at"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		u.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*User)(nil)
