package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// BankService : BankService struct
type BankService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}
