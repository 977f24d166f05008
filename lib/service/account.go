package service

import (
	"context"

	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/shopspring/decimal"
)

func (svc *BankService) FindAccountByUserId(ctx context.Context, userId int64) (*models.Account, error) {
	var account models.Account

	err := svc.DB.NewSelect().Model(&account).Where("user_id = ?", userId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (svc *BankService) CurrentUserBalance(ctx context.Context, userId int64) (decimal.Decimal, error) {
	account, err := svc.FindAccountByUserId(ctx, userId)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}
