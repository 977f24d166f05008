package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bennyhinn18/bank-application/common"
	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

var ErrNonPositiveAmount = errors.New("amount must be positive")

// ApplyTransaction mutates the caller's balance and appends a ledger entry.
//
// Deposits always move money. Withdrawals only move money when the balance
// covers the amount; an uncovered withdrawal leaves the balance alone but the
// attempt is still recorded in the ledger, matching the account statement a
// teller would keep of rejected requests. An unknown transaction type is
// recorded the same way without touching the balance.
//
// The read-modify-write runs in a database transaction, with the account row
// locked on Postgres, so two concurrent requests against one account
// serialize instead of racing.
func (svc *BankService) ApplyTransaction(ctx context.Context, userId int64, transactionType string, amount decimal.Decimal) (*models.Account, *models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, nil, ErrNonPositiveAmount
	}

	account := &models.Account{}
	transaction := &models.Transaction{}

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewSelect().Model(account).Where("user_id = ?", userId).Limit(1)
		if tx.Dialect().Name() == dialect.PG {
			q = q.For("UPDATE")
		}
		if err := q.Scan(ctx); err != nil {
			return err
		}

		switch transactionType {
		case common.TransactionTypeDeposit:
			account.Balance = account.Balance.Add(amount)
		case common.TransactionTypeWithdraw:
			if account.Balance.GreaterThanOrEqual(amount) {
				account.Balance = account.Balance.Sub(amount)
			}
		default:
			svc.Logger.Warnf("unrecognized transaction type, balance untouched: %s", transactionType)
		}

		if _, err := tx.NewUpdate().Model(account).Column("balance").WherePK().Exec(ctx); err != nil {
			return err
		}

		transaction.AccountID = account.ID
		transaction.Amount = amount
		transaction.TransactionType = transactionType
		_, err := tx.NewInsert().Model(transaction).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return account, transaction, nil
}

// ListTransactions returns the account's ledger newest-first. The id
// tiebreak keeps entries created in the same instant in insertion order.
func (svc *BankService) ListTransactions(ctx context.Context, accountId int64) ([]models.Transaction, error) {
	transactions := []models.Transaction{}

	err := svc.DB.NewSelect().
		Model(&transactions).
		Where("account_id = ?", accountId).
		OrderExpr("created_at DESC, id DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
