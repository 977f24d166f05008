package common

const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeWithdraw = "withdraw"

	DefaultAccountType = "checking"
)
