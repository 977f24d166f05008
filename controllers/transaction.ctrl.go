package controllers

import (
	"net/http"

	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// TransactionController : TransactionController struct
type TransactionController struct {
	svc *service.BankService
}

func NewTransactionController(svc *service.BankService) *TransactionController {
	return &TransactionController{svc: svc}
}

type TransactionRequestBody struct {
	TransactionType string `json:"transaction_type" validate:"required,oneof=deposit withdraw"`
	Amount          string `json:"amount" validate:"required"`
}

type TransactionResponseBody struct {
	TransactionID   int64  `json:"transaction_id"`
	TransactionType string `json:"transaction_type"`
	Amount          string `json:"amount"`
	Balance         string `json:"balance"`
}

type ListTransactionsResponseBody struct {
	Transactions []TransactionSummary `json:"transactions"`
}

// amounts mirror a decimal(10,2) column: positive, at most two fractional
// digits, fewer than 10 digits overall
var maxTransactionAmount = decimal.New(1, 8)

func parseAmount(raw string) (decimal.Decimal, string) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, "must be a decimal number"
	}
	if !amount.IsPositive() {
		return decimal.Zero, "must be positive"
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, "must have at most two decimal places"
	}
	if amount.GreaterThanOrEqual(maxTransactionAmount) {
		return decimal.Zero, "is too large"
	}
	return amount, ""
}

// AddTransaction godoc
// @Summary      Deposit or withdraw
// @Description  Apply a deposit or withdrawal to the caller's account
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        transaction  body      TransactionRequestBody  True  "Transaction"
// @Success      200  {object}  TransactionResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/transactions [post]
// @Security     OAuth2Password
func (controller *TransactionController) AddTransaction(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	var body TransactionRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.FieldValidationError(err))
	}
	amount, fieldErr := parseAmount(body.Amount)
	if fieldErr != "" {
		return c.JSON(http.StatusBadRequest, responses.NewFieldErrorResponse(map[string]string{
			"amount": fieldErr,
		}))
	}

	account, transaction, err := controller.svc.ApplyTransaction(c.Request().Context(), userId, body.TransactionType, amount)
	if err != nil {
		c.Logger().Errorj(
			log.JSON{
				"message": "failed to apply transaction",
				"user_id": userId,
				"error":   err,
			},
		)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &TransactionResponseBody{
		TransactionID:   transaction.ID,
		TransactionType: transaction.TransactionType,
		Amount:          transaction.Amount.StringFixed(2),
		Balance:         account.Balance.StringFixed(2),
	})
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  The caller's ledger, newest entries first
// @Produce      json
// @Tags         Transaction
// @Success      200  {object}  ListTransactionsResponseBody
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/transactions [get]
// @Security     OAuth2Password
func (controller *TransactionController) ListTransactions(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	account, err := controller.svc.FindAccountByUserId(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorj(
			log.JSON{
				"message": "failed to retrieve user account",
				"user_id": userId,
				"error":   err,
			},
		)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	transactions, err := controller.svc.ListTransactions(c.Request().Context(), account.ID)
	if err != nil {
		c.Logger().Errorj(
			log.JSON{
				"message":    "failed to retrieve transactions",
				"user_id":    userId,
				"account_id": account.ID,
				"error":      err,
			},
		)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &ListTransactionsResponseBody{
		Transactions: summarizeTransactions(transactions),
	})
}
