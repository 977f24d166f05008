package controllers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// HomeController : HomeController struct
type HomeController struct {
	svc *service.BankService
}

func NewHomeController(svc *service.BankService) *HomeController {
	return &HomeController{svc: svc}
}

type AccountSummary struct {
	AccountType string    `json:"account_type"`
	Balance     string    `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionSummary struct {
	ID              int64     `json:"id"`
	Amount          string    `json:"amount"`
	TransactionType string    `json:"transaction_type"`
	CreatedAt       time.Time `json:"created_at"`
}

type HomeResponseBody struct {
	Account      AccountSummary       `json:"account"`
	Transactions []TransactionSummary `json:"transactions"`
}

// Home godoc
// @Summary      Account overview
// @Description  Current balance and the full ledger, newest entries first
// @Produce      json
// @Tags         Account
// @Success      200  {object}  HomeResponseBody
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/home [get]
// @Security     OAuth2Password
func (controller *HomeController) Home(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	account, err := controller.svc.FindAccountByUserId(c.Request().Context(), userId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		}
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

	return c.JSON(http.StatusOK, &HomeResponseBody{
		Account:      summarizeAccount(account),
		Transactions: summarizeTransactions(transactions),
	})
}

func summarizeAccount(account *models.Account) AccountSummary {
	return AccountSummary{
		AccountType: account.AccountType,
		Balance:     account.Balance.StringFixed(2),
		CreatedAt:   account.CreatedAt,
	}
}

func summarizeTransactions(transactions []models.Transaction) []TransactionSummary {
	summaries := make([]TransactionSummary, 0, len(transactions))
	for _, transaction := range transactions {
		summaries = append(summaries, TransactionSummary{
			ID:              transaction.ID,
			Amount:          transaction.Amount.StringFixed(2),
			TransactionType: transaction.TransactionType,
			CreatedAt:       transaction.CreatedAt,
		})
	}
	return summaries
}
