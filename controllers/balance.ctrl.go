package controllers

import (
	"net/http"

	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// BalanceController : BalanceController struct
type BalanceController struct {
	svc *service.BankService
}

func NewBalanceController(svc *service.BankService) *BalanceController {
	return &BalanceController{svc: svc}
}

type BalanceResponseBody struct {
	Balance string `json:"balance"`
}

// Balance godoc
// @Summary      Retrieve balance
// @Description  Current user's account balance
// @Produce      json
// @Tags         Account
// @Success      200  {object}  BalanceResponseBody
// @Failure      401  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/balance [get]
// @Security     OAuth2Password
func (controller *BalanceController) Balance(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	balance, err := controller.svc.CurrentUserBalance(c.Request().Context(), userId)
	if err != nil {
		c.Logger().Errorj(
			log.JSON{
				"message": "failed to retrieve user balance",
				"user_id": userId,
				"error":   err,
			},
		)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &BalanceResponseBody{
		Balance: balance.StringFixed(2),
	})
}
