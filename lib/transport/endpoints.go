package transport

import (
	"net/http"

	"github.com/bennyhinn18/bank-application/controllers"
	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.BankService, e *echo.Echo, secured *echo.Group, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	if svc.Config.AllowAccountCreation {
		e.POST("/v1/users", controllers.NewCreateUserController(svc).CreateUser, strictRateLimitMiddleware, logMw)
	} else {
		e.POST("/v1/users", func(c echo.Context) error {
			return c.JSON(http.StatusForbidden, responses.AccountCreationDisabledError)
		}, strictRateLimitMiddleware, logMw)
	}
	authCtrl := controllers.NewAuthController(svc)
	e.POST("/v1/auth", authCtrl.Auth, strictRateLimitMiddleware, logMw)
	secured.POST("/v1/logout", authCtrl.Logout)

	secured.GET("/v1/home", controllers.NewHomeController(svc).Home)
	secured.GET("/v1/balance", controllers.NewBalanceController(svc).Balance)

	transactionCtrl := controllers.NewTransactionController(svc)
	secured.GET("/v1/transactions", transactionCtrl.ListTransactions)
	secured.POST("/v1/transactions", transactionCtrl.AddTransaction, strictRateLimitMiddleware)
}
