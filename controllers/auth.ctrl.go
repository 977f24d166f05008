package controllers

import (
	"errors"
	"net/http"

	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
)

// AuthController : AuthController struct
type AuthController struct {
	svc *service.BankService
}

func NewAuthController(svc *service.BankService) *AuthController {
	return &AuthController{svc: svc}
}

type AuthRequestBody struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponseBody struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponseBody struct {
	Ok bool `json:"ok"`
}

// Auth godoc
// @Summary      Authenticate
// @Description  Exchange a login/password pair or a refresh token for tokens
// @Accept       json
// @Produce      json
// @Tags         Auth
// @Param        auth  body      AuthRequestBody  True  "Login"
// @Success      200  {object}  AuthResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      401  {object}  responses.ErrorResponse
// @Router       /v1/auth [post]
func (controller *AuthController) Auth(c echo.Context) error {
	var body AuthRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load auth request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if body.Login == "" && body.Password == "" && body.RefreshToken == "" {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	accessToken, refreshToken, err := controller.svc.GenerateToken(c.Request().Context(), body.Login, body.Password, body.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, responses.BadAuthError)
		}
		c.Logger().Errorf("Failed to generate token: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &AuthResponseBody{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the caller's refresh token
// @Produce      json
// @Tags         Auth
// @Success      200  {object}  LogoutResponseBody
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/logout [post]
// @Security     OAuth2Password
func (controller *AuthController) Logout(c echo.Context) error {
	userId := c.Get("UserID").(int64)

	if err := controller.svc.Logout(c.Request().Context(), userId); err != nil {
		c.Logger().Errorf("Failed to log out user %d: %v", userId, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &LogoutResponseBody{Ok: true})
}
