package controllers

import (
	"errors"
	"net/http"

	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
)

// CreateUserController : CreateUserController struct
type CreateUserController struct {
	svc *service.BankService
}

func NewCreateUserController(svc *service.BankService) *CreateUserController {
	return &CreateUserController{svc: svc}
}

type CreateUserRequestBody struct {
	Login                string `json:"login" validate:"required,min=3,max=64"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type CreateUserResponseBody struct {
	UserID       int64  `json:"user_id"`
	Login        string `json:"login"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateUser godoc
// @Summary      Register a new user
// @Description  Create a user and its account, then sign the user in
// @Accept       json
// @Produce      json
// @Tags         Auth
// @Param        user  body      CreateUserRequestBody  True  "Register"
// @Success      200  {object}  CreateUserResponseBody
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v1/users [post]
func (controller *CreateUserController) CreateUser(c echo.Context) error {
	var body CreateUserRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create user request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.FieldValidationError(err))
	}

	user, _, err := controller.svc.CreateUser(c.Request().Context(), body.Login, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			return c.JSON(http.StatusBadRequest, responses.LoginTakenError)
		}
		c.Logger().Errorf("Failed to create user: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	// registration doubles as login
	accessToken, refreshToken, err := controller.svc.GenerateToken(c.Request().Context(), body.Login, body.Password, "")
	if err != nil {
		c.Logger().Errorf("Failed to generate token for new user: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}

	return c.JSON(http.StatusOK, &CreateUserResponseBody{
		UserID:       user.ID,
		Login:        user.Login,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
