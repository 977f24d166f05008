package tokens

import (
	"errors"
	"net/http"
	"time"

	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/bennyhinn18/bank-application/lib/responses"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type jwtCustomClaims struct {
	ID        int64 `json:"id"`
	IsRefresh bool  `json:"isRefresh"`
	jwt.RegisteredClaims
}

// Middleware guards authenticated routes. On success the caller's user id is
// available as c.Get("UserID"); anything else gets a 401 without touching the
// handler. Refresh tokens only buy new tokens, they are not bearer
// credentials.
func Middleware(secret []byte) echo.MiddlewareFunc {
	config := echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &jwtCustomClaims{}
		},
		SigningKey: secret,
		SuccessHandler: func(c echo.Context) {
			token := c.Get("user").(*jwt.Token)
			claims := token.Claims.(*jwtCustomClaims)
			c.Set("UserID", claims.ID)
			c.Set("IsRefreshToken", claims.IsRefresh)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			c.Logger().Errorf("Authentication error: %v", err)
			return c.JSON(http.StatusUnauthorized, responses.UnauthorizedError)
		},
	}
	jwtMiddleware := echojwt.WithConfig(config)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return jwtMiddleware(func(c echo.Context) error {
			if isRefresh, ok := c.Get("IsRefreshToken").(bool); ok && isRefresh {
				return c.JSON(http.StatusUnauthorized, responses.UnauthorizedError)
			}
			return next(c)
		})
	}
}

func GenerateAccessToken(secret []byte, expiryInSeconds int, u *models.User) (string, error) {
	return generateToken(secret, expiryInSeconds, u, false)
}

func GenerateRefreshToken(secret []byte, expiryInSeconds int, u *models.User) (string, error) {
	return generateToken(secret, expiryInSeconds, u, true)
}

func generateToken(secret []byte, expiryInSeconds int, u *models.User, isRefresh bool) (string, error) {
	claims := &jwtCustomClaims{
		ID:        u.ID,
		IsRefresh: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiryInSeconds) * time.Second)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GetUserIdFromToken verifies a refresh token and extracts the user id.
func GetUserIdFromToken(secret []byte, tokenString string) (int64, error) {
	claims := &jwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}
	if !claims.IsRefresh {
		return 0, errors.New("not a refresh token")
	}
	return claims.ID, nil
}
