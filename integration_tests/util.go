package integration_tests

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/bennyhinn18/bank-application/db"
	"github.com/bennyhinn18/bank-application/db/migrations"
	"github.com/bennyhinn18/bank-application/lib"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/bennyhinn18/bank-application/lib/tokens"
	"github.com/bennyhinn18/bank-application/lib/transport"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
	"github.com/ziflex/lecho/v3"
)

func newTestService(t *testing.T) *service.BankService {
	c := &service.Config{
		DatabaseUri:           fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "bank.db")),
		JWTSecret:             []byte("integration-test-secret"),
		JWTAccessTokenExpiry:  3600,
		JWTRefreshTokenExpiry: 7200,
		DefaultAccountType:    "checking",
		AllowAccountCreation:  true,
	}

	dbConn, err := db.Open(c.DatabaseUri)
	require.NoError(t, err)

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	return &service.BankService{
		Config: c,
		DB:     dbConn,
		Logger: lib.Logger(""),
	}
}

func newTestApp(svc *service.BankService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger = svc.Logger
	e.Validator = &lib.CustomValidator{Validator: validator.New()}

	logMw := lecho.Middleware(lecho.Config{Logger: svc.Logger})
	secured := e.Group("", tokens.Middleware(svc.Config.JWTSecret), logMw)
	noRateLimit := func(next echo.HandlerFunc) echo.HandlerFunc {
		return next
	}
	transport.RegisterEndpoints(svc, e, secured, noRateLimit, logMw)
	return e
}
