package integration_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bennyhinn18/bank-application/controllers"
	"github.com/bennyhinn18/bank-application/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ApiTestSuite struct {
	suite.Suite
	service *service.BankService
	echo    *echo.Echo
}

func (suite *ApiTestSuite) SetupSuite() {
	suite.service = newTestService(suite.T())
	suite.echo = newTestApp(suite.service)
}

func (suite *ApiTestSuite) TearDownSuite() {
	suite.service.DB.Close()
}

func (suite *ApiTestSuite) request(method string, target string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *ApiTestSuite) register(login string) controllers.CreateUserResponseBody {
	rec := suite.request(http.MethodPost, "/v1/users", &controllers.CreateUserRequestBody{
		Login:                login,
		Password:             "a long enough password",
		PasswordConfirmation: "a long enough password",
	}, "")
	suite.Require().Equal(http.StatusOK, rec.Code)

	var res controllers.CreateUserResponseBody
	suite.Require().NoError(json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func (suite *ApiTestSuite) TestHomeRequiresAuthentication() {
	rec := suite.request(http.MethodGet, "/v1/home", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	assert.NotContains(suite.T(), rec.Body.String(), "balance")
	assert.NotContains(suite.T(), rec.Body.String(), "transactions")
}

func (suite *ApiTestSuite) TestRegisterDepositHomeFlow() {
	registered := suite.register("eve")
	assert.NotEmpty(suite.T(), registered.AccessToken)

	rec := suite.request(http.MethodPost, "/v1/transactions", &controllers.TransactionRequestBody{
		TransactionType: "deposit",
		Amount:          "50.00",
	}, registered.AccessToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var txRes controllers.TransactionResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&txRes))
	assert.Equal(suite.T(), "50.00", txRes.Balance)
	assert.Equal(suite.T(), "deposit", txRes.TransactionType)

	rec = suite.request(http.MethodGet, "/v1/home", nil, registered.AccessToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var homeRes controllers.HomeResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&homeRes))
	assert.Equal(suite.T(), "50.00", homeRes.Account.Balance)
	assert.Len(suite.T(), homeRes.Transactions, 1)
	assert.Equal(suite.T(), "deposit", homeRes.Transactions[0].TransactionType)
}

func (suite *ApiTestSuite) TestLoginWithWrongPassword() {
	suite.register("frank")

	rec := suite.request(http.MethodPost, "/v1/auth", &controllers.AuthRequestBody{
		Login:    "frank",
		Password: "not frank's password",
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *ApiTestSuite) TestLoginThenBalance() {
	suite.register("grace")

	rec := suite.request(http.MethodPost, "/v1/auth", &controllers.AuthRequestBody{
		Login:    "grace",
		Password: "a long enough password",
	}, "")
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var authRes controllers.AuthResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&authRes))

	rec = suite.request(http.MethodGet, "/v1/balance", nil, authRes.AccessToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var balanceRes controllers.BalanceResponseBody
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&balanceRes))
	assert.Equal(suite.T(), "0.00", balanceRes.Balance)
}

func (suite *ApiTestSuite) TestRegisterPasswordMismatch() {
	rec := suite.request(http.MethodPost, "/v1/users", &controllers.CreateUserRequestBody{
		Login:                "heidi",
		Password:             "a long enough password",
		PasswordConfirmation: "a different password",
	}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "PasswordConfirmation")
}

func (suite *ApiTestSuite) TestTransactionValidation() {
	registered := suite.register("ivan")

	for _, body := range []*controllers.TransactionRequestBody{
		{TransactionType: "transfer", Amount: "10.00"},
		{TransactionType: "deposit", Amount: "-10.00"},
		{TransactionType: "deposit", Amount: "10.001"},
		{TransactionType: "deposit", Amount: "not a number"},
		{TransactionType: "deposit", Amount: "100000000.00"},
	} {
		rec := suite.request(http.MethodPost, "/v1/transactions", body, registered.AccessToken)
		assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	}
}

func (suite *ApiTestSuite) TestRefreshTokenIsNotABearerToken() {
	registered := suite.register("kevin")

	rec := suite.request(http.MethodGet, "/v1/home", nil, registered.RefreshToken)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)

	rec = suite.request(http.MethodGet, "/v1/home", nil, registered.AccessToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *ApiTestSuite) TestRegistrationDisabled() {
	svc := newTestService(suite.T())
	defer svc.DB.Close()
	svc.Config.AllowAccountCreation = false
	app := newTestApp(svc)

	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(&controllers.CreateUserRequestBody{
		Login:                "laura",
		Password:             "a long enough password",
		PasswordConfirmation: "a long enough password",
	}))
	req := httptest.NewRequest(http.MethodPost, "/v1/users", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusForbidden, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "account creation is disabled")
}

func (suite *ApiTestSuite) TestLogout() {
	registered := suite.register("judy")

	rec := suite.request(http.MethodPost, "/v1/logout", nil, registered.AccessToken)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	// the revoked refresh token no longer buys new tokens
	rec = suite.request(http.MethodPost, "/v1/auth", &controllers.AuthRequestBody{
		RefreshToken: registered.RefreshToken,
	}, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func TestApiSuite(t *testing.T) {
	suite.Run(t, new(ApiTestSuite))
}
