package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pocketplan/backend/internal/controllers/v1"
	"github.com/pocketplan/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRegister() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/register", v1.Credentials{
		Email:    "jane@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "jane@example.com", response.Data.Email)
	assert.NotEmpty(suite.T(), response.Data.Token)
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"short password", v1.Credentials{Email: "jane@example.com", Password: "short"}, http.StatusBadRequest},
		{"empty email", v1.Credentials{Password: "correct horse battery staple"}, http.StatusBadRequest},
		{"empty body", "", http.StatusBadRequest},
		{"broken body", `{ "email": `, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/v1/register", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	credentials := v1.Credentials{Email: "jane@example.com", Password: "correct horse battery staple"}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), suite.router, http.MethodPost, "/v1/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	credentials := v1.Credentials{Email: "jane@example.com", Password: "correct horse battery staple"}

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/register", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), suite.router, http.MethodPost, "/v1/login", credentials)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	// The fresh token authenticates requests
	headers := map[string]string{"Authorization": "Bearer " + response.Data.Token.String()}
	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestLoginWrongCredentials() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/register", v1.Credentials{
		Email:    "jane@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name        string
		credentials v1.Credentials
	}{
		{"wrong password", v1.Credentials{Email: "jane@example.com", Password: "incorrect donkey battery staple"}},
		{"unknown email", v1.Credentials{Email: "nobody@example.com", Password: "correct horse battery staple"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/v1/login", tt.credentials)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestLogout() {
	headers := suite.signUp()

	r := test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/login", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The token does not authenticate anything anymore
	r = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/months/2024-02"},
		{http.MethodGet, "/v1/categories"},
		{http.MethodGet, "/v1/subcategories"},
		{http.MethodGet, "/v1/transactions"},
		{http.MethodGet, "/v1/milestones"},
		{http.MethodDelete, "/v1/data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			// No header at all
			r := test.Request(t, suite.router, tt.method, tt.path, nil)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			// Garbage token
			r = test.Request(t, suite.router, tt.method, tt.path, nil, map[string]string{"Authorization": "Bearer not-a-token"})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}
