//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"staybook/internal/handler/dto/request"
	"staybook/internal/handler/dto/response"
	"staybook/tests/common/dbtest"
	"staybook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginRes response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
	require.NoError(t, err)
	require.NotEmpty(t, loginRes.AccessToken, "access token missing from login response")

	return loginRes.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
