package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domus/internal/auth"
	"domus/internal/repository"
	"domus/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newAuthEnv(t *testing.T) (*echo.Echo, *AuthHandler) {
	t.Helper()
	db := newHandlerDB(t)
	repo := repository.NewCustomerRepository(db)
	svc := service.NewAuthService(repo, auth.NewJWTService("test-secret"))

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e, NewAuthHandler(svc)
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_DuplicateEmailKeyedByField(t *testing.T) {
	e, h := newAuthEnv(t)

	c, rec := postJSON(e, "/api/users/register",
		`{"login":"bob","email":"b@x.com","password":"secret1"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Token) // auto-login after registration

	// Same email, different login: the error body is keyed by the field.
	c, rec = postJSON(e, "/api/users/register",
		`{"login":"robert","email":"b@x.com","password":"secret1"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "email")
	assert.NotContains(t, body, "login")
}

func TestAuthHandler_Register_DuplicateLoginKeyedByField(t *testing.T) {
	e, h := newAuthEnv(t)

	c, rec := postJSON(e, "/api/users/register",
		`{"login":"bob","email":"b@x.com","password":"secret1"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = postJSON(e, "/api/users/register",
		`{"login":"bob","email":"other@x.com","password":"secret1"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "login")
}

func TestAuthHandler_Login_BadPassword(t *testing.T) {
	e, h := newAuthEnv(t)

	c, rec := postJSON(e, "/api/users/register",
		`{"login":"bob","email":"b@x.com","password":"secret1"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, _ = postJSON(e, "/api/users/login", `{"login":"bob","password":"wrong"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAuthHandler_AdminLogin_RegularUserForbidden(t *testing.T) {
	e, h := newAuthEnv(t)

	c, rec := postJSON(e, "/api/users/register",
		`{"login":"bob","email":"b@x.com","password":"secret1"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, _ = postJSON(e, "/api/customers/admin/login", `{"login":"bob","password":"secret1"}`)
	err := h.AdminLogin(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
