package handler

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"domus/internal/auth"
	apperrors "domus/internal/errors"
	"domus/internal/service"
)

// AuthHandler handles registration, login and account endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents an account registration request.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Login     string `json:"login" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request; login accepts login or email.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token    string      `json:"token"`
	Customer interface{} `json:"customer,omitempty"`
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, customer, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Login:     req.Login,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		// Duplicate identifiers come back keyed by the offending field so
		// the form can highlight it.
		switch {
		case errors.Is(err, apperrors.ErrLoginTaken):
			return c.JSON(http.StatusBadRequest, echo.Map{"login": err.Error()})
		case errors.Is(err, apperrors.ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, echo.Map{"email": err.Error()})
		}
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, echo.Map{ve.Field: ve.Message})
		}
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{Token: token, Customer: customer})
}

// Login godoc
// @Summary Login with a standard account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, customer, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, Customer: customer})
}

// AdminLogin godoc
// @Summary Login with an administrator account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /customers/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, customer, err := h.authService.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		return toHTTPError(err)
	}
	if !customer.IsAdmin {
		return toHTTPError(apperrors.ErrForbidden)
	}
	return c.JSON(http.StatusOK, AuthResponse{Token: token, Customer: customer})
}

// Me godoc
// @Summary Fetch the caller's account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Customer
// @Failure 401 {object} errors.ErrorResponse
// @Router /customers/customer [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	customer, err := h.authService.GetCustomer(c.Request().Context(), claims.CustomerID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, customer)
}

// currentClaims extracts verified session claims set by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	return claims, nil
}

// toHTTPError translates domain errors via the shared mapping.
func toHTTPError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
