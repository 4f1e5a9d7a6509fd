package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"domus/internal/auth"
	"domus/internal/config"
	apperrors "domus/internal/errors"
	"domus/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	loginLimiter *auth.LoginLimiter,
	authHandler *handler.AuthHandler,
	houseHandler *handler.HouseHandler,
	wishlistHandler *handler.WishlistHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded images are served from disk so stored paths resolve.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.GET("/houses", houseHandler.List)
	api.GET("/houses/:id", houseHandler.Get)
	api.POST("/users/register", authHandler.Register)
	api.POST("/users/login", authHandler.Login)
	api.POST("/customers/admin/login", authHandler.AdminLogin, loginThrottle(loginLimiter))

	jwtConfig := echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}

	// Secured routes (require a bearer token)
	secured := api.Group("", echojwt.WithConfig(jwtConfig))

	secured.GET("/customers/customer", authHandler.Me)

	secured.GET("/house-wishlist", wishlistHandler.Get)
	secured.POST("/house-wishlist/:houseId", wishlistHandler.Add)
	secured.DELETE("/house-wishlist/:houseId", wishlistHandler.Remove)
	secured.DELETE("/house-wishlist", wishlistHandler.Clear)
	secured.GET("/house-wishlist/check/:houseId", wishlistHandler.Check)

	// Admin routes: listing writes and uploads are role-gated.
	admin := api.Group("", echojwt.WithConfig(jwtConfig), adminOnly)

	admin.POST("/houses", houseHandler.Create)
	admin.PUT("/houses/:id", houseHandler.Update)
	admin.DELETE("/houses/:id", houseHandler.Delete)
	admin.POST("/upload/image", uploadHandler.UploadImage)
	admin.POST("/upload/images", uploadHandler.UploadImages)
}

// adminOnly rejects verified tokens whose role claim is not administrator.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "UNAUTHORIZED",
			})
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "admin access required",
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}

// loginThrottle bounds attempts per source address to blunt credential
// guessing on the admin login.
func loginThrottle(limiter *auth.LoginLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.Request().Context(), c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
					Error: "too many login attempts, try again later",
					Code:  "RATE_LIMITED",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
