package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taralog/internal/auth"
	"taralog/internal/config"
	apperrors "taralog/internal/errors"
	"taralog/internal/handler"
	"taralog/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	readingHandler *handler.ReadingHandler,
	promptHandler *handler.PromptHandler,
	adminHandler *handler.AdminHandler,
	emailHandler *handler.EmailHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Profile routes
	secured.GET("/users/me", userHandler.GetProfile)
	secured.PUT("/users/me", userHandler.UpdateProfile)

	// Reading routes
	secured.POST("/readings/taro", readingHandler.CreateTaro)
	secured.POST("/readings/love", readingHandler.CreateLove)
	secured.POST("/readings/money", readingHandler.CreateMoney)
	secured.POST("/readings/work", readingHandler.CreateWork)
	secured.POST("/readings/general", readingHandler.CreateGeneral)
	secured.GET("/readings", readingHandler.ListMine)
	secured.GET("/readings/:id", readingHandler.Get)
	secured.PUT("/readings/:id", readingHandler.Update)
	secured.DELETE("/readings/:id", readingHandler.Delete)

	// Admin-only routes
	admin := secured.Group("", RequireAdmin)

	admin.POST("/prompts", promptHandler.Create)
	admin.GET("/prompts", promptHandler.List)
	admin.GET("/prompts/:id", promptHandler.Get)
	admin.PUT("/prompts/:id", promptHandler.Update)
	admin.DELETE("/prompts/:id", promptHandler.Delete)

	admin.GET("/admin/users", adminHandler.ListUsers)
	admin.GET("/admin/readings", adminHandler.ListReadings)
	admin.DELETE("/admin/readings/:id", adminHandler.DeleteReading)
	admin.GET("/admin/stats", adminHandler.Stats)

	admin.POST("/email/test", emailHandler.SendTest)
}

// RequireAdmin rejects requests whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(*auth.Claims)
		if !ok || claims.Role != model.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: apperrors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
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
