package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/handler"
	"github.com/rosabel/glambook/internal/middleware"
)

// RegisterRoutes registers routes that need no authentication or
// handler dependencies.  Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers account endpoints.  Token issuance lives
// under /v1/auth; the session endpoints under /v1 require a valid
// access token regardless of role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, up *handler.UploadHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)
	g.POST("/forgot-password", a.ForgotPassword)
	g.POST("/reset-password", a.ResetPassword)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("ARTIST", "CUSTOMER"),
	)
	auth.GET("/me", a.Me)
	auth.PUT("/me", a.UpdateMe)
	auth.POST("/logout", a.Logout)
	auth.POST("/uploads", up.Upload)
}
