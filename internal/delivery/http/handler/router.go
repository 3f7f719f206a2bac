package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/soumya9832/notes-backend/internal/delivery/http/middleware"
	"github.com/soumya9832/notes-backend/internal/infrastructure"
)

// RegisterRoutes wires every endpoint. All /api/notes routes sit behind
// the JWT guard except the public share lookup, which is registered
// outside the group and only rate limited.
func RegisterRoutes(
	e *echo.Echo,
	authHandler *AuthHandler,
	noteHandler *NoteHandler,
	shareHandler *ShareHandler,
	jwtService *infrastructure.JWTService,
	shareRatePerSecond float64,
	shareRateBurst int,
) {
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	e.GET("/api/notes/share/:token", shareHandler.Resolve,
		middleware.RateLimit(shareRatePerSecond, shareRateBurst))

	notes := e.Group("/api/notes", middleware.JWTAuth(jwtService))
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)
	notes.POST("/:id/share", noteHandler.Share)
	notes.POST("/:id/unshare", noteHandler.Unshare)
}
