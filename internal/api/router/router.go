package router

import (
	"gamevault/internal/api/handlers"
	"gamevault/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes gateway routes
// @title GameVault API
// @version 1.0
// @description REST API of the GameVault gateway. Chat runs over the chat service websocket.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func RegisterRoutes(app *fiber.App, limiter *middlewares.RateLimiter,
	memberHandler *handlers.MemberHandler,
	catalogHandler *handlers.CatalogHandler,
	socialHandler *handlers.SocialHandler,
	mediaHandler *handlers.MediaHandler,
) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	if limiter != nil {
		app.Use(middlewares.RateLimitMiddleware(limiter))
	}

	memberRoutes := app.Group("/member")
	memberRoutes.Post("/signup", memberHandler.Signup)
	memberRoutes.Post("/login", memberHandler.Login)

	gameRoutes := app.Group("/games")
	gameRoutes.Get("", catalogHandler.ListGames)
	gameRoutes.Get("/dashboard", catalogHandler.Dashboard)
	gameRoutes.Get("/genres", catalogHandler.Genres)
	gameRoutes.Get("/:id", catalogHandler.GetGame)

	// <img> tags cannot send a bearer token, registered ahead of the authenticated /members group
	app.Get("/members/:id/avatar", mediaHandler.GetAvatar)

	auth := []fiber.Handler{middlewares.JWTMiddleware(), memberHandler.SessionGuard()}

	memberRoutes.Post("/logout", append(auth, memberHandler.Logout)...)

	profileRoutes := app.Group("/profile", auth...)
	profileRoutes.Get("", memberHandler.GetMe)
	profileRoutes.Put("", memberHandler.UpdateProfile)
	profileRoutes.Put("/status", memberHandler.UpdateStatus)
	profileRoutes.Post("/avatar", mediaHandler.UploadAvatar)

	membersRoutes := app.Group("/members", auth...)
	membersRoutes.Get("", memberHandler.SearchMembers)
	membersRoutes.Get("/:id", memberHandler.GetProfile)

	libraryRoutes := app.Group("/library", auth...)
	libraryRoutes.Get("", catalogHandler.Library)
	libraryRoutes.Post("/:id", catalogHandler.AddToLibrary)
	libraryRoutes.Delete("/:id", catalogHandler.RemoveFromLibrary)
	libraryRoutes.Put("/:id/favorite", catalogHandler.SetFavorite)
	libraryRoutes.Put("/:id/installed", catalogHandler.SetInstalled)
	libraryRoutes.Post("/:id/play", catalogHandler.RecordPlay)

	friendRoutes := app.Group("/friends", auth...)
	friendRoutes.Get("", socialHandler.ListFriends)
	friendRoutes.Get("/requests", socialHandler.ListRequests)
	friendRoutes.Post("/requests", socialHandler.SendRequest)
	friendRoutes.Post("/requests/:id/accept", socialHandler.AcceptRequest)
	friendRoutes.Post("/requests/:id/decline", socialHandler.DeclineRequest)
	friendRoutes.Delete("/:id", socialHandler.RemoveFriend)
}
