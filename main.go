package main

import (
	"gamevault/internal/api/handlers"
	"gamevault/internal/api/router"

	"github.com/gofiber/fiber/v2"
)

// The services run from cmd/. This entry only exists for swag:
// swag init -g main.go -o cmd/api_gateway/docs
func main() {
	app := fiber.New()

	router.RegisterRoutes(app, nil,
		&handlers.MemberHandler{},
		&handlers.CatalogHandler{},
		&handlers.SocialHandler{},
		&handlers.MediaHandler{},
	)
}
