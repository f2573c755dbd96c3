package handlers

import (
	"context"

	"gamevault/internal/catalog/app"
	"gamevault/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler browse, dashboard and library endpoints
type CatalogHandler struct {
	Catalog app.CatalogUseCase
}

// NewCatalogHandler create CatalogHandler
func NewCatalogHandler(catalog app.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// Dashboard filtered catalog split into trending and regular games
// @Summary Dashboard
// @Tags Games
// @Produce json
// @Param query query string false "name contains"
// @Param genre query string false "genre, All for every genre"
// @Success 200 {object} domain.Dashboard
// @Router /games/dashboard [get]
func (h *CatalogHandler) Dashboard(c *fiber.Ctx) error {
	d, err := h.Catalog.Dashboard(c.UserContext(), c.Query("query"), c.Query("genre"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(d)
}

// ListGames browse page
// @Summary Browse games
// @Tags Games
// @Produce json
// @Param query query string false "name contains"
// @Param genre query string false "genre, All for every genre"
// @Success 200 {array} domain.Game
// @Router /games [get]
func (h *CatalogHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.Catalog.ListGames(c.UserContext(), c.Query("query"), c.Query("genre"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(games)
}

// Genres genre filter options
// @Summary Genres
// @Tags Games
// @Produce json
// @Success 200 {array} string
// @Router /games/genres [get]
func (h *CatalogHandler) Genres(c *fiber.Ctx) error {
	return c.JSON(h.Catalog.Genres())
}

// GetGame game page
// @Summary Game
// @Tags Games
// @Produce json
// @Param id path string true "game id"
// @Success 200 {object} domain.Game
// @Failure 404 {object} string "game not found"
// @Router /games/{id} [get]
func (h *CatalogHandler) GetGame(c *fiber.Ctx) error {
	g, err := h.Catalog.GetGame(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(g)
}

// Library own library
// @Summary Library
// @Tags Library
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, recent, favorites or installed"
// @Success 200 {array} domain.LibraryEntry
// @Router /library [get]
func (h *CatalogHandler) Library(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	entries, err := h.Catalog.Library(c.UserContext(), memberID, c.Query("filter"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(entries)
}

// AddToLibrary add a game
// @Summary Add to library
// @Tags Library
// @Produce json
// @Security BearerAuth
// @Param id path string true "game id"
// @Success 200 {object} string "added"
// @Failure 404 {object} string "game not found"
// @Router /library/{id} [post]
func (h *CatalogHandler) AddToLibrary(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	created, err := h.Catalog.AddToLibrary(c.UserContext(), memberID, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"created": created})
}

// RemoveFromLibrary remove a game
// @Summary Remove from library
// @Tags Library
// @Security BearerAuth
// @Param id path string true "game id"
// @Success 204
// @Failure 404 {object} string "game is not in library"
// @Router /library/{id} [delete]
func (h *CatalogHandler) RemoveFromLibrary(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.Catalog.RemoveFromLibrary(c.UserContext(), memberID, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type flagRequest struct {
	Value *bool `json:"value"`
}

// SetFavorite mark or unmark a favorite
// @Summary Favorite flag
// @Tags Library
// @Accept json
// @Security BearerAuth
// @Param id path string true "game id"
// @Param request body object true "{\"value\": true}"
// @Success 204
// @Router /library/{id}/favorite [put]
func (h *CatalogHandler) SetFavorite(c *fiber.Ctx) error {
	return h.setFlag(c, h.Catalog.SetFavorite)
}

// SetInstalled mark or unmark installed
// @Summary Installed flag
// @Tags Library
// @Accept json
// @Security BearerAuth
// @Param id path string true "game id"
// @Param request body object true "{\"value\": true}"
// @Success 204
// @Router /library/{id}/installed [put]
func (h *CatalogHandler) SetInstalled(c *fiber.Ctx) error {
	return h.setFlag(c, h.Catalog.SetInstalled)
}

func (h *CatalogHandler) setFlag(c *fiber.Ctx, set func(ctx context.Context, memberID, gameID string, v bool) error) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	var req flagRequest
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return invalidRequest(c)
	}
	if err := set(c.UserContext(), memberID, c.Params("id"), *req.Value); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordPlay stamp last played
// @Summary Record a play session
// @Tags Library
// @Produce json
// @Security BearerAuth
// @Param id path string true "game id"
// @Success 200 {object} string "lastPlayed"
// @Router /library/{id}/play [post]
func (h *CatalogHandler) RecordPlay(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	at, err := h.Catalog.RecordPlay(c.UserContext(), memberID, c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"lastPlayed": at})
}
