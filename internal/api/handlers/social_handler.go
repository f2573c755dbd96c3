package handlers

import (
	"gamevault/internal/social/app"
	"gamevault/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
)

// SocialHandler friends endpoints
type SocialHandler struct {
	Social app.SocialUseCase
}

// NewSocialHandler create SocialHandler
func NewSocialHandler(social app.SocialUseCase) *SocialHandler {
	return &SocialHandler{Social: social}
}

// ListFriends friends page
// @Summary Friends
// @Description Invisible friends are reported as Offline
// @Tags Friends
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all or online"
// @Param search query string false "username contains"
// @Success 200 {array} domain.Friend
// @Router /friends [get]
func (h *SocialHandler) ListFriends(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	friends, err := h.Social.ListFriends(c.UserContext(), memberID, c.Query("filter"), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(friends)
}

// ListRequests pending requests addressed to me
// @Summary Friend requests
// @Tags Friends
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.IncomingRequest
// @Router /friends/requests [get]
func (h *SocialHandler) ListRequests(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	reqs, err := h.Social.ListRequests(c.UserContext(), memberID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(reqs)
}

// SendRequest send a friend request
// @Summary Send friend request
// @Description A pending request in the other direction is accepted instead
// @Tags Friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "{\"member_id\": \"...\"}"
// @Success 201 {object} domain.FriendRequest
// @Success 200 {object} domain.FriendRequest "crossed request accepted"
// @Failure 409 {object} string "already friends or already sent"
// @Router /friends/requests [post]
func (h *SocialHandler) SendRequest(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	var body struct {
		MemberID string `json:"member_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return invalidRequest(c)
	}

	req, accepted, err := h.Social.SendRequest(c.UserContext(), memberID, body.MemberID)
	if err != nil {
		return fail(c, err)
	}
	if accepted {
		return c.JSON(fiber.Map{"request": req, "accepted": true})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": req, "accepted": false})
}

// AcceptRequest accept a request addressed to me
// @Summary Accept friend request
// @Tags Friends
// @Security BearerAuth
// @Param id path string true "request id"
// @Success 204
// @Failure 403 {object} string "not the addressee"
// @Router /friends/requests/{id}/accept [post]
func (h *SocialHandler) AcceptRequest(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.Social.AcceptRequest(c.UserContext(), memberID, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeclineRequest decline a request addressed to me
// @Summary Decline friend request
// @Tags Friends
// @Security BearerAuth
// @Param id path string true "request id"
// @Success 204
// @Failure 403 {object} string "not the addressee"
// @Router /friends/requests/{id}/decline [post]
func (h *SocialHandler) DeclineRequest(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.Social.DeclineRequest(c.UserContext(), memberID, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveFriend unfriend, both sides
// @Summary Remove friend
// @Tags Friends
// @Security BearerAuth
// @Param id path string true "friend member id"
// @Success 204
// @Failure 404 {object} string "not friends"
// @Router /friends/{id} [delete]
func (h *SocialHandler) RemoveFriend(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.Social.RemoveFriend(c.UserContext(), memberID, c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
