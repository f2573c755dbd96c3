package handlers

import (
	"context"
	"strings"
	"time"

	"gamevault/pkg/logger"
	"gamevault/pkg/middlewares"
	memberpb "gamevault/pkg/proto/member"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	memberCallTimeout = 5 * time.Second
	searchLimit       = 20
)

// MemberHandler auth and profile endpoints, backed by the member service
type MemberHandler struct {
	MemberClient memberpb.MemberServiceClient
}

// NewMemberHandler create MemberHandler
func NewMemberHandler(memberClient memberpb.MemberServiceClient) *MemberHandler {
	return &MemberHandler{
		MemberClient: memberClient,
	}
}

func memberCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), memberCallTimeout)
}

// SignupRequest signup body
type SignupRequest struct {
	Email           string `json:"email"`
	ConfirmEmail    string `json:"confirm_email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Username        string `json:"username"`
}

// Signup create account
// @Summary Sign up
// @Description Creates an account and returns a session token. email and confirm_email must match, so must password and confirm_password.
// @Tags Members
// @Accept json
// @Produce json
// @Param request body SignupRequest true "signup"
// @Success 200 {object} memberpb.SignupRes
// @Failure 400 {object} string "invalid request"
// @Failure 409 {object} string "email already exists"
// @Router /member/signup [post]
func (h *MemberHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidRequest(c)
	}
	if !strings.EqualFold(strings.TrimSpace(req.Email), strings.TrimSpace(req.ConfirmEmail)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "emails do not match"})
	}
	if req.Password != req.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "passwords do not match"})
	}

	logger.Log.Debug("Signup request", zap.String("email", req.Email), zap.String("username", req.Username))

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.Signup(ctx, &memberpb.SignupReq{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		logger.Log.Error("MemberClient.Signup", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	if !resp.Success {
		return c.Status(errorMessageStatus(resp.Message, fiber.StatusBadRequest)).JSON(fiber.Map{"error": resp.Message})
	}

	setTokenCookie(c, resp.Token)
	return c.JSON(resp)
}

// LoginRequest login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login log in with email and password
// @Summary Log in
// @Description Returns a session token, also set as the auth_token cookie
// @Tags Members
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} memberpb.LoginRes
// @Failure 400 {object} string "invalid request"
// @Failure 401 {object} string "login failed"
// @Router /member/login [post]
func (h *MemberHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidRequest(c)
	}

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.Login(ctx, &memberpb.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		logger.Log.Error("MemberClient.Login", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	if !resp.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": resp.GetMessage()})
	}

	setTokenCookie(c, resp.GetToken())
	return c.JSON(resp)
}

// Logout end the session
// @Summary Log out
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} string "logout success"
// @Failure 401 {object} string "unauthorized"
// @Router /member/logout [post]
func (h *MemberHandler) Logout(c *fiber.Ctx) error {
	tk, ok := c.Locals(middlewares.TokenRaw).(string)
	if !ok {
		return unauthorized(c)
	}

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.Logout(ctx, &memberpb.LogoutReq{Token: tk})
	if err != nil || !resp.Success {
		logger.Log.Error("MemberClient.Logout", zap.String("message", resp.GetMessage()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "logout failed"})
	}

	c.ClearCookie(middlewares.CookieToken)
	return c.JSON(fiber.Map{"message": "logout success"})
}

// SessionGuard rejects tokens whose session was logged out or timed out, and extends live ones
func (h *MemberHandler) SessionGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tk, ok := c.Locals(middlewares.TokenRaw).(string)
		if !ok {
			return unauthorized(c)
		}

		ctx, cancel := memberCtx(c)
		defer cancel()
		resp, err := h.MemberClient.CheckSessionTimeout(ctx, &memberpb.CheckSessionTimeoutReq{Token: tk})
		if err != nil {
			logger.Log.Error("MemberClient.CheckSessionTimeout", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
		}
		if !resp.Success || resp.Expire {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "session expired"})
		}

		if res, err := h.MemberClient.ReconnectSession(ctx, &memberpb.ReconnectSessionReq{Token: tk}); err != nil || !res.Success {
			logger.Log.Warn("extend session failed", zap.String("message", res.GetMessage()), zap.Error(err))
		}
		return c.Next()
	}
}

// GetMe own profile, email included
// @Summary Own profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} memberpb.MemberProfile
// @Router /profile [get]
func (h *MemberHandler) GetMe(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	return h.profile(c, memberID, memberID)
}

// GetProfile someone's public profile
// @Summary Member profile
// @Description Email is only present when the member chose to show it
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "member id"
// @Success 200 {object} memberpb.MemberProfile
// @Failure 404 {object} string "user not found"
// @Router /members/{id} [get]
func (h *MemberHandler) GetProfile(c *fiber.Ctx) error {
	viewerID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	return h.profile(c, c.Params("id"), viewerID)
}

func (h *MemberHandler) profile(c *fiber.Ctx, memberID, viewerID string) error {
	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.GetProfile(ctx, &memberpb.GetProfileReq{MemberId: memberID, ViewerId: viewerID})
	if err != nil {
		logger.Log.Error("MemberClient.GetProfile", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	if !resp.Success {
		return c.Status(errorMessageStatus(resp.Message, fiber.StatusBadRequest)).JSON(fiber.Map{"error": resp.Message})
	}
	return c.JSON(resp.Profile)
}

// UpdateProfileRequest editable profile fields
type UpdateProfileRequest struct {
	Username        string `json:"username"`
	Bio             string `json:"bio"`
	ShowEmail       bool   `json:"show_email"`
	ProfileImageURL string `json:"profile_image_url"`
}

// UpdateProfile replace editable fields in one update
// @Summary Update own profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "profile"
// @Success 200 {object} memberpb.MemberProfile
// @Failure 400 {object} string "invalid profile"
// @Router /profile [put]
func (h *MemberHandler) UpdateProfile(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidRequest(c)
	}

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.UpdateProfile(ctx, &memberpb.UpdateProfileReq{
		MemberId:        memberID,
		Username:        req.Username,
		Bio:             req.Bio,
		ShowEmail:       req.ShowEmail,
		ProfileImageUrl: req.ProfileImageURL,
	})
	if err != nil {
		logger.Log.Error("MemberClient.UpdateProfile", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	if !resp.Success {
		return c.Status(errorMessageStatus(resp.Message, fiber.StatusBadRequest)).JSON(fiber.Map{"error": resp.Message})
	}
	return c.JSON(resp.Profile)
}

// UpdateStatus set Online, Away, Busy or Invisible
// @Summary Update own status
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "{\"status\": \"Away\"}"
// @Success 200 {object} string "status updated"
// @Failure 400 {object} string "invalid status"
// @Router /profile/status [put]
func (h *MemberHandler) UpdateStatus(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return invalidRequest(c)
	}

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.UpdateStatus(ctx, &memberpb.UpdateStatusReq{MemberId: memberID, Status: req.Status})
	if err != nil {
		logger.Log.Error("MemberClient.UpdateStatus", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	if !resp.Success {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": resp.GetMessage()})
	}
	return c.JSON(fiber.Map{"message": "status updated", "status": req.Status})
}

// SearchMembers username prefix search for the add friend dialog
// @Summary Search members
// @Tags Members
// @Produce json
// @Security BearerAuth
// @Param q query string true "username prefix"
// @Success 200 {array} memberpb.MemberProfile
// @Router /members [get]
func (h *MemberHandler) SearchMembers(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "q is required"})
	}

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.SearchMembers(ctx, &memberpb.SearchMembersReq{Query: q, Limit: searchLimit})
	if err != nil || !resp.Success {
		logger.Log.Error("MemberClient.SearchMembers", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "member service unavailable"})
	}
	members := resp.GetMembers()
	if members == nil {
		members = []*memberpb.MemberProfile{}
	}
	return c.JSON(members)
}

func setTokenCookie(c *fiber.Ctx, tk string) {
	if tk == "" {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.CookieToken,
		Value:    tk,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
