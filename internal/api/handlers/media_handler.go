package handlers

import (
	"gamevault/internal/media/app"
	"gamevault/pkg/logger"
	"gamevault/pkg/middlewares"
	memberpb "gamevault/pkg/proto/member"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MediaHandler avatar upload and retrieval
type MediaHandler struct {
	Avatars      app.AvatarUseCase
	MemberClient memberpb.MemberServiceClient
}

// NewMediaHandler create MediaHandler
func NewMediaHandler(avatars app.AvatarUseCase, memberClient memberpb.MemberServiceClient) *MediaHandler {
	return &MediaHandler{
		Avatars:      avatars,
		MemberClient: memberClient,
	}
}

// UploadAvatar store a profile image and point the profile at it
// @Summary Upload avatar
// @Description jpeg, png or gif up to 5 MiB, stored center cropped to 512x512
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "image"
// @Success 200 {object} string "profile_image_url"
// @Failure 400 {object} string "not an image"
// @Failure 413 {object} string "too large"
// @Router /profile/avatar [post]
func (h *MediaHandler) UploadAvatar(c *fiber.Ctx) error {
	memberID, ok := middlewares.MemberID(c)
	if !ok {
		return unauthorized(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Log.Error("Open file failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer file.Close()

	url, err := h.Avatars.UploadAvatar(c.UserContext(), memberID, file)
	if err != nil {
		return fail(c, err)
	}

	ctx, cancel := memberCtx(c)
	defer cancel()
	resp, err := h.MemberClient.UpdateProfileImage(ctx, &memberpb.UpdateProfileImageReq{MemberId: memberID, ProfileImageUrl: url})
	if err != nil || !resp.Success {
		logger.Log.Error("MemberClient.UpdateProfileImage", zap.String("message", resp.GetMessage()), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "avatar stored but profile update failed"})
	}
	return c.JSON(fiber.Map{"profile_image_url": url})
}

// GetAvatar redirect to a freshly signed url of the member's avatar
// @Summary Avatar image
// @Description stable avatar url stored on profiles, answers with a redirect to short lived object storage url
// @Tags Profile
// @Param id path string true "member id"
// @Success 302 {string} string "Location header"
// @Failure 502 {object} string "object storage unavailable"
// @Router /members/{id}/avatar [get]
func (h *MediaHandler) GetAvatar(c *fiber.Ctx) error {
	memberID := c.Params("id")
	if memberID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing member id"})
	}

	url, err := h.Avatars.AvatarURL(c.UserContext(), memberID)
	if err != nil {
		logger.Log.Error("presign avatar", zap.String("member", memberID), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "avatar unavailable"})
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Redirect(url, fiber.StatusFound)
}
