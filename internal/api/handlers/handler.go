package handlers

import (
	"errors"
	"fmt"
	"strconv"

	catalogdomain "gamevault/internal/catalog/domain"
	mediadomain "gamevault/internal/media/domain"
	memberdomain "gamevault/internal/member/domain"
	socialdomain "gamevault/internal/social/domain"
	"gamevault/pkg/logger"
	"gamevault/pkg/middlewares"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConnectCheck check api connect start
// @Summary Check API Gateway status
// @Description Returns a simple confirmation message
// @Tags Shared
// @Success 200 {string} string "api gateway start!"
// @Router / [get]
func ConnectCheck(c *fiber.Ctx) error {
	return c.SendString("api gateway start!")
}

// DebugLogFlag toggle debug log flag
// @Summary Toggle Debug Log Flag
// @Description Enable or disable debug logging for a service
// @Tags Shared
// @Param service query string true "Service name"
// @Param status query bool true "Debug status"
// @Success 200 {string} string "Service debug mode updated"
// @Failure 400 {string} string "Invalid status value"
// @Router /debug [post]
func DebugLogFlag(c *fiber.Ctx) error {
	service := c.Query("service")
	statusStr := c.Query("status")
	logger.Log.Info("debug", zap.String("status", statusStr))
	status, err := strconv.ParseBool(statusStr)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	switch service {
	default:
		logger.Log.SetDebugMode(status)
	}
	return c.SendString(fmt.Sprintf("service[%s]: debug mode is : %t", service, status))
}

var (
	notFoundErrors = []error{
		catalogdomain.ErrGameNotFound,
		catalogdomain.ErrNotInLibrary,
		socialdomain.ErrRequestNotFound,
		socialdomain.ErrNotFriends,
		socialdomain.ErrMemberNotFound,
		memberdomain.ErrMemberNotFound,
	}
	conflictErrors = []error{
		socialdomain.ErrAlreadyFriends,
		socialdomain.ErrRequestExists,
		socialdomain.ErrRequestHandled,
		memberdomain.ErrEmailExists,
	}
	forbiddenErrors = []error{
		socialdomain.ErrNotAddressee,
		memberdomain.ErrAccountDisabled,
	}
	tooLargeErrors = []error{
		mediadomain.ErrTooLarge,
	}
	badRequestErrors = []error{
		catalogdomain.ErrInvalidGameID,
		socialdomain.ErrSelfRequest,
		mediadomain.ErrNotImage,
		mediadomain.ErrEmptyUpload,
	}
)

func matches(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// errorStatus http status for a usecase error, unknown errors are 500
func errorStatus(err error) int {
	switch {
	case matches(err, notFoundErrors):
		return fiber.StatusNotFound
	case matches(err, conflictErrors):
		return fiber.StatusConflict
	case matches(err, forbiddenErrors):
		return fiber.StatusForbidden
	case matches(err, tooLargeErrors):
		return fiber.StatusRequestEntityTooLarge
	case matches(err, badRequestErrors):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// errorMessageStatus status for a failure that came back from the member service as a message
func errorMessageStatus(msg string, fallback int) int {
	for _, group := range []struct {
		errs   []error
		status int
	}{
		{notFoundErrors, fiber.StatusNotFound},
		{conflictErrors, fiber.StatusConflict},
		{forbiddenErrors, fiber.StatusForbidden},
	} {
		for _, e := range group.errs {
			if e.Error() == msg {
				return group.status
			}
		}
	}
	return fallback
}

func fail(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func invalidRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": fmt.Sprintf("c.Locals(%s) is empty", middlewares.TokenMemberID)})
}
