package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	t_token "gamevault/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		id, _ := MemberID(c)
		return c.SendString(id)
	})
	app.Get("/", chain...)
	return app
}

func TestJWTMiddleware(t *testing.T) {
	tk, err := t_token.GenerateJWT("member-1", string(t_token.RoleMember), "test")
	require.NoError(t, err)
	app := newTestApp(JWTMiddleware())

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("query token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?auth="+tk, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tk)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieToken, Value: tk})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?auth=broken", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRateLimiter(t *testing.T) {
	r := NewRateLimiter(0.001, 2, time.Minute)

	assert.True(t, r.Allow("a"))
	assert.True(t, r.Allow("a"))
	assert.False(t, r.Allow("a"))
	assert.True(t, r.Allow("b"), "keys are independent")
	assert.Equal(t, 2, r.Len())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	r := NewRateLimiter(1, 1, time.Millisecond)
	r.Allow("a")
	time.Sleep(5 * time.Millisecond)
	r.Cleanup()
	assert.Equal(t, 0, r.Len())
}

func TestRateLimitMiddleware(t *testing.T) {
	app := newTestApp(RateLimitMiddleware(NewRateLimiter(0.001, 1, time.Minute)))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}
