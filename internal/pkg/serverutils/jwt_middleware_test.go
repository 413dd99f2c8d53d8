package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJwtMiddleware(t *testing.T) {
	const secret = "test-secret"

	app := fiber.New()
	app.Post("/write", JwtMiddleware(secret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})

	call := func(header string) int {
		req := httptest.NewRequest("POST", "/write", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	valid := signed(t, secret, jwt.MapClaims{"sub": "coach-1", "exp": time.Now().Add(time.Hour).Unix()})
	expired := signed(t, secret, jwt.MapClaims{"sub": "coach-1", "exp": time.Now().Add(-time.Hour).Unix()})
	wrongKey := signed(t, "other", jwt.MapClaims{"sub": "coach-1"})

	assert.Equal(t, 200, call("Bearer "+valid))
	assert.Equal(t, 401, call(""))
	assert.Equal(t, 401, call("Token "+valid))
	assert.Equal(t, 401, call("Bearer "+expired))
	assert.Equal(t, 401, call("Bearer "+wrongKey))
}

func TestJwtMiddlewareRejectsWhenSecretUnset(t *testing.T) {
	app := fiber.New()
	app.Post("/write", JwtMiddleware(""), func(c *fiber.Ctx) error { return nil })

	req := httptest.NewRequest("POST", "/write", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t, "some-secret", jwt.MapClaims{"sub": "x"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
