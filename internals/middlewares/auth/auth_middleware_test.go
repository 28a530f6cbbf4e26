package auth

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Permintaan tanpa token (atau dengan header rusak) harus ditolak sebelum
// query apa pun, dengan body literal lama.
func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Post("/guarded", AuthMiddleware(nil), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	cases := []struct {
		name   string
		header string
	}{
		{"tanpa header", ""},
		{"skema salah", "Token abc"},
		{"bearer kosong", "Bearer"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/guarded", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.name, err)
		}
		if resp.StatusCode != fiber.StatusForbidden {
			t.Fatalf("%s: status = %d, want 403", tc.name, resp.StatusCode)
		}

		body, _ := io.ReadAll(resp.Body)
		if strings.TrimSpace(string(body)) != `"messages : Not Authorized"` {
			t.Fatalf("%s: body = %q", tc.name, body)
		}
	}
}
