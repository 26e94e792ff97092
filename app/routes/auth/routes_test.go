package auth

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"student-management/app/config"
	"student-management/app/models"

	"github.com/gofiber/fiber/v2"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/private", AuthMiddleware, func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		return c.SendString(user.Email)
	})
	app.Get("/private-page", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("page")
	})
	return app
}

func stubLookups(t *testing.T, session func(string) (*models.Session, error), user func(string) (*models.User, error)) {
	t.Helper()
	origSession, origUser := sessionLookup, userLookup
	t.Cleanup(func() { sessionLookup, userLookup = origSession, origUser })
	if session != nil {
		sessionLookup = session
	}
	if user != nil {
		userLookup = user
	}
}

func authRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "jwt_token", Value: token})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWT("user-1", "session-1", "admin@example.com", "Admin", "User")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	liveSession := func(sessionID string) (*models.Session, error) {
		if sessionID != "session-1" {
			return nil, sql.ErrNoRows
		}
		return &models.Session{
			ID:        sessionID,
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil
	}
	activeUser := func(userID string) (*models.User, error) {
		return &models.User{ID: userID, Email: "current@example.com", IsActive: true}, nil
	}

	t.Run("no token", func(t *testing.T) {
		app := newAuthTestApp()

		if resp := authRequest(t, app, "/api/private", ""); resp.StatusCode != 401 {
			t.Errorf("api status = %d, want 401", resp.StatusCode)
		}
		resp := authRequest(t, app, "/private-page", "")
		if resp.StatusCode != 302 {
			t.Errorf("page status = %d, want 302", resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/auth/login" {
			t.Errorf("redirect location = %q, want /auth/login", loc)
		}
	})

	t.Run("revoked session rejects valid token", func(t *testing.T) {
		stubLookups(t, func(string) (*models.Session, error) {
			return nil, sql.ErrNoRows
		}, activeUser)

		app := newAuthTestApp()
		if resp := authRequest(t, app, "/api/private", token); resp.StatusCode != 401 {
			t.Errorf("status = %d, want 401 after session deletion", resp.StatusCode)
		}
	})

	t.Run("live session passes and refreshes the user", func(t *testing.T) {
		stubLookups(t, liveSession, activeUser)

		app := newAuthTestApp()
		resp := authRequest(t, app, "/api/private", token)
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		// The handler sees the stored account, not the token claims.
		if string(body) != "current@example.com" {
			t.Errorf("user email = %q, want the stored one", body)
		}
	})

	t.Run("deactivated account rejected", func(t *testing.T) {
		stubLookups(t, liveSession, func(string) (*models.User, error) {
			return nil, sql.ErrNoRows
		})

		app := newAuthTestApp()
		if resp := authRequest(t, app, "/api/private", token); resp.StatusCode != 401 {
			t.Errorf("status = %d, want 401 for deactivated account", resp.StatusCode)
		}
	})
}
