package auth

import (
	"strings"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"

	"github.com/gofiber/fiber/v2"
)

// sessionLookup and userLookup resolve the token's session and account
// against storage; package variables so tests can stub them.
var (
	sessionLookup = func(sessionID string) (*models.Session, error) {
		return database.GetSessionByID(config.GetDB(), sessionID)
	}
	userLookup = func(userID string) (*models.User, error) {
		return database.GetUserByID(config.GetDB(), userID)
	}
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if claims, err := ValidateJWT(tokenString); err == nil {
			if _, err := sessionLookup(claims.SessionID); err == nil {
				return c.Redirect("/")
			}
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login",
	}, "")
}

// AuthMiddleware validates the JWT cookie and sets the user context. It
// guards the management surfaces; read-only pages stay open.
//
// A valid signature alone is not enough: the session the token names must
// still exist in storage. Logout and the nightly purge revoke access by
// deleting the row, so a replayed token fails here even before its expiry.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if cookie := c.Cookies("jwt_token"); cookie != "" {
		tokenString = cookie
	} else if header := c.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}

	if tokenString == "" {
		return unauthorized(c)
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return unauthorized(c)
	}

	session, err := sessionLookup(claims.SessionID)
	if err != nil {
		return unauthorized(c)
	}

	// Refresh the user from storage so deactivated accounts lose access
	// immediately rather than at token expiry.
	user, err := userLookup(session.UserID)
	if err != nil {
		return unauthorized(c)
	}

	c.Locals("user_id", user.ID)
	c.Locals("session_id", session.ID)
	c.Locals("user", user)

	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Authentication required"})
	}
	return c.Redirect("/auth/login")
}
