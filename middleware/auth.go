package middleware

import (
	"errors"
	"net/http"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/services"
	"github.com/recuerdo-labs/escape_api/shared"
)

type AuthMiddleware struct {
	context.DefaultService

	dbSvc  *services.DatabaseService
	jwtSvc *services.JWTService
}

const AUTH_MIDDLEWARE_SVC = "auth"

func (svc AuthMiddleware) Id() string {
	return AUTH_MIDDLEWARE_SVC
}

func (svc *AuthMiddleware) Configure(ctx *context.Context) error {
	svc.dbSvc = ctx.Service(services.DATABASE_SVC).(*services.DatabaseService)
	svc.jwtSvc = ctx.Service(services.JWT_SVC).(*services.JWTService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthMiddleware) Start() error {
	// The HTTP service cannot import this package, so the handlers are
	// injected here before its Start runs.
	httpSvc := svc.Service(services.HTTP_SVC).(*services.HttpService)
	httpSvc.SetAuthMiddleware(svc)
	return nil
}

func (svc *AuthMiddleware) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", err.Error())
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid JWT token")
		}

		if userID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", "Invalid user ID in token")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}

// RequiredAdmin allows only active admin accounts through. Must run after
// RequiredAuth.
func (svc *AuthMiddleware) RequiredAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals(shared.UserID).(string)
		if userID == "" {
			return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", nil)
		}

		user, err := svc.dbSvc.Users().GetUser(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ResponseJSON(c, http.StatusUnauthorized, "Unauthorized", nil)
			}
			return shared.ResponseJSON(c, http.StatusInternalServerError, "Internal Server Error", nil)
		}

		if user.Role != model.RoleAdmin || !user.IsActive {
			return shared.ResponseJSON(c, http.StatusForbidden, "Forbidden", nil)
		}

		return c.Next()
	}
}
