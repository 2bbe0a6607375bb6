package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"

	_ "github.com/recuerdo-labs/escape_api/docs"
	"github.com/recuerdo-labs/escape_api/services/handlers"
	"github.com/recuerdo-labs/escape_api/shared"
)

// AuthMiddlewareProvider is implemented by the auth middleware service; the
// HTTP layer only needs the fiber handlers.
type AuthMiddlewareProvider interface {
	RequiredAuth() fiber.Handler
	RequiredAdmin() fiber.Handler
}

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	factSvc      *FactService
	gameSvc      *GameService
	rewardSvc    *RewardService
	tokenSvc     *ShareTokenService
	mediaSvc     *MediaService
	adminSvc     *AdminService
	rateLimitSvc *RateLimitService
	monitorSvc   *MonitoringService

	authMw AuthMiddlewareProvider

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

// SetAuthMiddleware hands the HTTP layer its auth handlers. Called by the
// middleware service during boot; kept as a setter to avoid an import
// cycle between services and middleware.
func (svc *HttpService) SetAuthMiddleware(mw AuthMiddlewareProvider) {
	svc.authMw = mw
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.factSvc = svc.Service(FACT_SVC).(*FactService)
	svc.gameSvc = svc.Service(GAME_SVC).(*GameService)
	svc.rewardSvc = svc.Service(REWARD_SVC).(*RewardService)
	svc.tokenSvc = svc.Service(SHARE_TOKEN_SVC).(*ShareTokenService)
	svc.mediaSvc = svc.Service(MEDIA_SVC).(*MediaService)
	svc.adminSvc = svc.Service(ADMIN_SVC).(*AdminService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitorSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		ErrorHandler: svc.handleError,
		BodyLimit:    12 << 20,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitorSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	svc.registerRoutes(app)

	svc.server = app
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	factHandler := handlers.NewFactHandler(svc.factSvc)
	gameHandler := handlers.NewGameHandler(svc.gameSvc, svc.rewardSvc)
	tokenHandler := handlers.NewTokenHandler(svc.tokenSvc, svc.gameSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)
	adminHandler := handlers.NewAdminHandler(svc.adminSvc, svc.rateLimitSvc)

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", svc.rateLimitSvc.RateLimit("register"), authHandler.Register)
	auth.Post("/login", svc.rateLimitSvc.RateLimit("login"), authHandler.Login)
	auth.Get("/me", svc.authMw.RequiredAuth(), authHandler.GetProfile)

	facts := v1.Group("/facts", svc.authMw.RequiredAuth())
	facts.Post("/", factHandler.CreateFact)
	facts.Get("/", factHandler.ListFacts)
	facts.Get("/:factId", factHandler.GetFact)
	facts.Put("/:factId", factHandler.UpdateFact)
	facts.Delete("/:factId", factHandler.DeleteFact)

	sessions := v1.Group("/sessions", svc.authMw.RequiredAuth())
	sessions.Get("/", gameHandler.ListSessions)
	sessions.Post("/reset", gameHandler.ResetSession)
	sessions.Get("/:sessionId", gameHandler.GetSession)
	sessions.Get("/:sessionId/levels/:levelId", gameHandler.GetLevel)
	sessions.Post("/:sessionId/levels/:levelId/verify",
		svc.rateLimitSvc.RateLimit("verify_answer"), gameHandler.VerifyAnswer)

	rewards := v1.Group("/rewards", svc.authMw.RequiredAuth())
	rewards.Post("/", gameHandler.CreateReward)
	rewards.Get("/", gameHandler.ListRewards)
	rewards.Get("/won", gameHandler.GetWonReward)
	rewards.Put("/:rewardId", gameHandler.UpdateReward)
	rewards.Delete("/:rewardId", gameHandler.DeleteReward)

	tokens := v1.Group("/tokens", svc.authMw.RequiredAuth())
	tokens.Post("/", tokenHandler.CreateToken)
	tokens.Get("/", tokenHandler.ListTokens)
	tokens.Post("/spawn", svc.rateLimitSvc.RateLimit("spawn_session"), tokenHandler.SpawnSession)
	tokens.Delete("/:tokenId", tokenHandler.DeactivateToken)

	media := v1.Group("/media", svc.authMw.RequiredAuth())
	media.Post("/", svc.rateLimitSvc.RateLimit("media_upload"), mediaHandler.UploadImage)
	media.Get("/", mediaHandler.ListAssets)
	media.Get("/:assetId", mediaHandler.GetAsset)
	media.Get("/:assetId/url", mediaHandler.GetAssetURL)
	media.Delete("/:assetId", mediaHandler.DeleteAsset)

	admin := v1.Group("/admin", svc.authMw.RequiredAuth(), svc.authMw.RequiredAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:userId", adminHandler.UpdateUser)
	admin.Get("/rate-limits", adminHandler.RateLimitStats)
	admin.Post("/rate-limits/cleanup", adminHandler.CleanupRateLimits)
	admin.Delete("/rate-limits/:identifier/:endpointType", adminHandler.ResetRateLimit)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

// handleError is the terminal error mapper: AppErrors carry their own
// status and client message, anything else becomes a 500.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
