package main

import (
	"github.com/recuerdo-labs/escape_api/middleware"
	"github.com/recuerdo-labs/escape_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title Escape API
// @version 1.0
// @description Personalized escape-room game backend
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.DatabaseService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.JWTService{},

		&services.AuthService{},
		&services.FactService{},
		&services.MediaService{},
		&services.RewardService{},
		&services.GameService{},
		&services.ShareTokenService{},
		&services.AdminService{},
		&services.RateLimitService{},

		&middleware.AuthMiddleware{},

		&services.MonitoringService{},
		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
