package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/services/repositories"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseService owns the gorm connection and the repository layer.
// DB_DRIVER selects postgres (default) or sqlite; sqlite is what local
// development and the test suite run on.
type DatabaseService struct {
	context.DefaultService
	db *gorm.DB

	driver   string
	database string

	users      *repositories.UserRepository
	facts      *repositories.FactRepository
	games      *repositories.GameRepository
	rewards    *repositories.RewardRepository
	tokens     *repositories.TokenRepository
	media      *repositories.MediaRepository
	rateLimits *repositories.RateLimitRepository
}

const DATABASE_SVC = "database_svc"

// Id returns Service ID
func (ds DatabaseService) Id() string {
	return DATABASE_SVC
}

// Db Access to raw database connection
func (ds DatabaseService) Db() *gorm.DB {
	return ds.db
}

func (ds *DatabaseService) Users() *repositories.UserRepository          { return ds.users }
func (ds *DatabaseService) Facts() *repositories.FactRepository         { return ds.facts }
func (ds *DatabaseService) Games() *repositories.GameRepository         { return ds.games }
func (ds *DatabaseService) Rewards() *repositories.RewardRepository     { return ds.rewards }
func (ds *DatabaseService) Tokens() *repositories.TokenRepository       { return ds.tokens }
func (ds *DatabaseService) Media() *repositories.MediaRepository        { return ds.media }
func (ds *DatabaseService) RateLimits() *repositories.RateLimitRepository { return ds.rateLimits }

// Configure the service
func (ds *DatabaseService) Configure(ctx *context.Context) error {
	ds.driver = os.Getenv("DB_DRIVER")
	if ds.driver == "" {
		ds.driver = "postgres"
	}

	switch ds.driver {
	case "sqlite":
		ds.database = os.Getenv("DB_DATABASE")
		if ds.database == "" {
			ds.database = "escape_api.db"
		}
	default:
		ds.database = os.Getenv("DATABASE_URL")
		if ds.database == "" {
			host := os.Getenv("DB_HOST")
			if host == "" {
				host = "localhost"
			}
			port := os.Getenv("DB_PORT")
			if port == "" {
				port = "5432"
			}
			user := os.Getenv("DB_USER")
			if user == "" {
				user = "postgres"
			}
			password := os.Getenv("DB_PASSWORD")
			if password == "" {
				password = "postgres"
			}
			dbname := os.Getenv("DB_NAME")
			if dbname == "" {
				dbname = "escape_api"
			}
			sslmode := os.Getenv("DB_SSLMODE")
			if sslmode == "" {
				sslmode = "disable"
			}

			ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				host, user, password, dbname, port, sslmode)
		}
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *DatabaseService) Start() (err error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	}

	switch ds.driver {
	case "sqlite":
		ds.db, err = gorm.Open(sqlite.Open(ds.database), cfg)
		if err != nil {
			return err
		}
	default:
		if err = ds.connectPostgres(cfg); err != nil {
			return err
		}
	}

	if err = ds.migrate(); err != nil {
		return err
	}

	ds.users = repositories.NewUserRepository(ds.db)
	ds.facts = repositories.NewFactRepository(ds.db)
	ds.games = repositories.NewGameRepository(ds.db)
	ds.rewards = repositories.NewRewardRepository(ds.db)
	ds.tokens = repositories.NewTokenRepository(ds.db)
	ds.media = repositories.NewMediaRepository(ds.db)
	ds.rateLimits = repositories.NewRateLimitRepository(ds.db)

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *DatabaseService) connectPostgres(cfg *gorm.Config) (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), cfg)
		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					log.Println("Successfully connected to database")
					return nil
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		time.Sleep(retryDelay)

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}
	return err
}

func (ds *DatabaseService) migrate() error {
	models := []interface{}{
		&model.User{},
		&model.Fact{},
		&model.GameSession{},
		&model.Level{},
		&model.Reward{},
		&model.ShareToken{},
		&model.ShareTokenUse{},
		&model.MediaAsset{},
		&model.RateLimit{},
	}

	if err := ds.db.AutoMigrate(models...); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}
	return nil
}

func (ds *DatabaseService) Shutdown() {
}

func (ds *DatabaseService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound // 404
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict // 409
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest // 400
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError // 500
		errorType = "TRANSACTION_ERROR"
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			statusCode = http.StatusConflict // 409
			errorType = "UNIQUE_CONSTRAINT"
		} else if strings.Contains(err.Error(), "no such table") {
			statusCode = http.StatusInternalServerError // 500
			errorType = "SCHEMA_ERROR"
		} else {
			statusCode = http.StatusInternalServerError // 500
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return fmt.Errorf("%s: %w", errorType, err)
}
