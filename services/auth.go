package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	context.DefaultService

	dbSvc  *DatabaseService
	jwtSvc *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := svc.dbSvc.Users().GetUserByEmail(req.Email); err == nil {
		return nil, shared.NewConflictError(nil, "Email already registered")
	}
	if _, err := svc.dbSvc.Users().GetUserByUsername(req.Username); err == nil {
		return nil, shared.NewConflictError(nil, "Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	user, err := svc.dbSvc.Users().CreateUser(req.Email, req.Username, string(hashed))
	if err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to create user")
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return svc.toUserResponse(user), nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := svc.dbSvc.Users().GetUserByEmailOrUsername(req.EmailOrUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to look up user")
	}

	if !user.IsActive {
		return nil, shared.NewForbiddenError(nil, "Account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	token, err := svc.jwtSvc.ToJWT(user.ID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	if err := svc.dbSvc.Users().UpdateLastLogin(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last login")
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        *svc.toUserResponse(user),
	}, nil
}

func (svc *AuthService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := svc.dbSvc.Users().GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load user")
	}
	return svc.toUserResponse(user), nil
}

func (svc *AuthService) toUserResponse(user *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		Username:          user.Username,
		Role:              user.Role,
		CompletedSessions: user.CompletedSessions,
		LastLoginAt:       user.LastLoginAt,
		CreatedAt:         user.CreatedAt,
	}
}
