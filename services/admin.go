package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/recuerdo-labs/escape_api/dto"
	"github.com/recuerdo-labs/escape_api/model"
	"github.com/recuerdo-labs/escape_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminService backs the admin surface: user management and rate limit
// oversight.
type AdminService struct {
	context.DefaultService

	dbSvc *DatabaseService
}

const ADMIN_SVC = "admin_svc"

func (svc AdminService) Id() string {
	return ADMIN_SVC
}

func (svc *AdminService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminService) Start() error {
	svc.dbSvc = svc.Service(DATABASE_SVC).(*DatabaseService)
	return nil
}

func (svc *AdminService) ListUsers(page, limit int, search string) (*dto.AdminUserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := svc.dbSvc.Db().Model(&model.User{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("email LIKE ? OR username LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to count users")
	}

	var users []model.User
	if err := query.Order("created_at DESC").
		Limit(limit).Offset((page - 1) * limit).Find(&users).Error; err != nil {
		return nil, shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to list users")
	}

	resp := &dto.AdminUserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for i := range users {
		u := &users[i]
		resp.Users = append(resp.Users, dto.UserResponse{
			ID:                u.ID,
			Email:             u.Email,
			Username:          u.Username,
			Role:              u.Role,
			CompletedSessions: u.CompletedSessions,
			LastLoginAt:       u.LastLoginAt,
			CreatedAt:         u.CreatedAt,
		})
	}
	return resp, nil
}

func (svc *AdminService) UpdateUser(userID string, req dto.AdminUpdateUserRequest) error {
	user, err := svc.dbSvc.Users().GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "User not found")
		}
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to load user")
	}

	if req.Role != "" {
		user.Role = req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := svc.dbSvc.Users().UpdateUser(user); err != nil {
		return shared.NewInternalError(svc.dbSvc.HandleError(err), "Failed to update user")
	}

	log.WithFields(log.Fields{"user_id": userID, "role": user.Role, "is_active": user.IsActive}).Info("User updated by admin")
	return nil
}
