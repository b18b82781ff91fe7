package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sikarir/sikarir-backend/internal/models"
	pgrepo "github.com/sikarir/sikarir-backend/internal/repositories/postgres"
	"github.com/sikarir/sikarir-backend/internal/storage"
	"github.com/sikarir/sikarir-backend/internal/utils"
	"gorm.io/datatypes"
)

type EditAccountInput struct {
	Name        *string
	Email       *string
	Password    *string
	Interests   *[]string
	Preferences *datatypes.JSON
}

type UserService interface {
	Me(ctx context.Context, userID string) (*models.User, error)
	EditAccount(ctx context.Context, userID string, in EditAccountInput) (*models.User, error)
	SetPhoto(ctx context.Context, userID, ext, contentType string, r io.Reader) (*models.User, error)
}

type userService struct {
	users    pgrepo.UserRepository
	uploader storage.Uploader
}

func NewUserService(users pgrepo.UserRepository, uploader storage.Uploader) UserService {
	return &userService{users: users, uploader: uploader}
}

func (s *userService) Me(ctx context.Context, userID string) (*models.User, error) {
	const op = "UserService.Me"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	return u, nil
}

func (s *userService) EditAccount(ctx context.Context, userID string, in EditAccountInput) (*models.User, error) {
	const op = "UserService.EditAccount"

	u, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != u.Email {
		inUse, err := s.users.EmailInUseByOther(ctx, *in.Email, userID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
		}
		if inUse {
			return nil, utils.E(utils.CodeConflict, op, "email already in use", nil)
		}
		u.Email = *in.Email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, utils.E(utils.CodeInvalidArgument, op, "password must be at least 8 characters", nil)
		}
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		u.PasswordHash = hash
	}
	if in.Interests != nil {
		u.Interests = *in.Interests
	}
	if in.Preferences != nil {
		u.Preferences = *in.Preferences
	}

	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update user", err)
	}
	return u, nil
}

func (s *userService) SetPhoto(ctx context.Context, userID, ext, contentType string, r io.Reader) (*models.User, error) {
	const op = "UserService.SetPhoto"

	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	u, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	objectName := "photos/" + userID + "/" + uuid.NewString() + ext
	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload photo", err)
	}

	u.PhotoURL = url
	u.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save photo url", err)
	}
	return u, nil
}
