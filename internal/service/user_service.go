package service

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hunthub/internal/errors"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

// UserService exposes user registration and role operations.
type UserService interface {
	Register(ctx context.Context, user *model.User) (*model.User, bool, error)
	List(ctx context.Context) ([]model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsModerator(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, id uuid.UUID) (int64, error)
	MakeModerator(ctx context.Context, id uuid.UUID) (int64, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates the user on first sight of the email. A second
// registration with the same email is a no-op that reports the existing
// record; the boolean is false when nothing was inserted.
func (s *userService) Register(ctx context.Context, user *model.User) (*model.User, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, false, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// A concurrent registration may land between the lookup and the
		// insert; the unique email index makes that a duplicate, not a
		// second record.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.repo.FindByEmail(ctx, user.Email)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return user, true, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, model.RoleAdmin)
}

func (s *userService) IsModerator(ctx context.Context, email string) (bool, error) {
	return s.hasRole(ctx, email, model.RoleModerator)
}

func (s *userService) hasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

func (s *userService) MakeAdmin(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.setRole(ctx, id, model.RoleAdmin)
}

func (s *userService) MakeModerator(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.setRole(ctx, id, model.RoleModerator)
}

// setRole overwrites the role after confirming the user exists. Existence
// cannot be inferred from the update's row count: the driver reports changed
// rows, so promoting a user to a role they already hold counts 0. The
// returned count is the number of rows the overwrite actually changed.
func (s *userService) setRole(ctx context.Context, id uuid.UUID, role model.Role) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.ErrUserNotFound
		}
		return 0, err
	}
	return s.repo.UpdateRole(ctx, id, role)
}
