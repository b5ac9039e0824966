package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// UserService manages system users. Plaintext passwords are bcrypt-hashed on
// the way in and the hash never leaves the persistence layer: no response
// DTO has a field for it.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uint) (*dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "User not found")
	}
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apierror.Persistence("Failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	u := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		e := apierror.FromDB(err, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("A user with this username or email already exists")
		}
		return nil, e
	}
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, apierror.Persistence("Failed to hash password", err)
		}
		fields["password_hash"] = string(hash)
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("No fields to update")
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		e := apierror.FromDB(err, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("A user with this username or email already exists")
		}
		return nil, e
	}
	if rows == 0 {
		return nil, apierror.NotFound("User not found for update")
	}
	return s.Get(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apierror.FromDB(err, "")
	}
	if rows == 0 {
		return apierror.NotFound("User not found for deletion")
	}
	return nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: isoTime(u.CreatedAt),
		UpdatedAt: isoTime(u.UpdatedAt),
	}
}
