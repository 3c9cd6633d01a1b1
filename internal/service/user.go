package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// UserService manages accounts on behalf of administrators.
type UserService interface {
	List(ctx context.Context, params query.Params, opts repository.ListOptions) ([]*model.User, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error)
	UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*model.User, error)
	// Delete deactivates the account and revokes its refresh tokens.
	Delete(ctx context.Context, id primitive.ObjectID) error
	// EnsureAdmin creates an admin account for email unless one is already registered.
	EnsureAdmin(ctx context.Context, email, password, company string) (bool, error)
}

// UserServiceImpl implements UserService.
type UserServiceImpl struct {
	repo       repository.UserRepositoryInterface
	tokens     TokenService
	bcryptCost int
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepositoryInterface, tokens TokenService, bcryptCost int) UserService {
	return &UserServiceImpl{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *UserServiceImpl) List(ctx context.Context, params query.Params, opts repository.ListOptions) ([]*model.User, error) {
	f, err := buildFilter("users", userFilters, params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, f.BSON(), opts)
}

func (s *UserServiceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	role := model.Role(req.Role)
	if role == "" {
		role = model.RoleLaborer
	}
	return createUser(ctx, s.repo, s.bcryptCost, req.Email, req.Password, role, req.Company)
}

func (s *UserServiceImpl) UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*model.User, error) {
	user, err := s.repo.UpdateEmail(ctx, id, normalizeEmail(email))
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("update user email: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	existed, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if !existed {
		return ErrUserNotFound
	}

	if err := s.tokens.InvalidateUserTokens(ctx, id); err != nil {
		log.Warn().Err(err).Str("user_id", id.Hex()).Msg("failed to revoke tokens of deactivated user")
	}
	return nil
}

func (s *UserServiceImpl) EnsureAdmin(ctx context.Context, email, password, company string) (bool, error) {
	_, err := createUser(ctx, s.repo, s.bcryptCost, email, password, model.RoleAdmin, company)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUserExists):
		return false, nil
	default:
		return false, err
	}
}
