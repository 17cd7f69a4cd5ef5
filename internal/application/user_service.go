package application

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/okiroth/gallery_backend/internal/domain"
)

var ErrSelfDelete = errors.New("cannot delete your own account")

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, username, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &ValidationError{Message: "username and password are required"}
	}
	if role == "" {
		role = domain.RoleManager
	}
	if role != domain.RoleAdmin && role != domain.RoleManager {
		return nil, &ValidationError{Message: "role must be admin or manager"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user; the acting principal may not remove itself.
func (s *UserService) DeleteUser(ctx context.Context, actor Principal, id int) error {
	if actor.UserID == id {
		return ErrSelfDelete
	}
	return s.repo.Delete(ctx, id)
}
