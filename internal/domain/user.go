package domain

import (
	"context"
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

var ErrDuplicateUsername = errors.New("username already exists")

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int) error
}
