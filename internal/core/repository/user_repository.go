package repository

import (
	"context"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
)

type UserRepository interface {
	// FindByUsername returns ErrNotFound when no row matches. Any other error
	// means the store call itself failed.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
