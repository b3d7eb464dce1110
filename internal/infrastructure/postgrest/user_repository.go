package postgrest

import (
	"context"
	"fmt"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
	"github.com/yuzu875641/phpbbs/internal/core/repository"
)

const usersCollection = "users"

type userRepository struct {
	client *Client
}

func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var users []domain.User
	if err := r.client.Select(ctx, usersCollection, Eq("username", username), &users); err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if len(users) == 0 {
		return nil, repository.ErrNotFound
	}
	return &users[0], nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.client.Insert(ctx, usersCollection, user, nil); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
